package notify

import (
	"log"
	"sync"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Notifier reports user-facing messages. Calls are fire-and-forget; the
// caller never consumes a result.
type Notifier interface {
	Success(message string)
	Error(message string)
	Warning(message string)
	Info(message string)
}

// LogNotifier writes notifications to the process log.
type LogNotifier struct{}

func (LogNotifier) Success(message string) { log.Printf("SUCCESS: %s", message) }
func (LogNotifier) Error(message string)   { log.Printf("ERROR: %s", message) }
func (LogNotifier) Warning(message string) { log.Printf("WARNING: %s", message) }
func (LogNotifier) Info(message string)    { log.Printf("INFO: %s", message) }

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

type Event struct {
	Level   Level
	Message string
}

func (r *Recorder) record(level Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Level: level, Message: message})
}

func (r *Recorder) Success(message string) { r.record(LevelSuccess, message) }
func (r *Recorder) Error(message string)   { r.record(LevelError, message) }
func (r *Recorder) Warning(message string) { r.record(LevelWarning, message) }
func (r *Recorder) Info(message string)    { r.record(LevelInfo, message) }

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Last returns the most recent event, if any.
func (r *Recorder) Last() (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return Event{}, false
	}
	return r.events[len(r.events)-1], true
}
