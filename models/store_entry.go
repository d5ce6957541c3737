package models

import "time"

// StoreEntry is one row of the local key-value store that backs the cart
// and session state across runs.
type StoreEntry struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     []byte    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
