package storage

import (
	"bytes"
	"testing"

	"tienda-storefront/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestGormStore(t *testing.T) Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.StoreEntry{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewGormStore(db)
}

func TestGormStoreRoundTrip(t *testing.T) {
	store := newTestGormStore(t)

	if err := store.Set("cart", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("expected set to succeed, got %v", err)
	}

	value, ok, err := store.Get("cart")
	if err != nil {
		t.Fatalf("expected get to succeed, got %v", err)
	}
	if !ok {
		t.Fatal("expected key to exist")
	}
	if !bytes.Equal(value, []byte(`[{"id":1}]`)) {
		t.Errorf("expected stored value back, got %s", value)
	}
}

func TestGormStoreOverwrite(t *testing.T) {
	store := newTestGormStore(t)

	if err := store.Set("cart", []byte("old")); err != nil {
		t.Fatalf("first set failed: %v", err)
	}
	if err := store.Set("cart", []byte("new")); err != nil {
		t.Fatalf("second set failed: %v", err)
	}

	value, ok, err := store.Get("cart")
	if err != nil || !ok {
		t.Fatalf("expected key to exist, got ok=%v err=%v", ok, err)
	}
	if string(value) != "new" {
		t.Errorf("expected overwritten value 'new', got %q", value)
	}
}

func TestGormStoreMissingKey(t *testing.T) {
	store := newTestGormStore(t)

	_, ok, err := store.Get("nothing-here")
	if err != nil {
		t.Fatalf("expected no error for missing key, got %v", err)
	}
	if ok {
		t.Error("expected missing key to report ok=false")
	}
}

func TestGormStoreDelete(t *testing.T) {
	store := newTestGormStore(t)

	if err := store.Set("token", []byte("abc")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Delete("token"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	_, ok, _ := store.Get("token")
	if ok {
		t.Error("expected deleted key to be gone")
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	if err := store.Set("cart", []byte("[]")); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	value, ok, err := store.Get("cart")
	if err != nil || !ok {
		t.Fatalf("expected key to exist, got ok=%v err=%v", ok, err)
	}
	if string(value) != "[]" {
		t.Errorf("expected '[]', got %q", value)
	}

	if err := store.Delete("cart"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	_, ok, _ = store.Get("cart")
	if ok {
		t.Error("expected deleted key to be gone")
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()

	original := []byte("abc")
	store.Set("k", original)
	original[0] = 'x'

	value, _, _ := store.Get("k")
	if string(value) != "abc" {
		t.Errorf("expected stored value to be isolated from caller, got %q", value)
	}
}
