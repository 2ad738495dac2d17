package store

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// dbCounter gives each test its own named in-memory database.
var dbCounter atomic.Int64

func setupStore(t *testing.T) BlobStore {
	t.Helper()

	dsn := fmt.Sprintf("file:storetest%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&Blob{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return New(db)
}

func TestLoad(t *testing.T) {
	t.Run("absent_key", func(t *testing.T) {
		s := setupStore(t)

		value, found, err := s.Load(KeyLedger)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Error("expected absent key to report found=false")
		}
		if value != nil {
			t.Errorf("expected nil value, got %s", value)
		}
	})

	t.Run("round_trip", func(t *testing.T) {
		s := setupStore(t)

		if err := s.Save(KeyDraft, []byte(`{"currency":"INR"}`)); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		value, found, err := s.Load(KeyDraft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found {
			t.Fatal("expected blob to be found")
		}
		if string(value) != `{"currency":"INR"}` {
			t.Errorf("unexpected value: %s", value)
		}
	})
}

func TestSave(t *testing.T) {
	t.Run("overwrites_in_full", func(t *testing.T) {
		s := setupStore(t)

		if err := s.Save(KeyLedger, []byte(`{"total_zakat":"100"}`)); err != nil {
			t.Fatalf("first save failed: %v", err)
		}
		if err := s.Save(KeyLedger, []byte(`{"total_zakat":"0"}`)); err != nil {
			t.Fatalf("second save failed: %v", err)
		}

		value, found, err := s.Load(KeyLedger)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found {
			t.Fatal("expected blob to be found")
		}
		if string(value) != `{"total_zakat":"0"}` {
			t.Errorf("expected latest value to win, got %s", value)
		}
	})

	t.Run("keys_are_independent", func(t *testing.T) {
		s := setupStore(t)

		if err := s.Save(KeyLedger, []byte(`{"a":1}`)); err != nil {
			t.Fatalf("save ledger failed: %v", err)
		}
		if err := s.Save(KeyDraft, []byte(`{"b":2}`)); err != nil {
			t.Fatalf("save draft failed: %v", err)
		}

		value, _, err := s.Load(KeyLedger)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(value) != `{"a":1}` {
			t.Errorf("ledger blob clobbered: %s", value)
		}
	})
}
