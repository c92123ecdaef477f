package storage

import (
	"path/filepath"
	"testing"
)

func TestFileStoreMissingKeysReadAsZero(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "sessions.yaml"))

	value, err := store.GetString("sessions.last_day")
	if err != nil {
		t.Fatalf("get string: %v", err)
	}
	if value != "" {
		t.Fatalf("expected empty string, got %q", value)
	}

	count, err := store.GetInt("sessions.count")
	if err != nil {
		t.Fatalf("get int: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0, got %d", count)
	}
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sessions.yaml")

	store := NewFileStore(path)
	if err := store.SetInt("sessions.count", 7); err != nil {
		t.Fatalf("set int: %v", err)
	}
	if err := store.SetString("sessions.last_day", "2026-03-14"); err != nil {
		t.Fatalf("set string: %v", err)
	}

	reopened := NewFileStore(path)
	count, err := reopened.GetInt("sessions.count")
	if err != nil {
		t.Fatalf("get int: %v", err)
	}
	if count != 7 {
		t.Fatalf("expected 7, got %d", count)
	}
	day, err := reopened.GetString("sessions.last_day")
	if err != nil {
		t.Fatalf("get string: %v", err)
	}
	if day != "2026-03-14" {
		t.Fatalf("expected 2026-03-14, got %q", day)
	}
}

func TestFileStoreOverwritesValues(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "sessions.yaml"))

	if err := store.SetInt("sessions.count", 1); err != nil {
		t.Fatalf("set int: %v", err)
	}
	if err := store.SetInt("sessions.count", 2); err != nil {
		t.Fatalf("set int: %v", err)
	}

	count, err := store.GetInt("sessions.count")
	if err != nil {
		t.Fatalf("get int: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2, got %d", count)
	}
}

func TestFileStoreWrongTypeReadsAsZero(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "sessions.yaml"))
	if err := store.SetString("sessions.count", "not a number"); err != nil {
		t.Fatalf("set string: %v", err)
	}

	count, err := store.GetInt("sessions.count")
	if err != nil {
		t.Fatalf("get int: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected mistyped value to read as 0, got %d", count)
	}
}
