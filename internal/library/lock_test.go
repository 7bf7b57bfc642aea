package library

import (
	"path/filepath"
	"testing"
)

func TestAcquireLockExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locks", "collator.lock")

	lock, err := AcquireLock(path)
	if err != nil {
		t.Fatalf("AcquireLock failed: %v", err)
	}
	defer lock.Unlock()

	if _, err := AcquireLock(path); err == nil {
		t.Error("second acquisition should fail while the lock is held")
	}
}

func TestAcquireLockReleasable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collator.lock")

	lock, err := AcquireLock(path)
	if err != nil {
		t.Fatalf("AcquireLock failed: %v", err)
	}
	if err := lock.Unlock(); err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}

	again, err := AcquireLock(path)
	if err != nil {
		t.Fatalf("reacquire after release failed: %v", err)
	}
	again.Unlock()
}
