package supabase

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryStoreMissingKeyIsEmpty(t *testing.T) {
	store := NewMemoryStore()

	got, err := store.Get("absent")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "" {
		t.Errorf("Get(absent) = %q, want empty", got)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	store := NewFileStore(path)

	if err := store.Set(KeyAccessToken, "token-1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set(KeyRefreshToken, "refresh-1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// a second instance reads what the first wrote
	reopened := NewFileStore(path)
	if got, _ := reopened.Get(KeyAccessToken); got != "token-1" {
		t.Errorf("Get() = %q, want token-1", got)
	}

	if err := reopened.Delete(KeyAccessToken); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got, _ := reopened.Get(KeyAccessToken); got != "" {
		t.Errorf("Get() after delete = %q, want empty", got)
	}
	if got, _ := reopened.Get(KeyRefreshToken); got != "refresh-1" {
		t.Errorf("Get() = %q, sibling key must survive delete", got)
	}
}

func TestFileStorePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewFileStore(path)

	if err := store.Set(KeyAccessToken, "token-1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 0600", perm)
	}
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "never-written.json"))

	got, err := store.Get(KeyAccessToken)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "" {
		t.Errorf("Get() = %q, want empty for a missing file", got)
	}

	if err := store.Delete(KeyAccessToken); err != nil {
		t.Fatalf("Delete() on missing file error = %v", err)
	}
}
