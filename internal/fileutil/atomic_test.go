package fileutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "snapshot.toml")
	err := WriteAtomic(path, 0o600, func(w io.Writer) error {
		_, err := io.WriteString(w, "seed = \"AAAAAAAA\"\n")
		return err
	})
	if err != nil {
		t.Fatalf("WriteAtomic failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "seed = \"AAAAAAAA\"\n" {
		t.Errorf("Unexpected content: %q", data)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat file: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("Expected permissions 0600, got %v", info.Mode().Perm())
	}
}

func TestWriteAtomicKeepsOldFileOnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.toml")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("encode failed")
	err := WriteAtomic(path, 0o644, func(w io.Writer) error {
		io.WriteString(w, "partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Expected encode error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "old" {
		t.Errorf("Old file was modified: %q", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected temp file to be removed, found %d entries", len(entries))
	}
}
