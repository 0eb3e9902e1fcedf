// /internal/util/util_test.go
package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewestFile(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "old.jar")
	newer := filepath.Join(dir, "new.jar")
	other := filepath.Join(dir, "notes.txt")
	for _, p := range []string{old, newer, other} {
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}

	got, err := NewestFile(dir, ".jar")
	if err != nil {
		t.Fatalf("NewestFile() error: %v", err)
	}
	if got != newer {
		t.Errorf("NewestFile() = %q, want %q", got, newer)
	}
}

func TestNewestFile_NoMatch(t *testing.T) {
	if _, err := NewestFile(t.TempDir(), ".jar"); err == nil {
		t.Error("NewestFile() found a jar in an empty directory")
	}
}

func TestCopyDir(t *testing.T) {
	src := t.TempDir()
	if err := os.MkdirAll(filepath.Join(src, "nested"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "nested", "file.txt"), []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(t.TempDir(), "copy")
	if err := CopyDir(src, dst); err != nil {
		t.Fatalf("CopyDir() error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dst, "nested", "file.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "data" {
		t.Errorf("copied contents = %q", data)
	}
}
