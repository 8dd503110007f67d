package filestore

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"agora/internal/storage"
)

var store storage.Storage
var root string

func TestMain(m *testing.M) {
	var err error
	root, err = os.MkdirTemp(".", "tempdir")
	if err != nil {
		return
	}

	store, err = New(filepath.Join(root, "avatars"))
	if err != nil {
		return
	}

	code := m.Run()
	if err = os.RemoveAll(root); err != nil {
		code = 1
	}
	os.Exit(code)
}

func TestNewCreatesRoot(t *testing.T) {
	nested := filepath.Join(root, "a", "b")
	if _, err := New(nested); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	info, err := os.Stat(nested)
	if err != nil || !info.IsDir() {
		t.Errorf("expected %s to be created as a directory", nested)
	}

	file := filepath.Join(root, "plain")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := New(file); !errors.Is(err, storage.ErrNotDir) {
		t.Errorf("expected %s for a file root, got %s", storage.ErrNotDir, err)
	}
}

func TestCreateAndOpen(t *testing.T) {
	content := []byte("avatar bytes")
	if err := store.Create(bytes.NewReader(content), "abc123"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	err := store.Create(strings.NewReader("other bytes"), "abc123")
	if !errors.Is(err, storage.ErrAlreadyExists) {
		t.Errorf("expected %s for a duplicate path, got %s", storage.ErrAlreadyExists, err)
	}

	got, err := store.Open("abc123")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("expected %q, got %q", content, got)
	}

	_, err = store.Open("missing")
	if !errors.Is(err, storage.ErrNotExist) {
		t.Errorf("expected %s for a missing path, got %s", storage.ErrNotExist, err)
	}
}

func TestDelete(t *testing.T) {
	if err := store.Create(strings.NewReader("doomed"), "doomed"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if err := store.Delete("doomed"); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
	if _, err := store.Open("doomed"); !errors.Is(err, storage.ErrNotExist) {
		t.Error("expected the file to be gone")
	}

	if err := store.Delete("doomed"); !errors.Is(err, storage.ErrNotExist) {
		t.Errorf("expected %s for a missing path, got %s", storage.ErrNotExist, err)
	}
}
