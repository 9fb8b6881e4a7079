package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalRoundTrip(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	content := "some bytes"
	err = store.Upload(context.Background(), "abc123.txt", strings.NewReader(content), int64(len(content)), "text/plain")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	rc, err := store.Open(context.Background(), "abc123.txt")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != content {
		t.Errorf("content = %q, want %q", got, content)
	}
}

func TestLocalCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	if _, err := NewLocal(dir); err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("storage directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%q is not a directory", dir)
	}
}

func TestLocalRejectsUnsafeKeys(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	keys := []string{
		"",
		"../escape.txt",
		"nested/file.txt",
		"..",
		"a/../../b.txt",
	}
	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			err := store.Upload(context.Background(), key, strings.NewReader("x"), 1, "")
			if err == nil {
				t.Errorf("Upload(%q) succeeded, want error", key)
			}
			if _, err := store.Open(context.Background(), key); err == nil {
				t.Errorf("Open(%q) succeeded, want error", key)
			}
		})
	}
}

func TestLocalOpenAbsentKey(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	if _, err := store.Open(context.Background(), "missing.txt"); err == nil {
		t.Error("Open of an absent key succeeded, want error")
	}
}

type failingReader struct {
	data io.Reader
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	n, err := r.data.Read(p)
	if err == io.EOF {
		return n, r.err
	}
	return n, err
}

func TestLocalRemovesPartialWrite(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir)
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	reader := &failingReader{data: strings.NewReader("partial"), err: errors.New("connection reset")}
	err = store.Upload(context.Background(), "abc123.bin", reader, 7, "")
	if err == nil {
		t.Fatal("Upload with a failing reader succeeded, want error")
	}

	if _, err := os.Stat(filepath.Join(dir, "abc123.bin")); !os.IsNotExist(err) {
		t.Errorf("partial file left on disk: stat err = %v", err)
	}
}
