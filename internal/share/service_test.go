package share

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/filedrop/service/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := storage.NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	return NewService(NewRegistry(), store)
}

func TestSafeExt(t *testing.T) {
	tests := []struct {
		name         string
		originalName string
		want         string
	}{
		{
			name:         "plain extension is kept",
			originalName: "notes.txt",
			want:         ".txt",
		},
		{
			name:         "extension case is preserved",
			originalName: "photo.PNG",
			want:         ".PNG",
		},
		{
			name:         "no extension",
			originalName: "README",
			want:         "",
		},
		{
			name:         "only the final extension is kept",
			originalName: "archive.tar.gz",
			want:         ".gz",
		},
		{
			name:         "non-alphanumeric extension is dropped",
			originalName: "weird.t@r",
			want:         "",
		},
		{
			name:         "trailing dot is dropped",
			originalName: "strange.",
			want:         "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := safeExt(tt.originalName); got != tt.want {
				t.Errorf("safeExt(%q) = %q, want %q", tt.originalName, got, tt.want)
			}
		})
	}
}

func TestStoreAndResolve(t *testing.T) {
	svc := newTestService(t)
	content := "hello, filedrop"

	entry, err := svc.Store(context.Background(), "greeting.txt", strings.NewReader(content), int64(len(content)))
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	if entry.ID == "" {
		t.Error("Store returned an empty id")
	}
	if want := entry.ID + ".txt"; entry.StoredName != want {
		t.Errorf("StoredName = %q, want %q", entry.StoredName, want)
	}
	if entry.Size != int64(len(content)) {
		t.Errorf("Size = %d, want %d", entry.Size, len(content))
	}

	got, err := svc.Resolve(entry.ID)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != entry {
		t.Errorf("Resolve = %+v, want %+v", got, entry)
	}

	blob, err := svc.OpenBlob(context.Background(), entry)
	if err != nil {
		t.Fatalf("OpenBlob: %v", err)
	}
	defer blob.Close()

	data, err := io.ReadAll(blob)
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	if string(data) != content {
		t.Errorf("blob content = %q, want %q", data, content)
	}
}

func TestStoreRewindsReader(t *testing.T) {
	svc := newTestService(t)
	content := "rewind me"
	reader := strings.NewReader(content)

	// Drain part of the reader first; Store must still persist everything.
	if _, err := io.CopyN(io.Discard, reader, 6); err != nil {
		t.Fatalf("CopyN: %v", err)
	}

	entry, err := svc.Store(context.Background(), "data.bin", reader, int64(len(content)))
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	blob, err := svc.OpenBlob(context.Background(), entry)
	if err != nil {
		t.Fatalf("OpenBlob: %v", err)
	}
	defer blob.Close()

	data, err := io.ReadAll(blob)
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	if string(data) != content {
		t.Errorf("blob content = %q, want %q", data, content)
	}
}

func TestStoreAssignsUniqueIDs(t *testing.T) {
	svc := newTestService(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		entry, err := svc.Store(context.Background(), "same.txt", strings.NewReader("x"), 1)
		if err != nil {
			t.Fatalf("Store #%d: %v", i, err)
		}
		if seen[entry.ID] {
			t.Fatalf("duplicate id issued: %q", entry.ID)
		}
		seen[entry.ID] = true
	}
}

func TestResolveUnknownID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Resolve("never-issued")
	if err == nil {
		t.Fatal("Resolve of an unknown id must fail")
	}
	if !svc.IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false, want true", err)
	}
}

func TestStoreWithoutExtension(t *testing.T) {
	svc := newTestService(t)

	entry, err := svc.Store(context.Background(), "README", strings.NewReader("docs"), 4)
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if entry.StoredName != entry.ID {
		t.Errorf("StoredName = %q, want bare id %q", entry.StoredName, entry.ID)
	}
}
