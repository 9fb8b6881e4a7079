package share

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestRegistryGetAbsent(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Get("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on empty registry: err = %v, want ErrNotFound", err)
	}
}

func TestRegistryPutGet(t *testing.T) {
	reg := NewRegistry()
	want := Entry{ID: "abc123", StoredName: "abc123.png", Size: 42, UploadedAt: time.Now().UTC()}

	reg.Put(want)

	got, err := reg.Get("abc123")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != want {
		t.Errorf("Get = %+v, want %+v", got, want)
	}
}

func TestRegistryInsertRejectsTakenID(t *testing.T) {
	reg := NewRegistry()
	first := Entry{ID: "abc123", StoredName: "abc123.png", Size: 1}

	if !reg.Insert(first) {
		t.Fatal("Insert of a fresh id must succeed")
	}
	if reg.Insert(Entry{ID: "abc123", StoredName: "abc123.txt", Size: 2}) {
		t.Fatal("Insert of a taken id must fail")
	}

	got, err := reg.Get("abc123")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.StoredName != first.StoredName {
		t.Errorf("losing Insert overwrote the entry: got %+v", got)
	}
}

func TestRegistryListNewestFirst(t *testing.T) {
	reg := NewRegistry()
	base := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	reg.Put(Entry{ID: "old", StoredName: "old.txt", UploadedAt: base})
	reg.Put(Entry{ID: "new", StoredName: "new.txt", UploadedAt: base.Add(2 * time.Minute)})
	reg.Put(Entry{ID: "mid", StoredName: "mid.txt", UploadedAt: base.Add(time.Minute)})

	entries := reg.List()
	if len(entries) != 3 {
		t.Fatalf("List returned %d entries, want 3", len(entries))
	}
	for i, wantID := range []string{"new", "mid", "old"} {
		if entries[i].ID != wantID {
			t.Errorf("List[%d].ID = %q, want %q", i, entries[i].ID, wantID)
		}
	}
}

func TestRegistryListBreaksTimestampTies(t *testing.T) {
	reg := NewRegistry()
	at := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	reg.Put(Entry{ID: "aaa", StoredName: "aaa.txt", UploadedAt: at})
	reg.Put(Entry{ID: "bbb", StoredName: "bbb.txt", UploadedAt: at})

	entries := reg.List()
	if len(entries) != 2 {
		t.Fatalf("List returned %d entries, want 2", len(entries))
	}
	if entries[0].ID != "bbb" || entries[1].ID != "aaa" {
		t.Errorf("tie-break not deterministic: got %q, %q", entries[0].ID, entries[1].ID)
	}
}

func TestRegistryConcurrentInserts(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("id-%02d", i)
			if !reg.Insert(Entry{ID: id, StoredName: id + ".txt"}) {
				t.Errorf("Insert(%q) failed for a unique id", id)
			}
		}(i)
	}
	wg.Wait()

	if got := reg.Len(); got != 50 {
		t.Errorf("Len = %d after 50 unique inserts, want 50", got)
	}
}
