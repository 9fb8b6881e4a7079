// Package share implements the file-sharing domain: the identifier registry,
// the upload/resolve service, and the HTTP handlers for the share surface.
package share

import (
	"errors"
	"sort"
	"sync"
	"time"
)

// Entry is one registered upload. StoredName is the on-storage name: the
// short id plus the original upload's extension. The original filename is
// not kept anywhere; downloads are named after the stored name.
type Entry struct {
	ID         string    `json:"id"`
	StoredName string    `json:"storedName"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// ErrNotFound is returned when an id has never been registered.
var ErrNotFound = errors.New("file not found")

// Registry maps short ids to entries. It lives in process memory only:
// created empty at startup, entries are never evicted, everything is lost on
// restart. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Put inserts or overwrites the entry under its id.
func (r *Registry) Put(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.ID] = e
}

// Insert registers the entry only when its id is free. It reports whether
// the entry was inserted; false means the id is already taken and the caller
// must retry with a fresh one.
func (r *Registry) Insert(e Entry) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.entries[e.ID]; taken {
		return false
	}
	r.entries[e.ID] = e
	return true
}

// Get returns the entry registered under id, or ErrNotFound.
func (r *Registry) Get(id string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

// List returns all entries, newest first. Ties on upload time break by id so
// the order is deterministic.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UploadedAt.Equal(out[j].UploadedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
