// Package book is the shared state container behind the address book and
// the payment wallet: an ordered record set where at most one entry may
// carry the default flag. Clearing competing defaults happens inside the
// same guarded update that persists, so no intermediate state with two
// defaults is ever observable or written.
package book

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"techtrove/internal/blobstore"
	"techtrove/internal/domain"
)

// Record is implemented by value types with an id and a default flag.
// WithDefault returns a copy with the flag set.
type Record[T any] interface {
	Key() string
	Default() bool
	WithDefault(flag bool) T
}

type Book[T Record[T]] struct {
	mu         sync.Mutex
	blobs      blobstore.Store
	storageKey string
	logger     *log.Logger
	items      []T
}

func New[T Record[T]](blobs blobstore.Store, storageKey string, logger *log.Logger) *Book[T] {
	return &Book[T]{blobs: blobs, storageKey: storageKey, logger: logger}
}

// Hydrate loads the persisted set once at application start; absent or
// unparsable blobs yield an empty set, and a corrupt blob is removed.
func (b *Book[T]) Hydrate(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	raw, err := b.blobs.Get(ctx, b.storageKey)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		b.logger.Printf("discarding unparsable %s blob: %v", b.storageKey, err)
		return b.blobs.Delete(ctx, b.storageKey)
	}
	b.items = items
	return nil
}

// Items returns a copy of the set in insertion order.
func (b *Book[T]) Items() []T {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]T, len(b.items))
	copy(out, b.items)
	return out
}

// Get returns the record with the given key.
func (b *Book[T]) Get(key string) (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, item := range b.items {
		if item.Key() == key {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Add appends the record. When it carries the default flag, every other
// default is cleared in the same update.
func (b *Book[T]) Add(ctx context.Context, item T) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, existing := range b.items {
		if existing.Key() == item.Key() {
			return domain.ErrAlreadyExists
		}
	}
	if item.Default() {
		for i := range b.items {
			b.items[i] = b.items[i].WithDefault(false)
		}
	}
	b.items = append(b.items, item)
	return b.persistLocked(ctx)
}

// Update replaces the record with the matching key, clearing other defaults
// when the replacement carries the flag.
func (b *Book[T]) Update(ctx context.Context, item T) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	found := false
	for i := range b.items {
		if b.items[i].Key() == item.Key() {
			b.items[i] = item
			found = true
			continue
		}
		if item.Default() {
			b.items[i] = b.items[i].WithDefault(false)
		}
	}
	if !found {
		return domain.ErrNotFound
	}
	return b.persistLocked(ctx)
}

// Remove deletes the record; absent keys are a no-op. The default flag is
// not reassigned when the default record goes.
func (b *Book[T]) Remove(ctx context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	kept := b.items[:0]
	removed := false
	for _, item := range b.items {
		if item.Key() == key {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	b.items = kept
	if !removed {
		return nil
	}
	return b.persistLocked(ctx)
}

// SetDefault maps the entire set, marking only the matching record default.
func (b *Book[T]) SetDefault(ctx context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	found := false
	for i := range b.items {
		isTarget := b.items[i].Key() == key
		b.items[i] = b.items[i].WithDefault(isTarget)
		if isTarget {
			found = true
		}
	}
	if !found {
		return domain.ErrNotFound
	}
	return b.persistLocked(ctx)
}

func (b *Book[T]) persistLocked(ctx context.Context) error {
	items := b.items
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return b.blobs.Set(ctx, b.storageKey, raw)
}
