// Package cart holds the shopping cart state container. Views never touch
// the line slice directly; every mutation goes through the store and writes
// the full state back to the blob store before the next one runs.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"techtrove/internal/blobstore"
	"techtrove/internal/domain"
)

type Store struct {
	mu     sync.Mutex
	blobs  blobstore.Store
	logger *log.Logger
	lines  []domain.CartLine
}

func New(blobs blobstore.Store, logger *log.Logger) *Store {
	return &Store{blobs: blobs, logger: logger}
}

// Hydrate loads the persisted cart once at application start. An absent or
// unparsable blob yields an empty cart; the corrupt blob is removed.
func (s *Store) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.blobs.Get(ctx, blobstore.KeyCart)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		s.logger.Printf("discarding unparsable cart blob: %v", err)
		return s.blobs.Delete(ctx, blobstore.KeyCart)
	}
	s.lines = lines
	return nil
}

// AddItem merges into an existing line for the product or appends a new one.
// A quantity below 1 counts as 1. No upper bound is enforced against the
// product's inventory.
func (s *Store) AddItem(ctx context.Context, p domain.Product, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.lines {
		if s.lines[i].ProductID == p.ID {
			s.lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, domain.CartLine{
			ProductID:      p.ID,
			Name:           p.Name,
			UnitPriceCents: p.PriceCents,
			Quantity:       quantity,
			Image:          p.Image,
		})
	}
	return s.persistLocked(ctx)
}

// RemoveItem deletes the line for the product id; absent ids are a no-op.
// When the last line goes, the persisted blob is deleted rather than
// rewritten as an empty list.
func (s *Store) RemoveItem(ctx context.Context, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	removed := false
	for _, line := range s.lines {
		if line.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, line)
	}
	s.lines = kept
	if !removed {
		return nil
	}
	if len(s.lines) == 0 {
		return s.blobs.Delete(ctx, blobstore.KeyCart)
	}
	return s.persistLocked(ctx)
}

// UpdateQuantity stores the given quantity literally. Zero and negative
// values are kept as-is; the line is not removed or clamped. Unknown ids
// are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity = quantity
			return s.persistLocked(ctx)
		}
	}
	return nil
}

// Clear empties the cart and removes the persisted blob.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	return s.blobs.Delete(ctx, blobstore.KeyCart)
}

// Lines returns a copy of the cart in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// SubtotalCents sums the line totals.
func (s *Store) SubtotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, line := range s.lines {
		total += line.TotalCents()
	}
	return total
}

func (s *Store) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(s.lines)
	if err != nil {
		return err
	}
	return s.blobs.Set(ctx, blobstore.KeyCart, raw)
}
