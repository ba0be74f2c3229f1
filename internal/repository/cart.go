package repository

import (
	"context"
	"log/slog"
	"sync"

	"github.com/echofashion/storefront-api/internal/model"
	"github.com/echofashion/storefront-api/internal/storage"
)

type CartRepository interface {
	Lines(ctx context.Context) ([]model.CartLine, error)
	AddLine(ctx context.Context, product model.Product, size string) error
	RemoveLine(ctx context.Context, productID, size string) error
	// SetQuantity sets the line's quantity exactly. A quantity ≤ 0 removes
	// the line instead (absent line: no-op, reported as found). A positive
	// quantity on an absent line reports found=false.
	SetQuantity(ctx context.Context, productID, size string, quantity int) (found bool, err error)
	Clear(ctx context.Context) error
}

type memCartRepo struct {
	mu    sync.RWMutex
	lines []model.CartLine
	store storage.Store
	log   *slog.Logger
}

func NewCartRepository(ctx context.Context, store storage.Store, log *slog.Logger) CartRepository {
	r := &memCartRepo{store: store, log: log}
	restore(ctx, store, storage.KeyCart, &r.lines, log)
	return r
}

func (r *memCartRepo) Lines(_ context.Context) ([]model.CartLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return model.CloneLines(r.lines), nil
}

func (r *memCartRepo) AddLine(ctx context.Context, product model.Product, size string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if idx := r.find(product.ID, size); idx >= 0 {
		r.lines[idx].Quantity++
	} else {
		r.lines = append(r.lines, model.CartLine{Product: product.Clone(), Size: size, Quantity: 1})
	}
	persist(ctx, r.store, storage.KeyCart, r.lines, r.log)
	return nil
}

func (r *memCartRepo) RemoveLine(ctx context.Context, productID, size string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.find(productID, size)
	if idx < 0 {
		return nil
	}
	r.lines = append(r.lines[:idx], r.lines[idx+1:]...)
	persist(ctx, r.store, storage.KeyCart, r.lines, r.log)
	return nil
}

func (r *memCartRepo) SetQuantity(ctx context.Context, productID, size string, quantity int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.find(productID, size)
	if quantity <= 0 {
		if idx >= 0 {
			r.lines = append(r.lines[:idx], r.lines[idx+1:]...)
			persist(ctx, r.store, storage.KeyCart, r.lines, r.log)
		}
		return true, nil
	}
	if idx < 0 {
		return false, nil
	}
	r.lines[idx].Quantity = quantity
	persist(ctx, r.store, storage.KeyCart, r.lines, r.log)
	return true, nil
}

func (r *memCartRepo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
	persist(ctx, r.store, storage.KeyCart, r.lines, r.log)
	return nil
}

// find is called with the lock held.
func (r *memCartRepo) find(productID, size string) int {
	for i, l := range r.lines {
		if l.Product.ID == productID && l.Size == size {
			return i
		}
	}
	return -1
}
