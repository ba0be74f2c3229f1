package repository

import (
	"context"
	"log/slog"
	"sync"

	"github.com/echofashion/storefront-api/internal/model"
	"github.com/echofashion/storefront-api/internal/storage"
)

type CatalogRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	ListByCategory(ctx context.Context, category model.Category) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Add(ctx context.Context, product *model.Product) error
	Seed(ctx context.Context, products []model.Product) error
}

type memCatalogRepo struct {
	mu       sync.RWMutex
	products []model.Product
	store    storage.Store
	log      *slog.Logger
}

func NewCatalogRepository(ctx context.Context, store storage.Store, log *slog.Logger) CatalogRepository {
	r := &memCatalogRepo{store: store, log: log}
	restore(ctx, store, storage.KeyCatalog, &r.products, log)
	return r
}

func (r *memCatalogRepo) List(_ context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (r *memCatalogRepo) ListByCategory(_ context.Context, category model.Category) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

func (r *memCatalogRepo) GetByID(_ context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			cp := p.Clone()
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCatalogRepo) Add(ctx context.Context, product *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == "" {
		product.ID = uniqueTimeID(r.contains)
	}
	r.products = append(r.products, product.Clone())
	persist(ctx, r.store, storage.KeyCatalog, r.products, r.log)
	return nil
}

// Seed populates the catalog only when it is empty, so a restored snapshot
// is never clobbered by the defaults.
func (r *memCatalogRepo) Seed(ctx context.Context, products []model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.products) > 0 {
		return nil
	}
	for _, p := range products {
		r.products = append(r.products, p.Clone())
	}
	persist(ctx, r.store, storage.KeyCatalog, r.products, r.log)
	return nil
}

// contains is called with the write lock held.
func (r *memCatalogRepo) contains(id string) bool {
	for _, p := range r.products {
		if p.ID == id {
			return true
		}
	}
	return false
}
