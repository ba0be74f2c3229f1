package repository

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/echofashion/storefront-api/internal/model"
	"github.com/echofashion/storefront-api/internal/storage"
)

type OrderRepository interface {
	// Append stores the order, assigning a unique time-derived ID and the
	// creation timestamp when unset.
	Append(ctx context.Context, order *model.Order) error
	List(ctx context.Context) ([]model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	SetStatus(ctx context.Context, id string, status model.OrderStatus) (found bool, err error)
}

type memOrderRepo struct {
	mu     sync.RWMutex
	orders []model.Order
	store  storage.Store
	log    *slog.Logger
}

func NewOrderRepository(ctx context.Context, store storage.Store, log *slog.Logger) OrderRepository {
	r := &memOrderRepo{store: store, log: log}
	restore(ctx, store, storage.KeyOrders, &r.orders, log)
	return r
}

func (r *memOrderRepo) Append(ctx context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID == "" {
		order.ID = uniqueTimeID(r.contains)
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	r.orders = append(r.orders, order.Clone())
	persist(ctx, r.store, storage.KeyOrders, r.orders, r.log)
	return nil
}

func (r *memOrderRepo) List(_ context.Context) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o.Clone())
	}
	return out, nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id string) (*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			cp := o.Clone()
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memOrderRepo) SetStatus(ctx context.Context, id string, status model.OrderStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			persist(ctx, r.store, storage.KeyOrders, r.orders, r.log)
			return true, nil
		}
	}
	return false, nil
}

// contains is called with the write lock held.
func (r *memOrderRepo) contains(id string) bool {
	for _, o := range r.orders {
		if o.ID == id {
			return true
		}
	}
	return false
}
