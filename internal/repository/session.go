package repository

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/echofashion/storefront-api/internal/model"
	"github.com/echofashion/storefront-api/internal/storage"
)

// SessionRepository holds the single active identity. Login replaces it,
// logout clears it; the persisted "user" key is deleted on clear rather
// than overwritten with null.
type SessionRepository interface {
	Current(ctx context.Context) (*model.User, error)
	Set(ctx context.Context, user model.User) error
	Clear(ctx context.Context) error
}

type memSessionRepo struct {
	mu    sync.RWMutex
	user  *model.User
	store storage.Store
	log   *slog.Logger
}

func NewSessionRepository(ctx context.Context, store storage.Store, log *slog.Logger) SessionRepository {
	r := &memSessionRepo{store: store, log: log}
	raw, err := store.Get(ctx, storage.KeyUser)
	switch {
	case errors.Is(err, storage.ErrKeyNotFound):
	case err != nil:
		log.Warn("read snapshot, starting empty", "key", storage.KeyUser, "error", err)
	default:
		var u model.User
		if err := storage.Decode(raw, &u); err != nil {
			log.Warn("decode snapshot, starting empty", "key", storage.KeyUser, "error", err)
		} else {
			r.user = &u
		}
	}
	return r
}

func (r *memSessionRepo) Current(_ context.Context) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.user == nil {
		return nil, nil
	}
	cp := *r.user
	return &cp, nil
}

func (r *memSessionRepo) Set(ctx context.Context, user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.user = &user
	persist(ctx, r.store, storage.KeyUser, r.user, r.log)
	return nil
}

func (r *memSessionRepo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.user = nil
	if err := r.store.Delete(ctx, storage.KeyUser); err != nil {
		r.log.Warn("delete snapshot", "key", storage.KeyUser, "error", err)
	}
	return nil
}
