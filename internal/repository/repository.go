// Package repository holds the in-memory state containers behind the
// storefront: catalog, cart, orders, and session. Memory is authoritative;
// every mutation mirrors a full snapshot of the owning store to storage,
// and construction restores from the last snapshot.
package repository

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/echofashion/storefront-api/internal/storage"
)

// restore loads the snapshot under key into v. A missing key, a read
// failure, or a stale schema version leaves v untouched so the store
// starts empty.
func restore(ctx context.Context, store storage.Store, key string, v any, log *slog.Logger) {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return
	}
	if err != nil {
		log.Warn("read snapshot, starting empty", "key", key, "error", err)
		return
	}
	if err := storage.Decode(raw, v); err != nil {
		log.Warn("decode snapshot, starting empty", "key", key, "error", err)
	}
}

// persist overwrites the snapshot under key. Storage failures are logged
// and otherwise ignored; the in-memory state keeps serving.
func persist(ctx context.Context, store storage.Store, key string, v any, log *slog.Logger) {
	raw, err := storage.Encode(v)
	if err != nil {
		log.Warn("encode snapshot", "key", key, "error", err)
		return
	}
	if err := store.Set(ctx, key, raw); err != nil {
		log.Warn("write snapshot", "key", key, "error", err)
	}
}

// uniqueTimeID returns a millisecond-timestamp identifier, bumped until
// taken reports false. Uniqueness is the only hard requirement.
func uniqueTimeID(taken func(string) bool) string {
	n := time.Now().UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		if !taken(id) {
			return id
		}
		n++
	}
}
