// Package storage provides the string-keyed snapshot store backing the
// in-memory state. Every value is a full JSON snapshot of one store,
// overwritten after each mutation, wrapped in a versioned envelope so a
// format change is detected instead of silently misread.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Keys of the persisted state layout.
const (
	KeyUser    = "user"
	KeyCart    = "cart"
	KeyOrders  = "orders"
	KeyCatalog = "catalog"
)

// SchemaVersion is bumped on any incompatible change to the persisted
// snapshot format.
const SchemaVersion = 1

var (
	ErrKeyNotFound     = errors.New("key not found")
	ErrVersionMismatch = errors.New("snapshot schema version mismatch")
)

// Store is a string-keyed blob store for state snapshots.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// Encode marshals v inside a versioned envelope.
func Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return json.Marshal(envelope{Version: SchemaVersion, Data: data})
}

// Decode unwraps a versioned envelope into v. Returns ErrVersionMismatch
// when the stored version differs from SchemaVersion; v is untouched in
// that case.
func Decode(raw []byte, v any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != SchemaVersion {
		return fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, env.Version, SchemaVersion)
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return nil
}
