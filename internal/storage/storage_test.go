package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_RoundTrip(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	raw, err := Encode(payload{Name: "cart", Count: 3})
	require.NoError(t, err)

	var got payload
	require.NoError(t, Decode(raw, &got))
	assert.Equal(t, payload{Name: "cart", Count: 3}, got)
}

func TestEnvelope_VersionMismatch(t *testing.T) {
	raw, err := json.Marshal(envelope{Version: SchemaVersion + 1, Data: json.RawMessage(`{}`)})
	require.NoError(t, err)

	var got map[string]any
	err = Decode(raw, &got)
	assert.ErrorIs(t, err, ErrVersionMismatch)
	assert.Empty(t, got)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "cart", []byte(`[1,2]`)))
	v, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2]`), v)

	require.NoError(t, s.Delete(ctx, "cart"))
	_, err = s.Get(ctx, "cart")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	in := []byte(`"a"`)
	require.NoError(t, s.Set(ctx, "k", in))
	in[1] = 'b'

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`"a"`), v)

	v[1] = 'c'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`"a"`), again)
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "user", []byte(`{"id":"1"}`)))
	require.NoError(t, s.Set(ctx, "orders", []byte(`[]`)))

	// A fresh store over the same file sees the written state.
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	v, err := reopened.Get(ctx, "user")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1"}`, string(v))

	require.NoError(t, reopened.Delete(ctx, "user"))
	again, err := NewFileStore(path)
	require.NoError(t, err)
	_, err = again.Get(ctx, "user")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = again.Get(ctx, "orders")
	assert.NoError(t, err)
}

func TestFileStore_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = s.Get(context.Background(), "cart")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileStore_CorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}
