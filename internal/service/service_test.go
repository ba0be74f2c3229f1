package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/echofashion/storefront-api/internal/config"
	"github.com/echofashion/storefront-api/internal/dto"
	"github.com/echofashion/storefront-api/internal/model"
	"github.com/echofashion/storefront-api/internal/repository"
	"github.com/echofashion/storefront-api/internal/storage"
)

// fixture wires the real in-memory repositories over an ephemeral store,
// so service tests exercise the same state semantics the binary runs.
type fixture struct {
	catalogRepo repository.CatalogRepository
	cartRepo    repository.CartRepository
	orderRepo   repository.OrderRepository
	sessionRepo repository.SessionRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := storage.NewMemoryStore()
	return &fixture{
		catalogRepo: repository.NewCatalogRepository(ctx, store, log),
		cartRepo:    repository.NewCartRepository(ctx, store, log),
		orderRepo:   repository.NewOrderRepository(ctx, store, log),
		sessionRepo: repository.NewSessionRepository(ctx, store, log),
	}
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:     "test-secret",
		JWTExpiration: time.Hour,
		AdminEmail:    "admin@store.com",
		AdminPassword: "admin",
	}
}

func (f *fixture) addProduct(t *testing.T, name, price string, sizes ...string) dto.ProductResponse {
	t.Helper()
	if len(sizes) == 0 {
		sizes = []string{"M"}
	}
	svc := NewCatalogService(f.catalogRepo)
	resp, err := svc.Add(context.Background(), dto.CreateProductRequest{
		Name:        name,
		Price:       decimal.RequireFromString(price),
		Image:       "https://example.com/p.jpg",
		Category:    model.CategoryMens,
		Description: name,
		Sizes:       sizes,
		InStock:     true,
	})
	require.NoError(t, err)
	return *resp
}

func testAddress() model.ShippingAddress {
	return model.ShippingAddress{
		Name: "Jo Doe", Address: "1 Main St", City: "Springfield", Phone: "555-0100",
	}
}
