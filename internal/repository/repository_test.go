package repository

import (
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/echofashion/storefront-api/internal/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProduct(id, name, price string, sizes ...string) model.Product {
	if len(sizes) == 0 {
		sizes = []string{"M"}
	}
	return model.Product{
		ID:          id,
		Name:        name,
		Price:       decimal.RequireFromString(price),
		Image:       "https://example.com/" + id + ".jpg",
		Category:    model.CategoryMens,
		Description: name,
		Sizes:       sizes,
		InStock:     true,
	}
}
