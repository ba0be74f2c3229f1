package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/echofashion/storefront-api/internal/model"
	"github.com/echofashion/storefront-api/internal/repository"
)

var (
	ErrInvalidSize      = errors.New("size not offered for this product")
	ErrCartLineNotFound = errors.New("cart line not found")
)

type CartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
}

func NewCartService(cartRepo repository.CartRepository, catalogRepo repository.CatalogRepository) *CartService {
	return &CartService{cartRepo: cartRepo, catalogRepo: catalogRepo}
}

// AddLine puts one unit of (product, size) in the cart, incrementing the
// existing line when the pair is already present. The size must be one the
// product offers.
func (s *CartService) AddLine(ctx context.Context, productID, size string) error {
	product, err := s.catalogRepo.GetByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return ErrProductNotFound
	}
	if !product.HasSize(size) {
		return ErrInvalidSize
	}
	return s.cartRepo.AddLine(ctx, *product, size)
}

// RemoveLine is a no-op when the line is absent.
func (s *CartService) RemoveLine(ctx context.Context, productID, size string) error {
	return s.cartRepo.RemoveLine(ctx, productID, size)
}

// UpdateQuantity sets the line's quantity exactly; zero or negative removes
// the line. Setting a positive quantity on an absent line is an error.
func (s *CartService) UpdateQuantity(ctx context.Context, productID, size string, quantity int) error {
	found, err := s.cartRepo.SetQuantity(ctx, productID, size, quantity)
	if err != nil {
		return fmt.Errorf("set quantity: %w", err)
	}
	if !found {
		return ErrCartLineNotFound
	}
	return nil
}

func (s *CartService) Clear(ctx context.Context) error {
	return s.cartRepo.Clear(ctx)
}

func (s *CartService) Lines(ctx context.Context) ([]model.CartLine, error) {
	return s.cartRepo.Lines(ctx)
}

// Total is the sum of price×quantity over all lines.
func (s *CartService) Total(ctx context.Context) (decimal.Decimal, error) {
	lines, err := s.cartRepo.Lines(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("read cart: %w", err)
	}
	return model.LinesTotal(lines), nil
}
