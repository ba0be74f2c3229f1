package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/echofashion/storefront-api/internal/dto"
	"github.com/echofashion/storefront-api/internal/model"
	"github.com/echofashion/storefront-api/internal/repository"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidCategory = errors.New("invalid category")
)

type CatalogService struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// List returns products in insertion order, optionally filtered by category.
func (s *CatalogService) List(ctx context.Context, category string) (*dto.ProductListResponse, error) {
	var (
		products []model.Product
		err      error
	)
	if category == "" {
		products, err = s.catalogRepo.List(ctx)
	} else {
		cat := model.Category(category)
		if !cat.Valid() {
			return nil, ErrInvalidCategory
		}
		products, err = s.catalogRepo.ListByCategory(ctx, cat)
	}
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{Products: items, Total: len(items)}, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	resp := toProductResponse(*product)
	return &resp, nil
}

// Add validates field presence only; duplicate names are allowed.
func (s *CatalogService) Add(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if req.Name == "" || req.Description == "" || req.Image == "" {
		return nil, fmt.Errorf("%w: name, description and image are required", ErrInvalidProduct)
	}
	if !req.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidProduct, req.Category)
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}
	if len(req.Sizes) == 0 {
		return nil, fmt.Errorf("%w: at least one size is required", ErrInvalidProduct)
	}

	product := &model.Product{
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Description: req.Description,
		Sizes:       req.Sizes,
		InStock:     req.InStock,
	}
	if err := s.catalogRepo.Add(ctx, product); err != nil {
		return nil, fmt.Errorf("add product: %w", err)
	}
	resp := toProductResponse(*product)
	return &resp, nil
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Image:       p.Image,
		Category:    p.Category,
		Description: p.Description,
		Sizes:       p.Sizes,
		InStock:     p.InStock,
	}
}
