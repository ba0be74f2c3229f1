package repository

import (
	"github.com/echofashion/storefront-api/internal/model"
	"github.com/shopspring/decimal"
)

// DefaultProducts is the demo catalog loaded on first start.
func DefaultProducts() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Name:        "Classic White Shirt",
			Price:       decimal.RequireFromString("79.99"),
			Image:       "https://images.unsplash.com/photo-1621072156002-e2fccdc0b176?w=400",
			Category:    model.CategoryMens,
			Description: "A timeless white shirt perfect for any occasion",
			Sizes:       []string{"S", "M", "L", "XL"},
			InStock:     true,
		},
		{
			ID:          "2",
			Name:        "Elegant Black Dress",
			Price:       decimal.RequireFromString("129.99"),
			Image:       "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=400",
			Category:    model.CategoryWomens,
			Description: "Sophisticated black dress for evening events",
			Sizes:       []string{"XS", "S", "M", "L"},
			InStock:     true,
		},
		{
			ID:          "3",
			Name:        "Designer Handbag",
			Price:       decimal.RequireFromString("199.99"),
			Image:       "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=400",
			Category:    model.CategoryAccessories,
			Description: "Luxury handbag crafted from premium leather",
			Sizes:       []string{"One Size"},
			InStock:     true,
		},
		{
			ID:          "4",
			Name:        "Casual Denim Jeans",
			Price:       decimal.RequireFromString("89.99"),
			Image:       "https://images.unsplash.com/photo-1542272604-787c3835535d?w=400",
			Category:    model.CategoryMens,
			Description: "Comfortable denim jeans for everyday wear",
			Sizes:       []string{"30", "32", "34", "36"},
			InStock:     true,
		},
		{
			ID:          "5",
			Name:        "Floral Summer Dress",
			Price:       decimal.RequireFromString("99.99"),
			Image:       "https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?w=400",
			Category:    model.CategoryWomens,
			Description: "Light and airy summer dress with floral pattern",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			InStock:     true,
		},
		{
			ID:          "6",
			Name:        "Leather Watch",
			Price:       decimal.RequireFromString("149.99"),
			Image:       "https://images.unsplash.com/photo-1524592094714-0f0654e20314?w=400",
			Category:    model.CategoryAccessories,
			Description: "Classic leather watch with minimalist design",
			Sizes:       []string{"One Size"},
			InStock:     true,
		},
	}
}
