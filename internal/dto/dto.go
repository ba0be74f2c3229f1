package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/echofashion/storefront-api/internal/model"
)

// --- Auth ---

// LoginRequest deliberately skips format validation: any non-empty pair is
// accepted by the stand-in credential check.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

// --- Catalog ---

// CreateProductRequest carries no required binding on Price: a zero price
// is a valid price, only negatives are rejected at the service boundary.
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image" binding:"required"`
	Category    model.Category  `json:"category" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Sizes       []string        `json:"sizes" binding:"required,min=1"`
	InStock     bool            `json:"in_stock"`
}

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    model.Category  `json:"category"`
	Description string          `json:"description"`
	Sizes       []string        `json:"sizes"`
	InStock     bool            `json:"in_stock"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

// --- Cart ---

type AddCartLineRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
}

// UpdateCartLineRequest carries the exact quantity to set; zero or negative
// removes the line, so Quantity has no min binding.
type UpdateCartLineRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type CartLineResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Total decimal.Decimal    `json:"total"`
}

// --- Orders ---

type PlaceOrderRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type OrderResponse struct {
	ID              string                `json:"id"`
	UserID          string                `json:"user_id"`
	Items           []CartLineResponse    `json:"items"`
	Total           decimal.Decimal       `json:"total"`
	Status          model.OrderStatus     `json:"status"`
	ShippingAddress model.ShippingAddress `json:"shipping_address"`
	CreatedAt       time.Time             `json:"created_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}
