package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/echofashion/storefront-api/internal/dto"
	"github.com/echofashion/storefront-api/internal/model"
	"github.com/echofashion/storefront-api/internal/service"
)

type CartHandler struct {
	cartService *service.CartService
}

func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	lines, err := h.cartService.Lines(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, toCartResponse(lines))
}

func (h *CartHandler) AddLine(c *gin.Context) {
	var req dto.AddCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.cartService.AddLine(c.Request.Context(), req.ProductID, req.Size); err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		case errors.Is(err, service.ErrInvalidSize):
			c.JSON(http.StatusBadRequest, gin.H{"error": "size not offered for this product"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "line added"})
}

func (h *CartHandler) UpdateLine(c *gin.Context) {
	var req dto.UpdateCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.cartService.UpdateQuantity(c.Request.Context(), req.ProductID, req.Size, req.Quantity); err != nil {
		if errors.Is(err, service.ErrCartLineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart line not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "line updated"})
}

func (h *CartHandler) RemoveLine(c *gin.Context) {
	productID := c.Query("product_id")
	size := c.Query("size")
	if productID == "" || size == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id and size are required"})
		return
	}

	if err := h.cartService.RemoveLine(c.Request.Context(), productID, size); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cartService.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func toCartResponse(lines []model.CartLine) dto.CartResponse {
	items := make([]dto.CartLineResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, toCartLineResponse(l))
	}
	return dto.CartResponse{Lines: items, Total: model.LinesTotal(lines)}
}

func toCartLineResponse(l model.CartLine) dto.CartLineResponse {
	return dto.CartLineResponse{
		ProductID: l.Product.ID,
		Name:      l.Product.Name,
		Price:     l.Product.Price,
		Size:      l.Size,
		Quantity:  l.Quantity,
		Subtotal:  l.Subtotal(),
	}
}
