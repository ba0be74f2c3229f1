package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/echofashion/storefront-api/internal/model"
	"github.com/echofashion/storefront-api/internal/repository"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderAccessDenied = errors.New("access denied")
	ErrInvalidAddress    = errors.New("invalid shipping address")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type OrderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
}

func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo, cartRepo: cartRepo}
}

// Place captures a snapshot of the cart as a pending order and clears the
// cart. An empty cart is rejected. The returned order's items and total are
// fixed at placement time; later cart or catalog changes do not touch it.
func (s *OrderService) Place(ctx context.Context, userID string, addr model.ShippingAddress) (*model.Order, error) {
	if err := validateAddress(addr); err != nil {
		return nil, err
	}

	lines, err := s.cartRepo.Lines(ctx)
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if userID == "" {
		userID = model.GuestUserID
	}

	// Lines already returns deep copies; the snapshot shares nothing with
	// the live cart.
	order := &model.Order{
		UserID:          userID,
		Items:           lines,
		Total:           model.LinesTotal(lines),
		Status:          model.StatusPending,
		ShippingAddress: addr,
	}
	if err := s.orderRepo.Append(ctx, order); err != nil {
		return nil, fmt.Errorf("append order: %w", err)
	}
	if err := s.cartRepo.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}
	return order, nil
}

// List returns all orders in insertion order.
func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.List(ctx)
}

// Get returns the order when the requester owns it or is an admin.
func (s *OrderService) Get(ctx context.Context, orderID, userID string, admin bool) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !admin && order.UserID != userID {
		return nil, ErrOrderAccessDenied
	}
	return order, nil
}

// UpdateStatus moves the order one step forward in the fulfillment
// sequence. Unknown orders and out-of-order transitions fail loudly.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	found, err := s.orderRepo.SetStatus(ctx, orderID, status)
	if err != nil {
		return nil, fmt.Errorf("set status: %w", err)
	}
	if !found {
		return nil, ErrOrderNotFound
	}
	order.Status = status
	return order, nil
}

func validateAddress(addr model.ShippingAddress) error {
	fields := map[string]string{
		"name":    addr.Name,
		"address": addr.Address,
		"city":    addr.City,
		"phone":   addr.Phone,
	}
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidAddress, name)
		}
	}
	return nil
}
