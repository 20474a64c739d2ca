package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/gemechis22/campusswap-ecommerce/internal/errors"
	"github.com/gemechis22/campusswap-ecommerce/internal/model"
	"github.com/gemechis22/campusswap-ecommerce/internal/repository"
)

// Cart is a user's cart with per-line and overall totals computed.
type Cart struct {
	Items []model.CartItem `json:"items"`
	Total decimal.Decimal  `json:"total"`
}

// CartService handles cart operations.
type CartService interface {
	Get(ctx context.Context, userID uint) (*Cart, error)
	AddItem(ctx context.Context, userID uint, productID uuid.UUID, quantity int) (*Cart, error)
	UpdateItem(ctx context.Context, userID uint, productID uuid.UUID, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, userID uint, productID uuid.UUID) (*Cart, error)
	Clear(ctx context.Context, userID uint) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Get returns the user's cart with its total.
func (s *cartService) Get(ctx context.Context, userID uint) (*Cart, error) {
	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return buildCart(items), nil
}

// AddItem puts a product in the cart, or bumps the quantity of an existing
// line. The requested total per line may not exceed available stock.
func (s *cartService) AddItem(ctx context.Context, userID uint, productID uuid.UUID, quantity int) (*Cart, error) {
	if quantity <= 0 {
		return nil, errors.ErrInvalidQuantity
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotFound
		}
		return nil, err
	}
	if !product.Active {
		return nil, errors.ErrProductNotFound
	}

	existing, err := s.cartRepo.FindItem(ctx, userID, productID)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("find cart item: %w", err)
	}

	wanted := quantity
	if existing != nil {
		wanted += existing.Quantity
	}
	if wanted > product.Stock {
		return nil, errors.ErrInsufficientStock
	}

	if existing != nil {
		existing.Quantity = wanted
		if err := s.cartRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("update cart item: %w", err)
		}
	} else {
		item := &model.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := s.cartRepo.Create(ctx, item); err != nil {
			return nil, fmt.Errorf("create cart item: %w", err)
		}
	}

	return s.Get(ctx, userID)
}

// UpdateItem sets a cart line to an exact quantity.
func (s *cartService) UpdateItem(ctx context.Context, userID uint, productID uuid.UUID, quantity int) (*Cart, error) {
	if quantity <= 0 {
		return nil, errors.ErrInvalidQuantity
	}

	item, err := s.cartRepo.FindItem(ctx, userID, productID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find cart item: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotFound
		}
		return nil, err
	}
	if quantity > product.Stock {
		return nil, errors.ErrInsufficientStock
	}

	item.Quantity = quantity
	if err := s.cartRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update cart item: %w", err)
	}

	return s.Get(ctx, userID)
}

// RemoveItem deletes a cart line.
func (s *cartService) RemoveItem(ctx context.Context, userID uint, productID uuid.UUID) (*Cart, error) {
	if err := s.cartRepo.DeleteItem(ctx, userID, productID); err != nil {
		return nil, fmt.Errorf("delete cart item: %w", err)
	}
	return s.Get(ctx, userID)
}

// Clear empties the user's cart.
func (s *cartService) Clear(ctx context.Context, userID uint) error {
	return s.cartRepo.ClearForUser(ctx, userID)
}

// buildCart computes the cart total from its preloaded product prices.
func buildCart(items []model.CartItem) *Cart {
	total := decimal.Zero
	for _, item := range items {
		line := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return &Cart{Items: items, Total: total}
}
