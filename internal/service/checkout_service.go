package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/gemechis22/campusswap-ecommerce/internal/cache"
	"github.com/gemechis22/campusswap-ecommerce/internal/card"
	"github.com/gemechis22/campusswap-ecommerce/internal/errors"
	"github.com/gemechis22/campusswap-ecommerce/internal/model"
	"github.com/gemechis22/campusswap-ecommerce/internal/repository"
)

// CardDeclinedError carries the per-rule reasons card validation produced.
// It unwraps to ErrInvalidCard so the generic HTTP mapping still applies.
type CardDeclinedError struct {
	Reasons []string
}

func (e *CardDeclinedError) Error() string {
	return errors.ErrInvalidCard.Error()
}

func (e *CardDeclinedError) Unwrap() error {
	return errors.ErrInvalidCard
}

// CheckoutService turns a cart into a paid order. Card details are
// validated in-process and only the masked number and network survive.
type CheckoutService interface {
	Checkout(ctx context.Context, userID uint, cardInput card.Input) (*model.Order, error)
	CheckCard(input card.Input) card.Result
	ListOrders(ctx context.Context, userID uint) ([]model.Order, error)
	GetOrder(ctx context.Context, userID uint, id uuid.UUID) (*model.Order, error)
}

type checkoutService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	cache       *cache.Client
	validator   *card.Validator
	// Mutex map for per-user locking against double-submit
	userMutexes sync.Map
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	cache *cache.Client,
) CheckoutService {
	return &checkoutService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		cache:       cache,
		validator:   card.NewValidator(),
	}
}

// getMutex returns a mutex for a specific user ID.
func (s *checkoutService) getMutex(userID uint) *sync.Mutex {
	value, _ := s.userMutexes.LoadOrStore(userID, &sync.Mutex{})
	return value.(*sync.Mutex)
}

// CheckCard validates card input without touching the cart or any storage.
// The UI calls it while the user types to show the network hint and the
// formatted preview.
func (s *checkoutService) CheckCard(input card.Input) card.Result {
	return s.validator.Validate(input)
}

// Checkout validates the card, snapshots the cart into an order, decrements
// stock and clears the cart. The raw card number and CVV are dropped here;
// the order keeps only the masked number and the network.
func (s *checkoutService) Checkout(ctx context.Context, userID uint, cardInput card.Input) (*model.Order, error) {
	result := s.validator.Validate(cardInput)
	if !result.IsValid {
		return nil, &CardDeclinedError{Reasons: result.Errors}
	}

	mutex := s.getMutex(userID)
	mutex.Lock()
	defer mutex.Unlock()

	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, errors.ErrCartEmpty
	}

	total := decimal.Zero
	orderItems := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		if !item.Product.Active || item.Quantity > item.Product.Stock {
			return nil, errors.ErrInsufficientStock
		}
		line := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
		orderItems = append(orderItems, model.OrderItem{
			ProductID: item.ProductID,
			Title:     item.Product.Title,
			UnitPrice: item.Product.Price,
			Quantity:  item.Quantity,
		})
	}

	order := &model.Order{
		UserID:      userID,
		Status:      model.OrderStatusPending,
		Total:       total,
		CardNetwork: string(result.Network),
		CardMasked:  result.MaskedNumber,
		Items:       orderItems,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	for _, item := range items {
		if err := s.productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			order.Status = model.OrderStatusFailed
			_ = s.orderRepo.Update(ctx, order)
			if err == gorm.ErrRecordNotFound {
				return nil, errors.ErrInsufficientStock
			}
			return nil, fmt.Errorf("decrement stock: %w", err)
		}
		_ = s.cache.Delete(ctx, ProductCachePrefix+item.ProductID.String())
	}

	order.Status = model.OrderStatusPaid
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	if err := s.cartRepo.ClearForUser(ctx, userID); err != nil {
		// Order is already paid; a stale cart is recoverable.
		return order, nil
	}

	return order, nil
}

// ListOrders returns the user's own orders.
func (s *checkoutService) ListOrders(ctx context.Context, userID uint) ([]model.Order, error) {
	return s.orderRepo.FindByUser(ctx, userID)
}

// GetOrder returns one order, hiding other users' orders as not found.
func (s *checkoutService) GetOrder(ctx context.Context, userID uint, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, errors.ErrOrderNotFound
	}
	return order, nil
}
