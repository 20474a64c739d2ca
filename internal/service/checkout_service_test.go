package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/gemechis22/campusswap-ecommerce/internal/card"
	apperrors "github.com/gemechis22/campusswap-ecommerce/internal/errors"
	"github.com/gemechis22/campusswap-ecommerce/internal/model"
)

// validCardInput is an industry-standard public test number, not a secret.
var validCardInput = card.Input{
	CardNumber: "4532015112830366",
	CVV:        "123",
	ExpMonth:   "12",
	ExpYear:    "2044",
}

func cartFixture(productID uuid.UUID, stock, quantity int, price string) []model.CartItem {
	return []model.CartItem{
		{
			UserID:    1,
			ProductID: productID,
			Quantity:  quantity,
			Product: model.Product{
				ID:     productID,
				Title:  "Calculus Textbook",
				Price:  decimal.RequireFromString(price),
				Stock:  stock,
				Active: true,
			},
		},
	}
}

func TestCheckoutService_Checkout(t *testing.T) {
	productID := uuid.New()

	tests := []struct {
		name          string
		cardInput     card.Input
		setupMock     func(*MockCartRepository, *MockProductRepository, *MockOrderRepository)
		expectedError error
		wantStatus    model.OrderStatus
	}{
		{
			name:      "successful checkout",
			cardInput: validCardInput,
			setupMock: func(mCart *MockCartRepository, mProduct *MockProductRepository, mOrder *MockOrderRepository) {
				mCart.On("FindByUser", mock.Anything, uint(1)).Return(cartFixture(productID, 3, 2, "25.50"), nil)
				mOrder.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
				mProduct.On("DecrementStock", mock.Anything, productID, 2).Return(nil)
				mOrder.On("Update", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
				mCart.On("ClearForUser", mock.Anything, uint(1)).Return(nil)
			},
			wantStatus: model.OrderStatusPaid,
		},
		{
			name: "invalid card touches nothing",
			cardInput: card.Input{
				CardNumber: "1234567890123456",
				CVV:        "123",
				ExpMonth:   "12",
				ExpYear:    "2044",
			},
			setupMock:     func(*MockCartRepository, *MockProductRepository, *MockOrderRepository) {},
			expectedError: apperrors.ErrInvalidCard,
		},
		{
			name:      "empty cart",
			cardInput: validCardInput,
			setupMock: func(mCart *MockCartRepository, mProduct *MockProductRepository, mOrder *MockOrderRepository) {
				mCart.On("FindByUser", mock.Anything, uint(1)).Return([]model.CartItem{}, nil)
			},
			expectedError: apperrors.ErrCartEmpty,
		},
		{
			name:      "cart exceeds stock",
			cardInput: validCardInput,
			setupMock: func(mCart *MockCartRepository, mProduct *MockProductRepository, mOrder *MockOrderRepository) {
				mCart.On("FindByUser", mock.Anything, uint(1)).Return(cartFixture(productID, 1, 2, "25.50"), nil)
			},
			expectedError: apperrors.ErrInsufficientStock,
		},
		{
			name:      "stock raced away mid-checkout",
			cardInput: validCardInput,
			setupMock: func(mCart *MockCartRepository, mProduct *MockProductRepository, mOrder *MockOrderRepository) {
				mCart.On("FindByUser", mock.Anything, uint(1)).Return(cartFixture(productID, 3, 2, "25.50"), nil)
				mOrder.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
				mProduct.On("DecrementStock", mock.Anything, productID, 2).Return(gorm.ErrRecordNotFound)
				mOrder.On("Update", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
			},
			expectedError: apperrors.ErrInsufficientStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCart := new(MockCartRepository)
			mockProduct := new(MockProductRepository)
			mockOrder := new(MockOrderRepository)
			tt.setupMock(mockCart, mockProduct, mockOrder)

			service := NewCheckoutService(mockCart, mockProduct, mockOrder, nil)
			order, err := service.Checkout(context.Background(), 1, tt.cardInput)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "got %v, want %v", err, tt.expectedError)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, order)
				assert.Equal(t, tt.wantStatus, order.Status)
				assert.Equal(t, "51.00", order.Total.StringFixed(2))
				assert.Equal(t, "Visa", order.CardNetwork)
				assert.Equal(t, "•••• •••• •••• 0366", order.CardMasked)
				assert.Len(t, order.Items, 1)
				assert.Equal(t, "Calculus Textbook", order.Items[0].Title)
			}

			mockCart.AssertExpectations(t)
			mockProduct.AssertExpectations(t)
			mockOrder.AssertExpectations(t)
		})
	}
}

func TestCheckoutService_Checkout_CardDeclinedReasons(t *testing.T) {
	service := NewCheckoutService(new(MockCartRepository), new(MockProductRepository), new(MockOrderRepository), nil)

	_, err := service.Checkout(context.Background(), 1, card.Input{
		CardNumber: "374245455400126",
		CVV:        "123", // Amex needs 4 digits
		ExpMonth:   "01",
		ExpYear:    "2020",
	})

	var declined *CardDeclinedError
	assert.True(t, errors.As(err, &declined))
	assert.Equal(t, []string{
		"security code must be 4 digits for American Express cards",
		"card is expired",
	}, declined.Reasons)
}

func TestCheckoutService_CheckCard(t *testing.T) {
	service := NewCheckoutService(new(MockCartRepository), new(MockProductRepository), new(MockOrderRepository), nil)

	res := service.CheckCard(card.Input{CardNumber: "4532 0151 1283 0366", CVV: "123", ExpMonth: "12", ExpYear: "2044"})
	assert.True(t, res.IsValid)
	assert.Equal(t, card.NetworkVisa, res.Network)
	assert.Equal(t, "4532 0151 1283 0366", res.FormattedNumber)
}

func TestCheckoutService_GetOrder_HidesForeignOrders(t *testing.T) {
	orderID := uuid.New()
	mockOrder := new(MockOrderRepository)
	mockOrder.On("FindByID", mock.Anything, orderID).Return(&model.Order{ID: orderID, UserID: 2}, nil)

	service := NewCheckoutService(new(MockCartRepository), new(MockProductRepository), mockOrder, nil)

	order, err := service.GetOrder(context.Background(), 1, orderID)
	assert.Equal(t, apperrors.ErrOrderNotFound, err)
	assert.Nil(t, order)
	mockOrder.AssertExpectations(t)
}
