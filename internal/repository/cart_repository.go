package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gemechis22/campusswap-ecommerce/internal/model"
)

// CartRepository defines cart persistence operations.
type CartRepository interface {
	FindByUser(ctx context.Context, userID uint) ([]model.CartItem, error)
	FindItem(ctx context.Context, userID uint, productID uuid.UUID) (*model.CartItem, error)
	Create(ctx context.Context, item *model.CartItem) error
	Update(ctx context.Context, item *model.CartItem) error
	DeleteItem(ctx context.Context, userID uint, productID uuid.UUID) error
	ClearForUser(ctx context.Context, userID uint) error
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// FindByUser returns the user's cart lines with their products preloaded.
func (r *cartRepository) FindByUser(ctx context.Context, userID uint) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := r.db.WithContext(ctx).Preload("Product").
		Where("user_id = ?", userID).Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindItem finds one cart line by user and product.
func (r *cartRepository) FindItem(ctx context.Context, userID uint, productID uuid.UUID) (*model.CartItem, error) {
	var item model.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Create creates a new cart line.
func (r *cartRepository) Create(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update updates an existing cart line.
func (r *cartRepository) Update(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// DeleteItem removes one cart line.
func (r *cartRepository) DeleteItem(ctx context.Context, userID uint, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).Delete(&model.CartItem{}).Error
}

// ClearForUser removes every cart line for a user.
func (r *cartRepository) ClearForUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.CartItem{}).Error
}
