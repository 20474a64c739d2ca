package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/gemechis22/campusswap-ecommerce/internal/model"
)

// DailySales is one row of the orders-per-day dashboard series.
type DailySales struct {
	Day     string          `json:"day"`
	Orders  int64           `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// ProductSales aggregates paid order lines per product.
type ProductSales struct {
	ProductID uuid.UUID       `json:"product_id"`
	Title     string          `json:"title"`
	UnitsSold int64           `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// CategorySales aggregates paid order lines per category.
type CategorySales struct {
	CategoryID uint            `json:"category_id"`
	Name       string          `json:"name"`
	UnitsSold  int64           `json:"units_sold"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// OrderRepository defines order persistence and dashboard aggregation.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	Update(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	FindByUser(ctx context.Context, userID uint) ([]model.Order, error)
	Count(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	SalesByDay(ctx context.Context, since time.Time) ([]DailySales, error)
	TopProducts(ctx context.Context, limit int) ([]ProductSales, error)
	SalesByCategory(ctx context.Context) ([]CategorySales, error)
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create creates an order together with its items.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// Update updates an existing order.
func (r *orderRepository) Update(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// FindByID finds an order with its items.
func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByUser returns a user's orders, newest first, with items.
func (r *orderRepository) FindByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Count returns the number of paid orders.
func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("status = ?", model.OrderStatusPaid).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// TotalRevenue sums the totals of all paid orders.
func (r *orderRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var row struct {
		Revenue decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("COALESCE(SUM(total), 0) AS revenue").
		Where("status = ?", model.OrderStatusPaid).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Revenue, nil
}

// SalesByDay returns orders and revenue per calendar day since the cutoff.
func (r *orderRepository) SalesByDay(ctx context.Context, since time.Time) ([]DailySales, error) {
	var rows []DailySales
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("DATE(created_at) AS day, COUNT(*) AS orders, COALESCE(SUM(total), 0) AS revenue").
		Where("status = ? AND created_at >= ?", model.OrderStatusPaid, since).
		Group("DATE(created_at)").
		Order("day asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TopProducts returns the best-selling products across paid orders.
func (r *orderRepository) TopProducts(ctx context.Context, limit int) ([]ProductSales, error) {
	var rows []ProductSales
	err := r.db.WithContext(ctx).Model(&model.OrderItem{}).
		Select("order_items.product_id AS product_id, order_items.title AS title, "+
			"SUM(order_items.quantity) AS units_sold, "+
			"COALESCE(SUM(order_items.unit_price * order_items.quantity), 0) AS revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status = ?", model.OrderStatusPaid).
		Group("order_items.product_id, order_items.title").
		Order("units_sold desc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SalesByCategory returns paid sales grouped by product category.
func (r *orderRepository) SalesByCategory(ctx context.Context) ([]CategorySales, error) {
	var rows []CategorySales
	err := r.db.WithContext(ctx).Model(&model.OrderItem{}).
		Select("categories.id AS category_id, categories.name AS name, "+
			"SUM(order_items.quantity) AS units_sold, "+
			"COALESCE(SUM(order_items.unit_price * order_items.quantity), 0) AS revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("orders.status = ?", model.OrderStatusPaid).
		Group("categories.id, categories.name").
		Order("revenue desc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
