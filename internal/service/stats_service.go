package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gemechis22/campusswap-ecommerce/internal/repository"
)

const salesWindowDays = 30

// DashboardStats is the read-only aggregate view behind the admin charts.
type DashboardStats struct {
	Users           int64                      `json:"users"`
	ActiveProducts  int64                      `json:"active_products"`
	PaidOrders      int64                      `json:"paid_orders"`
	TotalRevenue    decimal.Decimal            `json:"total_revenue"`
	SalesByDay      []repository.DailySales    `json:"sales_by_day"`
	TopProducts     []repository.ProductSales  `json:"top_products"`
	SalesByCategory []repository.CategorySales `json:"sales_by_category"`
}

// StatsService computes the admin dashboard aggregates.
type StatsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type statsService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

// NewStatsService creates a new stats service.
func NewStatsService(userRepo repository.UserRepository, productRepo repository.ProductRepository, orderRepo repository.OrderRepository) StatsService {
	return &statsService{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// Dashboard gathers every aggregate the dashboard renders. Queries are
// read-only; nothing here mutates state.
func (s *statsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	products, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	orders, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	revenue, err := s.orderRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("total revenue: %w", err)
	}

	since := time.Now().AddDate(0, 0, -salesWindowDays)
	byDay, err := s.orderRepo.SalesByDay(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("sales by day: %w", err)
	}

	topProducts, err := s.orderRepo.TopProducts(ctx, 10)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}

	byCategory, err := s.orderRepo.SalesByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("sales by category: %w", err)
	}

	return &DashboardStats{
		Users:           users,
		ActiveProducts:  products,
		PaidOrders:      orders,
		TotalRevenue:    revenue,
		SalesByDay:      byDay,
		TopProducts:     topProducts,
		SalesByCategory: byCategory,
	}, nil
}
