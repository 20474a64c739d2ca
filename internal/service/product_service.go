package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/gemechis22/campusswap-ecommerce/internal/cache"
	"github.com/gemechis22/campusswap-ecommerce/internal/errors"
	"github.com/gemechis22/campusswap-ecommerce/internal/model"
	"github.com/gemechis22/campusswap-ecommerce/internal/repository"
)

// ProductCachePrefix is the Redis key namespace for cached listings.
const ProductCachePrefix = "product:"

const (
	productCacheTTL = 5 * time.Minute
	defaultPageSize = 20
	maxPageSize     = 100
)

// ProductInput carries the fields a seller may set on a listing.
type ProductInput struct {
	CategoryID  uint
	Title       string
	Description string
	Price       decimal.Decimal
	Stock       int
	ImageURL    string
}

// ProductPage is one page of listing results.
type ProductPage struct {
	Products []model.Product `json:"products"`
	Total    int64           `json:"total"`
	Limit    int             `json:"limit"`
	Offset   int             `json:"offset"`
}

// ProductService handles catalog browsing and seller listing management.
type ProductService interface {
	List(ctx context.Context, filter repository.ProductFilter, categorySlug string) (*ProductPage, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Product, error)
	Create(ctx context.Context, sellerID uint, input ProductInput) (*model.Product, error)
	Update(ctx context.Context, sellerID uint, id uuid.UUID, input ProductInput) (*model.Product, error)
	Delete(ctx context.Context, sellerID uint, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]model.Category, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cache        *cache.Client
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, cache *cache.Client) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

func (s *productService) cacheKey(id uuid.UUID) string {
	return ProductCachePrefix + id.String()
}

// List returns a page of active listings. A category slug, when given,
// is resolved to its ID before filtering.
func (s *productService) List(ctx context.Context, filter repository.ProductFilter, categorySlug string) (*ProductPage, error) {
	if categorySlug != "" {
		category, err := s.categoryRepo.FindBySlug(ctx, categorySlug)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errors.ErrCategoryNotFound
			}
			return nil, fmt.Errorf("find category: %w", err)
		}
		filter.CategoryID = category.ID
	}

	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	products, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return &ProductPage{
		Products: products,
		Total:    total,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	}, nil
}

// Get retrieves a single listing by ID with caching.
func (s *productService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(product); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, productCacheTTL)
	}

	return product, nil
}

// Create posts a new listing for a seller.
func (s *productService) Create(ctx context.Context, sellerID uint, input ProductInput) (*model.Product, error) {
	if _, err := s.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}

	product := &model.Product{
		SellerID:    sellerID,
		CategoryID:  input.CategoryID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
		Active:      true,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

// Update edits a listing; only its owner may do so.
func (s *productService) Update(ctx context.Context, sellerID uint, id uuid.UUID, input ProductInput) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotFound
		}
		return nil, err
	}

	if product.SellerID != sellerID {
		return nil, errors.ErrNotOwner
	}

	if input.CategoryID != 0 && input.CategoryID != product.CategoryID {
		if _, err := s.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errors.ErrCategoryNotFound
			}
			return nil, fmt.Errorf("find category: %w", err)
		}
		product.CategoryID = input.CategoryID
	}

	product.Title = input.Title
	product.Description = input.Description
	product.Price = input.Price
	product.Stock = input.Stock
	product.ImageURL = input.ImageURL

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))

	return product, nil
}

// Delete removes a listing; only its owner may do so.
func (s *productService) Delete(ctx context.Context, sellerID uint, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrProductNotFound
		}
		return err
	}

	if product.SellerID != sellerID {
		return errors.ErrNotOwner
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))

	return nil
}

// ListCategories returns all categories for the browse sidebar.
func (s *productService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.List(ctx)
}
