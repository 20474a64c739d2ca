package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "github.com/gemechis22/campusswap-ecommerce/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"github.com/gemechis22/campusswap-ecommerce/internal/auth"
	"github.com/gemechis22/campusswap-ecommerce/internal/cache"
	"github.com/gemechis22/campusswap-ecommerce/internal/config"
	"github.com/gemechis22/campusswap-ecommerce/internal/db"
	"github.com/gemechis22/campusswap-ecommerce/internal/handler"
	"github.com/gemechis22/campusswap-ecommerce/internal/model"
	"github.com/gemechis22/campusswap-ecommerce/internal/repository"
	"github.com/gemechis22/campusswap-ecommerce/internal/router"
	"github.com/gemechis22/campusswap-ecommerce/internal/service"
)

// @title CampusSwap API
// @version 1.0
// @description Student marketplace API: browse and search listings, cart, card checkout, and admin dashboard.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.OrderItem{},
			&model.Order{},
			&model.CartItem{},
			&model.Product{},
			&model.Category{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")

		// Cached listings are stale once the tables are gone
		if err := cacheClient.DeleteByPrefix(context.Background(), service.ProductCachePrefix); err != nil {
			log.Printf("Warning: Failed to clear product cache: %v", err)
		}
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	cartRepo := repository.NewCartRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	productService := service.NewProductService(productRepo, categoryRepo, cacheClient)
	cartService := service.NewCartService(cartRepo, productRepo)
	checkoutService := service.NewCheckoutService(cartRepo, productRepo, orderRepo, cacheClient)
	statsService := service.NewStatsService(userRepo, productRepo, orderRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	adminHandler := handler.NewAdminHandler(statsService, categoryRepo)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		productHandler,
		cartHandler,
		checkoutHandler,
		adminHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
