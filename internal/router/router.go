package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/gemechis22/campusswap-ecommerce/internal/config"
	"github.com/gemechis22/campusswap-ecommerce/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Catalog browsing is public
	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)
	api.GET("/categories", productHandler.ListCategories)

	// Live card feedback for the checkout form; stateless, so public
	api.POST("/checkout/card-check", checkoutHandler.CheckCard)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	// Listing management
	secured.POST("/products", productHandler.Create)
	secured.PUT("/products/:id", productHandler.Update)
	secured.DELETE("/products/:id", productHandler.Delete)

	// Cart routes
	secured.GET("/cart", cartHandler.Get)
	secured.DELETE("/cart", cartHandler.Clear)
	secured.POST("/cart/items", cartHandler.AddItem)
	secured.PUT("/cart/items/:id", cartHandler.UpdateItem)
	secured.DELETE("/cart/items/:id", cartHandler.RemoveItem)

	// Checkout and orders
	secured.POST("/checkout", checkoutHandler.Checkout)
	secured.GET("/orders", checkoutHandler.ListOrders)
	secured.GET("/orders/:id", checkoutHandler.GetOrder)

	// Admin routes
	admin := secured.Group("/admin", handler.RequireAdmin)
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.POST("/categories", adminHandler.CreateCategory)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
