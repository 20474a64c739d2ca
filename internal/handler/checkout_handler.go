package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gemechis22/campusswap-ecommerce/internal/card"
	"github.com/gemechis22/campusswap-ecommerce/internal/errors"
	"github.com/gemechis22/campusswap-ecommerce/internal/service"
)

// CheckoutHandler handles checkout and order endpoints.
type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// CheckoutRequest carries the payment card fields as typed in the form.
// They are validated in-process and never stored or logged.
type CheckoutRequest struct {
	CardNumber string `json:"card_number" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
	ExpMonth   string `json:"exp_month" validate:"required"`
	ExpYear    string `json:"exp_year" validate:"required"`
}

// CardCheckRequest is the live-typing variant: every field optional, the
// response always well-formed.
type CardCheckRequest struct {
	CardNumber string `json:"card_number"`
	CVV        string `json:"cvv"`
	ExpMonth   string `json:"exp_month"`
	ExpYear    string `json:"exp_year"`
}

// CheckoutResponse represents a successful checkout.
type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	Status      string `json:"status"`
	Total       string `json:"total"`
	CardNetwork string `json:"card_network"`
	CardMasked  string `json:"card_masked"`
}

// Checkout godoc
// @Summary Pay for the cart with a card
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CheckoutRequest true "Card data"
// @Success 201 {object} CheckoutResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	claims := userClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.checkoutService.Checkout(c.Request().Context(), claims.UserID, card.Input{
		CardNumber: req.CardNumber,
		CVV:        req.CVV,
		ExpMonth:   req.ExpMonth,
		ExpYear:    req.ExpYear,
	})
	if err != nil {
		var declined *service.CardDeclinedError
		if stderrors.As(err, &declined) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, errors.ErrorResponse{
				Error:   "invalid card",
				Code:    "INVALID_CARD",
				Details: declined.Reasons,
			})
		}
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, CheckoutResponse{
		OrderID:     order.ID.String(),
		Status:      string(order.Status),
		Total:       order.Total.StringFixed(2),
		CardNetwork: order.CardNetwork,
		CardMasked:  order.CardMasked,
	})
}

// CheckCard godoc
// @Summary Validate card fields for live feedback
// @Description Returns the detected network, formatted and masked numbers,
// @Description and any rule failures. Nothing is stored; safe to call per keystroke.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body CardCheckRequest true "Card fields, possibly partial"
// @Success 200 {object} card.Result
// @Failure 400 {object} errors.ErrorResponse
// @Router /checkout/card-check [post]
func (h *CheckoutHandler) CheckCard(c echo.Context) error {
	var req CardCheckRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result := h.checkoutService.CheckCard(card.Input{
		CardNumber: req.CardNumber,
		CVV:        req.CVV,
		ExpMonth:   req.ExpMonth,
		ExpYear:    req.ExpYear,
	})

	return c.JSON(http.StatusOK, result)
}

// ListOrders godoc
// @Summary List the current user's orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Order
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /orders [get]
func (h *CheckoutHandler) ListOrders(c echo.Context) error {
	claims := userClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	orders, err := h.checkoutService.ListOrders(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, orders)
}

// GetOrder godoc
// @Summary Get one of the current user's orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /orders/{id} [get]
func (h *CheckoutHandler) GetOrder(c echo.Context) error {
	claims := userClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid order ID",
			Code:  "INVALID_UUID",
		})
	}

	order, err := h.checkoutService.GetOrder(c.Request().Context(), claims.UserID, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, order)
}
