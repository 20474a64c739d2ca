package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrProductNotFound is returned when a listing does not exist or is inactive.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrOrderNotFound is returned when an order does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrCartEmpty is returned when checking out an empty cart.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrInsufficientStock is returned when a listing cannot cover the requested quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidQuantity is returned when a cart quantity is not positive.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInvalidCard is returned when payment card validation fails.
	ErrInvalidCard = errors.New("invalid card")
	// ErrNotOwner is returned when a user edits a listing they do not own.
	ErrNotOwner = errors.New("not the owner of this listing")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	// Details carries per-rule reasons, e.g. card validation failures.
	Details []string `json:"details,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrProductNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND")
	case ErrCategoryNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case ErrOrderNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "ORDER_NOT_FOUND")
	case ErrCartEmpty:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CART_EMPTY")
	case ErrInsufficientStock:
		return NewHTTPError(http.StatusConflict, err.Error(), "INSUFFICIENT_STOCK")
	case ErrInvalidQuantity:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_QUANTITY")
	case ErrInvalidCard:
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "INVALID_CARD")
	case ErrNotOwner:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_OWNER")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
