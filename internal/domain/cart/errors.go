package cart

import "errors"

// Error represents a cart domain error with a stable code
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// NewError creates a new domain error
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Validation errors, raised before any network call is issued
var (
	ErrItemNotFound      = NewError("ITEM_NOT_FOUND", "Cart item not found")
	ErrInsufficientStock = NewError("INSUFFICIENT_STOCK", "Requested quantity exceeds available stock")
	ErrEmptySelection    = NewError("EMPTY_SELECTION", "No items selected for checkout")
	ErrInvalidProduct    = NewError("INVALID_PRODUCT", "Invalid product identifier")
)

// Remote cart service boundary errors
var (
	ErrRemoteUnauthenticated  = errors.New("cart: remote session unauthenticated")
	ErrRemoteUnavailable      = errors.New("cart: remote cart service unavailable")
	ErrRemoteRequestFailed    = errors.New("cart: remote cart request failed")
	ErrRemoteInvalidResponse  = errors.New("cart: invalid response from remote cart service")
	ErrRemoteOperationRefused = errors.New("cart: remote cart service refused operation")
)
