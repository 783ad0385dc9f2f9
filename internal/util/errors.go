// internal/util/errors.go
package util

import (
	"errors"
	"fmt"
)

// Common application-specific errors.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input provided")
	ErrDuplicateEntry     = errors.New("duplicate entry") // Unique constraint hit, e.g. a store email that is already registered
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownCategory    = errors.New("unknown category")
)

// Entity-specific not-found errors. Each also matches ErrNotFound.
var (
	ErrStoreNotFound    = fmt.Errorf("store: %w", ErrNotFound)
	ErrBuyerNotFound    = fmt.Errorf("buyer: %w", ErrNotFound)
	ErrProductNotFound  = fmt.Errorf("product: %w", ErrNotFound)
	ErrCartNotFound     = fmt.Errorf("active cart: %w", ErrNotFound)
	ErrCartItemNotFound = fmt.Errorf("cart item: %w", ErrNotFound)
)

// IsError reports whether any error in err's chain matches target.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
