// internal/domain/signup.go
package domain

import (
	"github.com/go-playground/validator/v10"
)

// validate caches struct metadata and is safe for concurrent use.
var validate = validator.New()

// ShopSignup is the input for registering a store owner.
type ShopSignup struct {
	Name        string `validate:"required,max=255"`
	PhoneNumber string `validate:"required,max=32"`
	Email       string `validate:"required,email"`
	Password    string `validate:"required,max=72"` // bcrypt input limit
}

// Validate returns validator.ValidationErrors when a field is missing or malformed.
func (s ShopSignup) Validate() error {
	return validate.Struct(s)
}

// BuyerSignup is the input for registering a buyer.
type BuyerSignup struct {
	FirstName string `validate:"required,max=255"`
	LastName  string `validate:"required,max=255"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,max=72"`
}

func (b BuyerSignup) Validate() error {
	return validate.Struct(b)
}
