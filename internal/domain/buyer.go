// internal/domain/buyer.go
package domain

import "time"

// Buyer represents a customer account. The password column is never part of it.
type Buyer struct {
	ID           int64      `db:"buyer_id" json:"buyer_id"`
	FirstName    string     `db:"buyer_firstname" json:"buyer_firstname"`
	LastName     string     `db:"buyer_lastname" json:"buyer_lastname"`
	Email        string     `db:"buyer_email" json:"buyer_email"` // Unique, used to log in
	PhoneNumber  *string    `db:"buyer_phone_number" json:"buyer_phone_number"`
	Gender       *string    `db:"buyer_gender" json:"buyer_gender"`
	DateOfBirth  *time.Time `db:"buyer_date_of_birth" json:"buyer_date_of_birth"`
	ProfilePhoto *string    `db:"buyer_profile_photo" json:"buyer_profile_photo"` // File path only
	Address      *string    `db:"buyer_address" json:"buyer_address"`
}

// BuyerCredentials is a buyer row together with its password hash.
type BuyerCredentials struct {
	Buyer
	PasswordHash string `db:"buyer_password" json:"-"`
}

// NewBuyerCredentials creates the row inserted when a buyer registers.
func NewBuyerCredentials(firstName, lastName, email, passwordHash string) *BuyerCredentials {
	return &BuyerCredentials{
		Buyer: Buyer{
			FirstName: firstName,
			LastName:  lastName,
			Email:     email,
		},
		PasswordHash: passwordHash,
	}
}
