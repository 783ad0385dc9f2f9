// internal/domain/store.go
package domain

import "strings"

// listSeparator joins aggregated columns such as categories and photo paths.
const listSeparator = ", "

// Store represents a shop on the marketplace. The password column is never part of it.
type Store struct {
	ID          int64   `db:"store_id" json:"store_id"`                     // Primary key, BIGSERIAL in DB
	Name        string  `db:"store_name" json:"store_name"`                 // Display name
	PhoneNumber string  `db:"store_phone_number" json:"store_phone_number"` // Unique
	Email       string  `db:"store_email" json:"store_email"`               // Unique, used to log in
	Address     *string `db:"store_address" json:"store_address"`           // Unset until the owner completes setup
	Delivery    bool    `db:"delivery" json:"delivery"`
	Pickup      bool    `db:"pickup" json:"pickup"`
	Radius      int     `db:"radius" json:"radius"` // Delivery radius
}

// StoreCredentials is a store row together with its password hash.
// It only travels between the repository and the identity service.
type StoreCredentials struct {
	Store
	PasswordHash string `db:"store_password" json:"-"`
}

// StoreInfo is a store with its categories and photos folded into comma-joined strings.
type StoreInfo struct {
	Store
	Categories *string `db:"categories" json:"categories"`
	Photos     *string `db:"photos" json:"photos"`
}

// CategoryList splits Categories back into names.
func (s StoreInfo) CategoryList() []string {
	return splitList(s.Categories)
}

// PhotoList splits Photos back into file paths.
func (s StoreInfo) PhotoList() []string {
	return splitList(s.Photos)
}

// StoreListing is a row of the storesandimages view.
type StoreListing struct {
	Store
	ImageFilePaths *string `db:"image_file_paths" json:"image_file_paths"`
}

// Images splits ImageFilePaths into file paths.
func (s StoreListing) Images() []string {
	return splitList(s.ImageFilePaths)
}

// NewStoreCredentials creates the row inserted when a shop signs up.
func NewStoreCredentials(name, phoneNumber, email, passwordHash string) *StoreCredentials {
	return &StoreCredentials{
		Store: Store{
			Name:        name,
			PhoneNumber: phoneNumber,
			Email:       email,
		},
		PasswordHash: passwordHash,
	}
}

func splitList(joined *string) []string {
	if joined == nil || *joined == "" {
		return nil
	}
	return strings.Split(*joined, listSeparator)
}
