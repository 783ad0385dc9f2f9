// internal/service/password.go
package service

import (
	"errors"
	"fmt"
	"sync"

	"localscoop/internal/util"

	"golang.org/x/crypto/bcrypt"
)

// hashPassword returns the bcrypt hash stored in the password columns.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("password longer than 72 bytes: %w", util.ErrInvalidInput)
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// checkPassword compares a stored hash with a candidate password. Any
// mismatch, including a malformed hash, is reported as invalid credentials.
func checkPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return util.ErrInvalidCredentials
	}
	return nil
}

// absentAccountHash is compared against when no account matches the login
// email, so that branch costs as much as a wrong password.
var absentAccountHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("absent-account"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash placeholder password: %v", err))
	}
	return hash
})

// rejectUnknownAccount burns one bcrypt comparison and always fails.
func rejectUnknownAccount(password string) error {
	_ = bcrypt.CompareHashAndPassword(absentAccountHash(), []byte(password))
	return util.ErrInvalidCredentials
}
