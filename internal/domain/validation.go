package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Validation errors
var (
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrPasswordTooWeak  = errors.New("password does not meet requirements")
	ErrInvalidPosition  = errors.New("invalid position")
	ErrInvalidPriceBand = errors.New("minimum price cannot exceed maximum price")
)

// Validation constants
const (
	MinPasswordLength = 6
	MaxPasswordLength = 128

	DefaultPageSize = 20
	MaxPageSize     = 50
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail validates email format
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword validates password strength
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrPasswordTooWeak, MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return fmt.Errorf("%w: must be at most %d characters", ErrPasswordTooWeak, MaxPasswordLength)
	}
	return nil
}

// ValidateAskingPrice validates a listing price
func ValidateAskingPrice(price int64) error {
	if price <= 0 {
		return ErrInvalidAskingPrice
	}
	return nil
}

// NormalizePagination clamps page and pageSize into their allowed ranges.
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}
