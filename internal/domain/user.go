package domain

import (
	"errors"
	"time"
)

// User represents a registered account holder.
type User struct {
	ID             string
	Email          string
	HashedPassword string
	TeamID         *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Authentication errors
var (
	ErrUnauthorized = errors.New("invalid credentials")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)
