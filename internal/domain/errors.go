package domain

import "errors"

var (
	// Player errors
	ErrPlayerNotFound     = errors.New("player not found")
	ErrPlayerNotAvailable = errors.New("player is not available for transfer")
	ErrPlayerListed       = errors.New("player is already on the transfer list")
	ErrPlayerNotListed    = errors.New("player is not on the transfer list")

	// Team errors
	ErrTeamNotFound       = errors.New("team not found")
	ErrTeamExists         = errors.New("user already has a team")
	ErrInsufficientBudget = errors.New("insufficient budget")

	// Transfer errors
	ErrNotPlayerOwner     = errors.New("player belongs to another team")
	ErrOwnPlayer          = errors.New("cannot buy a player from your own team")
	ErrTransferNotFound   = errors.New("transfer not found")
	ErrInconsistentState  = errors.New("listed player references a missing team")
	ErrInvalidAskingPrice = errors.New("asking price must be positive")

	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("user with this email already exists")
)
