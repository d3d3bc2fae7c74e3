package dto

import (
	"github.com/iho/transfermarket/internal/usecase"
)

// LoginOrRegisterRequest represents the combined login/registration request.
type LoginOrRegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *LoginOrRegisterRequest) ToUseCaseInput() usecase.LoginOrRegisterInput {
	return usecase.LoginOrRegisterInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// ListPlayerRequest represents a request to put a player up for sale.
type ListPlayerRequest struct {
	PlayerID    string `json:"player_id"`
	AskingPrice int64  `json:"asking_price"`
}

// ToUseCaseInput converts to use case input for the requesting user.
func (r *ListPlayerRequest) ToUseCaseInput(userID string) usecase.ListPlayerInput {
	return usecase.ListPlayerInput{
		PlayerID:    r.PlayerID,
		AskingPrice: r.AskingPrice,
		UserID:      userID,
	}
}
