package dto

import (
	"testing"

	"github.com/iho/transfermarket/internal/usecase"
)

func TestLoginOrRegisterRequest_ToUseCaseInput(t *testing.T) {
	req := &LoginOrRegisterRequest{
		Email:    "user@example.com",
		Password: "s3cretpass",
	}

	got := req.ToUseCaseInput()
	want := usecase.LoginOrRegisterInput{
		Email:    "user@example.com",
		Password: "s3cretpass",
	}

	if got != want {
		t.Fatalf("ToUseCaseInput() = %+v, want %+v", got, want)
	}
}

func TestListPlayerRequest_ToUseCaseInput(t *testing.T) {
	req := &ListPlayerRequest{
		PlayerID:    "player-1",
		AskingPrice: 1_500_000,
	}

	got := req.ToUseCaseInput("user-1")
	want := usecase.ListPlayerInput{
		PlayerID:    "player-1",
		AskingPrice: 1_500_000,
		UserID:      "user-1",
	}

	if got != want {
		t.Fatalf("ToUseCaseInput() = %+v, want %+v", got, want)
	}
}
