package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iho/transfermarket/internal/adapter/http/dto"
	"github.com/iho/transfermarket/internal/domain"
	"github.com/iho/transfermarket/internal/infrastructure/auth"
	"github.com/iho/transfermarket/internal/usecase"
)

type userServiceStub struct {
	loginOrRegisterFn func(ctx context.Context, input usecase.LoginOrRegisterInput) (*domain.User, bool, error)
	getProfileFn      func(ctx context.Context, userID string) (*usecase.Profile, error)
}

func (s *userServiceStub) LoginOrRegister(ctx context.Context, input usecase.LoginOrRegisterInput) (*domain.User, bool, error) {
	return s.loginOrRegisterFn(ctx, input)
}

func (s *userServiceStub) GetProfile(ctx context.Context, userID string) (*usecase.Profile, error) {
	return s.getProfileFn(ctx, userID)
}

func newTestJWTManager() *auth.JWTManager {
	return auth.NewJWTManager("test-secret", time.Hour)
}

func TestAuthHandler_LoginOrRegister_NewUser(t *testing.T) {
	handler := NewAuthHandler(&userServiceStub{
		loginOrRegisterFn: func(ctx context.Context, input usecase.LoginOrRegisterInput) (*domain.User, bool, error) {
			return &domain.User{ID: "u-1", Email: input.Email}, true, nil
		},
		getProfileFn: func(ctx context.Context, userID string) (*usecase.Profile, error) {
			t.Fatalf("profile should not be fetched for new registrations")
			return nil, nil
		},
	}, newTestJWTManager())

	body, _ := json.Marshal(dto.LoginOrRegisterRequest{Email: "new@example.com", Password: "s3cretpass"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login-register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.LoginOrRegister(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for new user, got %d", rec.Code)
	}

	var resp struct {
		Success bool             `json:"success"`
		Data    dto.AuthResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success || resp.Data.Token == "" {
		t.Fatalf("expected token in response, got %+v", resp.Data)
	}
	if resp.Data.User == nil || resp.Data.User.Email != "new@example.com" {
		t.Fatalf("unexpected user payload: %+v", resp.Data.User)
	}
	if resp.Data.Team != nil {
		t.Fatalf("expected no team while creation is in flight, got %+v", resp.Data.Team)
	}
}

func TestAuthHandler_LoginOrRegister_ExistingUser(t *testing.T) {
	handler := NewAuthHandler(&userServiceStub{
		loginOrRegisterFn: func(ctx context.Context, input usecase.LoginOrRegisterInput) (*domain.User, bool, error) {
			return &domain.User{ID: "u-1", Email: input.Email}, false, nil
		},
		getProfileFn: func(ctx context.Context, userID string) (*usecase.Profile, error) {
			return &usecase.Profile{
				User: &domain.User{ID: userID},
				Team: &usecase.TeamWithPlayers{
					Team: &domain.Team{ID: "team-1", Name: "FC Test", Budget: 5_000_000},
				},
			}, nil
		},
	}, newTestJWTManager())

	body, _ := json.Marshal(dto.LoginOrRegisterRequest{Email: "old@example.com", Password: "s3cretpass"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login-register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.LoginOrRegister(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for existing user, got %d", rec.Code)
	}

	var resp struct {
		Data dto.AuthResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Team == nil || resp.Data.Team.ID != "team-1" {
		t.Fatalf("expected team attached to login response, got %+v", resp.Data.Team)
	}
}

func TestAuthHandler_LoginOrRegister_Failures(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		ucErr    error
		expected int
	}{
		{"invalid body", "{not json", nil, http.StatusBadRequest},
		{"wrong password", `{"email":"a@b.com","password":"wrongwrong"}`, domain.ErrUnauthorized, http.StatusUnauthorized},
		{"invalid email", `{"email":"nope","password":"s3cretpass"}`, domain.ErrInvalidEmail, http.StatusBadRequest},
		{"weak password", `{"email":"a@b.com","password":"x"}`, domain.ErrPasswordTooWeak, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&userServiceStub{
				loginOrRegisterFn: func(ctx context.Context, input usecase.LoginOrRegisterInput) (*domain.User, bool, error) {
					return nil, false, tt.ucErr
				},
			}, newTestJWTManager())

			req := httptest.NewRequest(http.MethodPost, "/auth/login-register", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.LoginOrRegister(rec, req)

			if rec.Code != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, rec.Code)
			}
		})
	}
}

func TestAuthHandler_GetProfile(t *testing.T) {
	handler := NewAuthHandler(&userServiceStub{
		getProfileFn: func(ctx context.Context, userID string) (*usecase.Profile, error) {
			return &usecase.Profile{User: &domain.User{ID: userID, Email: "user@example.com"}}, nil
		},
	}, newTestJWTManager())

	req := authenticated(httptest.NewRequest(http.MethodGet, "/auth/profile", nil), "u-1")
	rec := httptest.NewRecorder()

	handler.GetProfile(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data dto.ProfileResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.User == nil || resp.Data.User.ID != "u-1" {
		t.Fatalf("unexpected user payload: %+v", resp.Data.User)
	}
	if resp.Data.Team != nil {
		t.Fatalf("expected null team before creation finishes, got %+v", resp.Data.Team)
	}
}

func TestAuthHandler_GetProfile_Unauthenticated(t *testing.T) {
	handler := NewAuthHandler(&userServiceStub{}, newTestJWTManager())

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	rec := httptest.NewRecorder()

	handler.GetProfile(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
