package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/transfermarket/internal/adapter/http/dto"
	"github.com/iho/transfermarket/internal/adapter/http/middleware"
	"github.com/iho/transfermarket/internal/domain"
	"github.com/iho/transfermarket/internal/infrastructure/auth"
	"github.com/iho/transfermarket/internal/usecase"
)

// UserService is the use case surface the handler depends on.
type UserService interface {
	LoginOrRegister(ctx context.Context, input usecase.LoginOrRegisterInput) (*domain.User, bool, error)
	GetProfile(ctx context.Context, userID string) (*usecase.Profile, error)
}

// AuthHandler handles the combined login/registration flow and profile reads.
type AuthHandler struct {
	userUC     UserService
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userUC UserService, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		userUC:     userUC,
		jwtManager: jwtManager,
	}
}

// LoginOrRegister authenticates an existing user or registers a new one.
// Registration returns 201 and kicks off squad generation in the background;
// login returns 200 with the caller's team attached.
func (h *AuthHandler) LoginOrRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginOrRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, created, err := h.userUC.LoginOrRegister(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "authentication failed", err.Error())

		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token", err.Error())
		return
	}

	resp := dto.AuthResponse{
		User:  dto.UserFromDomain(user),
		Token: token,
	}

	if created {
		writeSuccess(w, http.StatusCreated, "registration successful, team creation in progress", resp)
		return
	}

	// Existing users get their team in the same response.
	if profile, err := h.userUC.GetProfile(r.Context(), user.ID); err == nil && profile.Team != nil {
		resp.Team = dto.TeamWithPlayersFromUseCase(profile.Team)
	}

	writeSuccess(w, http.StatusOK, "login successful", resp)
}

// GetProfile returns the authenticated user together with their team. The
// team is null while background creation is still in flight.
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	profile, err := h.userUC.GetProfile(r.Context(), user.ID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get profile", err.Error())

		return
	}

	resp := dto.ProfileResponse{
		User: dto.UserFromDomain(profile.User),
	}
	if profile.Team != nil {
		resp.Team = dto.TeamWithPlayersFromUseCase(profile.Team)
	}

	writeSuccess(w, http.StatusOK, "profile retrieved", resp)
}
