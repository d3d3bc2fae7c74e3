package handler

import (
	"context"
	"net/http"

	"github.com/iho/transfermarket/internal/adapter/http/dto"
	"github.com/iho/transfermarket/internal/adapter/http/middleware"
	"github.com/iho/transfermarket/internal/domain"
	"github.com/iho/transfermarket/internal/usecase"
)

// TeamService is the use case surface the handler depends on.
type TeamService interface {
	CreateTeamForUser(ctx context.Context, userID string) (*domain.Team, error)
	GetTeamByUserID(ctx context.Context, userID string) (*usecase.TeamWithPlayers, error)
}

// TeamHandler handles team-related HTTP requests.
type TeamHandler struct {
	teamUC TeamService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(teamUC TeamService) *TeamHandler {
	return &TeamHandler{teamUC: teamUC}
}

// Create creates the caller's team if background creation after registration
// never finished. Idempotent: an existing team is returned as-is.
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	team, err := h.teamUC.CreateTeamForUser(r.Context(), user.ID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create team", err.Error())

		return
	}

	writeSuccess(w, http.StatusCreated, "team ready", dto.TeamFromDomain(team))
}

// GetMine returns the caller's team with its full roster.
func (h *TeamHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	team, err := h.teamUC.GetTeamByUserID(r.Context(), user.ID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get team", err.Error())

		return
	}

	writeSuccess(w, http.StatusOK, "team retrieved", dto.TeamWithPlayersFromUseCase(team))
}
