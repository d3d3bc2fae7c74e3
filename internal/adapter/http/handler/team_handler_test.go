package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iho/transfermarket/internal/adapter/http/dto"
	"github.com/iho/transfermarket/internal/domain"
	"github.com/iho/transfermarket/internal/usecase"
)

type teamServiceStub struct {
	createFn func(ctx context.Context, userID string) (*domain.Team, error)
	getFn    func(ctx context.Context, userID string) (*usecase.TeamWithPlayers, error)
}

func (s *teamServiceStub) CreateTeamForUser(ctx context.Context, userID string) (*domain.Team, error) {
	return s.createFn(ctx, userID)
}

func (s *teamServiceStub) GetTeamByUserID(ctx context.Context, userID string) (*usecase.TeamWithPlayers, error) {
	return s.getFn(ctx, userID)
}

func TestTeamHandler_Create_Success(t *testing.T) {
	var capturedUserID string
	handler := NewTeamHandler(&teamServiceStub{
		createFn: func(ctx context.Context, userID string) (*domain.Team, error) {
			capturedUserID = userID
			return &domain.Team{ID: "team-1", UserID: userID, Name: "FC Test", Budget: 5_000_000}, nil
		},
	})

	req := authenticated(httptest.NewRequest(http.MethodPost, "/teams", nil), "u-1")
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if capturedUserID != "u-1" {
		t.Fatalf("expected user ID u-1, got %s", capturedUserID)
	}

	var resp struct {
		Data dto.TeamResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.ID != "team-1" || resp.Data.Budget != 5_000_000 {
		t.Fatalf("unexpected team payload: %+v", resp.Data)
	}
}

func TestTeamHandler_Create_Unauthenticated(t *testing.T) {
	handler := NewTeamHandler(&teamServiceStub{})

	req := httptest.NewRequest(http.MethodPost, "/teams", nil)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestTeamHandler_GetMine(t *testing.T) {
	handler := NewTeamHandler(&teamServiceStub{
		getFn: func(ctx context.Context, userID string) (*usecase.TeamWithPlayers, error) {
			return &usecase.TeamWithPlayers{
				Team: &domain.Team{ID: "team-1", UserID: userID, Name: "FC Test", Budget: 4_050_000},
				Players: []*domain.Player{
					{ID: "p1", TeamID: "team-1", Position: domain.PositionGoalkeeper},
				},
			}, nil
		},
	})

	req := authenticated(httptest.NewRequest(http.MethodGet, "/teams/me", nil), "u-1")
	rec := httptest.NewRecorder()

	handler.GetMine(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data dto.TeamResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data.Players) != 1 {
		t.Fatalf("expected roster in payload, got %+v", resp.Data)
	}
}

func TestTeamHandler_GetMine_NotFound(t *testing.T) {
	handler := NewTeamHandler(&teamServiceStub{
		getFn: func(ctx context.Context, userID string) (*usecase.TeamWithPlayers, error) {
			return nil, domain.ErrTeamNotFound
		},
	})

	req := authenticated(httptest.NewRequest(http.MethodGet, "/teams/me", nil), "u-1")
	rec := httptest.NewRecorder()

	handler.GetMine(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
