package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/transfermarket/internal/adapter/http/handler"
	apimiddleware "github.com/iho/transfermarket/internal/adapter/http/middleware"
	"github.com/iho/transfermarket/internal/domain"
	"github.com/iho/transfermarket/internal/infrastructure/auth"
	"github.com/iho/transfermarket/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessLogins(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.AuthRateLimiter = rl
	}))

	body := `{"email":"user@example.com","password":"s3cretpass"}`

	req1 := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login-register", strings.NewReader(body))
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login-register", strings.NewReader(body))
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_RejectsMissingToken(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/profile", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	jwtManager := testJWTManager()
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
		cfg.JWTManager = jwtManager
	}))

	token, err := jwtManager.Generate(&domain.User{ID: "u1", Email: "user@example.com"})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	body := `{"player_id":"p1","asking_price":1000000}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers/list", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Router")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/auth/login-register",
		"GET /api/v1/auth/profile",
		"POST /api/v1/teams/",
		"GET /api/v1/teams/me",
		"GET /api/v1/transfers/market",
		"POST /api/v1/transfers/list",
		"DELETE /api/v1/transfers/list/{playerID}",
		"POST /api/v1/transfers/buy/{playerID}",
		"GET /api/v1/transfers/history",
		"GET /api/v1/transfers/{id}",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func testJWTManager() *auth.JWTManager {
	return auth.NewJWTManager("test-secret", time.Hour)
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	jwtManager := testJWTManager()

	cfg := RouterConfig{
		AuthHandler:     handler.NewAuthHandler(&stubUserService{}, jwtManager),
		TeamHandler:     handler.NewTeamHandler(&stubTeamService{}),
		TransferHandler: handler.NewTransferHandler(&stubTransferService{}),
		HealthHandler:   handler.NewHealthHandler(nil, nil),
		JWTManager:      jwtManager,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubUserService struct{}

func (stubUserService) LoginOrRegister(ctx context.Context, input usecase.LoginOrRegisterInput) (*domain.User, bool, error) {
	return &domain.User{ID: "u1", Email: input.Email}, false, nil
}

func (stubUserService) GetProfile(ctx context.Context, userID string) (*usecase.Profile, error) {
	return &usecase.Profile{User: &domain.User{ID: userID}}, nil
}

type stubTeamService struct{}

func (stubTeamService) CreateTeamForUser(ctx context.Context, userID string) (*domain.Team, error) {
	return &domain.Team{ID: "team-1", UserID: userID}, nil
}

func (stubTeamService) GetTeamByUserID(ctx context.Context, userID string) (*usecase.TeamWithPlayers, error) {
	return &usecase.TeamWithPlayers{Team: &domain.Team{ID: "team-1", UserID: userID}}, nil
}

type stubTransferService struct{}

func (stubTransferService) ListPlayer(ctx context.Context, input usecase.ListPlayerInput) (*domain.Transfer, error) {
	return &domain.Transfer{ID: "transfer-1", PlayerID: input.PlayerID}, nil
}

func (stubTransferService) DelistPlayer(ctx context.Context, playerID, userID string) error {
	return nil
}

func (stubTransferService) BuyPlayer(ctx context.Context, playerID, buyerUserID string) (*usecase.BuyResult, error) {
	return &usecase.BuyResult{}, nil
}

func (stubTransferService) Market(ctx context.Context, query usecase.MarketQuery) (*usecase.MarketPage, error) {
	return &usecase.MarketPage{}, nil
}

func (stubTransferService) GetTransfer(ctx context.Context, id string) (*domain.Transfer, error) {
	return &domain.Transfer{ID: id}, nil
}

func (stubTransferService) ListTeamTransfers(ctx context.Context, userID string, limit, offset int) ([]*domain.Transfer, error) {
	return []*domain.Transfer{}, nil
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
