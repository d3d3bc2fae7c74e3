package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/transfermarket/internal/adapter/http/dto"
	"github.com/iho/transfermarket/internal/adapter/http/middleware"
	"github.com/iho/transfermarket/internal/domain"
	"github.com/iho/transfermarket/internal/usecase"
)

// TransferService is the use case surface the handler depends on.
type TransferService interface {
	ListPlayer(ctx context.Context, input usecase.ListPlayerInput) (*domain.Transfer, error)
	DelistPlayer(ctx context.Context, playerID, userID string) error
	BuyPlayer(ctx context.Context, playerID, buyerUserID string) (*usecase.BuyResult, error)
	Market(ctx context.Context, query usecase.MarketQuery) (*usecase.MarketPage, error)
	GetTransfer(ctx context.Context, id string) (*domain.Transfer, error)
	ListTeamTransfers(ctx context.Context, userID string, limit, offset int) ([]*domain.Transfer, error)
}

// TransferHandler handles transfer-market HTTP requests.
type TransferHandler struct {
	transferUC TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferUC TransferService) *TransferHandler {
	return &TransferHandler{transferUC: transferUC}
}

// List puts one of the caller's players up for sale.
func (h *TransferHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.ListPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	transfer, err := h.transferUC.ListPlayer(r.Context(), req.ToUseCaseInput(user.ID))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list player", err.Error())

		return
	}

	writeSuccess(w, http.StatusCreated, "player listed for transfer", dto.TransferFromDomain(transfer))
}

// Delist removes the caller's player from the transfer market.
func (h *TransferHandler) Delist(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	playerID := chi.URLParam(r, "playerID")
	if playerID == "" {
		writeError(w, http.StatusBadRequest, "missing player ID", "")
		return
	}

	if err := h.transferUC.DelistPlayer(r.Context(), playerID, user.ID); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delist player", err.Error())

		return
	}

	writeSuccess(w, http.StatusOK, "player removed from transfer list", nil)
}

// Buy purchases a listed player at 95% of the asking price.
func (h *TransferHandler) Buy(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	playerID := chi.URLParam(r, "playerID")
	if playerID == "" {
		writeError(w, http.StatusBadRequest, "missing player ID", "")
		return
	}

	result, err := h.transferUC.BuyPlayer(r.Context(), playerID, user.ID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to buy player", err.Error())

		return
	}

	writeSuccess(w, http.StatusOK, "player purchased", dto.BuyResultFromUseCase(result))
}

// Market returns the filtered, paginated list of players up for sale.
func (h *TransferHandler) Market(w http.ResponseWriter, r *http.Request) {
	filter := usecase.MarketFilter{
		TeamName:   r.URL.Query().Get("team_name"),
		PlayerName: r.URL.Query().Get("player_name"),
	}

	if raw := r.URL.Query().Get("position"); raw != "" {
		position := domain.Position(raw)
		filter.Position = &position
	}

	minPrice, err := parseInt64Query(r, "min_price")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid min_price", err.Error())
		return
	}
	filter.MinPrice = minPrice

	maxPrice, err := parseInt64Query(r, "max_price")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid max_price", err.Error())
		return
	}
	filter.MaxPrice = maxPrice

	page, err := h.transferUC.Market(r.Context(), usecase.MarketQuery{
		Filter:   filter,
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "limit", domain.DefaultPageSize),
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to query market", err.Error())

		return
	}

	writeSuccess(w, http.StatusOK, "market retrieved", dto.MarketFromUseCase(page))
}

// Get retrieves a transfer ledger record by ID.
func (h *TransferHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transfer ID", "")
		return
	}

	transfer, err := h.transferUC.GetTransfer(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get transfer", err.Error())

		return
	}

	writeSuccess(w, http.StatusOK, "transfer retrieved", dto.TransferFromDomain(transfer))
}

// History lists the caller's transfer history, sales and purchases alike.
func (h *TransferHandler) History(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	limit := parseIntQuery(r, "limit", domain.DefaultPageSize)
	offset := parseIntQuery(r, "offset", 0)

	transfers, err := h.transferUC.ListTeamTransfers(r.Context(), user.ID, limit, offset)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list transfers", err.Error())

		return
	}

	writeSuccess(w, http.StatusOK, "transfer history retrieved", dto.TransfersFromDomain(transfers))
}
