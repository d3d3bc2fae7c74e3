package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/iho/transfermarket/internal/domain"
	"github.com/iho/transfermarket/internal/infrastructure/metrics"
)

// TransferUseCase orchestrates listing, delisting and purchase transactions.
type TransferUseCase struct {
	txManager    TransactionManager
	playerRepo   PlayerRepository
	teamRepo     TeamRepository
	transferRepo TransferRepository
	idGen        IDGenerator
	cache        Cache
	retrier      Retrier
	metrics      *metrics.Metrics
}

// NewTransferUseCase creates a new TransferUseCase. cache, retrier and
// metrics are optional.
func NewTransferUseCase(
	txManager TransactionManager,
	playerRepo PlayerRepository,
	teamRepo TeamRepository,
	transferRepo TransferRepository,
	idGen IDGenerator,
	cache Cache,
	retrier Retrier,
	metrics *metrics.Metrics,
) *TransferUseCase {
	return &TransferUseCase{
		txManager:    txManager,
		playerRepo:   playerRepo,
		teamRepo:     teamRepo,
		transferRepo: transferRepo,
		idGen:        idGen,
		cache:        cache,
		retrier:      retrier,
		metrics:      metrics,
	}
}

// ListPlayerInput represents input for listing a player for sale.
type ListPlayerInput struct {
	PlayerID    string
	AskingPrice int64
	UserID      string
}

// ListPlayer puts a player on the transfer market at a fixed asking price.
func (uc *TransferUseCase) ListPlayer(ctx context.Context, input ListPlayerInput) (*domain.Transfer, error) {
	if err := domain.ValidateAskingPrice(input.AskingPrice); err != nil {
		return nil, err
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// The player row lock serializes List against concurrent Delist/Buy.
	player, err := uc.playerRepo.GetByIDForUpdate(ctx, tx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if err := uc.checkOwnership(ctx, player, input.UserID); err != nil {
		return nil, err
	}

	if player.Listed() {
		return nil, domain.ErrPlayerListed
	}

	now := time.Now().UTC()

	transfer := &domain.Transfer{
		ID:           uc.idGen.Generate(),
		PlayerID:     player.ID,
		SellerTeamID: player.TeamID,
		AskingPrice:  input.AskingPrice,
		Status:       domain.TransferActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := transfer.Validate(); err != nil {
		return nil, err
	}

	if err := uc.playerRepo.SetListing(ctx, tx, player.ID, input.AskingPrice, now); err != nil {
		return nil, err
	}

	if err := uc.transferRepo.Create(ctx, tx, transfer); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.PlayersListed.Inc()
	}

	return transfer, nil
}

// DelistPlayer removes a player from the transfer market and cancels the
// active transfer record. Delisting an unlisted player is an error.
func (uc *TransferUseCase) DelistPlayer(ctx context.Context, playerID, userID string) error {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	player, err := uc.playerRepo.GetByIDForUpdate(ctx, tx, playerID)
	if err != nil {
		return err
	}

	if err := uc.checkOwnership(ctx, player, userID); err != nil {
		return err
	}

	if !player.Listed() {
		return domain.ErrPlayerNotListed
	}

	now := time.Now().UTC()

	if err := uc.playerRepo.ClearListing(ctx, tx, player.ID, now); err != nil {
		return err
	}

	if err := uc.transferRepo.CancelActiveByPlayer(ctx, tx, player.ID, now); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.ListingsCancelled.Inc()
	}

	return nil
}

// BuyResult describes a completed purchase.
type BuyResult struct {
	PlayerID     string
	SellerTeamID string
	BuyerTeamID  string
	AskingPrice  int64
	FinalPrice   int64
}

// BuyPlayer purchases a listed player for the buying user's team. The whole
// read-validate-mutate sequence runs in one transaction; under concurrent
// purchases of the same player exactly one buyer wins and the rest observe
// ErrPlayerNotAvailable.
func (uc *TransferUseCase) BuyPlayer(ctx context.Context, playerID, buyerUserID string) (*BuyResult, error) {
	var result *BuyResult

	operation := func() error {
		var err error
		result, err = uc.buyPlayer(ctx, playerID, buyerUserID)
		return err
	}

	var err error
	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, operation)
	} else {
		err = operation()
	}

	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransfersCompleted.Inc()
		uc.metrics.TransferPrice.Observe(float64(result.FinalPrice))
	}

	return result, nil
}

func (uc *TransferUseCase) buyPlayer(ctx context.Context, playerID, buyerUserID string) (*BuyResult, error) {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	player, err := uc.playerRepo.GetByIDForUpdate(ctx, tx, playerID)
	if err != nil {
		return nil, err
	}

	if !player.Listed() {
		return nil, domain.ErrPlayerNotAvailable
	}

	buyerTeam, err := uc.teamRepo.GetByUserID(ctx, buyerUserID)
	if err != nil {
		return nil, err
	}

	if player.TeamID == buyerTeam.ID {
		return nil, domain.ErrOwnPlayer
	}

	// Lock both team rows in sorted order (DEADLOCK PREVENTION).
	teamIDs := []string{player.TeamID, buyerTeam.ID}
	sort.Strings(teamIDs)

	teams, err := uc.teamRepo.GetByIDsForUpdate(ctx, tx, teamIDs)
	if err != nil {
		return nil, err
	}

	teamMap := make(map[string]*domain.Team, len(teams))
	for _, t := range teams {
		teamMap[t.ID] = t
	}

	seller := teamMap[player.TeamID]
	if seller == nil {
		// A listed player pointing at a missing team means data corruption.
		return nil, domain.ErrInconsistentState
	}

	buyer := teamMap[buyerTeam.ID]
	if buyer == nil {
		return nil, domain.ErrTeamNotFound
	}

	finalPrice := domain.FinalPrice(*player.AskingPrice)

	if err := buyer.ValidateDebit(finalPrice); err != nil {
		return nil, err
	}

	// Roster bounds are checked against persisted counts under the team
	// row locks, never a stale snapshot.
	buyerSize, err := uc.playerRepo.CountByTeam(ctx, tx, buyer.ID)
	if err != nil {
		return nil, err
	}

	if err := domain.CheckAddPlayer(buyerSize); err != nil {
		return nil, err
	}

	sellerSize, err := uc.playerRepo.CountByTeam(ctx, tx, seller.ID)
	if err != nil {
		return nil, err
	}

	if err := domain.CheckRemovePlayer(sellerSize); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	if err := uc.playerRepo.TransferOwnership(ctx, tx, player.ID, buyer.ID, now); err != nil {
		return nil, err
	}

	if err := uc.teamRepo.UpdateBudget(ctx, tx, buyer.ID, buyer.ApplyDebit(finalPrice), now); err != nil {
		return nil, err
	}

	if err := uc.teamRepo.UpdateBudget(ctx, tx, seller.ID, seller.ApplyCredit(finalPrice), now); err != nil {
		return nil, err
	}

	if err := uc.transferRepo.Complete(ctx, tx, player.ID, buyer.ID, finalPrice, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &BuyResult{
		PlayerID:     player.ID,
		SellerTeamID: seller.ID,
		BuyerTeamID:  buyer.ID,
		AskingPrice:  *player.AskingPrice,
		FinalPrice:   finalPrice,
	}, nil
}

// MarketFilter narrows the market view. Zero values mean "no filter".
type MarketFilter struct {
	TeamName   string
	PlayerName string
	Position   *domain.Position
	MinPrice   *int64
	MaxPrice   *int64
}

// MarketQuery represents a filtered, paginated market request.
type MarketQuery struct {
	Filter   MarketFilter
	Page     int
	PageSize int
}

// MarketPage is one page of listed players, most recently listed first.
type MarketPage struct {
	Players  []*domain.Player `json:"players"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Total    int              `json:"total"`
	Pages    int              `json:"pages"`
}

// Market returns the listed players matching all supplied filters.
func (uc *TransferUseCase) Market(ctx context.Context, query MarketQuery) (*MarketPage, error) {
	if query.Filter.Position != nil && !query.Filter.Position.IsValid() {
		return nil, domain.ErrInvalidPosition
	}

	if query.Filter.MinPrice != nil && query.Filter.MaxPrice != nil &&
		*query.Filter.MinPrice > *query.Filter.MaxPrice {
		return nil, domain.ErrInvalidPriceBand
	}

	query.Page, query.PageSize = domain.NormalizePagination(query.Page, query.PageSize)

	cacheKey := marketCacheKey(query)
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, cacheKey); err == nil {
			var page MarketPage
			if err := json.Unmarshal(raw, &page); err == nil {
				return &page, nil
			}
		}
	}

	offset := (query.Page - 1) * query.PageSize

	players, total, err := uc.playerRepo.ListOnMarket(ctx, query.Filter, query.PageSize, offset)
	if err != nil {
		return nil, err
	}

	page := &MarketPage{
		Players:  players,
		Page:     query.Page,
		PageSize: query.PageSize,
		Total:    total,
		Pages:    (total + query.PageSize - 1) / query.PageSize,
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(page); err == nil {
			_ = uc.cache.Set(ctx, cacheKey, raw, MarketCacheTTL)
		}
	}

	return page, nil
}

// GetTransfer retrieves a transfer ledger record by ID.
func (uc *TransferUseCase) GetTransfer(ctx context.Context, id string) (*domain.Transfer, error) {
	return uc.transferRepo.GetByID(ctx, id)
}

// ListTeamTransfers lists the transfer history involving a team.
func (uc *TransferUseCase) ListTeamTransfers(ctx context.Context, userID string, limit, offset int) ([]*domain.Transfer, error) {
	if limit <= 0 {
		limit = domain.DefaultPageSize
	}
	if limit > domain.MaxPageSize {
		limit = domain.MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	team, err := uc.teamRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return uc.transferRepo.ListByTeam(ctx, team.ID, limit, offset)
}

// checkOwnership verifies the requesting user's team owns the player.
func (uc *TransferUseCase) checkOwnership(ctx context.Context, player *domain.Player, userID string) error {
	team, err := uc.teamRepo.GetByUserID(ctx, userID)
	if err != nil || team.ID != player.TeamID {
		return domain.ErrNotPlayerOwner
	}
	return nil
}

func marketCacheKey(query MarketQuery) string {
	position := ""
	if query.Filter.Position != nil {
		position = string(*query.Filter.Position)
	}

	minPrice, maxPrice := int64(-1), int64(-1)
	if query.Filter.MinPrice != nil {
		minPrice = *query.Filter.MinPrice
	}
	if query.Filter.MaxPrice != nil {
		maxPrice = *query.Filter.MaxPrice
	}

	return fmt.Sprintf("market:%s:%s:%s:%d:%d:%d:%d",
		query.Filter.TeamName, query.Filter.PlayerName, position,
		minPrice, maxPrice, query.Page, query.PageSize)
}
