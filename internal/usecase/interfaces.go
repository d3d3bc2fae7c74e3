package usecase

import (
	"context"
	"time"

	"github.com/iho/transfermarket/internal/domain"
)

// PlayerRepository defines data access for players.
type PlayerRepository interface {
	CreateTx(ctx context.Context, tx Transaction, player *domain.Player) error
	GetByID(ctx context.Context, id string) (*domain.Player, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Player, error)
	ListByTeam(ctx context.Context, teamID string) ([]*domain.Player, error)
	CountByTeam(ctx context.Context, tx Transaction, teamID string) (int, error)
	SetListing(ctx context.Context, tx Transaction, id string, askingPrice int64, listedAt time.Time) error
	ClearListing(ctx context.Context, tx Transaction, id string, updatedAt time.Time) error
	TransferOwnership(ctx context.Context, tx Transaction, id, teamID string, updatedAt time.Time) error
	ListOnMarket(ctx context.Context, filter MarketFilter, limit, offset int) ([]*domain.Player, int, error)
}

// TeamRepository defines data access for teams.
type TeamRepository interface {
	CreateTx(ctx context.Context, tx Transaction, team *domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Team, error)
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []string) ([]*domain.Team, error)
	UpdateBudget(ctx context.Context, tx Transaction, id string, budget int64, updatedAt time.Time) error
}

// TransferRepository defines data access for the transfer ledger.
type TransferRepository interface {
	Create(ctx context.Context, tx Transaction, transfer *domain.Transfer) error
	GetByID(ctx context.Context, id string) (*domain.Transfer, error)
	GetActiveByPlayer(ctx context.Context, playerID string) (*domain.Transfer, error)
	Complete(ctx context.Context, tx Transaction, playerID, buyerTeamID string, finalPrice int64, updatedAt time.Time) error
	CancelActiveByPlayer(ctx context.Context, tx Transaction, playerID string, updatedAt time.Time) error
	ListByTeam(ctx context.Context, teamID string, limit, offset int) ([]*domain.Transfer, error)
}

// UserRepository defines data access for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	SetTeamID(ctx context.Context, userID, teamID string, updatedAt time.Time) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient storage conflicts.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
