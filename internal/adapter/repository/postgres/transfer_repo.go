package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/transfermarket/internal/domain"
	"github.com/iho/transfermarket/internal/usecase"
)

const transferColumns = `id, player_id, seller_team_id, buyer_team_id,
	asking_price, final_price, status, created_at, updated_at`

// TransferRepository implements usecase.TransferRepository.
type TransferRepository struct {
	pool *pgxpool.Pool
}

// NewTransferRepository creates a new TransferRepository.
func NewTransferRepository(pool *pgxpool.Pool) *TransferRepository {
	return &TransferRepository{pool: pool}
}

// Create inserts a new transfer record. The partial unique index on
// (player_id) WHERE status = 'active' rejects a second active listing.
func (r *TransferRepository) Create(ctx context.Context, tx usecase.Transaction, transfer *domain.Transfer) error {
	query := `
		INSERT INTO transfers (id, player_id, seller_team_id, buyer_team_id,
			asking_price, final_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	pgxTx := tx.(*Tx).PgxTx()
	_, err := pgxTx.Exec(ctx, query,
		transfer.ID,
		transfer.PlayerID,
		transfer.SellerTeamID,
		transfer.BuyerTeamID,
		transfer.AskingPrice,
		transfer.FinalPrice,
		transfer.Status,
		transfer.CreatedAt,
		transfer.UpdatedAt,
	)

	return err
}

// GetByID retrieves a transfer by ID.
func (r *TransferRepository) GetByID(ctx context.Context, id string) (*domain.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE id = $1`

	return scanTransfer(r.pool.QueryRow(ctx, query, id))
}

// GetActiveByPlayer retrieves the player's active transfer, if any.
func (r *TransferRepository) GetActiveByPlayer(ctx context.Context, playerID string) (*domain.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE player_id = $1 AND status = $2`

	return scanTransfer(r.pool.QueryRow(ctx, query, playerID, domain.TransferActive))
}

// Complete marks the player's active transfer as completed with the buyer
// and the price actually paid.
func (r *TransferRepository) Complete(ctx context.Context, tx usecase.Transaction, playerID, buyerTeamID string, finalPrice int64, updatedAt time.Time) error {
	query := `
		UPDATE transfers
		SET status = $2, buyer_team_id = $3, final_price = $4, updated_at = $5
		WHERE player_id = $1 AND status = $6
	`

	pgxTx := tx.(*Tx).PgxTx()
	res, err := pgxTx.Exec(ctx, query,
		playerID, domain.TransferCompleted, buyerTeamID, finalPrice, updatedAt, domain.TransferActive)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return domain.ErrTransferNotFound
	}

	return nil
}

// CancelActiveByPlayer transitions the player's active transfer to cancelled.
func (r *TransferRepository) CancelActiveByPlayer(ctx context.Context, tx usecase.Transaction, playerID string, updatedAt time.Time) error {
	query := `
		UPDATE transfers
		SET status = $2, updated_at = $3
		WHERE player_id = $1 AND status = $4
	`

	pgxTx := tx.(*Tx).PgxTx()
	_, err := pgxTx.Exec(ctx, query,
		playerID, domain.TransferCancelled, updatedAt, domain.TransferActive)

	return err
}

// ListByTeam lists transfers where the team was seller or buyer, newest first.
func (r *TransferRepository) ListByTeam(ctx context.Context, teamID string, limit, offset int) ([]*domain.Transfer, error) {
	query := `
		SELECT ` + transferColumns + `
		FROM transfers
		WHERE seller_team_id = $1 OR buyer_team_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, teamID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transfers := make([]*domain.Transfer, 0)
	for rows.Next() {
		transfer, err := scanTransfer(rows)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, transfer)
	}

	return transfers, rows.Err()
}

func scanTransfer(row pgx.Row) (*domain.Transfer, error) {
	var transfer domain.Transfer
	err := row.Scan(
		&transfer.ID,
		&transfer.PlayerID,
		&transfer.SellerTeamID,
		&transfer.BuyerTeamID,
		&transfer.AskingPrice,
		&transfer.FinalPrice,
		&transfer.Status,
		&transfer.CreatedAt,
		&transfer.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTransferNotFound
	}
	if err != nil {
		return nil, err
	}

	return &transfer, nil
}
