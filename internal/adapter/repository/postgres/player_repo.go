package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/transfermarket/internal/domain"
	"github.com/iho/transfermarket/internal/usecase"
)

const playerColumns = `id, team_id, name, position, value, on_transfer_list,
	asking_price, original_team_name, listed_at, created_at, updated_at`

// PlayerRepository implements usecase.PlayerRepository.
type PlayerRepository struct {
	pool *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository.
func NewPlayerRepository(pool *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{pool: pool}
}

// CreateTx inserts a player inside a transaction.
func (r *PlayerRepository) CreateTx(ctx context.Context, tx usecase.Transaction, player *domain.Player) error {
	query := `
		INSERT INTO players (id, team_id, name, position, value, on_transfer_list,
			asking_price, original_team_name, listed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	pgxTx := tx.(*Tx).PgxTx()
	_, err := pgxTx.Exec(ctx, query,
		player.ID,
		player.TeamID,
		player.Name,
		player.Position,
		player.Value,
		player.OnTransferList,
		player.AskingPrice,
		player.OriginalTeamName,
		player.ListedAt,
		player.CreatedAt,
		player.UpdatedAt,
	)

	return err
}

// GetByID retrieves a player by ID.
func (r *PlayerRepository) GetByID(ctx context.Context, id string) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

	return scanPlayer(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate retrieves a player by ID with a FOR UPDATE lock. The
// player row lock is what serializes concurrent Buy/Delist on one listing.
func (r *PlayerRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1 FOR UPDATE`

	pgxTx := tx.(*Tx).PgxTx()
	return scanPlayer(pgxTx.QueryRow(ctx, query, id))
}

// ListByTeam lists a team's roster.
func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE team_id = $1 ORDER BY position, name`

	rows, err := r.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPlayers(rows)
}

// CountByTeam counts a team's roster inside the current transaction.
func (r *PlayerRepository) CountByTeam(ctx context.Context, tx usecase.Transaction, teamID string) (int, error) {
	query := `SELECT COUNT(*) FROM players WHERE team_id = $1`

	pgxTx := tx.(*Tx).PgxTx()

	var count int
	err := pgxTx.QueryRow(ctx, query, teamID).Scan(&count)

	return count, err
}

// SetListing flags a player as listed at the given asking price.
func (r *PlayerRepository) SetListing(ctx context.Context, tx usecase.Transaction, id string, askingPrice int64, listedAt time.Time) error {
	query := `
		UPDATE players
		SET on_transfer_list = TRUE, asking_price = $2, listed_at = $3, updated_at = $3
		WHERE id = $1
	`

	pgxTx := tx.(*Tx).PgxTx()
	_, err := pgxTx.Exec(ctx, query, id, askingPrice, listedAt)

	return err
}

// ClearListing removes a player's listing flag and price.
func (r *PlayerRepository) ClearListing(ctx context.Context, tx usecase.Transaction, id string, updatedAt time.Time) error {
	query := `
		UPDATE players
		SET on_transfer_list = FALSE, asking_price = NULL, listed_at = NULL, updated_at = $2
		WHERE id = $1
	`

	pgxTx := tx.(*Tx).PgxTx()
	_, err := pgxTx.Exec(ctx, query, id, updatedAt)

	return err
}

// TransferOwnership moves a player to a new team and clears the listing.
func (r *PlayerRepository) TransferOwnership(ctx context.Context, tx usecase.Transaction, id, teamID string, updatedAt time.Time) error {
	query := `
		UPDATE players
		SET team_id = $2, on_transfer_list = FALSE, asking_price = NULL, listed_at = NULL, updated_at = $3
		WHERE id = $1
	`

	pgxTx := tx.(*Tx).PgxTx()
	_, err := pgxTx.Exec(ctx, query, id, teamID, updatedAt)

	return err
}

// ListOnMarket returns listed players matching the filter, most recently
// listed first, plus the total match count.
func (r *PlayerRepository) ListOnMarket(ctx context.Context, filter usecase.MarketFilter, limit, offset int) ([]*domain.Player, int, error) {
	where, args := marketWhere(filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM players ` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM players %s ORDER BY listed_at DESC LIMIT $%d OFFSET $%d`,
		playerColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	players, err := scanPlayers(rows)
	if err != nil {
		return nil, 0, err
	}

	return players, total, nil
}

// marketWhere builds the WHERE clause for market queries. All filters are
// pushed into SQL, including the provenance team-name match.
func marketWhere(filter usecase.MarketFilter) (string, []any) {
	conditions := []string{"on_transfer_list = TRUE"}
	args := []any{}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Position != nil {
		conditions = append(conditions, "position = "+arg(*filter.Position))
	}

	if filter.MinPrice != nil {
		conditions = append(conditions, "asking_price >= "+arg(*filter.MinPrice))
	}

	if filter.MaxPrice != nil {
		conditions = append(conditions, "asking_price <= "+arg(*filter.MaxPrice))
	}

	if filter.PlayerName != "" {
		conditions = append(conditions, "name ILIKE "+arg("%"+filter.PlayerName+"%"))
	}

	if filter.TeamName != "" {
		conditions = append(conditions, "original_team_name ILIKE "+arg("%"+filter.TeamName+"%"))
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var player domain.Player
	err := row.Scan(
		&player.ID,
		&player.TeamID,
		&player.Name,
		&player.Position,
		&player.Value,
		&player.OnTransferList,
		&player.AskingPrice,
		&player.OriginalTeamName,
		&player.ListedAt,
		&player.CreatedAt,
		&player.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}

	return &player, nil
}

func scanPlayers(rows pgx.Rows) ([]*domain.Player, error) {
	players := make([]*domain.Player, 0)
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}

	return players, rows.Err()
}
