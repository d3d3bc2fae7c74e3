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

const teamColumns = `id, user_id, name, budget, created_at, updated_at`

// TeamRepository implements usecase.TeamRepository.
type TeamRepository struct {
	pool *pgxpool.Pool
}

// NewTeamRepository creates a new TeamRepository.
func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

// CreateTx inserts a team inside a transaction.
func (r *TeamRepository) CreateTx(ctx context.Context, tx usecase.Transaction, team *domain.Team) error {
	query := `
		INSERT INTO teams (id, user_id, name, budget, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	pgxTx := tx.(*Tx).PgxTx()
	_, err := pgxTx.Exec(ctx, query,
		team.ID,
		team.UserID,
		team.Name,
		team.Budget,
		team.CreatedAt,
		team.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrTeamExists
	}

	return err
}

// GetByID retrieves a team by ID.
func (r *TeamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`

	return scanTeam(r.pool.QueryRow(ctx, query, id))
}

// GetByUserID retrieves a user's team.
func (r *TeamRepository) GetByUserID(ctx context.Context, userID string) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE user_id = $1`

	return scanTeam(r.pool.QueryRow(ctx, query, userID))
}

// GetByIDsForUpdate retrieves multiple teams by IDs with FOR UPDATE locks.
// Callers pass IDs in sorted order so concurrent purchases lock teams in a
// stable order.
func (r *TeamRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = ANY($1) ORDER BY id FOR UPDATE`

	pgxTx := tx.(*Tx).PgxTx()
	rows, err := pgxTx.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0, len(ids))
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

// UpdateBudget updates a team's budget.
func (r *TeamRepository) UpdateBudget(ctx context.Context, tx usecase.Transaction, id string, budget int64, updatedAt time.Time) error {
	query := `UPDATE teams SET budget = $2, updated_at = $3 WHERE id = $1`

	pgxTx := tx.(*Tx).PgxTx()
	_, err := pgxTx.Exec(ctx, query, id, budget, updatedAt)

	return err
}

func scanTeam(row pgx.Row) (*domain.Team, error) {
	var team domain.Team
	err := row.Scan(
		&team.ID,
		&team.UserID,
		&team.Name,
		&team.Budget,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTeamNotFound
	}
	if err != nil {
		return nil, err
	}

	return &team, nil
}
