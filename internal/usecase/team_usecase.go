package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/iho/transfermarket/internal/domain"
	"github.com/iho/transfermarket/internal/infrastructure/metrics"
)

// TeamUseCase handles team creation and retrieval.
type TeamUseCase struct {
	txManager  TransactionManager
	teamRepo   TeamRepository
	playerRepo PlayerRepository
	userRepo   UserRepository
	generator  *SquadGenerator
	idGen      IDGenerator
	metrics    *metrics.Metrics
}

// NewTeamUseCase creates a new TeamUseCase.
func NewTeamUseCase(
	txManager TransactionManager,
	teamRepo TeamRepository,
	playerRepo PlayerRepository,
	userRepo UserRepository,
	generator *SquadGenerator,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *TeamUseCase {
	return &TeamUseCase{
		txManager:  txManager,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		userRepo:   userRepo,
		generator:  generator,
		idGen:      idGen,
		metrics:    metrics,
	}
}

// CreateTeamForUser creates a team with a generated 20-player squad for the
// user. Idempotent: if the user already has a team it is returned unchanged,
// so a failed background creation can be retried safely.
func (uc *TeamUseCase) CreateTeamForUser(ctx context.Context, userID string) (*domain.Team, error) {
	existing, err := uc.teamRepo.GetByUserID(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrTeamNotFound) {
		return nil, err
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()

	team := &domain.Team{
		ID:        uc.idGen.Generate(),
		UserID:    userID,
		Name:      uc.generator.GenerateTeamName(),
		Budget:    domain.InitialBudget,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.teamRepo.CreateTx(ctx, tx, team); err != nil {
		if errors.Is(err, domain.ErrTeamExists) {
			// Lost a race with a concurrent creation for the same user.
			tx.Rollback(ctx)
			return uc.teamRepo.GetByUserID(ctx, userID)
		}
		return nil, err
	}

	for _, spec := range uc.generator.GenerateSquad() {
		player := &domain.Player{
			ID:               uc.idGen.Generate(),
			TeamID:           team.ID,
			Name:             spec.Name,
			Position:         spec.Position,
			Value:            spec.Value,
			OriginalTeamName: team.Name,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		if err := uc.playerRepo.CreateTx(ctx, tx, player); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if err := uc.userRepo.SetTeamID(ctx, userID, team.ID, now); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TeamsCreated.Inc()
	}

	return team, nil
}

// TeamWithPlayers is a team together with its current roster.
type TeamWithPlayers struct {
	Team    *domain.Team
	Players []*domain.Player
}

// GetTeamByUserID returns the user's team and roster.
func (uc *TeamUseCase) GetTeamByUserID(ctx context.Context, userID string) (*TeamWithPlayers, error) {
	team, err := uc.teamRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	players, err := uc.playerRepo.ListByTeam(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	return &TeamWithPlayers{Team: team, Players: players}, nil
}
