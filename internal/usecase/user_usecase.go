package usecase

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/iho/transfermarket/internal/domain"
	"github.com/iho/transfermarket/internal/infrastructure/logging"
	"github.com/iho/transfermarket/internal/infrastructure/metrics"
)

// teamCreationTimeout bounds the detached squad-generation task.
const teamCreationTimeout = 30 * time.Second

// UserUseCase handles registration, login and profile retrieval.
type UserUseCase struct {
	userRepo UserRepository
	teamUC   *TeamUseCase
	idGen    IDGenerator
	logger   *logging.Logger
	metrics  *metrics.Metrics
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(
	userRepo UserRepository,
	teamUC *TeamUseCase,
	idGen IDGenerator,
	logger *logging.Logger,
	metrics *metrics.Metrics,
) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		teamUC:   teamUC,
		idGen:    idGen,
		logger:   logger,
		metrics:  metrics,
	}
}

// LoginOrRegisterInput represents credentials for the combined
// login-or-register flow.
type LoginOrRegisterInput struct {
	Email    string
	Password string
}

// LoginOrRegister authenticates an existing user or registers a new one.
// Registration kicks off team creation as a detached background task; the
// caller may see "team not yet ready" until it finishes. Returns the user and
// whether a new account was created.
func (uc *UserUseCase) LoginOrRegister(ctx context.Context, input LoginOrRegisterInput) (*domain.User, bool, error) {
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, false, err
	}

	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, false, err
	}

	user, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, false, err
	}

	if user != nil {
		if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(input.Password)); err != nil {
			if uc.metrics != nil {
				uc.metrics.AuthFailures.Inc()
			}
			return nil, false, domain.ErrUnauthorized
		}

		return sanitize(user), false, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}

	now := time.Now().UTC()

	user = &domain.User{
		ID:             uc.idGen.Generate(),
		Email:          input.Email,
		HashedPassword: string(hashed),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			// Another request registered this email first; fall back to login.
			return uc.loginExisting(ctx, input)
		}
		return nil, false, err
	}

	uc.createTeamAsync(ctx, user.ID)

	return sanitize(user), true, nil
}

// loginExisting authenticates against a user that is known to exist.
func (uc *UserUseCase) loginExisting(ctx context.Context, input LoginOrRegisterInput) (*domain.User, bool, error) {
	user, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, false, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(input.Password)); err != nil {
		if uc.metrics != nil {
			uc.metrics.AuthFailures.Inc()
		}
		return nil, false, domain.ErrUnauthorized
	}

	return sanitize(user), false, nil
}

// sanitize returns a copy of the user with the credential hash stripped.
func sanitize(user *domain.User) *domain.User {
	clean := *user
	clean.HashedPassword = ""
	return &clean
}

// createTeamAsync generates the user's squad without blocking registration.
// Failures are logged and counted; the user can retry via EnsureTeam.
func (uc *UserUseCase) createTeamAsync(ctx context.Context, userID string) {
	bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), teamCreationTimeout)

	go func() {
		defer cancel()

		if _, err := uc.teamUC.CreateTeamForUser(bgCtx, userID); err != nil {
			uc.logger.ErrorCtx(bgCtx, "background team creation failed",
				"user_id", userID, "error", err)

			if uc.metrics != nil {
				uc.metrics.TeamCreationFailures.Inc()
			}
		}
	}()
}

// EnsureTeam creates the user's team if background creation never finished.
func (uc *UserUseCase) EnsureTeam(ctx context.Context, userID string) (*domain.Team, error) {
	return uc.teamUC.CreateTeamForUser(ctx, userID)
}

// Profile is a user together with their team, if it exists yet.
type Profile struct {
	User *domain.User
	Team *TeamWithPlayers
}

// GetProfile returns the caller's user record and team. A nil team means
// creation has not completed yet.
func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	clean := sanitize(user)

	team, err := uc.teamUC.GetTeamByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			return &Profile{User: clean}, nil
		}
		return nil, err
	}

	return &Profile{User: clean, Team: team}, nil
}
