package domain

import "time"

// InitialBudget is the budget every team starts with.
const InitialBudget int64 = 5_000_000

// Team represents a user's squad and its budget.
// Roster membership lives on the players (Player.TeamID); the roster size
// is always counted from persisted state, never cached here.
type Team struct {
	ID        string
	UserID    string
	Name      string
	Budget    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateDebit checks that the team can pay amount without going negative.
func (t *Team) ValidateDebit(amount int64) error {
	if t.Budget < amount {
		return ErrInsufficientBudget
	}
	return nil
}

// ApplyDebit returns the budget after paying amount.
func (t *Team) ApplyDebit(amount int64) int64 {
	return t.Budget - amount
}

// ApplyCredit returns the budget after receiving amount.
func (t *Team) ApplyCredit(amount int64) int64 {
	return t.Budget + amount
}
