package domain

import "time"

// Position is a player's position on the pitch.
type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionAttacker   Position = "Attacker"
)

// Positions lists all valid positions in squad order.
var Positions = []Position{
	PositionGoalkeeper,
	PositionDefender,
	PositionMidfielder,
	PositionAttacker,
}

var validPositions = func() map[Position]bool {
	m := make(map[Position]bool, len(Positions))
	for _, p := range Positions {
		m[p] = true
	}
	return m
}()

// IsValid checks if the position is one of the four known positions.
func (p Position) IsValid() bool {
	return validPositions[p]
}

// Player represents a squad member owned by exactly one team.
type Player struct {
	ID               string
	TeamID           string
	Name             string
	Position         Position
	Value            int64
	OnTransferList   bool
	AskingPrice      *int64
	OriginalTeamName string
	ListedAt         *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Listed reports whether the player is up for sale. OnTransferList and
// AskingPrice must always be set or cleared together.
func (p *Player) Listed() bool {
	return p.OnTransferList && p.AskingPrice != nil
}
