package domain

import "fmt"

// Roster size bounds. Teams are created with 20 players and must stay
// within [15, 25] on every mutation afterwards.
const (
	MinRosterSize = 15
	MaxRosterSize = 25
)

// RosterBound identifies which roster limit a mutation hit.
type RosterBound string

const (
	RosterBoundMin RosterBound = "min"
	RosterBoundMax RosterBound = "max"
)

// RosterBoundError reports a roster mutation that would violate a bound.
type RosterBoundError struct {
	Bound RosterBound
	Size  int
}

func (e *RosterBoundError) Error() string {
	if e.Bound == RosterBoundMin {
		return fmt.Sprintf("team with %d players cannot drop below %d", e.Size, MinRosterSize)
	}
	return fmt.Sprintf("team with %d players cannot exceed %d", e.Size, MaxRosterSize)
}

// CanAddPlayer reports whether a team with the given roster size may gain a player.
func CanAddPlayer(size int) bool {
	return size < MaxRosterSize
}

// CanRemovePlayer reports whether a team with the given roster size may lose a player.
func CanRemovePlayer(size int) bool {
	return size > MinRosterSize
}

// CheckAddPlayer validates a roster addition against the persisted size.
func CheckAddPlayer(size int) error {
	if !CanAddPlayer(size) {
		return &RosterBoundError{Bound: RosterBoundMax, Size: size}
	}
	return nil
}

// CheckRemovePlayer validates a roster removal against the persisted size.
func CheckRemovePlayer(size int) error {
	if !CanRemovePlayer(size) {
		return &RosterBoundError{Bound: RosterBoundMin, Size: size}
	}
	return nil
}
