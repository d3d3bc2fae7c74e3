package usecase

import (
	"fmt"
	"math/rand"

	"github.com/iho/transfermarket/internal/domain"
)

// PlayerSpec describes a player to be created for a new team.
type PlayerSpec struct {
	Name     string
	Position domain.Position
	Value    int64
}

// squadShape is the fixed positional layout of a generated squad.
var squadShape = []struct {
	position domain.Position
	count    int
}{
	{domain.PositionGoalkeeper, 3},
	{domain.PositionDefender, 6},
	{domain.PositionMidfielder, 6},
	{domain.PositionAttacker, 5},
}

var playerNames = map[domain.Position][]string{
	domain.PositionGoalkeeper: {
		"David Martinez", "Alex Thompson", "Marco Silva",
	},
	domain.PositionDefender: {
		"John Smith", "Carlos Rodriguez", "Ahmed Hassan", "Pierre Dubois",
		"Marco Rossi", "James Wilson",
	},
	domain.PositionMidfielder: {
		"Michael Johnson", "Luis Garcia", "Thomas Mueller", "Andrea Pirlo",
		"Kevin De Bruyne", "Luka Modric",
	},
	domain.PositionAttacker: {
		"Robert Lewandowski", "Cristiano Ronaldo", "Lionel Messi",
		"Kylian Mbappe", "Erling Haaland",
	},
}

var clubNames = []string{
	"Manchester United", "Barcelona", "Real Madrid", "Bayern Munich",
	"Liverpool", "Chelsea", "Arsenal", "Juventus", "AC Milan", "Inter Milan",
	"Paris Saint-Germain", "Borussia Dortmund", "Atletico Madrid", "Tottenham",
	"Manchester City", "Ajax", "Porto", "Benfica", "Valencia", "Sevilla",
}

// valueBands hold the per-position valuation ranges in currency units.
var valueBands = map[domain.Position]struct{ min, max int64 }{
	domain.PositionGoalkeeper: {800_000, 2_000_000},
	domain.PositionDefender:   {600_000, 1_800_000},
	domain.PositionMidfielder: {700_000, 2_200_000},
	domain.PositionAttacker:   {900_000, 2_500_000},
}

var (
	teamNameSuffixes = []string{"United", "City", "FC", "Athletic", "Rovers", "Wanderers"}
	teamNameCities   = []string{"London", "Manchester", "Liverpool", "Birmingham", "Leeds", "Newcastle"}
)

// SquadGenerator produces randomized initial squads. Content generation only;
// name collisions are allowed and no seeding contract is offered.
type SquadGenerator struct{}

// NewSquadGenerator creates a new SquadGenerator.
func NewSquadGenerator() *SquadGenerator {
	return &SquadGenerator{}
}

// GenerateSquad produces the 20 players of a new team: 3 goalkeepers,
// 6 defenders, 6 midfielders and 5 attackers, each with a pool name suffixed
// with a sequence number, a random club of origin and a value drawn from the
// position's band.
func (g *SquadGenerator) GenerateSquad() []PlayerSpec {
	specs := make([]PlayerSpec, 0, SquadSize)

	for _, shape := range squadShape {
		names := playerNames[shape.position]
		band := valueBands[shape.position]

		for i := 0; i < shape.count; i++ {
			name := names[rand.Intn(len(names))]
			club := clubNames[rand.Intn(len(clubNames))]

			specs = append(specs, PlayerSpec{
				Name:     fmt.Sprintf("%s %d (%s)", name, i+1, club),
				Position: shape.position,
				Value:    band.min + rand.Int63n(band.max-band.min+1),
			})
		}
	}

	return specs
}

// GenerateTeamName produces a display name for a new team.
func (g *SquadGenerator) GenerateTeamName() string {
	city := teamNameCities[rand.Intn(len(teamNameCities))]
	suffix := teamNameSuffixes[rand.Intn(len(teamNameSuffixes))]

	return city + " " + suffix
}
