package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transfer market metrics
	PlayersListed      prometheus.Counter
	ListingsCancelled  prometheus.Counter
	TransfersCompleted prometheus.Counter
	TransferPrice      prometheus.Histogram

	// Team metrics
	TeamsCreated         prometheus.Counter
	TeamCreationFailures prometheus.Counter

	// Authentication metrics
	AuthFailures prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		PlayersListed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "transfermarket_players_listed_total",
			Help: "Total number of players put on the transfer list",
		}),
		ListingsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "transfermarket_listings_cancelled_total",
			Help: "Total number of listings withdrawn by their sellers",
		}),
		TransfersCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "transfermarket_transfers_completed_total",
			Help: "Total number of completed purchases",
		}),
		TransferPrice: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "transfermarket_transfer_price",
			Help:    "Final prices of completed transfers",
			Buckets: []float64{100_000, 250_000, 500_000, 1_000_000, 2_000_000, 5_000_000},
		}),
		TeamsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "transfermarket_teams_created_total",
			Help: "Total number of teams created with generated squads",
		}),
		TeamCreationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "transfermarket_team_creation_failures_total",
			Help: "Total number of failed background team creations",
		}),
		AuthFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "transfermarket_auth_failures_total",
			Help: "Total number of rejected login attempts",
		}),
	}
}
