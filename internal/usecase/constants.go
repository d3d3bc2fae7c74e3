package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking tables
	DefaultTransactionTimeout = 10 * time.Second

	// MarketCacheTTL is how long a rendered market page may be served from cache
	MarketCacheTTL = 5 * time.Second

	// SquadSize is the number of players generated for a new team
	SquadSize = 20
)
