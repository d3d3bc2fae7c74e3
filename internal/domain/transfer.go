package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferStatus is the lifecycle state of a transfer record.
type TransferStatus string

const (
	TransferActive    TransferStatus = "active"
	TransferCompleted TransferStatus = "completed"
	TransferCancelled TransferStatus = "cancelled"
)

// Transfer is an append-style ledger record of a listing and its outcome.
// Exactly one active transfer may exist per player; completed and cancelled
// records are terminal and never mutated.
type Transfer struct {
	ID           string
	PlayerID     string
	SellerTeamID string
	BuyerTeamID  *string
	AskingPrice  int64
	FinalPrice   *int64
	Status       TransferStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// buyerPriceRate is the fraction of the asking price the buyer actually pays.
// The remaining 5% leaves the system; it is the platform's transaction model.
var buyerPriceRate = decimal.NewFromFloat(0.95)

// FinalPrice computes the price paid for a listing: 95% of the asking price,
// rounded down to a whole currency unit.
func FinalPrice(askingPrice int64) int64 {
	return decimal.NewFromInt(askingPrice).Mul(buyerPriceRate).Floor().IntPart()
}

// Validate validates a new listing record.
func (t *Transfer) Validate() error {
	if t.AskingPrice <= 0 {
		return ErrInvalidAskingPrice
	}
	return nil
}
