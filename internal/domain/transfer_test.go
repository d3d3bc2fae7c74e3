package domain

import "testing"

func TestFinalPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		askingPrice int64
		want        int64
	}{
		{name: "round million", askingPrice: 1_000_000, want: 950_000},
		{name: "rounds down", askingPrice: 999_999, want: 949_999},
		{name: "small price", askingPrice: 1, want: 0},
		{name: "exact multiple of 20", askingPrice: 100, want: 95},
		{name: "odd price", askingPrice: 333_333, want: 316_666},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FinalPrice(tt.askingPrice); got != tt.want {
				t.Errorf("FinalPrice(%d) = %d, want %d", tt.askingPrice, got, tt.want)
			}
		})
	}
}

func TestFinalPrice_SpreadIsLost(t *testing.T) {
	t.Parallel()

	// The 5% spread leaves the system entirely; buyer debit equals seller
	// credit, both at the final price.
	asking := int64(1_000_000)
	final := FinalPrice(asking)
	if spread := asking - final; spread != 50_000 {
		t.Errorf("expected 50000 spread, got %d", spread)
	}
}

func TestTransfer_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		askingPrice int64
		expectError error
	}{
		{name: "valid listing", askingPrice: 500_000, expectError: nil},
		{name: "zero price", askingPrice: 0, expectError: ErrInvalidAskingPrice},
		{name: "negative price", askingPrice: -100, expectError: ErrInvalidAskingPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transfer := &Transfer{
				PlayerID:     "player-1",
				SellerTeamID: "team-1",
				AskingPrice:  tt.askingPrice,
				Status:       TransferActive,
			}

			err := transfer.Validate()
			if tt.expectError == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.expectError != nil && err != tt.expectError {
				t.Errorf("expected %v, got %v", tt.expectError, err)
			}
		})
	}
}

func TestPlayer_Listed(t *testing.T) {
	t.Parallel()

	price := int64(750_000)

	p := &Player{OnTransferList: true, AskingPrice: &price}
	if !p.Listed() {
		t.Error("expected listed player")
	}

	p = &Player{OnTransferList: false, AskingPrice: nil}
	if p.Listed() {
		t.Error("expected unlisted player")
	}

	// Flag without a price means corrupted listing state, not a valid listing.
	p = &Player{OnTransferList: true, AskingPrice: nil}
	if p.Listed() {
		t.Error("listing flag without price must not count as listed")
	}
}

func TestPosition_IsValid(t *testing.T) {
	t.Parallel()

	for _, pos := range Positions {
		if !pos.IsValid() {
			t.Errorf("expected %s to be valid", pos)
		}
	}

	if Position("Striker").IsValid() {
		t.Error("expected unknown position to be invalid")
	}
}
