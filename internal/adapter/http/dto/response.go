package dto

import (
	"time"

	"github.com/iho/transfermarket/internal/domain"
	"github.com/iho/transfermarket/internal/usecase"
)

// Response is the envelope every endpoint replies with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID     string  `json:"id"`
	Email  string  `json:"email"`
	TeamID *string `json:"team_id"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:     u.ID,
		Email:  u.Email,
		TeamID: u.TeamID,
	}
}

// PlayerResponse represents a player in API responses.
type PlayerResponse struct {
	ID               string          `json:"id"`
	TeamID           string          `json:"team_id"`
	Name             string          `json:"name"`
	Position         domain.Position `json:"position"`
	Value            int64           `json:"value"`
	OnTransferList   bool            `json:"on_transfer_list"`
	AskingPrice      *int64          `json:"asking_price,omitempty"`
	OriginalTeamName string          `json:"original_team_name"`
	ListedAt         *time.Time      `json:"listed_at,omitempty"`
}

// PlayerFromDomain converts a domain player to a response.
func PlayerFromDomain(p *domain.Player) *PlayerResponse {
	return &PlayerResponse{
		ID:               p.ID,
		TeamID:           p.TeamID,
		Name:             p.Name,
		Position:         p.Position,
		Value:            p.Value,
		OnTransferList:   p.OnTransferList,
		AskingPrice:      p.AskingPrice,
		OriginalTeamName: p.OriginalTeamName,
		ListedAt:         p.ListedAt,
	}
}

// PlayersFromDomain converts domain players to responses.
func PlayersFromDomain(players []*domain.Player) []*PlayerResponse {
	result := make([]*PlayerResponse, len(players))
	for i, p := range players {
		result[i] = PlayerFromDomain(p)
	}
	return result
}

// TeamResponse represents a team with its roster in API responses.
type TeamResponse struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Budget  int64             `json:"budget"`
	Players []*PlayerResponse `json:"players,omitempty"`
}

// TeamFromDomain converts a domain team to a response.
func TeamFromDomain(t *domain.Team) *TeamResponse {
	return &TeamResponse{
		ID:     t.ID,
		Name:   t.Name,
		Budget: t.Budget,
	}
}

// TeamWithPlayersFromUseCase converts a team and roster to a response.
func TeamWithPlayersFromUseCase(tp *usecase.TeamWithPlayers) *TeamResponse {
	resp := TeamFromDomain(tp.Team)
	resp.Players = PlayersFromDomain(tp.Players)
	return resp
}

// TransferResponse represents a transfer ledger record in API responses.
type TransferResponse struct {
	ID           string                `json:"id"`
	PlayerID     string                `json:"player_id"`
	SellerTeamID string                `json:"seller_team_id"`
	BuyerTeamID  *string               `json:"buyer_team_id,omitempty"`
	AskingPrice  int64                 `json:"asking_price"`
	FinalPrice   *int64                `json:"final_price,omitempty"`
	Status       domain.TransferStatus `json:"status"`
	CreatedAt    time.Time             `json:"created_at"`
}

// TransferFromDomain converts a domain transfer to a response.
func TransferFromDomain(t *domain.Transfer) *TransferResponse {
	return &TransferResponse{
		ID:           t.ID,
		PlayerID:     t.PlayerID,
		SellerTeamID: t.SellerTeamID,
		BuyerTeamID:  t.BuyerTeamID,
		AskingPrice:  t.AskingPrice,
		FinalPrice:   t.FinalPrice,
		Status:       t.Status,
		CreatedAt:    t.CreatedAt,
	}
}

// TransfersFromDomain converts domain transfers to responses.
func TransfersFromDomain(transfers []*domain.Transfer) []*TransferResponse {
	result := make([]*TransferResponse, len(transfers))
	for i, t := range transfers {
		result[i] = TransferFromDomain(t)
	}
	return result
}

// BuyResultResponse represents a completed purchase in API responses.
type BuyResultResponse struct {
	PlayerID     string `json:"player_id"`
	SellerTeamID string `json:"seller_team_id"`
	BuyerTeamID  string `json:"buyer_team_id"`
	AskingPrice  int64  `json:"asking_price"`
	FinalPrice   int64  `json:"final_price"`
}

// BuyResultFromUseCase converts a purchase result to a response.
func BuyResultFromUseCase(r *usecase.BuyResult) *BuyResultResponse {
	return &BuyResultResponse{
		PlayerID:     r.PlayerID,
		SellerTeamID: r.SellerTeamID,
		BuyerTeamID:  r.BuyerTeamID,
		AskingPrice:  r.AskingPrice,
		FinalPrice:   r.FinalPrice,
	}
}

// Pagination describes the position of a page inside the full result set.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// MarketResponse represents one page of the transfer market.
type MarketResponse struct {
	Players    []*PlayerResponse `json:"players"`
	Pagination Pagination        `json:"pagination"`
}

// MarketFromUseCase converts a market page to a response.
func MarketFromUseCase(page *usecase.MarketPage) *MarketResponse {
	return &MarketResponse{
		Players: PlayersFromDomain(page.Players),
		Pagination: Pagination{
			Page:  page.Page,
			Limit: page.PageSize,
			Total: page.Total,
			Pages: page.Pages,
		},
	}
}

// AuthResponse represents a successful login or registration.
type AuthResponse struct {
	User  *UserResponse `json:"user"`
	Team  *TeamResponse `json:"team"`
	Token string        `json:"token"`
}

// ProfileResponse represents the caller's user and team.
type ProfileResponse struct {
	User *UserResponse `json:"user"`
	Team *TeamResponse `json:"team"`
}
