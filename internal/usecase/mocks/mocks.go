package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/iho/transfermarket/internal/domain"
	"github.com/iho/transfermarket/internal/usecase"
)

// MockPlayerRepository is a mock implementation of PlayerRepository.
type MockPlayerRepository struct {
	mu      sync.RWMutex
	players map[string]*domain.Player

	CreateTxFunc          func(ctx context.Context, tx usecase.Transaction, player *domain.Player) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.Player, error)
	GetByIDForUpdateFunc  func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Player, error)
	ListByTeamFunc        func(ctx context.Context, teamID string) ([]*domain.Player, error)
	CountByTeamFunc       func(ctx context.Context, tx usecase.Transaction, teamID string) (int, error)
	SetListingFunc        func(ctx context.Context, tx usecase.Transaction, id string, askingPrice int64, listedAt time.Time) error
	ClearListingFunc      func(ctx context.Context, tx usecase.Transaction, id string, updatedAt time.Time) error
	TransferOwnershipFunc func(ctx context.Context, tx usecase.Transaction, id, teamID string, updatedAt time.Time) error
	ListOnMarketFunc      func(ctx context.Context, filter usecase.MarketFilter, limit, offset int) ([]*domain.Player, int, error)
}

func NewMockPlayerRepository() *MockPlayerRepository {
	return &MockPlayerRepository{
		players: make(map[string]*domain.Player),
	}
}

// Add seeds a player into the in-memory store.
func (m *MockPlayerRepository) Add(player *domain.Player) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.players[player.ID] = player
}

func (m *MockPlayerRepository) CreateTx(ctx context.Context, tx usecase.Transaction, player *domain.Player) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, player)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.players[player.ID] = player
	return nil
}

func (m *MockPlayerRepository) GetByID(ctx context.Context, id string) (*domain.Player, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.players[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPlayerNotFound
}

func (m *MockPlayerRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Player, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	p, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cp := *p
	return &cp, nil
}

func (m *MockPlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]*domain.Player, error) {
	if m.ListByTeamFunc != nil {
		return m.ListByTeamFunc(ctx, teamID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var players []*domain.Player
	for _, p := range m.players {
		if p.TeamID == teamID {
			players = append(players, p)
		}
	}
	return players, nil
}

func (m *MockPlayerRepository) CountByTeam(ctx context.Context, tx usecase.Transaction, teamID string) (int, error) {
	if m.CountByTeamFunc != nil {
		return m.CountByTeamFunc(ctx, tx, teamID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, p := range m.players {
		if p.TeamID == teamID {
			count++
		}
	}
	return count, nil
}

func (m *MockPlayerRepository) SetListing(ctx context.Context, tx usecase.Transaction, id string, askingPrice int64, listedAt time.Time) error {
	if m.SetListingFunc != nil {
		return m.SetListingFunc(ctx, tx, id, askingPrice, listedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.players[id]; ok {
		p.OnTransferList = true
		p.AskingPrice = &askingPrice
		p.ListedAt = &listedAt
		p.UpdatedAt = listedAt
	}
	return nil
}

func (m *MockPlayerRepository) ClearListing(ctx context.Context, tx usecase.Transaction, id string, updatedAt time.Time) error {
	if m.ClearListingFunc != nil {
		return m.ClearListingFunc(ctx, tx, id, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.players[id]; ok {
		p.OnTransferList = false
		p.AskingPrice = nil
		p.ListedAt = nil
		p.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockPlayerRepository) TransferOwnership(ctx context.Context, tx usecase.Transaction, id, teamID string, updatedAt time.Time) error {
	if m.TransferOwnershipFunc != nil {
		return m.TransferOwnershipFunc(ctx, tx, id, teamID, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.players[id]; ok {
		p.TeamID = teamID
		p.OnTransferList = false
		p.AskingPrice = nil
		p.ListedAt = nil
		p.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockPlayerRepository) ListOnMarket(ctx context.Context, filter usecase.MarketFilter, limit, offset int) ([]*domain.Player, int, error) {
	if m.ListOnMarketFunc != nil {
		return m.ListOnMarketFunc(ctx, filter, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var listed []*domain.Player
	for _, p := range m.players {
		if !p.OnTransferList {
			continue
		}
		if filter.Position != nil && p.Position != *filter.Position {
			continue
		}
		if filter.MinPrice != nil && (p.AskingPrice == nil || *p.AskingPrice < *filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && (p.AskingPrice == nil || *p.AskingPrice > *filter.MaxPrice) {
			continue
		}
		listed = append(listed, p)
	}
	total := len(listed)
	if offset >= len(listed) {
		return nil, total, nil
	}
	listed = listed[offset:]
	if limit < len(listed) {
		listed = listed[:limit]
	}
	return listed, total, nil
}

// MockTeamRepository is a mock implementation of TeamRepository.
type MockTeamRepository struct {
	mu    sync.RWMutex
	teams map[string]*domain.Team

	CreateTxFunc          func(ctx context.Context, tx usecase.Transaction, team *domain.Team) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.Team, error)
	GetByUserIDFunc       func(ctx context.Context, userID string) (*domain.Team, error)
	GetByIDsForUpdateFunc func(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.Team, error)
	UpdateBudgetFunc      func(ctx context.Context, tx usecase.Transaction, id string, budget int64, updatedAt time.Time) error
}

func NewMockTeamRepository() *MockTeamRepository {
	return &MockTeamRepository{
		teams: make(map[string]*domain.Team),
	}
}

// Add seeds a team into the in-memory store.
func (m *MockTeamRepository) Add(team *domain.Team) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teams[team.ID] = team
}

func (m *MockTeamRepository) CreateTx(ctx context.Context, tx usecase.Transaction, team *domain.Team) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, team)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teams[team.ID] = team
	return nil
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.teams[id]; ok {
		return t, nil
	}
	return nil, domain.ErrTeamNotFound
}

func (m *MockTeamRepository) GetByUserID(ctx context.Context, userID string) (*domain.Team, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.teams {
		if t.UserID == userID {
			return t, nil
		}
	}
	return nil, domain.ErrTeamNotFound
}

func (m *MockTeamRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.Team, error) {
	if m.GetByIDsForUpdateFunc != nil {
		return m.GetByIDsForUpdateFunc(ctx, tx, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var teams []*domain.Team
	for _, id := range ids {
		if t, ok := m.teams[id]; ok {
			teams = append(teams, t)
		}
	}
	return teams, nil
}

func (m *MockTeamRepository) UpdateBudget(ctx context.Context, tx usecase.Transaction, id string, budget int64, updatedAt time.Time) error {
	if m.UpdateBudgetFunc != nil {
		return m.UpdateBudgetFunc(ctx, tx, id, budget, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.teams[id]; ok {
		t.Budget = budget
		t.UpdatedAt = updatedAt
	}
	return nil
}

// MockTransferRepository is a mock implementation of TransferRepository.
type MockTransferRepository struct {
	mu        sync.RWMutex
	transfers map[string]*domain.Transfer

	CreateFunc               func(ctx context.Context, tx usecase.Transaction, transfer *domain.Transfer) error
	GetByIDFunc              func(ctx context.Context, id string) (*domain.Transfer, error)
	GetActiveByPlayerFunc    func(ctx context.Context, playerID string) (*domain.Transfer, error)
	CompleteFunc             func(ctx context.Context, tx usecase.Transaction, playerID, buyerTeamID string, finalPrice int64, updatedAt time.Time) error
	CancelActiveByPlayerFunc func(ctx context.Context, tx usecase.Transaction, playerID string, updatedAt time.Time) error
	ListByTeamFunc           func(ctx context.Context, teamID string, limit, offset int) ([]*domain.Transfer, error)
}

func NewMockTransferRepository() *MockTransferRepository {
	return &MockTransferRepository{
		transfers: make(map[string]*domain.Transfer),
	}
}

func (m *MockTransferRepository) Create(ctx context.Context, tx usecase.Transaction, transfer *domain.Transfer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, transfer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transfers[transfer.ID] = transfer
	return nil
}

func (m *MockTransferRepository) GetByID(ctx context.Context, id string) (*domain.Transfer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.transfers[id]; ok {
		return t, nil
	}
	return nil, domain.ErrTransferNotFound
}

func (m *MockTransferRepository) GetActiveByPlayer(ctx context.Context, playerID string) (*domain.Transfer, error) {
	if m.GetActiveByPlayerFunc != nil {
		return m.GetActiveByPlayerFunc(ctx, playerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.transfers {
		if t.PlayerID == playerID && t.Status == domain.TransferActive {
			return t, nil
		}
	}
	return nil, domain.ErrTransferNotFound
}

func (m *MockTransferRepository) Complete(ctx context.Context, tx usecase.Transaction, playerID, buyerTeamID string, finalPrice int64, updatedAt time.Time) error {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, tx, playerID, buyerTeamID, finalPrice, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.transfers {
		if t.PlayerID == playerID && t.Status == domain.TransferActive {
			t.Status = domain.TransferCompleted
			t.BuyerTeamID = &buyerTeamID
			t.FinalPrice = &finalPrice
			t.UpdatedAt = updatedAt
			return nil
		}
	}
	return domain.ErrTransferNotFound
}

func (m *MockTransferRepository) CancelActiveByPlayer(ctx context.Context, tx usecase.Transaction, playerID string, updatedAt time.Time) error {
	if m.CancelActiveByPlayerFunc != nil {
		return m.CancelActiveByPlayerFunc(ctx, tx, playerID, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.transfers {
		if t.PlayerID == playerID && t.Status == domain.TransferActive {
			t.Status = domain.TransferCancelled
			t.UpdatedAt = updatedAt
			return nil
		}
	}
	return domain.ErrTransferNotFound
}

func (m *MockTransferRepository) ListByTeam(ctx context.Context, teamID string, limit, offset int) ([]*domain.Transfer, error) {
	if m.ListByTeamFunc != nil {
		return m.ListByTeamFunc(ctx, teamID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var transfers []*domain.Transfer
	for _, t := range m.transfers {
		if t.SellerTeamID == teamID || (t.BuyerTeamID != nil && *t.BuyerTeamID == teamID) {
			transfers = append(transfers, t)
		}
	}
	return transfers, nil
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	SetTeamIDFunc  func(ctx context.Context, userID, teamID string, updatedAt time.Time) error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

// Add seeds a user into the in-memory store.
func (m *MockUserRepository) Add(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) SetTeamID(ctx context.Context, userID, teamID string, updatedAt time.Time) error {
	if m.SetTeamIDFunc != nil {
		return m.SetTeamIDFunc(ctx, userID, teamID, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[userID]; ok {
		u.TeamID = &teamID
		u.UpdatedAt = updatedAt
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockRetrier is a mock implementation of Retrier that runs the operation once.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}

// MockCache is a mock implementation of Cache.
type MockCache struct {
	mu   sync.RWMutex
	data map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string][]byte),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("cache miss: %s", key)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		data: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.data[key] = response
	} else {
		m.data[key] = []byte("processing")
	}
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = response
	return nil
}
