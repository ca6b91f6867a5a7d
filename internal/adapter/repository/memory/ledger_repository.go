package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/retailbank/ledger/internal/domain"
)

// LedgerRepository is the in-memory backend: clients indexed by tax ID and a
// sequential account numbering scheme. State lives and dies with the process.
type LedgerRepository struct {
	mu              sync.Mutex
	branch          string
	withdrawalLimit decimal.Decimal
	maxWithdrawals  int
	nextNumber      int64
	clients         map[string]*domain.Client
	accounts        []domain.Account
}

func NewLedgerRepository(branch string, withdrawalLimit decimal.Decimal, maxWithdrawals int) *LedgerRepository {
	return &LedgerRepository{
		branch:          branch,
		withdrawalLimit: withdrawalLimit,
		maxWithdrawals:  maxWithdrawals,
		clients:         make(map[string]*domain.Client),
	}
}

func (r *LedgerRepository) CreateClient(_ context.Context, client *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.clients[client.TaxID]; exists {
		return domain.ErrDuplicateClient
	}

	r.clients[client.TaxID] = client
	return nil
}

func (r *LedgerRepository) GetClientByTaxID(_ context.Context, taxID string) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, ok := r.clients[taxID]
	if !ok {
		return nil, domain.ErrClientNotFound
	}

	return client, nil
}

// CreateAccount assigns the next sequential account number, registers the
// account with its owner and adds it to the listing, all in one critical
// section.
func (r *LedgerRepository) CreateAccount(_ context.Context, client *domain.Client) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextNumber++
	acc := domain.NewCheckingAccount(r.nextNumber, r.branch, client, r.withdrawalLimit, r.maxWithdrawals)
	client.RegisterAccount(acc)
	r.accounts = append(r.accounts, acc)

	return acc, nil
}

// SaveAccount is a no-op: the repository shares the live object graph, so
// balance and history updates are already visible.
func (r *LedgerRepository) SaveAccount(_ context.Context, _ domain.Account) error {
	return nil
}

func (r *LedgerRepository) ListAccounts(_ context.Context) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}
