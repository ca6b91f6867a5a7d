package repo_interfaces

import (
	"context"

	"github.com/retailbank/ledger/internal/domain"
)

// LedgerRepository holds every client and account for the lifetime of the
// process (or of the database, for the postgres adapter).
type LedgerRepository interface {
	CreateClient(ctx context.Context, client *domain.Client) error
	GetClientByTaxID(ctx context.Context, taxID string) (*domain.Client, error)
	CreateAccount(ctx context.Context, client *domain.Client) (domain.Account, error)
	SaveAccount(ctx context.Context, acc domain.Account) error
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
