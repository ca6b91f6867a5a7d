package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/retailbank/ledger/internal/domain"
)

// LedgerRepository is the persistent backend. Clients, accounts and history
// entries are stored in postgres; history inserts are idempotent on the
// entry id, keeping the log append-only.
type LedgerRepository struct {
	db              *sql.DB
	branch          string
	withdrawalLimit decimal.Decimal
	maxWithdrawals  int
}

func NewLedgerRepository(db *sql.DB, branch string, withdrawalLimit decimal.Decimal, maxWithdrawals int) *LedgerRepository {
	return &LedgerRepository{
		db:              db,
		branch:          branch,
		withdrawalLimit: withdrawalLimit,
		maxWithdrawals:  maxWithdrawals,
	}
}

func (r *LedgerRepository) CreateClient(ctx context.Context, client *domain.Client) error {
	const query = `
INSERT INTO clients (tax_id, name, dob, address, transaction_pin_hash)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (tax_id) DO NOTHING`

	result, err := r.db.ExecContext(
		ctx,
		query,
		client.TaxID,
		client.Name,
		client.DOB,
		client.Address,
		client.TransactionPinHash,
	)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("create client rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrDuplicateClient
	}

	return nil
}

func (r *LedgerRepository) GetClientByTaxID(ctx context.Context, taxID string) (*domain.Client, error) {
	const query = `
SELECT tax_id, name, dob, address, transaction_pin_hash
FROM clients
WHERE tax_id = $1`

	var client domain.Client
	err := r.db.QueryRowContext(ctx, query, taxID).Scan(
		&client.TaxID,
		&client.Name,
		&client.DOB,
		&client.Address,
		&client.TransactionPinHash,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get client by tax id: %w", err)
	}

	if err := r.loadAccounts(ctx, &client); err != nil {
		return nil, err
	}

	return &client, nil
}

func (r *LedgerRepository) CreateAccount(ctx context.Context, client *domain.Client) (domain.Account, error) {
	const query = `
INSERT INTO accounts (branch, tax_id, balance, withdrawal_limit, max_withdrawals)
VALUES ($1, $2, 0.00, $3, $4)
RETURNING number`

	var number int64
	if err := r.db.QueryRowContext(
		ctx,
		query,
		r.branch,
		client.TaxID,
		r.withdrawalLimit,
		r.maxWithdrawals,
	).Scan(&number); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	acc := domain.RestoreCheckingAccount(number, r.branch, client, decimal.Zero, r.withdrawalLimit, r.maxWithdrawals, nil)
	client.RegisterAccount(acc)

	return acc, nil
}

// SaveAccount persists the current balance and any history entries not yet
// stored. The insert conflicts away entries already present, so replaying a
// full history is safe.
func (r *LedgerRepository) SaveAccount(ctx context.Context, acc domain.Account) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save account tx: %w", err)
	}

	const updateQuery = `UPDATE accounts SET balance = $1 WHERE number = $2`
	if _, err := tx.ExecContext(ctx, updateQuery, acc.Balance(), acc.Number()); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("save account balance: %w", err)
	}

	const entryQuery = `
INSERT INTO history_entries (id, account_number, kind, amount, occurred_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO NOTHING`

	for _, entry := range acc.History().Entries() {
		if _, err := tx.ExecContext(
			ctx,
			entryQuery,
			entry.ID,
			acc.Number(),
			string(entry.Kind),
			entry.Amount,
			entry.At,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("save history entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save account tx: %w", err)
	}

	return nil
}

func (r *LedgerRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	const query = `
SELECT a.number, a.branch, a.balance, a.withdrawal_limit, a.max_withdrawals,
	c.tax_id, c.name, c.dob, c.address, c.transaction_pin_hash
FROM accounts a
JOIN clients c ON c.tax_id = a.tax_id
ORDER BY a.number`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var (
			number          int64
			branch          string
			balance         decimal.Decimal
			withdrawalLimit decimal.Decimal
			maxWithdrawals  int
			owner           domain.Client
		)
		if err := rows.Scan(
			&number,
			&branch,
			&balance,
			&withdrawalLimit,
			&maxWithdrawals,
			&owner.TaxID,
			&owner.Name,
			&owner.DOB,
			&owner.Address,
			&owner.TransactionPinHash,
		); err != nil {
			return nil, fmt.Errorf("scan account row: %w", err)
		}

		history, err := r.loadHistory(ctx, number)
		if err != nil {
			return nil, err
		}

		client := owner
		acc := domain.RestoreCheckingAccount(number, branch, &client, balance, withdrawalLimit, maxWithdrawals, history)
		client.RegisterAccount(acc)
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate account rows: %w", err)
	}

	return accounts, nil
}

func (r *LedgerRepository) loadAccounts(ctx context.Context, client *domain.Client) error {
	const query = `
SELECT number, branch, balance, withdrawal_limit, max_withdrawals
FROM accounts
WHERE tax_id = $1
ORDER BY number`

	rows, err := r.db.QueryContext(ctx, query, client.TaxID)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}
	defer rows.Close()

	type accountRow struct {
		number          int64
		branch          string
		balance         decimal.Decimal
		withdrawalLimit decimal.Decimal
		maxWithdrawals  int
	}

	var accountRows []accountRow
	for rows.Next() {
		var row accountRow
		if err := rows.Scan(&row.number, &row.branch, &row.balance, &row.withdrawalLimit, &row.maxWithdrawals); err != nil {
			return fmt.Errorf("scan account row: %w", err)
		}
		accountRows = append(accountRows, row)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate account rows: %w", err)
	}

	for _, row := range accountRows {
		history, err := r.loadHistory(ctx, row.number)
		if err != nil {
			return err
		}
		acc := domain.RestoreCheckingAccount(row.number, row.branch, client, row.balance, row.withdrawalLimit, row.maxWithdrawals, history)
		client.RegisterAccount(acc)
	}

	return nil
}

func (r *LedgerRepository) loadHistory(ctx context.Context, accountNumber int64) (*domain.History, error) {
	const query = `
SELECT id, kind, amount, occurred_at
FROM history_entries
WHERE account_number = $1
ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var entry domain.Entry
		var kind string
		if err := rows.Scan(&entry.ID, &kind, &entry.Amount, &entry.At); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entry.Kind = domain.TransactionKind(kind)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history entries: %w", err)
	}

	return domain.NewHistoryFromEntries(entries), nil
}
