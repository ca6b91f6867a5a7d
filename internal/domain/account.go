package domain

import "github.com/shopspring/decimal"

// Account is the capability set a Transaction operates on. The two
// implementations are BankAccount and CheckingAccount; no open-ended
// extension is expected.
type Account interface {
	Number() int64
	Branch() string
	Owner() *Client
	Balance() decimal.Decimal
	History() *History
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
}

// BankAccount holds the base deposit/withdraw rules: amounts must be
// positive and the balance never goes negative.
type BankAccount struct {
	number  int64
	branch  string
	owner   *Client
	balance decimal.Decimal
	history *History
}

func NewBankAccount(number int64, branch string, owner *Client) *BankAccount {
	return &BankAccount{
		number:  number,
		branch:  branch,
		owner:   owner,
		balance: decimal.Zero,
		history: NewHistory(),
	}
}

func (a *BankAccount) Number() int64 {
	return a.number
}

func (a *BankAccount) Branch() string {
	return a.branch
}

func (a *BankAccount) Owner() *Client {
	return a.owner
}

func (a *BankAccount) Balance() decimal.Decimal {
	return a.balance
}

func (a *BankAccount) History() *History {
	return a.history
}

// Deposit adds amount to the balance. The amount must be positive; the
// balance is either updated in full or left untouched.
func (a *BankAccount) Deposit(amount decimal.Decimal) error {
	if !isPositiveAmount(amount) {
		return ErrInvalidAmount
	}

	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw removes amount from the balance. Fails without side effects when
// the amount is not positive or exceeds the current balance.
func (a *BankAccount) Withdraw(amount decimal.Decimal) error {
	if !isPositiveAmount(amount) {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}

	a.balance = a.balance.Sub(amount)
	return nil
}

// CheckingAccount adds a per-transaction withdrawal ceiling and a cap on the
// number of recorded withdrawals. Both are fixed at creation. The count is
// over all Withdrawal history entries, not a calendar-day window.
type CheckingAccount struct {
	BankAccount
	withdrawalLimit decimal.Decimal
	maxWithdrawals  int
}

func NewCheckingAccount(number int64, branch string, owner *Client, withdrawalLimit decimal.Decimal, maxWithdrawals int) *CheckingAccount {
	return &CheckingAccount{
		BankAccount:     *NewBankAccount(number, branch, owner),
		withdrawalLimit: withdrawalLimit,
		maxWithdrawals:  maxWithdrawals,
	}
}

// RestoreCheckingAccount rebuilds an account from persisted state. Used by
// repository adapters only; it bypasses the deposit/withdraw rules.
func RestoreCheckingAccount(
	number int64,
	branch string,
	owner *Client,
	balance decimal.Decimal,
	withdrawalLimit decimal.Decimal,
	maxWithdrawals int,
	history *History,
) *CheckingAccount {
	if history == nil {
		history = NewHistory()
	}
	return &CheckingAccount{
		BankAccount: BankAccount{
			number:  number,
			branch:  branch,
			owner:   owner,
			balance: balance,
			history: history,
		},
		withdrawalLimit: withdrawalLimit,
		maxWithdrawals:  maxWithdrawals,
	}
}

func (a *CheckingAccount) WithdrawalLimit() decimal.Decimal {
	return a.withdrawalLimit
}

func (a *CheckingAccount) MaxWithdrawals() int {
	return a.maxWithdrawals
}

// Withdraw checks the ceiling first, then the withdrawal count, then
// delegates to the base rules. First failing check wins.
func (a *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	priorWithdrawals := a.History().CountByKind(KindWithdrawal)

	if amount.GreaterThan(a.withdrawalLimit) {
		return ErrWithdrawalLimitExceeded
	}
	if priorWithdrawals >= a.maxWithdrawals {
		return ErrWithdrawalCountExceeded
	}

	return a.BankAccount.Withdraw(amount)
}
