package domain

import "github.com/shopspring/decimal"

type TransactionKind string

const (
	KindDeposit    TransactionKind = "DEPOSIT"
	KindWithdrawal TransactionKind = "WITHDRAWAL"
)

// Transaction is a unit of work applied to an account. On success Apply
// appends exactly one history entry; on failure the account and its history
// are left untouched.
type Transaction interface {
	Amount() decimal.Decimal
	Apply(acc Account) error
}

type Deposit struct {
	amount decimal.Decimal
}

func NewDeposit(amount decimal.Decimal) *Deposit {
	return &Deposit{amount: amount}
}

func (d *Deposit) Amount() decimal.Decimal {
	return d.amount
}

func (d *Deposit) Apply(acc Account) error {
	if err := acc.Deposit(d.amount); err != nil {
		return err
	}

	acc.History().Append(NewEntry(KindDeposit, d.amount))
	return nil
}

// Withdrawal is built from raw text; the amount is parsed at construction.
// A parse failure leaves the withdrawal invalid and Apply always fails.
type Withdrawal struct {
	amount  decimal.Decimal
	invalid bool
}

func NewWithdrawal(raw string) *Withdrawal {
	amount, err := ParseAmount(raw)
	if err != nil {
		return &Withdrawal{invalid: true}
	}
	return &Withdrawal{amount: amount}
}

func (wd *Withdrawal) Amount() decimal.Decimal {
	return wd.amount
}

func (wd *Withdrawal) Apply(acc Account) error {
	if wd.invalid {
		return ErrInvalidAmount
	}
	if err := acc.Withdraw(wd.amount); err != nil {
		return err
	}

	acc.History().Append(NewEntry(KindWithdrawal, wd.amount))
	return nil
}
