package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDepositApplyAppendsHistory(t *testing.T) {
	acc := newTestChecking(t)

	tr := NewDeposit(decimal.RequireFromString("42.10"))
	if err := tr.Apply(acc); err != nil {
		t.Fatal(err)
	}

	entries := acc.History().Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Kind != KindDeposit {
		t.Fatalf("expected %s entry, got %s", KindDeposit, entries[0].Kind)
	}
	if !entries[0].Amount.Equal(tr.Amount()) {
		t.Fatalf("entry amount %s does not match transaction amount %s", entries[0].Amount, tr.Amount())
	}
	if entries[0].ID == "" {
		t.Fatal("entry id must be assigned")
	}
	if entries[0].At.IsZero() {
		t.Fatal("entry timestamp must be assigned")
	}
}

func TestDepositApplyFailureLeavesHistoryEmpty(t *testing.T) {
	acc := newTestChecking(t)

	tr := NewDeposit(decimal.Zero)
	if err := tr.Apply(acc); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if acc.History().Len() != 0 {
		t.Fatalf("failed deposit recorded in history: %d entries", acc.History().Len())
	}
}

func TestWithdrawalFromInvalidRawAlwaysFails(t *testing.T) {
	acc := newTestChecking(t)
	if err := acc.Deposit(decimal.NewFromInt(100)); err != nil {
		t.Fatal(err)
	}

	for _, raw := range []string{"-5", "10.5.0", "", "abc"} {
		tr := NewWithdrawal(raw)
		if err := tr.Apply(acc); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("NewWithdrawal(%q).Apply expected ErrInvalidAmount, got %v", raw, err)
		}
	}

	if acc.History().Len() != 0 {
		t.Fatalf("invalid withdrawals recorded in history: %d entries", acc.History().Len())
	}
	if acc.Balance().StringFixed(2) != "100.00" {
		t.Fatalf("invalid withdrawals changed balance: %s", acc.Balance())
	}
}

func TestWithdrawalApplyNormalizesCommaAmount(t *testing.T) {
	acc := newTestChecking(t)
	if err := acc.Deposit(decimal.NewFromInt(100)); err != nil {
		t.Fatal(err)
	}

	tr := NewWithdrawal("10,50")
	if err := tr.Apply(acc); err != nil {
		t.Fatal(err)
	}
	if acc.Balance().StringFixed(2) != "89.50" {
		t.Fatalf("expected balance 89.50, got %s", acc.Balance().StringFixed(2))
	}
}

func TestClientExecuteForwardsResult(t *testing.T) {
	acc := newTestChecking(t)
	owner := acc.Owner()

	if err := owner.Execute(acc, NewDeposit(decimal.NewFromInt(10))); err != nil {
		t.Fatal(err)
	}
	err := owner.Execute(acc, NewWithdrawal("999999"))
	if !errors.Is(err, ErrWithdrawalLimitExceeded) {
		t.Fatalf("Execute must propagate the transaction result, got %v", err)
	}
}

func TestClientPrimaryAccount(t *testing.T) {
	owner := NewClient("333", "Carla", mustDate(t, "2000-10-01"), "Rua C, 30")

	if _, err := owner.PrimaryAccount(); !errors.Is(err, ErrNoAccount) {
		t.Fatalf("expected ErrNoAccount, got %v", err)
	}

	first := NewCheckingAccount(7, "0001", owner, decimal.NewFromInt(500), 3)
	second := NewCheckingAccount(8, "0001", owner, decimal.NewFromInt(500), 3)
	owner.RegisterAccount(first)
	owner.RegisterAccount(second)

	acc, err := owner.PrimaryAccount()
	if err != nil {
		t.Fatal(err)
	}
	if acc.Number() != 7 {
		t.Fatalf("expected first registered account, got #%d", acc.Number())
	}
}
