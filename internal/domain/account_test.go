package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func newTestChecking(t *testing.T) *CheckingAccount {
	t.Helper()
	owner := NewClient("111", "Ana", mustDate(t, "1990-04-12"), "Rua A, 10")
	acc := NewCheckingAccount(1, "0001", owner, decimal.NewFromInt(500), 3)
	owner.RegisterAccount(acc)
	return acc
}

func mustDate(t *testing.T, raw string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		t.Fatalf("parse date %q: %v", raw, err)
	}
	return parsed
}

func TestDepositIncreasesBalance(t *testing.T) {
	acc := newTestChecking(t)

	if err := acc.Deposit(decimal.RequireFromString("200.00")); err != nil {
		t.Fatal(err)
	}
	if acc.Balance().StringFixed(2) != "200.00" {
		t.Fatalf("expected balance 200.00, got %s", acc.Balance().StringFixed(2))
	}
}

func TestDepositRejectsNonPositiveAmount(t *testing.T) {
	acc := newTestChecking(t)

	if err := acc.Deposit(decimal.Zero); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if err := acc.Deposit(decimal.NewFromInt(-10)); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if !acc.Balance().IsZero() {
		t.Fatalf("failed deposit must not change balance, got %s", acc.Balance())
	}
}

func TestWithdrawInsufficientFundsLeavesStateUntouched(t *testing.T) {
	acc := newTestChecking(t)
	if err := acc.Deposit(decimal.NewFromInt(100)); err != nil {
		t.Fatal(err)
	}

	err := acc.Withdraw(decimal.NewFromInt(150))
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if acc.Balance().StringFixed(2) != "100.00" {
		t.Fatalf("balance changed on failed withdrawal: %s", acc.Balance())
	}
}

func TestCheckingWithdrawCeilingBeatsBalanceCheck(t *testing.T) {
	acc := newTestChecking(t)
	if err := acc.Deposit(decimal.NewFromInt(10000)); err != nil {
		t.Fatal(err)
	}

	// ceiling applies regardless of balance
	err := acc.Withdraw(decimal.RequireFromString("500.01"))
	if !errors.Is(err, ErrWithdrawalLimitExceeded) {
		t.Fatalf("expected ErrWithdrawalLimitExceeded, got %v", err)
	}

	// a withdrawal at exactly the ceiling is allowed
	if err := acc.Withdraw(decimal.NewFromInt(500)); err != nil {
		t.Fatalf("withdrawal at the ceiling should succeed, got %v", err)
	}
}

func TestCheckingWithdrawCountLimit(t *testing.T) {
	owner := NewClient("222", "Bruno", mustDate(t, "1985-01-20"), "Rua B, 20")
	acc := NewCheckingAccount(2, "0001", owner, decimal.NewFromInt(500), 3)
	owner.RegisterAccount(acc)

	deposit := NewDeposit(decimal.NewFromInt(1000))
	if err := owner.Execute(acc, deposit); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if err := owner.Execute(acc, NewWithdrawal("10")); err != nil {
			t.Fatalf("withdrawal %d should succeed, got %v", i+1, err)
		}
	}

	err := owner.Execute(acc, NewWithdrawal("10"))
	if !errors.Is(err, ErrWithdrawalCountExceeded) {
		t.Fatalf("expected ErrWithdrawalCountExceeded after 3 withdrawals, got %v", err)
	}

	// 1 deposit + 3 withdrawals recorded, failed attempt absent
	if acc.History().Len() != 4 {
		t.Fatalf("expected 4 history entries, got %d", acc.History().Len())
	}
	if acc.Balance().StringFixed(2) != "970.00" {
		t.Fatalf("expected balance 970.00, got %s", acc.Balance().StringFixed(2))
	}
}

func TestBalanceEqualsSumOfSuccessfulOperations(t *testing.T) {
	acc := newTestChecking(t)
	owner := acc.Owner()

	operations := []struct {
		tx Transaction
		ok bool
	}{
		{NewDeposit(decimal.NewFromInt(300)), true},
		{NewWithdrawal("120,25"), true},
		{NewWithdrawal("1000"), false}, // over ceiling
		{NewWithdrawal("300"), false},  // insufficient
		{NewDeposit(decimal.NewFromInt(50)), true},
		{NewWithdrawal("abc"), false},
	}

	successes := 0
	expected := decimal.Zero
	for _, op := range operations {
		err := owner.Execute(acc, op.tx)
		if op.ok {
			if err != nil {
				t.Fatalf("expected success, got %v", err)
			}
			successes++
			if _, isDeposit := op.tx.(*Deposit); isDeposit {
				expected = expected.Add(op.tx.Amount())
			} else {
				expected = expected.Sub(op.tx.Amount())
			}
		} else if err == nil {
			t.Fatal("expected failure, got success")
		}
	}

	if !acc.Balance().Equal(expected) {
		t.Fatalf("expected balance %s, got %s", expected, acc.Balance())
	}
	if acc.Balance().IsNegative() {
		t.Fatalf("balance must never be negative, got %s", acc.Balance())
	}
	if acc.History().Len() != successes {
		t.Fatalf("history must only record successes: want %d entries, got %d", successes, acc.History().Len())
	}
}

func TestStatementScenario(t *testing.T) {
	owner := NewClient("111", "Ana", mustDate(t, "1990-04-12"), "Rua A, 10")
	acc := NewCheckingAccount(1, "0001", owner, decimal.NewFromInt(500), 3)
	owner.RegisterAccount(acc)

	amount, err := ParseAmount("200,00")
	if err != nil {
		t.Fatal(err)
	}
	if err := owner.Execute(acc, NewDeposit(amount)); err != nil {
		t.Fatal(err)
	}
	if acc.Balance().StringFixed(2) != "200.00" {
		t.Fatalf("expected 200.00 after deposit, got %s", acc.Balance().StringFixed(2))
	}

	if err := owner.Execute(acc, NewWithdrawal("50")); err != nil {
		t.Fatal(err)
	}
	if acc.Balance().StringFixed(2) != "150.00" {
		t.Fatalf("expected 150.00 after withdrawal, got %s", acc.Balance().StringFixed(2))
	}

	entries := acc.History().Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Kind != KindDeposit || entries[0].Amount.StringFixed(2) != "200.00" {
		t.Fatalf("unexpected first entry: %v %s", entries[0].Kind, entries[0].Amount)
	}
	if entries[1].Kind != KindWithdrawal || entries[1].Amount.StringFixed(2) != "50.00" {
		t.Fatalf("unexpected second entry: %v %s", entries[1].Kind, entries[1].Amount)
	}

	// within the ceiling but over the balance
	if err := owner.Execute(acc, NewWithdrawal("200")); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	// the ceiling check runs before the balance check
	if err := owner.Execute(acc, NewWithdrawal("1000")); !errors.Is(err, ErrWithdrawalLimitExceeded) {
		t.Fatalf("expected ErrWithdrawalLimitExceeded, got %v", err)
	}
	if acc.Balance().StringFixed(2) != "150.00" {
		t.Fatalf("failed withdrawal changed balance: %s", acc.Balance())
	}
	if acc.History().Len() != 2 {
		t.Fatalf("failed withdrawal appended to history: %d entries", acc.History().Len())
	}
}

func TestHistoryEntriesReturnsACopy(t *testing.T) {
	acc := newTestChecking(t)
	if err := acc.Owner().Execute(acc, NewDeposit(decimal.NewFromInt(10))); err != nil {
		t.Fatal(err)
	}

	entries := acc.History().Entries()
	entries[0].Amount = decimal.NewFromInt(999)

	fresh := acc.History().Entries()
	if fresh[0].Amount.StringFixed(2) != "10.00" {
		t.Fatalf("history was mutated through Entries(): %s", fresh[0].Amount)
	}
}
