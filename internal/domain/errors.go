package domain

import "errors"

var ErrInvalidAmount = errors.New("Invalid amount")
var ErrInsufficientFunds = errors.New("Insufficient funds")
var ErrWithdrawalLimitExceeded = errors.New("Withdrawal amount exceeds the per-transaction limit")
var ErrWithdrawalCountExceeded = errors.New("Maximum number of withdrawals exceeded")
var ErrClientNotFound = errors.New("Client not found")
var ErrNoAccount = errors.New("Client has no account")
var ErrDuplicateClient = errors.New("Tax ID already registered")
