package models

import (
	"errors"
	"strings"
)

// Amount stays raw text here; parsing and validation belong to the core.
type DepositRequest struct {
	TaxID  string `json:"taxId"`
	Amount string `json:"amount"`
}

func (r DepositRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.TaxID) == "" {
		errs = append(errs, "taxId is required")
	}
	if strings.TrimSpace(r.Amount) == "" {
		errs = append(errs, "amount is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type WithdrawRequest struct {
	TaxID  string `json:"taxId"`
	Amount string `json:"amount"`
}

func (r WithdrawRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.TaxID) == "" {
		errs = append(errs, "taxId is required")
	}
	if strings.TrimSpace(r.Amount) == "" {
		errs = append(errs, "amount is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type TransactionResponse struct {
	AccountNumber int64  `json:"accountNumber"`
	Kind          string `json:"kind"`
	Amount        string `json:"amount"`
	Balance       string `json:"balance"`
}
