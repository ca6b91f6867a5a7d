package models

import (
	"errors"
	"strings"
)

type CreateAccountRequest struct {
	TaxID string `json:"taxId"`
}

func (r CreateAccountRequest) Validate() error {
	if strings.TrimSpace(r.TaxID) == "" {
		return errors.New("taxId is required")
	}
	return nil
}

type CreateAccountResponse struct {
	AccountNumber int64  `json:"accountNumber"`
	Branch        string `json:"branch"`
	OwnerName     string `json:"ownerName"`
	Balance       string `json:"balance"`
}

type AccountSummary struct {
	AccountNumber int64  `json:"accountNumber"`
	Branch        string `json:"branch"`
	OwnerName     string `json:"ownerName"`
}

type ListAccountsResponse struct {
	Accounts []AccountSummary `json:"accounts"`
}

type StatementEntry struct {
	Kind   string `json:"kind"`
	Amount string `json:"amount"`
	At     string `json:"at"`
}

type StatementResponse struct {
	AccountNumber int64            `json:"accountNumber"`
	Branch        string           `json:"branch"`
	OwnerName     string           `json:"ownerName"`
	Balance       string           `json:"balance"`
	Entries       []StatementEntry `json:"entries"`
}
