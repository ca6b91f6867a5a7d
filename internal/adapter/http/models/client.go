package models

import (
	"errors"
	"strings"
)

type CreateClientRequest struct {
	TaxID          string `json:"taxId"`
	Name           string `json:"name"`
	DOB            string `json:"dob"`
	Address        string `json:"address"`
	TransactionPin string `json:"transactionPin,omitempty"`
}

func (r CreateClientRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.TaxID) == "" {
		errs = append(errs, "taxId is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(r.DOB) == "" {
		errs = append(errs, "dob is required")
	}
	if strings.TrimSpace(r.Address) == "" {
		errs = append(errs, "address is required")
	}

	if pin := strings.TrimSpace(r.TransactionPin); pin != "" {
		if len(pin) != 4 {
			errs = append(errs, "transactionPin must be exactly 4 digits")
		} else {
			for _, ch := range pin {
				if ch < '0' || ch > '9' {
					errs = append(errs, "transactionPin must be exactly 4 digits")
					break
				}
			}
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type CreateClientResponse struct {
	TaxID     string `json:"taxId"`
	Name      string `json:"name"`
	DOB       string `json:"dob"`
	Address   string `json:"address"`
	CreatedAt string `json:"createdAt"`
}
