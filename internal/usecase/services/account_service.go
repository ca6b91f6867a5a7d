package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/retailbank/ledger/internal/adapter/http/models"
	"github.com/retailbank/ledger/internal/adapter/repository/repo_interfaces"
	"github.com/retailbank/ledger/internal/commons"
	"github.com/retailbank/ledger/internal/domain"
	"github.com/retailbank/ledger/internal/logger"
)

type AccountService struct {
	ledgerRepo repo_interfaces.LedgerRepository
}

func NewAccountService(ledgerRepo repo_interfaces.LedgerRepository) *AccountService {
	return &AccountService{ledgerRepo: ledgerRepo}
}

func (s *AccountService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.CreateAccountResponse], error) {
	logger.Info("account service create account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service create account validation failed", err, nil)
		return commons.ErrorResponse[models.CreateAccountResponse]("validation failed", err.Error()), err
	}

	taxID := strings.TrimSpace(req.TaxID)
	client, err := s.ledgerRepo.GetClientByTaxID(ctx, taxID)
	if err != nil {
		logger.Error("account service create account client lookup failed", err, logger.Fields{
			"taxId": taxID,
		})
		if errors.Is(err, domain.ErrClientNotFound) {
			return commons.ErrorResponse[models.CreateAccountResponse]("Client not found"), err
		}
		return commons.ErrorResponse[models.CreateAccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	acc, err := s.ledgerRepo.CreateAccount(ctx, client)
	if err != nil {
		logger.Error("account service create account repository failed", err, logger.Fields{
			"taxId": taxID,
		})
		return commons.ErrorResponse[models.CreateAccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	response := models.CreateAccountResponse{
		AccountNumber: acc.Number(),
		Branch:        acc.Branch(),
		OwnerName:     client.Name,
		Balance:       models.FormatBRL(acc.Balance()),
	}

	logger.Info("account service create account success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"taxId":         taxID,
	})

	return commons.SuccessResponse("account created successfully", response), nil
}

func (s *AccountService) ListAccounts(ctx context.Context) (commons.Response[models.ListAccountsResponse], error) {
	logger.Info("account service list accounts request", nil)

	accounts, err := s.ledgerRepo.ListAccounts(ctx)
	if err != nil {
		logger.Error("account service list accounts failed", err, nil)
		return commons.ErrorResponse[models.ListAccountsResponse]("failed to list accounts", "Unable to list accounts right now"), err
	}

	summaries := make([]models.AccountSummary, 0, len(accounts))
	for _, acc := range accounts {
		summaries = append(summaries, models.AccountSummary{
			AccountNumber: acc.Number(),
			Branch:        acc.Branch(),
			OwnerName:     acc.Owner().Name,
		})
	}

	logger.Info("account service list accounts success", logger.Fields{
		"count": len(summaries),
	})

	return commons.SuccessResponse("accounts listed successfully", models.ListAccountsResponse{Accounts: summaries}), nil
}

func (s *AccountService) Statement(ctx context.Context, taxID string) (commons.Response[models.StatementResponse], error) {
	logger.Info("account service statement request", logger.Fields{
		"taxId": taxID,
	})

	taxID = strings.TrimSpace(taxID)
	if taxID == "" {
		err := fmt.Errorf("taxId is required")
		return commons.ErrorResponse[models.StatementResponse]("validation failed", err.Error()), err
	}

	client, err := s.ledgerRepo.GetClientByTaxID(ctx, taxID)
	if err != nil {
		logger.Error("account service statement client lookup failed", err, logger.Fields{
			"taxId": taxID,
		})
		if errors.Is(err, domain.ErrClientNotFound) {
			return commons.ErrorResponse[models.StatementResponse]("Client not found"), err
		}
		return commons.ErrorResponse[models.StatementResponse]("failed to fetch statement", "Unable to fetch statement right now"), err
	}

	acc, err := client.PrimaryAccount()
	if err != nil {
		logger.Error("account service statement no account", err, logger.Fields{
			"taxId": taxID,
		})
		return commons.ErrorResponse[models.StatementResponse]("Client has no account"), err
	}

	history := acc.History().Entries()
	entries := make([]models.StatementEntry, 0, len(history))
	for _, entry := range history {
		entries = append(entries, models.StatementEntry{
			Kind:   string(entry.Kind),
			Amount: models.FormatBRL(entry.Amount),
			At:     entry.At.Format(time.RFC3339),
		})
	}

	response := models.StatementResponse{
		AccountNumber: acc.Number(),
		Branch:        acc.Branch(),
		OwnerName:     client.Name,
		Balance:       models.FormatBRL(acc.Balance()),
		Entries:       entries,
	}

	logger.Info("account service statement success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"entryCount":    len(entries),
	})

	return commons.SuccessResponse("statement fetched successfully", response), nil
}
