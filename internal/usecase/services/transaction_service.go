package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/retailbank/ledger/internal/adapter/http/models"
	"github.com/retailbank/ledger/internal/adapter/repository/repo_interfaces"
	"github.com/retailbank/ledger/internal/commons"
	"github.com/retailbank/ledger/internal/domain"
	"github.com/retailbank/ledger/internal/logger"
)

// TransactionService runs deposits and withdrawals. A single mutex
// serializes balance-affecting operations so that the apply-then-save pair
// acts as one unit; the system serves one teller at a time.
type TransactionService struct {
	mu         sync.Mutex
	ledgerRepo repo_interfaces.LedgerRepository
}

func NewTransactionService(ledgerRepo repo_interfaces.LedgerRepository) *TransactionService {
	return &TransactionService{ledgerRepo: ledgerRepo}
}

func (s *TransactionService) Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("transaction service deposit request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("transaction service deposit validation failed", err, nil)
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}

	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		logger.Error("transaction service deposit invalid amount", err, logger.Fields{
			"rawAmount": req.Amount,
		})
		return commons.ErrorResponse[models.TransactionResponse]("Invalid amount"), err
	}

	return s.execute(ctx, strings.TrimSpace(req.TaxID), domain.NewDeposit(amount), "deposit")
}

func (s *TransactionService) Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("transaction service withdraw request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("transaction service withdraw validation failed", err, nil)
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}

	return s.execute(ctx, strings.TrimSpace(req.TaxID), domain.NewWithdrawal(req.Amount), "withdrawal")
}

func (s *TransactionService) execute(ctx context.Context, taxID string, tr domain.Transaction, operation string) (commons.Response[models.TransactionResponse], error) {
	client, err := s.ledgerRepo.GetClientByTaxID(ctx, taxID)
	if err != nil {
		logger.Error("transaction service client lookup failed", err, logger.Fields{
			"taxId":     taxID,
			"operation": operation,
		})
		if errors.Is(err, domain.ErrClientNotFound) {
			return commons.ErrorResponse[models.TransactionResponse]("Client not found"), err
		}
		return commons.ErrorResponse[models.TransactionResponse]("failed to "+operation, "Unable to process the operation right now"), err
	}

	acc, err := client.PrimaryAccount()
	if err != nil {
		logger.Error("transaction service no account", err, logger.Fields{
			"taxId":     taxID,
			"operation": operation,
		})
		return commons.ErrorResponse[models.TransactionResponse]("Client has no account"), err
	}

	s.mu.Lock()
	err = client.Execute(acc, tr)
	if err == nil {
		err = s.ledgerRepo.SaveAccount(ctx, acc)
	}
	s.mu.Unlock()

	if err != nil {
		logger.Error("transaction service "+operation+" failed", err, logger.Fields{
			"taxId":         taxID,
			"accountNumber": acc.Number(),
		})
		return commons.ErrorResponse[models.TransactionResponse](failureMessage(err, operation)), err
	}

	kind := domain.KindDeposit
	if _, isWithdrawal := tr.(*domain.Withdrawal); isWithdrawal {
		kind = domain.KindWithdrawal
	}

	response := models.TransactionResponse{
		AccountNumber: acc.Number(),
		Kind:          string(kind),
		Amount:        models.FormatBRL(tr.Amount()),
		Balance:       models.FormatBRL(acc.Balance()),
	}

	logger.Info("transaction service "+operation+" success", logger.Fields{
		"taxId":         taxID,
		"accountNumber": response.AccountNumber,
		"amount":        response.Amount,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse(operation+" completed successfully", response), nil
}

func failureMessage(err error, operation string) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Invalid amount"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "Insufficient funds"
	case errors.Is(err, domain.ErrWithdrawalLimitExceeded):
		return "Withdrawal amount exceeds the limit"
	case errors.Is(err, domain.ErrWithdrawalCountExceeded):
		return "Maximum number of withdrawals exceeded"
	default:
		return "failed to " + operation
	}
}
