package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/retailbank/ledger/internal/adapter/http/models"
	"github.com/retailbank/ledger/internal/adapter/repository/repo_interfaces"
	"github.com/retailbank/ledger/internal/commons"
	"github.com/retailbank/ledger/internal/domain"
	"github.com/retailbank/ledger/internal/logger"
)

type ClientService struct {
	ledgerRepo repo_interfaces.LedgerRepository
}

func NewClientService(ledgerRepo repo_interfaces.LedgerRepository) *ClientService {
	return &ClientService{ledgerRepo: ledgerRepo}
}

func (s *ClientService) CreateClient(ctx context.Context, req models.CreateClientRequest) (commons.Response[models.CreateClientResponse], error) {
	logger.Info("client service create client request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("client service create client validation failed", err, nil)
		return commons.ErrorResponse[models.CreateClientResponse]("validation failed", err.Error()), err
	}

	dob, err := time.Parse("2006-01-02", strings.TrimSpace(req.DOB))
	if err != nil {
		logger.Error("client service create client invalid dob", err, nil)
		return commons.ErrorResponse[models.CreateClientResponse]("validation failed", "dob must be in YYYY-MM-DD format"), err
	}

	client := domain.NewClient(
		strings.TrimSpace(req.TaxID),
		strings.TrimSpace(req.Name),
		dob,
		strings.TrimSpace(req.Address),
	)

	if pin := strings.TrimSpace(req.TransactionPin); pin != "" {
		hashed, err := hashTransactionPin(pin)
		if err != nil {
			logger.Error("client service create client hash pin failed", err, nil)
			return commons.ErrorResponse[models.CreateClientResponse]("failed to create client", "failed to hash transaction pin"), err
		}
		client.TransactionPinHash = hashed
	}

	if err := s.ledgerRepo.CreateClient(ctx, client); err != nil {
		logger.Error("client service create client repository failed", err, logger.Fields{
			"taxId": client.TaxID,
		})
		if errors.Is(err, domain.ErrDuplicateClient) {
			return commons.ErrorResponse[models.CreateClientResponse]("Tax ID already registered"), err
		}
		return commons.ErrorResponse[models.CreateClientResponse]("failed to create client", "Unable to create client right now"), err
	}

	response := models.CreateClientResponse{
		TaxID:     client.TaxID,
		Name:      client.Name,
		DOB:       client.DOB.Format("2006-01-02"),
		Address:   client.Address,
		CreatedAt: client.CreatedAt.Format(time.RFC3339),
	}

	logger.Info("client service create client success", logger.Fields{
		"taxId": response.TaxID,
		"name":  response.Name,
	})

	return commons.SuccessResponse("client created successfully", response), nil
}

func hashTransactionPin(pin string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
