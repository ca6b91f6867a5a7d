package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/retailbank/ledger/internal/adapter/http/models"
	"github.com/retailbank/ledger/internal/commons"
)

type TransactionService interface {
	Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.TransactionResponse], error)
	Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.TransactionResponse], error)
}

type TransactionController struct {
	service TransactionService
}

func NewTransactionController(service TransactionService) *TransactionController {
	return &TransactionController{service: service}
}

func (c *TransactionController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	deposits := http.Handler(http.HandlerFunc(c.deposit))
	withdrawals := http.Handler(http.HandlerFunc(c.withdraw))
	if authMiddleware != nil {
		deposits = authMiddleware(deposits)
		withdrawals = authMiddleware(withdrawals)
	}
	mux.Handle("/deposits", deposits)
	mux.Handle("/withdrawals", withdrawals)
}

func (c *TransactionController) deposit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.TransactionResponse]("method not allowed"))
		return
	}

	var req models.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransactionResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()))
		return
	}

	response, err := c.service.Deposit(r.Context(), req)
	if err != nil {
		status := statusForError(err)
		if response.Message == "validation failed" {
			status = http.StatusBadRequest
		}
		logResponse(r, status, response, start)
		writeJSON(w, status, response)
		return
	}

	logResponse(r, http.StatusOK, response, start)
	writeJSON(w, http.StatusOK, response)
}

func (c *TransactionController) withdraw(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.TransactionResponse]("method not allowed"))
		return
	}

	var req models.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransactionResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()))
		return
	}

	response, err := c.service.Withdraw(r.Context(), req)
	if err != nil {
		status := statusForError(err)
		if response.Message == "validation failed" {
			status = http.StatusBadRequest
		}
		logResponse(r, status, response, start)
		writeJSON(w, status, response)
		return
	}

	logResponse(r, http.StatusOK, response, start)
	writeJSON(w, http.StatusOK, response)
}
