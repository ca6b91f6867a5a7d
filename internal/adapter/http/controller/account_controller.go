package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/retailbank/ledger/internal/adapter/http/models"
	"github.com/retailbank/ledger/internal/commons"
)

type AccountService interface {
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.CreateAccountResponse], error)
	ListAccounts(ctx context.Context) (commons.Response[models.ListAccountsResponse], error)
	Statement(ctx context.Context, taxID string) (commons.Response[models.StatementResponse], error)
}

type AccountController struct {
	service AccountService
}

func NewAccountController(service AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	accounts := http.Handler(http.HandlerFunc(c.handleAccounts))
	statement := http.Handler(http.HandlerFunc(c.statement))
	if authMiddleware != nil {
		accounts = authMiddleware(accounts)
		statement = authMiddleware(statement)
	}
	mux.Handle("/accounts", accounts)
	mux.Handle("/statement", statement)
}

func (c *AccountController) handleAccounts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.createAccount(w, r)
	case http.MethodGet:
		c.listAccounts(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.ListAccountsResponse]("method not allowed"))
	}
}

func (c *AccountController) createAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CreateAccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CreateAccountResponse]("validation failed", err.Error()))
		return
	}

	response, err := c.service.CreateAccount(r.Context(), req)
	if err != nil {
		status := statusForError(err)
		if response.Message == "validation failed" {
			status = http.StatusBadRequest
		}
		logResponse(r, status, response, start)
		writeJSON(w, status, response)
		return
	}

	logResponse(r, http.StatusCreated, response, start)
	writeJSON(w, http.StatusCreated, response)
}

func (c *AccountController) listAccounts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ListAccounts(r.Context())
	if err != nil {
		status := statusForError(err)
		logResponse(r, status, response, start)
		writeJSON(w, status, response)
		return
	}

	logResponse(r, http.StatusOK, response, start)
	writeJSON(w, http.StatusOK, response)
}

func (c *AccountController) statement(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.StatementResponse]("method not allowed"))
		return
	}
	logRequest(r, nil)

	taxID := r.URL.Query().Get("taxId")
	response, err := c.service.Statement(r.Context(), taxID)
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
