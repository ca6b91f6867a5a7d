package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/retailbank/ledger/internal/adapter/http/models"
	"github.com/retailbank/ledger/internal/commons"
)

type ClientService interface {
	CreateClient(ctx context.Context, req models.CreateClientRequest) (commons.Response[models.CreateClientResponse], error)
}

type ClientController struct {
	service ClientService
}

func NewClientController(service ClientService) *ClientController {
	return &ClientController{service: service}
}

func (c *ClientController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handler := http.Handler(http.HandlerFunc(c.createClient))
	if authMiddleware != nil {
		handler = authMiddleware(handler)
	}
	mux.Handle("/clients", handler)
}

func (c *ClientController) createClient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.CreateClientResponse]("method not allowed"))
		return
	}

	var req models.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CreateClientResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CreateClientResponse]("validation failed", err.Error()))
		return
	}

	response, err := c.service.CreateClient(r.Context(), req)
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
