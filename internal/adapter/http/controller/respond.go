package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/retailbank/ledger/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusForError maps the domain error taxonomy to HTTP statuses. Every
// domain condition is recoverable and user-facing; anything unrecognized is
// a server failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrClientNotFound), errors.Is(err, domain.ErrNoAccount):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateClient):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrWithdrawalLimitExceeded),
		errors.Is(err, domain.ErrWithdrawalCountExceeded):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
