package interfaces

import (
	"log/slog"
	"net/http"
	"time"

	financeErrors "github.com/sebuszqo/WalletManager/internal/finance/errors"
)

const dateLayout = "2006-01-02"

// parseDate accepts calendar dates and, for transaction bodies, full RFC3339
// timestamps.
func parseDate(value string) (time.Time, error) {
	if date, err := time.Parse(dateLayout, value); err == nil {
		return date, nil
	}
	return time.Parse(time.RFC3339, value)
}

// respondDomainError maps the error taxonomy to HTTP statuses; anything
// outside it is logged and reported as a 500 with the fallback message.
func respondDomainError(
	respondError func(w http.ResponseWriter, status int, message string),
	w http.ResponseWriter,
	err error,
	fallback string,
) {
	switch {
	case financeErrors.IsNotFoundError(err):
		respondError(w, http.StatusNotFound, err.Error())
	case financeErrors.IsAccessDeniedError(err):
		respondError(w, http.StatusForbidden, err.Error())
	case financeErrors.IsConflictError(err):
		respondError(w, http.StatusConflict, err.Error())
	case financeErrors.IsValidationError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error(fallback, "error", err)
		respondError(w, http.StatusInternalServerError, fallback)
	}
}
