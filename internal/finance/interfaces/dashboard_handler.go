package interfaces

import (
	"context"
	"net/http"

	"github.com/sebuszqo/WalletManager/internal/auth"
	"github.com/sebuszqo/WalletManager/internal/finance/application"
)

type DashboardServiceInterface interface {
	GetWalletSummary(ctx context.Context, userID, walletID string) (*application.WalletSummary, error)
	GetExpensesByCategory(ctx context.Context, userID, walletID string) ([]application.CategoryExpense, error)
}

type DashboardHandler struct {
	service      DashboardServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewDashboardHandler(
	service DashboardServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *DashboardHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &DashboardHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	walletID := r.URL.Query().Get("walletId")
	if walletID == "" {
		h.respondError(w, http.StatusBadRequest, "walletId is required")
		return
	}

	summary, err := h.service.GetWalletSummary(r.Context(), userID, walletID)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to retrieve wallet summary")
		return
	}

	h.respondJSON(w, http.StatusOK, summary)
}

func (h *DashboardHandler) GetExpensesByCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	walletID := r.URL.Query().Get("walletId")
	if walletID == "" {
		h.respondError(w, http.StatusBadRequest, "walletId is required")
		return
	}

	expenses, err := h.service.GetExpensesByCategory(r.Context(), userID, walletID)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to retrieve expenses by category")
		return
	}

	h.respondJSON(w, http.StatusOK, expenses)
}
