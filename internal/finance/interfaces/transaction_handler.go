package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sebuszqo/WalletManager/internal/auth"
	"github.com/sebuszqo/WalletManager/internal/finance/application"
	"github.com/sebuszqo/WalletManager/internal/finance/domain"
)

type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, userID string, transaction *domain.Transaction) (*domain.Transaction, error)
	GetTransactionsByWallet(ctx context.Context, userID, walletID string, filter domain.TransactionFilter) ([]domain.TransactionWithCategory, error)
	GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
	UpdateTransactionByID(ctx context.Context, userID, transactionID string, patch application.TransactionPatch) (*domain.Transaction, error)
	DeleteTransactionByID(ctx context.Context, userID, transactionID string) error
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *TransactionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Amount        decimal.Decimal `json:"amount"`
		Type          string          `json:"type"`
		Date          string          `json:"date"`
		Description   string          `json:"description"`
		WalletID      string          `json:"walletId"`
		SubcategoryID string          `json:"subcategoryId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.WalletID == "" || req.SubcategoryID == "" {
		h.respondError(w, http.StatusBadRequest, "walletId and subcategoryId are required")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	transaction := &domain.Transaction{
		Amount:        req.Amount,
		Type:          domain.TransactionType(req.Type),
		Date:          date,
		Description:   req.Description,
		WalletID:      req.WalletID,
		SubcategoryID: req.SubcategoryID,
	}
	created, err := h.service.CreateTransaction(r.Context(), userID, transaction)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to create transaction")
		return
	}

	h.respondJSON(w, http.StatusCreated, created)
}

func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
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

	var filter domain.TransactionFilter
	if typeStr := r.URL.Query().Get("type"); typeStr != "" {
		transactionType := domain.TransactionType(typeStr)
		if !domain.IsValidTransactionType(transactionType) {
			h.respondError(w, http.StatusBadRequest, "Invalid transaction type")
			return
		}
		filter.Type = &transactionType
	}
	if startDateStr := r.URL.Query().Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(dateLayout, startDateStr)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid start date format")
			return
		}
		filter.StartDate = &startDate
	}
	if endDateStr := r.URL.Query().Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(dateLayout, endDateStr)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid end date format")
			return
		}
		filter.EndDate = &endDate
	}

	transactions, err := h.service.GetTransactionsByWallet(r.Context(), userID, walletID, filter)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to retrieve transactions")
		return
	}

	h.respondJSON(w, http.StatusOK, transactions)
}

func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transaction, err := h.service.GetTransactionByID(r.Context(), userID, r.PathValue("transactionID"))
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to retrieve transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, transaction)
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Amount        *decimal.Decimal `json:"amount"`
		Type          *string          `json:"type"`
		Date          *string          `json:"date"`
		Description   *string          `json:"description"`
		SubcategoryID *string          `json:"subcategoryId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch := application.TransactionPatch{
		Amount:        req.Amount,
		Description:   req.Description,
		SubcategoryID: req.SubcategoryID,
	}
	if req.Type != nil {
		transactionType := domain.TransactionType(*req.Type)
		patch.Type = &transactionType
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid date format")
			return
		}
		patch.Date = &date
	}

	transaction, err := h.service.UpdateTransactionByID(r.Context(), userID, r.PathValue("transactionID"), patch)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to update transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, transaction)
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteTransactionByID(r.Context(), userID, r.PathValue("transactionID")); err != nil {
		respondDomainError(h.respondError, w, err, "Failed to delete transaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
