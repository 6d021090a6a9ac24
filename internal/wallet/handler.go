package wallet

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sebuszqo/WalletManager/internal/auth"
	financeErrors "github.com/sebuszqo/WalletManager/internal/finance/errors"
)

type Handler struct {
	service      Service
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewHandler(
	service Service,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *Handler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &Handler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *Handler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Name string     `json:"name"`
		Type WalletType `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	wallet, err := h.service.CreateWallet(r.Context(), userID, req.Name, req.Type)
	if err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("create wallet failed", "error", err, "user_id", userID)
		h.respondError(w, http.StatusInternalServerError, "Failed to create wallet")
		return
	}

	h.respondJSON(w, http.StatusCreated, wallet)
}

func (h *Handler) GetWallets(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	memberships, err := h.service.GetUserWallets(r.Context(), userID)
	if err != nil {
		slog.Error("list wallets failed", "error", err, "user_id", userID)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve wallets")
		return
	}

	h.respondJSON(w, http.StatusOK, memberships)
}
