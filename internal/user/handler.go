package user

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sebuszqo/WalletManager/internal/auth"
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

func (h *Handler) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			h.respondError(w, http.StatusUnauthorized, auth.ErrUserNotFound.Error())
			return
		}
		slog.Error("get profile failed", "error", err, "user_id", userID)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve profile")
		return
	}

	h.respondJSON(w, http.StatusOK, profile)
}
