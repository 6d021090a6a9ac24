package interfaces

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sebuszqo/WalletManager/internal/auth"
	"github.com/sebuszqo/WalletManager/internal/finance/application"
	"github.com/sebuszqo/WalletManager/internal/finance/domain"
)

type CategoryServiceInterface interface {
	CreateCategory(ctx context.Context, userID, name, walletID string) (*domain.Category, error)
	GetCategoriesByWallet(ctx context.Context, userID, walletID string) ([]domain.Category, error)
	GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)
	UpdateCategoryByID(ctx context.Context, userID, categoryID string, patch application.CategoryPatch) (*domain.Category, error)
	DeleteCategoryByID(ctx context.Context, userID, categoryID string) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Name     string `json:"name"`
		WalletID string `json:"walletId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.WalletID == "" {
		h.respondError(w, http.StatusBadRequest, "walletId is required")
		return
	}

	category, err := h.service.CreateCategory(r.Context(), userID, req.Name, req.WalletID)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to create category")
		return
	}

	h.respondJSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
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

	categories, err := h.service.GetCategoriesByWallet(r.Context(), userID, walletID)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to retrieve categories")
		return
	}

	h.respondJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	category, err := h.service.GetCategoryByID(r.Context(), userID, r.PathValue("categoryID"))
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to retrieve category")
		return
	}

	h.respondJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var patch application.CategoryPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.UpdateCategoryByID(r.Context(), userID, r.PathValue("categoryID"), patch)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to update category")
		return
	}

	h.respondJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteCategoryByID(r.Context(), userID, r.PathValue("categoryID")); err != nil {
		respondDomainError(h.respondError, w, err, "Failed to delete category")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
