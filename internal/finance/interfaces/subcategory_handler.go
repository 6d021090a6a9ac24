package interfaces

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sebuszqo/WalletManager/internal/auth"
	"github.com/sebuszqo/WalletManager/internal/finance/application"
	"github.com/sebuszqo/WalletManager/internal/finance/domain"
)

type SubcategoryServiceInterface interface {
	CreateSubcategory(ctx context.Context, userID, name, categoryID string) (*domain.Subcategory, error)
	GetSubcategoriesByCategory(ctx context.Context, userID, categoryID string) ([]domain.Subcategory, error)
	GetSubcategoryByID(ctx context.Context, userID, subcategoryID string) (*domain.SubcategoryWithCategory, error)
	UpdateSubcategoryByID(ctx context.Context, userID, subcategoryID string, patch application.SubcategoryPatch) (*domain.Subcategory, error)
	DeleteSubcategoryByID(ctx context.Context, userID, subcategoryID string) error
}

type SubcategoryHandler struct {
	service      SubcategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewSubcategoryHandler(
	service SubcategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *SubcategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &SubcategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *SubcategoryHandler) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Name       string `json:"name"`
		CategoryID string `json:"categoryId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CategoryID == "" {
		h.respondError(w, http.StatusBadRequest, "categoryId is required")
		return
	}

	subcategory, err := h.service.CreateSubcategory(r.Context(), userID, req.Name, req.CategoryID)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to create subcategory")
		return
	}

	h.respondJSON(w, http.StatusCreated, subcategory)
}

func (h *SubcategoryHandler) GetSubcategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	categoryID := r.URL.Query().Get("categoryId")
	if categoryID == "" {
		h.respondError(w, http.StatusBadRequest, "categoryId is required")
		return
	}

	subcategories, err := h.service.GetSubcategoriesByCategory(r.Context(), userID, categoryID)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to retrieve subcategories")
		return
	}

	h.respondJSON(w, http.StatusOK, subcategories)
}

func (h *SubcategoryHandler) GetSubcategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	subcategory, err := h.service.GetSubcategoryByID(r.Context(), userID, r.PathValue("subcategoryID"))
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to retrieve subcategory")
		return
	}

	h.respondJSON(w, http.StatusOK, subcategory)
}

func (h *SubcategoryHandler) UpdateSubcategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var patch application.SubcategoryPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	subcategory, err := h.service.UpdateSubcategoryByID(r.Context(), userID, r.PathValue("subcategoryID"), patch)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to update subcategory")
		return
	}

	h.respondJSON(w, http.StatusOK, subcategory)
}

func (h *SubcategoryHandler) DeleteSubcategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteSubcategoryByID(r.Context(), userID, r.PathValue("subcategoryID")); err != nil {
		respondDomainError(h.respondError, w, err, "Failed to delete subcategory")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
