package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sebuszqo/WalletManager/internal/finance/domain"
	financeErrors "github.com/sebuszqo/WalletManager/internal/finance/errors"
)

func TestCreateSubcategory_HandlerSuccess(t *testing.T) {
	req := authenticatedRequest(http.MethodPost, "/subcategories", `{"name":"Groceries","categoryId":"cat-1"}`)
	w := httptest.NewRecorder()

	handler := NewSubcategoryHandler(&MockSubcategoryService{}, respondJSON, respondError)
	handler.CreateSubcategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var subcategory domain.Subcategory
	err := json.NewDecoder(res.Body).Decode(&subcategory)
	assert.NoError(t, err)
	assert.Equal(t, "Groceries", subcategory.Name)
	assert.Equal(t, "cat-1", subcategory.CategoryID)
}

func TestCreateSubcategory_MissingCategoryID(t *testing.T) {
	req := authenticatedRequest(http.MethodPost, "/subcategories", `{"name":"Groceries"}`)
	w := httptest.NewRecorder()

	handler := NewSubcategoryHandler(&MockSubcategoryService{}, respondJSON, respondError)
	handler.CreateSubcategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "categoryId is required", response["message"])
}

func TestGetSubcategory_NotFound(t *testing.T) {
	req := authenticatedRequest(http.MethodGet, "/subcategories/sub-1", "")
	req.SetPathValue("subcategoryID", "sub-1")
	w := httptest.NewRecorder()

	mockService := &MockSubcategoryService{err: financeErrors.ErrSubcategoryNotFound}
	handler := NewSubcategoryHandler(mockService, respondJSON, respondError)
	handler.GetSubcategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestDeleteSubcategory_Conflict(t *testing.T) {
	req := authenticatedRequest(http.MethodDelete, "/subcategories/sub-1", "")
	req.SetPathValue("subcategoryID", "sub-1")
	w := httptest.NewRecorder()

	mockService := &MockSubcategoryService{err: financeErrors.NewConflictError("subcategory still has transactions")}
	handler := NewSubcategoryHandler(mockService, respondJSON, respondError)
	handler.DeleteSubcategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusConflict, res.StatusCode)
}
