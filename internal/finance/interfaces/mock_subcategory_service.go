package interfaces

import (
	"context"
	"errors"

	"github.com/sebuszqo/WalletManager/internal/finance/application"
	"github.com/sebuszqo/WalletManager/internal/finance/domain"
)

type MockSubcategoryService struct {
	subcategories []domain.Subcategory
	subcategory   *domain.SubcategoryWithCategory
	err           error
	shouldFail    bool
}

func (m *MockSubcategoryService) CreateSubcategory(_ context.Context, _, name, categoryID string) (*domain.Subcategory, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Subcategory{ID: "subcategory-id", Name: name, CategoryID: categoryID}, nil
}

func (m *MockSubcategoryService) GetSubcategoriesByCategory(_ context.Context, _, _ string) ([]domain.Subcategory, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.subcategories, nil
}

func (m *MockSubcategoryService) GetSubcategoryByID(_ context.Context, _, _ string) (*domain.SubcategoryWithCategory, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.subcategory, nil
}

func (m *MockSubcategoryService) UpdateSubcategoryByID(_ context.Context, _, _ string, _ application.SubcategoryPatch) (*domain.Subcategory, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if m.err != nil {
		return nil, m.err
	}
	if m.subcategory == nil {
		return nil, nil
	}
	return &m.subcategory.Subcategory, nil
}

func (m *MockSubcategoryService) DeleteSubcategoryByID(_ context.Context, _, _ string) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	return m.err
}
