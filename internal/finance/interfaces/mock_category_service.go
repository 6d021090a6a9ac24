package interfaces

import (
	"context"
	"errors"

	"github.com/sebuszqo/WalletManager/internal/finance/application"
	"github.com/sebuszqo/WalletManager/internal/finance/domain"
)

type MockCategoryService struct {
	categories []domain.Category
	category   *domain.Category
	err        error
	shouldFail bool
}

func (m *MockCategoryService) CreateCategory(_ context.Context, _, name, walletID string) (*domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Category{ID: "category-id", Name: name, WalletID: walletID}, nil
}

func (m *MockCategoryService) GetCategoriesByWallet(_ context.Context, _, _ string) ([]domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

func (m *MockCategoryService) GetCategoryByID(_ context.Context, _, _ string) (*domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.category, nil
}

func (m *MockCategoryService) UpdateCategoryByID(_ context.Context, _, _ string, _ application.CategoryPatch) (*domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.category, nil
}

func (m *MockCategoryService) DeleteCategoryByID(_ context.Context, _, _ string) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	return m.err
}
