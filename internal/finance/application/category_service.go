package application

import (
	"context"
	"strings"

	"github.com/sebuszqo/WalletManager/internal/finance/domain"
	financeErrors "github.com/sebuszqo/WalletManager/internal/finance/errors"
	"github.com/sebuszqo/WalletManager/internal/wallet"
)

// WalletGate is the membership check invoked before every wallet-scoped
// operation. Satisfied by wallet.Service.
type WalletGate interface {
	CheckAccess(ctx context.Context, userID, walletID string, requireOwner bool) (*wallet.Membership, error)
}

type CategoryPatch struct {
	Name *string `json:"name"`
}

type CategoryService struct {
	repo domain.CategoryRepository
	gate WalletGate
}

func NewCategoryService(repo domain.CategoryRepository, gate WalletGate) *CategoryService {
	return &CategoryService{repo: repo, gate: gate}
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return financeErrors.NewValidationError("Name must not be empty")
	}
	return nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, userID, name, walletID string) (*domain.Category, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if _, err := s.gate.CheckAccess(ctx, userID, walletID, true); err != nil {
		return nil, err
	}

	category := &domain.Category{
		Name:     name,
		WalletID: walletID,
	}
	if err := s.repo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) GetCategoriesByWallet(ctx context.Context, userID, walletID string) ([]domain.Category, error) {
	if _, err := s.gate.CheckAccess(ctx, userID, walletID, false); err != nil {
		return nil, err
	}

	categories, err := s.repo.FindByWallet(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	category, err := s.repo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if _, err := s.gate.CheckAccess(ctx, userID, category.WalletID, false); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) UpdateCategoryByID(ctx context.Context, userID, categoryID string, patch CategoryPatch) (*domain.Category, error) {
	category, err := s.repo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if _, err := s.gate.CheckAccess(ctx, userID, category.WalletID, true); err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if err := validateName(*patch.Name); err != nil {
			return nil, err
		}
		category.Name = *patch.Name
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategoryByID(ctx context.Context, userID, categoryID string) error {
	category, err := s.repo.FindByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if _, err := s.gate.CheckAccess(ctx, userID, category.WalletID, true); err != nil {
		return err
	}
	return s.repo.Delete(ctx, categoryID)
}
