package application

import (
	"context"

	"github.com/sebuszqo/WalletManager/internal/finance/domain"
)

type SubcategoryPatch struct {
	Name *string `json:"name"`
}

type SubcategoryService struct {
	repo         domain.SubcategoryRepository
	categoryRepo domain.CategoryRepository
	gate         WalletGate
}

func NewSubcategoryService(repo domain.SubcategoryRepository, categoryRepo domain.CategoryRepository, gate WalletGate) *SubcategoryService {
	return &SubcategoryService{repo: repo, categoryRepo: categoryRepo, gate: gate}
}

// CreateSubcategory resolves the parent category first; the gate runs against
// the wallet reached through it.
func (s *SubcategoryService) CreateSubcategory(ctx context.Context, userID, name, categoryID string) (*domain.Subcategory, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	parent, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if _, err := s.gate.CheckAccess(ctx, userID, parent.WalletID, true); err != nil {
		return nil, err
	}

	subcategory := &domain.Subcategory{
		Name:       name,
		CategoryID: categoryID,
	}
	if err := s.repo.Save(ctx, subcategory); err != nil {
		return nil, err
	}
	return subcategory, nil
}

func (s *SubcategoryService) GetSubcategoriesByCategory(ctx context.Context, userID, categoryID string) ([]domain.Subcategory, error) {
	parent, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if _, err := s.gate.CheckAccess(ctx, userID, parent.WalletID, false); err != nil {
		return nil, err
	}

	subcategories, err := s.repo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if subcategories == nil {
		return []domain.Subcategory{}, nil
	}
	return subcategories, nil
}

func (s *SubcategoryService) GetSubcategoryByID(ctx context.Context, userID, subcategoryID string) (*domain.SubcategoryWithCategory, error) {
	subcategory, err := s.repo.FindByIDWithCategory(ctx, subcategoryID)
	if err != nil {
		return nil, err
	}
	if _, err := s.gate.CheckAccess(ctx, userID, subcategory.Category.WalletID, false); err != nil {
		return nil, err
	}
	return subcategory, nil
}

func (s *SubcategoryService) UpdateSubcategoryByID(ctx context.Context, userID, subcategoryID string, patch SubcategoryPatch) (*domain.Subcategory, error) {
	subcategory, err := s.repo.FindByIDWithCategory(ctx, subcategoryID)
	if err != nil {
		return nil, err
	}
	if _, err := s.gate.CheckAccess(ctx, userID, subcategory.Category.WalletID, true); err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if err := validateName(*patch.Name); err != nil {
			return nil, err
		}
		subcategory.Name = *patch.Name
	}

	if err := s.repo.Update(ctx, &subcategory.Subcategory); err != nil {
		return nil, err
	}
	return &subcategory.Subcategory, nil
}

func (s *SubcategoryService) DeleteSubcategoryByID(ctx context.Context, userID, subcategoryID string) error {
	subcategory, err := s.repo.FindByIDWithCategory(ctx, subcategoryID)
	if err != nil {
		return err
	}
	if _, err := s.gate.CheckAccess(ctx, userID, subcategory.Category.WalletID, true); err != nil {
		return err
	}
	return s.repo.Delete(ctx, subcategoryID)
}
