package domain

import (
	"context"
	"time"
)

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	WalletID  string    `json:"walletId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Subcategory struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CategoryID string    `json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SubcategoryWithCategory carries the parent category along with the
// subcategory, which resolves the wallet the subcategory belongs to.
type SubcategoryWithCategory struct {
	Subcategory
	Category Category `json:"category"`
}

type CategoryRepository interface {
	Save(ctx context.Context, category *Category) error
	// FindByWallet returns the wallet's categories ordered by name ascending.
	FindByWallet(ctx context.Context, walletID string) ([]Category, error)
	FindByID(ctx context.Context, categoryID string) (*Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, categoryID string) error
}

type SubcategoryRepository interface {
	Save(ctx context.Context, subcategory *Subcategory) error
	// FindByCategory returns the category's subcategories ordered by name ascending.
	FindByCategory(ctx context.Context, categoryID string) ([]Subcategory, error)
	// FindByIDWithCategory resolves the subcategory together with its parent
	// category, and through it the owning wallet.
	FindByIDWithCategory(ctx context.Context, subcategoryID string) (*SubcategoryWithCategory, error)
	Update(ctx context.Context, subcategory *Subcategory) error
	Delete(ctx context.Context, subcategoryID string) error
}
