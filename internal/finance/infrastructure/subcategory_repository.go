package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sebuszqo/WalletManager/internal/finance/domain"
	financeErrors "github.com/sebuszqo/WalletManager/internal/finance/errors"
)

type SubcategoryRepository struct {
	db *sql.DB
}

func NewSubcategoryRepository(db *sql.DB) *SubcategoryRepository {
	return &SubcategoryRepository{db: db}
}

func (r *SubcategoryRepository) Save(ctx context.Context, subcategory *domain.Subcategory) error {
	if subcategory.ID == "" {
		subcategory.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	subcategory.CreatedAt = now
	subcategory.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO subcategories (id, name, category_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		subcategory.ID, subcategory.Name, subcategory.CategoryID, subcategory.CreatedAt, subcategory.UpdatedAt,
	)
	return err
}

func (r *SubcategoryRepository) FindByCategory(ctx context.Context, categoryID string) ([]domain.Subcategory, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, category_id, created_at, updated_at FROM subcategories WHERE category_id = $1 ORDER BY name ASC`,
		categoryID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subcategories []domain.Subcategory
	for rows.Next() {
		var subcategory domain.Subcategory
		if err := rows.Scan(&subcategory.ID, &subcategory.Name, &subcategory.CategoryID, &subcategory.CreatedAt, &subcategory.UpdatedAt); err != nil {
			return nil, err
		}
		subcategories = append(subcategories, subcategory)
	}
	return subcategories, rows.Err()
}

func (r *SubcategoryRepository) FindByIDWithCategory(ctx context.Context, subcategoryID string) (*domain.SubcategoryWithCategory, error) {
	var subcategory domain.SubcategoryWithCategory
	err := r.db.QueryRowContext(ctx,
		`SELECT s.id, s.name, s.category_id, s.created_at, s.updated_at,
		        c.id, c.name, c.wallet_id, c.created_at, c.updated_at
		 FROM subcategories s
		 JOIN categories c ON c.id = s.category_id
		 WHERE s.id = $1`,
		subcategoryID,
	).Scan(
		&subcategory.ID, &subcategory.Name, &subcategory.CategoryID, &subcategory.CreatedAt, &subcategory.UpdatedAt,
		&subcategory.Category.ID, &subcategory.Category.Name, &subcategory.Category.WalletID,
		&subcategory.Category.CreatedAt, &subcategory.Category.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrSubcategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &subcategory, nil
}

func (r *SubcategoryRepository) Update(ctx context.Context, subcategory *domain.Subcategory) error {
	subcategory.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE subcategories SET name = $1, updated_at = $2 WHERE id = $3`,
		subcategory.Name, subcategory.UpdatedAt, subcategory.ID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result, financeErrors.ErrSubcategoryNotFound)
}

func (r *SubcategoryRepository) Delete(ctx context.Context, subcategoryID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM subcategories WHERE id = $1`, subcategoryID)
	if err != nil {
		if isRestrictViolation(err) {
			return financeErrors.NewConflictError("subcategory still has transactions")
		}
		return err
	}
	return requireRowAffected(result, financeErrors.ErrSubcategoryNotFound)
}
