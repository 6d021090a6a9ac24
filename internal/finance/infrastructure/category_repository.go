package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sebuszqo/WalletManager/internal/finance/domain"
	financeErrors "github.com/sebuszqo/WalletManager/internal/finance/errors"
)

const foreignKeyViolationCode = "23503"

// isRestrictViolation reports whether err is an ON DELETE RESTRICT foreign
// key violation.
func isRestrictViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Save(ctx context.Context, category *domain.Category) error {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, wallet_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		category.ID, category.Name, category.WalletID, category.CreatedAt, category.UpdatedAt,
	)
	return err
}

func (r *CategoryRepository) FindByWallet(ctx context.Context, walletID string) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, wallet_id, created_at, updated_at FROM categories WHERE wallet_id = $1 ORDER BY name ASC`,
		walletID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.WalletID, &category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, wallet_id, created_at, updated_at FROM categories WHERE id = $1`,
		categoryID,
	).Scan(&category.ID, &category.Name, &category.WalletID, &category.CreatedAt, &category.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	category.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = $1, updated_at = $2 WHERE id = $3`,
		category.Name, category.UpdatedAt, category.ID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result, financeErrors.ErrCategoryNotFound)
}

// Delete is restrict-on-delete: a category with live subcategories cannot be
// removed and the violation surfaces as a conflict.
func (r *CategoryRepository) Delete(ctx context.Context, categoryID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, categoryID)
	if err != nil {
		if isRestrictViolation(err) {
			return financeErrors.NewConflictError("category still has subcategories")
		}
		return err
	}
	return requireRowAffected(result, financeErrors.ErrCategoryNotFound)
}

func requireRowAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
