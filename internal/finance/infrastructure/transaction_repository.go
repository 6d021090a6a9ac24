package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sebuszqo/WalletManager/internal/finance/domain"
	financeErrors "github.com/sebuszqo/WalletManager/internal/finance/errors"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Save(ctx context.Context, transaction *domain.Transaction) error {
	if transaction.ID == "" {
		transaction.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions
		 (id, amount, type, date, description, wallet_id, subcategory_id, author_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		transaction.ID, transaction.Amount, transaction.Type, transaction.Date, transaction.Description,
		transaction.WalletID, transaction.SubcategoryID, transaction.AuthorID,
		transaction.CreatedAt, transaction.UpdatedAt,
	)
	return err
}

func (r *TransactionRepository) FindByWallet(ctx context.Context, walletID string, filter domain.TransactionFilter) ([]domain.TransactionWithCategory, error) {
	query := `SELECT t.id, t.amount, t.type, t.date, t.description, t.wallet_id, t.subcategory_id, t.author_id,
	                 t.created_at, t.updated_at,
	                 s.id, s.name, s.category_id, s.created_at, s.updated_at,
	                 c.id, c.name, c.wallet_id, c.created_at, c.updated_at
	          FROM transactions t
	          JOIN subcategories s ON s.id = t.subcategory_id
	          JOIN categories c ON c.id = s.category_id
	          WHERE t.wallet_id = $1`
	args := []interface{}{walletID}

	if filter.Type != nil {
		args = append(args, *filter.Type)
		query += " AND t.type = $" + strconv.Itoa(len(args))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += " AND t.date >= $" + strconv.Itoa(len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += " AND t.date <= $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY t.date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.TransactionWithCategory
	for rows.Next() {
		var t domain.TransactionWithCategory
		if err := rows.Scan(
			&t.ID, &t.Amount, &t.Type, &t.Date, &t.Description, &t.WalletID, &t.Transaction.SubcategoryID, &t.AuthorID,
			&t.CreatedAt, &t.UpdatedAt,
			&t.Subcategory.ID, &t.Subcategory.Name, &t.Subcategory.CategoryID,
			&t.Subcategory.CreatedAt, &t.Subcategory.UpdatedAt,
			&t.Subcategory.Category.ID, &t.Subcategory.Category.Name, &t.Subcategory.Category.WalletID,
			&t.Subcategory.Category.CreatedAt, &t.Subcategory.Category.UpdatedAt,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) FindByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := r.db.QueryRowContext(ctx,
		`SELECT id, amount, type, date, description, wallet_id, subcategory_id, author_id, created_at, updated_at
		 FROM transactions WHERE id = $1`,
		transactionID,
	).Scan(
		&transaction.ID, &transaction.Amount, &transaction.Type, &transaction.Date, &transaction.Description,
		&transaction.WalletID, &transaction.SubcategoryID, &transaction.AuthorID,
		&transaction.CreatedAt, &transaction.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *TransactionRepository) Update(ctx context.Context, transaction *domain.Transaction) error {
	transaction.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE transactions
		 SET amount = $1, type = $2, date = $3, description = $4, subcategory_id = $5, updated_at = $6
		 WHERE id = $7`,
		transaction.Amount, transaction.Type, transaction.Date, transaction.Description,
		transaction.SubcategoryID, transaction.UpdatedAt, transaction.ID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result, financeErrors.ErrTransactionNotFound)
}

func (r *TransactionRepository) Delete(ctx context.Context, transactionID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, transactionID)
	if err != nil {
		return err
	}
	return requireRowAffected(result, financeErrors.ErrTransactionNotFound)
}

func (r *TransactionRepository) SumByWalletAndType(ctx context.Context, walletID string, transactionType domain.TransactionType) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE wallet_id = $1 AND type = $2`,
		walletID, transactionType,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *TransactionRepository) SumExpensesBySubcategory(ctx context.Context, walletID string) ([]domain.SubcategoryExpenseSum, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT t.subcategory_id, c.name, SUM(t.amount)
		 FROM transactions t
		 JOIN subcategories s ON s.id = t.subcategory_id
		 JOIN categories c ON c.id = s.category_id
		 WHERE t.wallet_id = $1 AND t.type = $2
		 GROUP BY t.subcategory_id, c.name
		 ORDER BY MIN(t.date) ASC`,
		walletID, domain.TypeExpense,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sums []domain.SubcategoryExpenseSum
	for rows.Next() {
		var sum domain.SubcategoryExpenseSum
		if err := rows.Scan(&sum.SubcategoryID, &sum.CategoryName, &sum.Total); err != nil {
			return nil, err
		}
		sums = append(sums, sum)
	}
	return sums, rows.Err()
}
