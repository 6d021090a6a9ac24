package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	financeErrors "github.com/sebuszqo/WalletManager/internal/finance/errors"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

func IsValidTransactionType(transactionType TransactionType) bool {
	return transactionType == TypeIncome || transactionType == TypeExpense
}

const maxDescriptionLength = 200

// Transaction is a dated, typed, amount-bearing record attached to exactly
// one wallet and one subcategory. Amounts are exact decimals; they are never
// summed as binary floating point.
type Transaction struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Type          TransactionType `json:"type"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	WalletID      string          `json:"walletId"`
	SubcategoryID string          `json:"subcategoryId"`
	AuthorID      string          `json:"authorId"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (t *Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return financeErrors.NewValidationError("Amount must be greater than zero")
	}
	if !IsValidTransactionType(t.Type) {
		return financeErrors.NewValidationError("Type must be 'INCOME' or 'EXPENSE'")
	}
	if t.Date.IsZero() {
		return financeErrors.NewValidationError("Date is required")
	}
	if len(t.Description) > maxDescriptionLength {
		return financeErrors.NewValidationError("Description must be of length less than 200")
	}
	return nil
}

// TransactionWithCategory is a transaction enriched with its subcategory and
// that subcategory's parent category, as returned by wallet-scoped listings.
type TransactionWithCategory struct {
	Transaction
	Subcategory SubcategoryWithCategory `json:"subcategory"`
}

// TransactionFilter is a conjunction of optional predicates; nil fields do
// not constrain. Date bounds are inclusive.
type TransactionFilter struct {
	Type      *TransactionType
	StartDate *time.Time
	EndDate   *time.Time
}

// SubcategoryExpenseSum is one row of the per-subcategory expense grouping,
// already joined with the parent category name.
type SubcategoryExpenseSum struct {
	SubcategoryID string
	CategoryName  string
	Total         decimal.Decimal
}

type TransactionRepository interface {
	Save(ctx context.Context, transaction *Transaction) error
	// FindByWallet returns the wallet's transactions matching the filter,
	// ordered by date descending, enriched with subcategory and category.
	FindByWallet(ctx context.Context, walletID string, filter TransactionFilter) ([]TransactionWithCategory, error)
	FindByID(ctx context.Context, transactionID string) (*Transaction, error)
	Update(ctx context.Context, transaction *Transaction) error
	Delete(ctx context.Context, transactionID string) error

	// SumByWalletAndType sums amounts of the wallet's transactions of the
	// given type, zero when there are none.
	SumByWalletAndType(ctx context.Context, walletID string, transactionType TransactionType) (decimal.Decimal, error)
	// SumExpensesBySubcategory groups the wallet's EXPENSE transactions by
	// subcategory, each group carrying its parent category name.
	SumExpensesBySubcategory(ctx context.Context, walletID string) ([]SubcategoryExpenseSum, error)
}
