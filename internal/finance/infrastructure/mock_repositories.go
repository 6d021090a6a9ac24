package infrastructure

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sebuszqo/WalletManager/internal/finance/domain"
	financeErrors "github.com/sebuszqo/WalletManager/internal/finance/errors"
)

// In-memory repositories used by service tests.

type MockCategoryRepository struct {
	Categories []domain.Category
}

func (m *MockCategoryRepository) Save(_ context.Context, category *domain.Category) error {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryRepository) FindByWallet(_ context.Context, walletID string) ([]domain.Category, error) {
	var categories []domain.Category
	for _, category := range m.Categories {
		if category.WalletID == walletID {
			categories = append(categories, category)
		}
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (m *MockCategoryRepository) FindByID(_ context.Context, categoryID string) (*domain.Category, error) {
	for _, category := range m.Categories {
		if category.ID == categoryID {
			c := category
			return &c, nil
		}
	}
	return nil, financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Update(_ context.Context, category *domain.Category) error {
	for i := range m.Categories {
		if m.Categories[i].ID == category.ID {
			m.Categories[i] = *category
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Delete(_ context.Context, categoryID string) error {
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}

type MockSubcategoryRepository struct {
	Subcategories []domain.Subcategory
	// Parents maps category id to its category, for FindByIDWithCategory.
	Parents map[string]domain.Category
}

func (m *MockSubcategoryRepository) Save(_ context.Context, subcategory *domain.Subcategory) error {
	if subcategory.ID == "" {
		subcategory.ID = uuid.NewString()
	}
	m.Subcategories = append(m.Subcategories, *subcategory)
	return nil
}

func (m *MockSubcategoryRepository) FindByCategory(_ context.Context, categoryID string) ([]domain.Subcategory, error) {
	var subcategories []domain.Subcategory
	for _, subcategory := range m.Subcategories {
		if subcategory.CategoryID == categoryID {
			subcategories = append(subcategories, subcategory)
		}
	}
	sort.Slice(subcategories, func(i, j int) bool { return subcategories[i].Name < subcategories[j].Name })
	return subcategories, nil
}

func (m *MockSubcategoryRepository) FindByIDWithCategory(_ context.Context, subcategoryID string) (*domain.SubcategoryWithCategory, error) {
	for _, subcategory := range m.Subcategories {
		if subcategory.ID == subcategoryID {
			parent, ok := m.Parents[subcategory.CategoryID]
			if !ok {
				return nil, financeErrors.ErrCategoryNotFound
			}
			return &domain.SubcategoryWithCategory{
				Subcategory: subcategory,
				Category:    parent,
			}, nil
		}
	}
	return nil, financeErrors.ErrSubcategoryNotFound
}

func (m *MockSubcategoryRepository) Update(_ context.Context, subcategory *domain.Subcategory) error {
	for i := range m.Subcategories {
		if m.Subcategories[i].ID == subcategory.ID {
			m.Subcategories[i] = *subcategory
			return nil
		}
	}
	return financeErrors.ErrSubcategoryNotFound
}

func (m *MockSubcategoryRepository) Delete(_ context.Context, subcategoryID string) error {
	for i := range m.Subcategories {
		if m.Subcategories[i].ID == subcategoryID {
			m.Subcategories = append(m.Subcategories[:i], m.Subcategories[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrSubcategoryNotFound
}

type MockTransactionRepository struct {
	Transactions []domain.Transaction
	// Subcategories maps subcategory id to the subcategory with its parent
	// category, for listing enrichment and expense grouping.
	Subcategories map[string]domain.SubcategoryWithCategory
}

func (m *MockTransactionRepository) Save(_ context.Context, transaction *domain.Transaction) error {
	if transaction.ID == "" {
		transaction.ID = uuid.NewString()
	}
	m.Transactions = append(m.Transactions, *transaction)
	return nil
}

func (m *MockTransactionRepository) FindByWallet(_ context.Context, walletID string, filter domain.TransactionFilter) ([]domain.TransactionWithCategory, error) {
	var transactions []domain.TransactionWithCategory
	for _, transaction := range m.Transactions {
		if transaction.WalletID != walletID {
			continue
		}
		if filter.Type != nil && transaction.Type != *filter.Type {
			continue
		}
		if filter.StartDate != nil && transaction.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && transaction.Date.After(*filter.EndDate) {
			continue
		}
		transactions = append(transactions, domain.TransactionWithCategory{
			Transaction: transaction,
			Subcategory: m.Subcategories[transaction.SubcategoryID],
		})
	}
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
	return transactions, nil
}

func (m *MockTransactionRepository) FindByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	for _, transaction := range m.Transactions {
		if transaction.ID == transactionID {
			t := transaction
			return &t, nil
		}
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionRepository) Update(_ context.Context, transaction *domain.Transaction) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transaction.ID {
			m.Transactions[i] = *transaction
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionRepository) Delete(_ context.Context, transactionID string) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionRepository) SumByWalletAndType(_ context.Context, walletID string, transactionType domain.TransactionType) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, transaction := range m.Transactions {
		if transaction.WalletID == walletID && transaction.Type == transactionType {
			total = total.Add(transaction.Amount)
		}
	}
	return total, nil
}

func (m *MockTransactionRepository) SumExpensesBySubcategory(_ context.Context, walletID string) ([]domain.SubcategoryExpenseSum, error) {
	var sums []domain.SubcategoryExpenseSum
	index := make(map[string]int)
	for _, transaction := range m.Transactions {
		if transaction.WalletID != walletID || transaction.Type != domain.TypeExpense {
			continue
		}
		if i, ok := index[transaction.SubcategoryID]; ok {
			sums[i].Total = sums[i].Total.Add(transaction.Amount)
			continue
		}
		index[transaction.SubcategoryID] = len(sums)
		sums = append(sums, domain.SubcategoryExpenseSum{
			SubcategoryID: transaction.SubcategoryID,
			CategoryName:  m.Subcategories[transaction.SubcategoryID].Category.Name,
			Total:         transaction.Amount,
		})
	}
	return sums, nil
}
