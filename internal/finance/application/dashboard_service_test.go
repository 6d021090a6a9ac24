package application

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sebuszqo/WalletManager/internal/finance/domain"
	financeErrors "github.com/sebuszqo/WalletManager/internal/finance/errors"
	"github.com/sebuszqo/WalletManager/internal/finance/infrastructure"
	"github.com/sebuszqo/WalletManager/internal/wallet"
)

func newDashboardRepoFixture() *infrastructure.MockTransactionRepository {
	return &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "tx-1", Amount: decimal.RequireFromString("100"), Type: domain.TypeExpense,
				Date: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC), WalletID: "wallet-1", SubcategoryID: "sub-groceries"},
			{ID: "tx-2", Amount: decimal.RequireFromString("50"), Type: domain.TypeExpense,
				Date: time.Date(2025, time.January, 12, 0, 0, 0, 0, time.UTC), WalletID: "wallet-1", SubcategoryID: "sub-dining"},
			{ID: "tx-3", Amount: decimal.RequireFromString("200"), Type: domain.TypeIncome,
				Date: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), WalletID: "wallet-1", SubcategoryID: "sub-salary"},
			{ID: "tx-4", Amount: decimal.RequireFromString("999"), Type: domain.TypeExpense,
				Date: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), WalletID: "wallet-other", SubcategoryID: "sub-groceries"},
		},
		Subcategories: map[string]domain.SubcategoryWithCategory{
			"sub-groceries": {
				Subcategory: domain.Subcategory{ID: "sub-groceries", Name: "Groceries", CategoryID: "cat-food"},
				Category:    domain.Category{ID: "cat-food", Name: "Food", WalletID: "wallet-1"},
			},
			"sub-dining": {
				Subcategory: domain.Subcategory{ID: "sub-dining", Name: "Dining", CategoryID: "cat-food"},
				Category:    domain.Category{ID: "cat-food", Name: "Food", WalletID: "wallet-1"},
			},
			"sub-salary": {
				Subcategory: domain.Subcategory{ID: "sub-salary", Name: "Salary", CategoryID: "cat-income"},
				Category:    domain.Category{ID: "cat-income", Name: "Income", WalletID: "wallet-1"},
			},
		},
	}
}

func TestGetWalletSummary(t *testing.T) {
	service := NewDashboardService(newDashboardRepoFixture(), &MockWalletGate{member: true, role: wallet.RoleMember})

	summary, err := service.GetWalletSummary(context.Background(), "user-1", "wallet-1")
	assert.NoError(t, err)
	assert.True(t, summary.TotalIncome.Equal(decimal.RequireFromString("200")))
	assert.True(t, summary.TotalExpense.Equal(decimal.RequireFromString("150")))
	assert.True(t, summary.Balance.Equal(decimal.RequireFromString("50")))
}

func TestGetWalletSummary_EmptyWallet(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := NewDashboardService(repo, &MockWalletGate{member: true, role: wallet.RoleMember})

	summary, err := service.GetWalletSummary(context.Background(), "user-1", "wallet-1")
	assert.NoError(t, err)
	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpense.IsZero())
	assert.True(t, summary.Balance.IsZero())
}

func TestGetWalletSummary_NoMembership(t *testing.T) {
	service := NewDashboardService(newDashboardRepoFixture(), &MockWalletGate{})

	_, err := service.GetWalletSummary(context.Background(), "user-1", "wallet-1")
	assert.ErrorIs(t, err, financeErrors.ErrWalletAccessDenied)
}

func TestGetExpensesByCategory_RollsUpToParent(t *testing.T) {
	service := NewDashboardService(newDashboardRepoFixture(), &MockWalletGate{member: true, role: wallet.RoleMember})

	expenses, err := service.GetExpensesByCategory(context.Background(), "user-1", "wallet-1")
	assert.NoError(t, err)

	// Groceries and Dining both roll up under Food; income is excluded.
	assert.Equal(t, 1, len(expenses))
	assert.Equal(t, "Food", expenses[0].Name)
	assert.True(t, expenses[0].Value.Equal(decimal.RequireFromString("150")))
}

func TestGetExpensesByCategory_EmptyWallet(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := NewDashboardService(repo, &MockWalletGate{member: true, role: wallet.RoleMember})

	expenses, err := service.GetExpensesByCategory(context.Background(), "user-1", "wallet-1")
	assert.NoError(t, err)
	assert.NotNil(t, expenses)
	assert.Empty(t, expenses)
}
