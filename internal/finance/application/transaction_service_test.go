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

func newTransactionFixture() *domain.Transaction {
	return &domain.Transaction{
		Amount:        decimal.RequireFromString("42.50"),
		Type:          domain.TypeExpense,
		Date:          time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		Description:   "Groceries",
		WalletID:      "wallet-1",
		SubcategoryID: "sub-1",
	}
}

func newSubcategoryRepoFixture() *infrastructure.MockSubcategoryRepository {
	return &infrastructure.MockSubcategoryRepository{
		Subcategories: []domain.Subcategory{
			{ID: "sub-1", Name: "Groceries", CategoryID: "cat-1"},
			{ID: "sub-other", Name: "Rent", CategoryID: "cat-other"},
		},
		Parents: map[string]domain.Category{
			"cat-1":     {ID: "cat-1", Name: "Food", WalletID: "wallet-1"},
			"cat-other": {ID: "cat-other", Name: "Housing", WalletID: "wallet-other"},
		},
	}
}

func TestCreateTransaction_Success(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := NewTransactionService(repo, newSubcategoryRepoFixture(), &MockWalletGate{member: true, role: wallet.RoleMember})

	transaction, err := service.CreateTransaction(context.Background(), "user-1", newTransactionFixture())
	assert.NoError(t, err)
	assert.NotEmpty(t, transaction.ID)
	assert.Equal(t, "user-1", transaction.AuthorID)
	assert.Equal(t, 1, len(repo.Transactions))
}

func TestCreateTransaction_MemberAllowed(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := NewTransactionService(repo, newSubcategoryRepoFixture(), &MockWalletGate{member: true, role: wallet.RoleMember})

	_, err := service.CreateTransaction(context.Background(), "user-1", newTransactionFixture())
	assert.NoError(t, err)
}

func TestCreateTransaction_NoMembership(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := NewTransactionService(repo, newSubcategoryRepoFixture(), &MockWalletGate{})

	_, err := service.CreateTransaction(context.Background(), "user-1", newTransactionFixture())
	assert.ErrorIs(t, err, financeErrors.ErrWalletAccessDenied)
	assert.Empty(t, repo.Transactions)
}

func TestCreateTransaction_SubcategoryFromAnotherWallet(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := NewTransactionService(repo, newSubcategoryRepoFixture(), &MockWalletGate{member: true, role: wallet.RoleOwner})

	transaction := newTransactionFixture()
	transaction.SubcategoryID = "sub-other"
	_, err := service.CreateTransaction(context.Background(), "user-1", transaction)
	assert.ErrorIs(t, err, financeErrors.ErrSubcategoryWalletMismatch)
	assert.Empty(t, repo.Transactions)
}

func TestCreateTransaction_NonPositiveAmount(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := NewTransactionService(repo, newSubcategoryRepoFixture(), &MockWalletGate{member: true, role: wallet.RoleOwner})

	transaction := newTransactionFixture()
	transaction.Amount = decimal.Zero
	_, err := service.CreateTransaction(context.Background(), "user-1", transaction)
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestCreateTransaction_UnknownType(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := NewTransactionService(repo, newSubcategoryRepoFixture(), &MockWalletGate{member: true, role: wallet.RoleOwner})

	transaction := newTransactionFixture()
	transaction.Type = "TRANSFER"
	_, err := service.CreateTransaction(context.Background(), "user-1", transaction)
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestUpdateTransactionByID_OwnerOnly(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "tx-1", Amount: decimal.RequireFromString("10"), Type: domain.TypeExpense,
				Date: time.Now(), WalletID: "wallet-1", SubcategoryID: "sub-1"},
		},
	}
	service := NewTransactionService(repo, newSubcategoryRepoFixture(), &MockWalletGate{member: true, role: wallet.RoleMember})

	description := "Updated"
	_, err := service.UpdateTransactionByID(context.Background(), "user-1", "tx-1", TransactionPatch{Description: &description})
	assert.ErrorIs(t, err, financeErrors.ErrOwnerRequired)
}

func TestUpdateTransactionByID_PatchesFields(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "tx-1", Amount: decimal.RequireFromString("10"), Type: domain.TypeExpense,
				Date: time.Now(), WalletID: "wallet-1", SubcategoryID: "sub-1"},
		},
	}
	service := NewTransactionService(repo, newSubcategoryRepoFixture(), &MockWalletGate{member: true, role: wallet.RoleOwner})

	amount := decimal.RequireFromString("99.99")
	transactionType := domain.TypeIncome
	transaction, err := service.UpdateTransactionByID(context.Background(), "user-1", "tx-1", TransactionPatch{
		Amount: &amount,
		Type:   &transactionType,
	})
	assert.NoError(t, err)
	assert.True(t, transaction.Amount.Equal(amount))
	assert.Equal(t, domain.TypeIncome, transaction.Type)
	assert.True(t, repo.Transactions[0].Amount.Equal(amount))
}

func TestUpdateTransactionByID_RevalidatesChangedSubcategory(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "tx-1", Amount: decimal.RequireFromString("10"), Type: domain.TypeExpense,
				Date: time.Now(), WalletID: "wallet-1", SubcategoryID: "sub-1"},
		},
	}
	service := NewTransactionService(repo, newSubcategoryRepoFixture(), &MockWalletGate{member: true, role: wallet.RoleOwner})

	subcategoryID := "sub-other"
	_, err := service.UpdateTransactionByID(context.Background(), "user-1", "tx-1", TransactionPatch{SubcategoryID: &subcategoryID})
	assert.ErrorIs(t, err, financeErrors.ErrSubcategoryWalletMismatch)
	assert.Equal(t, "sub-1", repo.Transactions[0].SubcategoryID)
}

func TestDeleteTransactionByID_Success(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "tx-1", Amount: decimal.RequireFromString("10"), Type: domain.TypeExpense,
				Date: time.Now(), WalletID: "wallet-1", SubcategoryID: "sub-1"},
		},
	}
	service := NewTransactionService(repo, newSubcategoryRepoFixture(), &MockWalletGate{member: true, role: wallet.RoleOwner})

	err := service.DeleteTransactionByID(context.Background(), "user-1", "tx-1")
	assert.NoError(t, err)
	assert.Empty(t, repo.Transactions)
}

func TestDeleteTransactionByID_NotFound(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	service := NewTransactionService(repo, newSubcategoryRepoFixture(), &MockWalletGate{member: true, role: wallet.RoleOwner})

	err := service.DeleteTransactionByID(context.Background(), "user-1", "missing")
	assert.True(t, financeErrors.IsNotFoundError(err))
}

func TestGetTransactionsByWallet_DateRange(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "tx-1", Amount: decimal.RequireFromString("10"), Type: domain.TypeExpense,
				Date: time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC), WalletID: "wallet-1", SubcategoryID: "sub-1"},
			{ID: "tx-2", Amount: decimal.RequireFromString("20"), Type: domain.TypeExpense,
				Date: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), WalletID: "wallet-1", SubcategoryID: "sub-1"},
		},
		Subcategories: map[string]domain.SubcategoryWithCategory{},
	}
	service := NewTransactionService(repo, newSubcategoryRepoFixture(), &MockWalletGate{member: true, role: wallet.RoleMember})

	startDate := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	transactions, err := service.GetTransactionsByWallet(context.Background(), "user-1", "wallet-1", domain.TransactionFilter{
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(transactions))
	assert.Equal(t, "tx-1", transactions[0].ID)
}
