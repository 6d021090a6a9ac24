package application

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sebuszqo/WalletManager/internal/finance/domain"
	financeErrors "github.com/sebuszqo/WalletManager/internal/finance/errors"
)

type TransactionPatch struct {
	Amount        *decimal.Decimal
	Type          *domain.TransactionType
	Date          *time.Time
	Description   *string
	SubcategoryID *string
}

type TransactionService struct {
	repo            domain.TransactionRepository
	subcategoryRepo domain.SubcategoryRepository
	gate            WalletGate
}

func NewTransactionService(repo domain.TransactionRepository, subcategoryRepo domain.SubcategoryRepository, gate WalletGate) *TransactionService {
	return &TransactionService{repo: repo, subcategoryRepo: subcategoryRepo, gate: gate}
}

// CreateTransaction is gated on plain membership: any member may record a
// transaction. The named subcategory must resolve to the same wallet.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID string, transaction *domain.Transaction) (*domain.Transaction, error) {
	if err := transaction.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.gate.CheckAccess(ctx, userID, transaction.WalletID, false); err != nil {
		return nil, err
	}
	if err := s.checkSubcategoryBelongsToWallet(ctx, transaction.SubcategoryID, transaction.WalletID); err != nil {
		return nil, err
	}

	transaction.AuthorID = userID
	if err := s.repo.Save(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *TransactionService) GetTransactionsByWallet(ctx context.Context, userID, walletID string, filter domain.TransactionFilter) ([]domain.TransactionWithCategory, error) {
	if _, err := s.gate.CheckAccess(ctx, userID, walletID, false); err != nil {
		return nil, err
	}

	transactions, err := s.repo.FindByWallet(ctx, walletID, filter)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.TransactionWithCategory{}, nil
	}
	return transactions, nil
}

func (s *TransactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	transaction, err := s.repo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.gate.CheckAccess(ctx, userID, transaction.WalletID, false); err != nil {
		return nil, err
	}
	return transaction, nil
}

// UpdateTransactionByID requires OWNER role, stricter than create. A changed
// subcategory is re-validated against the transaction's wallet.
func (s *TransactionService) UpdateTransactionByID(ctx context.Context, userID, transactionID string, patch TransactionPatch) (*domain.Transaction, error) {
	transaction, err := s.GetTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.gate.CheckAccess(ctx, userID, transaction.WalletID, true); err != nil {
		return nil, err
	}

	if patch.SubcategoryID != nil {
		if err := s.checkSubcategoryBelongsToWallet(ctx, *patch.SubcategoryID, transaction.WalletID); err != nil {
			return nil, err
		}
		transaction.SubcategoryID = *patch.SubcategoryID
	}
	if patch.Amount != nil {
		transaction.Amount = *patch.Amount
	}
	if patch.Type != nil {
		transaction.Type = *patch.Type
	}
	if patch.Date != nil {
		transaction.Date = *patch.Date
	}
	if patch.Description != nil {
		transaction.Description = *patch.Description
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *TransactionService) DeleteTransactionByID(ctx context.Context, userID, transactionID string) error {
	transaction, err := s.GetTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return err
	}
	if _, err := s.gate.CheckAccess(ctx, userID, transaction.WalletID, true); err != nil {
		return err
	}
	return s.repo.Delete(ctx, transactionID)
}

func (s *TransactionService) checkSubcategoryBelongsToWallet(ctx context.Context, subcategoryID, walletID string) error {
	subcategory, err := s.subcategoryRepo.FindByIDWithCategory(ctx, subcategoryID)
	if err != nil {
		return err
	}
	if subcategory.Category.WalletID != walletID {
		return financeErrors.ErrSubcategoryWalletMismatch
	}
	return nil
}
