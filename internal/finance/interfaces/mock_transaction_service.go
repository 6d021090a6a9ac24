package interfaces

import (
	"context"
	"errors"

	"github.com/sebuszqo/WalletManager/internal/finance/application"
	"github.com/sebuszqo/WalletManager/internal/finance/domain"
)

type MockTransactionService struct {
	transactions []domain.TransactionWithCategory
	transaction  *domain.Transaction
	lastFilter   domain.TransactionFilter
	err          error
	shouldFail   bool
}

func (m *MockTransactionService) CreateTransaction(_ context.Context, _ string, transaction *domain.Transaction) (*domain.Transaction, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if m.err != nil {
		return nil, m.err
	}
	transaction.ID = "transaction-id"
	return transaction, nil
}

func (m *MockTransactionService) GetTransactionsByWallet(_ context.Context, _, _ string, filter domain.TransactionFilter) ([]domain.TransactionWithCategory, error) {
	m.lastFilter = filter
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.transactions, nil
}

func (m *MockTransactionService) GetTransactionByID(_ context.Context, _, _ string) (*domain.Transaction, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.transaction, nil
}

func (m *MockTransactionService) UpdateTransactionByID(_ context.Context, _, _ string, _ application.TransactionPatch) (*domain.Transaction, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.transaction, nil
}

func (m *MockTransactionService) DeleteTransactionByID(_ context.Context, _, _ string) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	return m.err
}
