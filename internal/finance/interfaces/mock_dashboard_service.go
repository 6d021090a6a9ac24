package interfaces

import (
	"context"
	"errors"

	"github.com/sebuszqo/WalletManager/internal/finance/application"
)

type MockDashboardService struct {
	summary    *application.WalletSummary
	expenses   []application.CategoryExpense
	err        error
	shouldFail bool
}

func (m *MockDashboardService) GetWalletSummary(_ context.Context, _, _ string) (*application.WalletSummary, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.summary, nil
}

func (m *MockDashboardService) GetExpensesByCategory(_ context.Context, _, _ string) ([]application.CategoryExpense, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.expenses, nil
}
