package application

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/sebuszqo/WalletManager/internal/finance/domain"
)

type WalletSummary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
}

// CategoryExpense is one chart slice: total expenses rolled up under one
// parent category name.
type CategoryExpense struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

type DashboardService struct {
	repo domain.TransactionRepository
	gate WalletGate
}

func NewDashboardService(repo domain.TransactionRepository, gate WalletGate) *DashboardService {
	return &DashboardService{repo: repo, gate: gate}
}

// GetWalletSummary computes total income, total expense and their balance.
// The two sums are independent aggregates over disjoint partitions, so they
// run concurrently.
func (s *DashboardService) GetWalletSummary(ctx context.Context, userID, walletID string) (*WalletSummary, error) {
	if _, err := s.gate.CheckAccess(ctx, userID, walletID, false); err != nil {
		return nil, err
	}

	var totalIncome, totalExpense decimal.Decimal
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalIncome, err = s.repo.SumByWalletAndType(gctx, walletID, domain.TypeIncome)
		return err
	})
	g.Go(func() error {
		var err error
		totalExpense, err = s.repo.SumByWalletAndType(gctx, walletID, domain.TypeExpense)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &WalletSummary{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
	}, nil
}

// GetExpensesByCategory rolls per-subcategory expense sums up into parent
// category names, e.g. "Groceries" and "Dining" both land under "Food".
// Entries keep the first-encounter order of each category name.
func (s *DashboardService) GetExpensesByCategory(ctx context.Context, userID, walletID string) ([]CategoryExpense, error) {
	if _, err := s.gate.CheckAccess(ctx, userID, walletID, false); err != nil {
		return nil, err
	}

	sums, err := s.repo.SumExpensesBySubcategory(ctx, walletID)
	if err != nil {
		return nil, err
	}

	expenses := []CategoryExpense{}
	index := make(map[string]int)
	for _, sum := range sums {
		if i, ok := index[sum.CategoryName]; ok {
			expenses[i].Value = expenses[i].Value.Add(sum.Total)
			continue
		}
		index[sum.CategoryName] = len(expenses)
		expenses = append(expenses, CategoryExpense{Name: sum.CategoryName, Value: sum.Total})
	}
	return expenses, nil
}
