package application

import (
	"context"

	financeErrors "github.com/sebuszqo/WalletManager/internal/finance/errors"
	"github.com/sebuszqo/WalletManager/internal/wallet"
)

// MockWalletGate grants access according to its fields: no membership at all,
// or a membership with the configured role.
type MockWalletGate struct {
	member bool
	role   wallet.Role
}

func (m *MockWalletGate) CheckAccess(_ context.Context, userID, walletID string, requireOwner bool) (*wallet.Membership, error) {
	if !m.member {
		return nil, financeErrors.ErrWalletAccessDenied
	}
	if requireOwner && m.role != wallet.RoleOwner {
		return nil, financeErrors.ErrOwnerRequired
	}
	return &wallet.Membership{UserID: userID, WalletID: walletID, Role: m.role}, nil
}
