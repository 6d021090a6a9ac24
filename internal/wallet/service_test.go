package wallet

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	financeErrors "github.com/sebuszqo/WalletManager/internal/finance/errors"
)

type mockRepository struct {
	memberships []Membership
	wallets     []Wallet
}

func (m *mockRepository) FindMembership(_ context.Context, userID, walletID string) (*Membership, error) {
	for _, membership := range m.memberships {
		if membership.UserID == userID && membership.WalletID == walletID {
			found := membership
			return &found, nil
		}
	}
	return nil, nil
}

func (m *mockRepository) CreateWallet(_ context.Context, wallet *Wallet, ownerUserID string) error {
	wallet.ID = uuid.NewString()
	m.wallets = append(m.wallets, *wallet)
	m.memberships = append(m.memberships, Membership{
		ID:       uuid.NewString(),
		UserID:   ownerUserID,
		WalletID: wallet.ID,
		Role:     RoleOwner,
	})
	return nil
}

func (m *mockRepository) FindMembershipsByUser(_ context.Context, userID string) ([]MembershipWithWallet, error) {
	var result []MembershipWithWallet
	for _, membership := range m.memberships {
		if membership.UserID != userID {
			continue
		}
		for _, w := range m.wallets {
			if w.ID == membership.WalletID {
				result = append(result, MembershipWithWallet{Membership: membership, Wallet: w})
			}
		}
	}
	return result, nil
}

func TestCheckAccess_NoMembership(t *testing.T) {
	service := NewWalletService(&mockRepository{})

	_, err := service.CheckAccess(context.Background(), "user-1", "wallet-1", false)
	assert.ErrorIs(t, err, financeErrors.ErrWalletAccessDenied)
}

func TestCheckAccess_MemberMayRead(t *testing.T) {
	repo := &mockRepository{
		memberships: []Membership{{ID: "m-1", UserID: "user-1", WalletID: "wallet-1", Role: RoleMember}},
	}
	service := NewWalletService(repo)

	membership, err := service.CheckAccess(context.Background(), "user-1", "wallet-1", false)
	assert.NoError(t, err)
	assert.Equal(t, RoleMember, membership.Role)
}

func TestCheckAccess_MemberCannotAct_AsOwner(t *testing.T) {
	repo := &mockRepository{
		memberships: []Membership{{ID: "m-1", UserID: "user-1", WalletID: "wallet-1", Role: RoleMember}},
	}
	service := NewWalletService(repo)

	_, err := service.CheckAccess(context.Background(), "user-1", "wallet-1", true)
	assert.ErrorIs(t, err, financeErrors.ErrOwnerRequired)
}

func TestCheckAccess_Owner(t *testing.T) {
	repo := &mockRepository{
		memberships: []Membership{{ID: "m-1", UserID: "user-1", WalletID: "wallet-1", Role: RoleOwner}},
	}
	service := NewWalletService(repo)

	membership, err := service.CheckAccess(context.Background(), "user-1", "wallet-1", true)
	assert.NoError(t, err)
	assert.Equal(t, RoleOwner, membership.Role)
}

func TestCreateWallet_CreatorBecomesOwner(t *testing.T) {
	repo := &mockRepository{}
	service := NewWalletService(repo)

	created, err := service.CreateWallet(context.Background(), "user-1", "Household", TypeShared)
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	membership, err := service.CheckAccess(context.Background(), "user-1", created.ID, true)
	assert.NoError(t, err)
	assert.Equal(t, RoleOwner, membership.Role)
}

func TestCreateWallet_InvalidType(t *testing.T) {
	service := NewWalletService(&mockRepository{})

	_, err := service.CreateWallet(context.Background(), "user-1", "Household", "JOINT")
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestCreateWallet_EmptyName(t *testing.T) {
	service := NewWalletService(&mockRepository{})

	_, err := service.CreateWallet(context.Background(), "user-1", "  ", TypePersonal)
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestGetUserWallets_Empty(t *testing.T) {
	service := NewWalletService(&mockRepository{})

	wallets, err := service.GetUserWallets(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.NotNil(t, wallets)
	assert.Empty(t, wallets)
}
