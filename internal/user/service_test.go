package user

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sebuszqo/WalletManager/internal/auth"
	"github.com/sebuszqo/WalletManager/internal/wallet"
)

type mockUserRepository struct {
	user *auth.User
}

func (m *mockUserRepository) CreateUserWithPersonalWallet(_ context.Context, _ *auth.User) error {
	return nil
}

func (m *mockUserRepository) GetUserByEmail(_ context.Context, _ string) (*auth.User, error) {
	return m.user, nil
}

func (m *mockUserRepository) GetUserByID(_ context.Context, _ string) (*auth.User, error) {
	return m.user, nil
}

type mockWalletService struct {
	memberships []wallet.MembershipWithWallet
}

func (m *mockWalletService) CheckAccess(_ context.Context, _, _ string, _ bool) (*wallet.Membership, error) {
	return nil, nil
}

func (m *mockWalletService) CreateWallet(_ context.Context, _, _ string, _ wallet.WalletType) (*wallet.Wallet, error) {
	return nil, nil
}

func (m *mockWalletService) GetUserWallets(_ context.Context, _ string) ([]wallet.MembershipWithWallet, error) {
	return m.memberships, nil
}

func TestGetProfile(t *testing.T) {
	repo := &mockUserRepository{
		user: &auth.User{ID: "user-1", Email: "user@example.com", Name: "Jo", PasswordHash: "secret"},
	}
	walletService := &mockWalletService{
		memberships: []wallet.MembershipWithWallet{
			{
				Membership: wallet.Membership{ID: "m-1", UserID: "user-1", WalletID: "wallet-1", Role: wallet.RoleOwner},
				Wallet:     wallet.Wallet{ID: "wallet-1", Name: "Personal", Type: wallet.TypePersonal},
			},
		},
	}
	service := NewUserService(repo, walletService)

	profile, err := service.GetProfile(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", profile.Email)
	assert.Equal(t, 1, len(profile.Memberships))
	assert.Equal(t, wallet.RoleOwner, profile.Memberships[0].Role)
}

func TestGetProfile_UnknownUser(t *testing.T) {
	service := NewUserService(&mockUserRepository{}, &mockWalletService{})

	_, err := service.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestGetProfile_PasswordHashNeverSerialized(t *testing.T) {
	repo := &mockUserRepository{
		user: &auth.User{ID: "user-1", Email: "user@example.com", PasswordHash: "secret"},
	}
	service := NewUserService(repo, &mockWalletService{})

	profile, err := service.GetProfile(context.Background(), "user-1")
	assert.NoError(t, err)

	payload, err := json.Marshal(profile)
	assert.NoError(t, err)
	assert.NotContains(t, string(payload), "secret")
}
