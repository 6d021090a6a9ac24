package user

import (
	"context"

	"github.com/sebuszqo/WalletManager/internal/auth"
	"github.com/sebuszqo/WalletManager/internal/wallet"
)

// Profile is the payload for GET /users/me: the user plus every wallet they
// belong to, with their role on each.
type Profile struct {
	auth.User
	Memberships []wallet.MembershipWithWallet `json:"memberships"`
}

type Service interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
}

type service struct {
	users         auth.Repository
	walletService wallet.Service
}

func NewUserService(users auth.Repository, walletService wallet.Service) Service {
	return &service{
		users:         users,
		walletService: walletService,
	}
}

func (s *service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, auth.ErrUserNotFound
	}

	memberships, err := s.walletService.GetUserWallets(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:        *user,
		Memberships: memberships,
	}, nil
}
