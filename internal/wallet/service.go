package wallet

import (
	"context"
	"strings"

	financeErrors "github.com/sebuszqo/WalletManager/internal/finance/errors"
)

type Service interface {
	// CheckAccess is the membership gate invoked before every wallet-scoped
	// read or write. It fails with an access-denied error when the user has
	// no membership on the wallet, or when requireOwner is set and the
	// membership role is not OWNER.
	CheckAccess(ctx context.Context, userID, walletID string, requireOwner bool) (*Membership, error)

	CreateWallet(ctx context.Context, userID, name string, walletType WalletType) (*Wallet, error)
	GetUserWallets(ctx context.Context, userID string) ([]MembershipWithWallet, error)
}

type service struct {
	repo Repository
}

func NewWalletService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CheckAccess(ctx context.Context, userID, walletID string, requireOwner bool) (*Membership, error) {
	membership, err := s.repo.FindMembership(ctx, userID, walletID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, financeErrors.ErrWalletAccessDenied
	}
	if requireOwner && membership.Role != RoleOwner {
		return nil, financeErrors.ErrOwnerRequired
	}
	return membership, nil
}

func (s *service) CreateWallet(ctx context.Context, userID, name string, walletType WalletType) (*Wallet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, financeErrors.NewValidationError("Wallet name must not be empty")
	}
	if !IsValidWalletType(walletType) {
		return nil, financeErrors.NewValidationError("Wallet type must be 'PERSONAL' or 'SHARED'")
	}

	wallet := &Wallet{
		Name: name,
		Type: walletType,
	}
	if err := s.repo.CreateWallet(ctx, wallet, userID); err != nil {
		return nil, err
	}
	return wallet, nil
}

func (s *service) GetUserWallets(ctx context.Context, userID string) ([]MembershipWithWallet, error) {
	memberships, err := s.repo.FindMembershipsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if memberships == nil {
		return []MembershipWithWallet{}, nil
	}
	return memberships, nil
}
