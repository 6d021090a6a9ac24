// Package wallet holds the wallet and membership model and the membership
// gate every wallet-scoped operation goes through.
package wallet

import (
	"context"
	"time"
)

type WalletType string

const (
	TypePersonal WalletType = "PERSONAL"
	TypeShared   WalletType = "SHARED"
)

func IsValidWalletType(walletType WalletType) bool {
	return walletType == TypePersonal || walletType == TypeShared
}

type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleMember Role = "MEMBER"
)

type Wallet struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      WalletType `json:"type"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Membership pairs a user and a wallet with a role. Unique per (user, wallet),
// enforced by the storage layer.
type Membership struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	WalletID  string    `json:"walletId"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type MembershipWithWallet struct {
	Membership
	Wallet Wallet `json:"wallet"`
}

type Repository interface {
	// FindMembership returns the unique membership for (userID, walletID),
	// or nil if the user has no membership on the wallet.
	FindMembership(ctx context.Context, userID, walletID string) (*Membership, error)

	// CreateWallet inserts the wallet together with an OWNER membership for
	// ownerUserID in a single database transaction.
	CreateWallet(ctx context.Context, wallet *Wallet, ownerUserID string) error

	FindMembershipsByUser(ctx context.Context, userID string) ([]MembershipWithWallet, error)
}
