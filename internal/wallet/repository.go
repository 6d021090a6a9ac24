package wallet

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

type walletRepository struct {
	db *sql.DB
}

func NewWalletRepository(db *sql.DB) Repository {
	return &walletRepository{db: db}
}

func (r *walletRepository) FindMembership(ctx context.Context, userID, walletID string) (*Membership, error) {
	var membership Membership
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, wallet_id, role, created_at
		 FROM wallet_memberships WHERE user_id = $1 AND wallet_id = $2`,
		userID, walletID,
	).Scan(&membership.ID, &membership.UserID, &membership.WalletID, &membership.Role, &membership.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

func (r *walletRepository) CreateWallet(ctx context.Context, wallet *Wallet, ownerUserID string) error {
	if wallet.ID == "" {
		wallet.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	wallet.CreatedAt = now
	wallet.UpdatedAt = now

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO wallets (id, name, type, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		wallet.ID, wallet.Name, wallet.Type, wallet.CreatedAt, wallet.UpdatedAt,
	)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO wallet_memberships (id, user_id, wallet_id, role, created_at) VALUES ($1, $2, $3, $4, $5)`,
		uuid.NewString(), ownerUserID, wallet.ID, RoleOwner, now,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *walletRepository) FindMembershipsByUser(ctx context.Context, userID string) ([]MembershipWithWallet, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT m.id, m.user_id, m.wallet_id, m.role, m.created_at,
		        w.id, w.name, w.type, w.created_at, w.updated_at
		 FROM wallet_memberships m
		 JOIN wallets w ON w.id = m.wallet_id
		 WHERE m.user_id = $1
		 ORDER BY m.created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memberships []MembershipWithWallet
	for rows.Next() {
		var m MembershipWithWallet
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.WalletID, &m.Role, &m.CreatedAt,
			&m.Wallet.ID, &m.Wallet.Name, &m.Wallet.Type, &m.Wallet.CreatedAt, &m.Wallet.UpdatedAt,
		); err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}
	return memberships, rows.Err()
}
