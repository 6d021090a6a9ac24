package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUserWithPersonalWallet(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrCredentialsTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	walletID := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO wallets (id, name, type, created_at, updated_at)
		 VALUES ($1, $2, 'PERSONAL', $3, $4)`,
		walletID, "Personal", now, now,
	)
	if err != nil {
		return fmt.Errorf("insert default wallet: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO wallet_memberships (id, user_id, wallet_id, role, created_at)
		 VALUES ($1, $2, $3, 'OWNER', $4)`,
		uuid.NewString(), user.ID, walletID, now,
	)
	if err != nil {
		return fmt.Errorf("insert owner membership: %w", err)
	}

	return tx.Commit()
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return r.getUser(ctx,
		`SELECT id, email, name, password_hash, created_at, updated_at FROM users WHERE email = $1`, email)
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*User, error) {
	return r.getUser(ctx,
		`SELECT id, email, name, password_hash, created_at, updated_at FROM users WHERE id = $1`, id)
}

func (r *userRepository) getUser(ctx context.Context, query string, arg string) (*User, error) {
	var user User
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
