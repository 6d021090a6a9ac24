package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/badoux/checkmail"
	"golang.org/x/crypto/bcrypt"

	financeErrors "github.com/sebuszqo/WalletManager/internal/finance/errors"
)

const (
	bcryptCost        = 12
	minPasswordLength = 8
	maxEmailLength    = 254
)

var (
	ErrCredentialsTaken   = errors.New("Credentials taken")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInternalError      = errors.New("internal Server Error")
)

type Service interface {
	SignUp(ctx context.Context, email, name, password string) (*User, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	repo       Repository
	jwtManager JWTManagerInterface
}

func NewAuthService(repo Repository, jwtManager JWTManagerInterface) Service {
	return &service{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

func validateEmailAddress(email string) error {
	if err := checkmail.ValidateFormat(email); err != nil {
		return financeErrors.NewValidationError("email address is not valid")
	}
	if len(email) > maxEmailLength {
		return financeErrors.NewValidationError("email address is too long")
	}
	return nil
}

// SignUp creates the user together with a default PERSONAL wallet and OWNER
// membership. An already-registered email fails with ErrCredentialsTaken and
// leaves no rows behind.
func (s *service) SignUp(ctx context.Context, email, name, password string) (*User, error) {
	if err := validateEmailAddress(email); err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, financeErrors.NewValidationError(
			fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, ErrInternalError
	}

	user := &User{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
	}
	if err := s.repo.CreateUserWithPersonalWallet(ctx, user); err != nil {
		if errors.Is(err, ErrCredentialsTaken) {
			return nil, ErrCredentialsTaken
		}
		return nil, err
	}

	return user, nil
}

// SignIn verifies the credentials and returns a signed access token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *service) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwtManager.GenerateAccessJWT(user.ID, user.Email, defaultJWTDuration)
}
