package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pcourtois/media-vault-go/internal/port"
)

type loginSrv struct {
	repo      port.UserRepository
	jwtSecret string
}

// compile-time check: *loginSrv must satisfy port.UserAuthenticator
var _ port.UserAuthenticator = (*loginSrv)(nil)

// NewAuthenticator constructs a UserAuthenticator implementation.
func NewAuthenticator(repo port.UserRepository, jwtSecret string) port.UserAuthenticator {
	return &loginSrv{repo: repo, jwtSecret: jwtSecret}
}

// Login verifies the credentials and issues a token. Unknown email and wrong
// password collapse into the same error.
func (s *loginSrv) Login(ctx context.Context, in port.LoginInput) (port.AuthOutput, error) {
	u, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return port.AuthOutput{}, ErrInvalidCredentials
		}
		return port.AuthOutput{}, fmt.Errorf("failed fetching user %q: %w", in.Email, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return port.AuthOutput{}, ErrInvalidCredentials
	}

	token, err := signToken(u, s.jwtSecret)
	if err != nil {
		return port.AuthOutput{}, fmt.Errorf("failed signing token: %w", err)
	}

	return port.AuthOutput{Token: token, User: u}, nil
}
