package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pcourtois/media-vault-go/internal/model"
	"github.com/pcourtois/media-vault-go/internal/port"
)

type registerSrv struct {
	repo      port.UserRepository
	genUUID   port.UUIDGen
	jwtSecret string
}

// compile-time check: *registerSrv must satisfy port.UserRegisterer
var _ port.UserRegisterer = (*registerSrv)(nil)

// NewRegisterer constructs a UserRegisterer implementation.
func NewRegisterer(repo port.UserRepository, genUUID port.UUIDGen, jwtSecret string) port.UserRegisterer {
	return &registerSrv{repo: repo, genUUID: genUUID, jwtSecret: jwtSecret}
}

// Register creates an account with a bcrypt-hashed password and issues a
// token for it.
func (s *registerSrv) Register(ctx context.Context, in port.RegisterInput) (port.AuthOutput, error) {
	_, err := s.repo.GetByEmail(ctx, in.Email)
	if err == nil {
		return port.AuthOutput{}, ErrEmailTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return port.AuthOutput{}, fmt.Errorf("failed checking email %q: %w", in.Email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return port.AuthOutput{}, fmt.Errorf("failed hashing password: %w", err)
	}

	u := &model.User{
		ID:           s.genUUID(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return port.AuthOutput{}, fmt.Errorf("failed persisting user: %w", err)
	}

	token, err := signToken(u, s.jwtSecret)
	if err != nil {
		return port.AuthOutput{}, fmt.Errorf("failed signing token: %w", err)
	}

	return port.AuthOutput{Token: token, User: u}, nil
}
