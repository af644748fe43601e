package mock

import (
	"context"

	"github.com/pcourtois/media-vault-go/internal/model"
)

// MockUserRepo implements account persistence for tests.
type MockUserRepo struct {
	UserRecord *model.User

	GetErr    error
	CreateErr error

	GetCalled bool
	GetEmail  string
	Created   *model.User
}

func (m *MockUserRepo) Create(ctx context.Context, user *model.User) error {
	m.Created = user
	return m.CreateErr
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	m.GetCalled = true
	m.GetEmail = email
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.UserRecord, nil
}
