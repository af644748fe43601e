package mock

import (
	"context"

	"github.com/pcourtois/media-vault-go/internal/port"
)

// MockNotifier implements port.Notifier for tests.
type MockNotifier struct {
	Err    error
	Called bool
	Sent   []port.Notification
}

func (m *MockNotifier) Notify(ctx context.Context, n port.Notification) error {
	m.Called = true
	m.Sent = append(m.Sent, n)
	return m.Err
}
