package mock

import (
	"context"

	"github.com/pcourtois/media-vault-go/internal/port"
)

// MockDispatcher implements task dispatching for tests.
type MockDispatcher struct {
	NotifyCalled  bool
	Notifications []port.Notification
	NotifyErr     error
}

func (m *MockDispatcher) EnqueueWebhookNotification(ctx context.Context, n port.Notification) error {
	m.NotifyCalled = true
	m.Notifications = append(m.Notifications, n)
	return m.NotifyErr
}
