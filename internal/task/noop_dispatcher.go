package task

import (
	"context"

	"github.com/pcourtois/media-vault-go/internal/port"
)

type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueueWebhookNotification(ctx context.Context, n port.Notification) error {
	return nil
}
