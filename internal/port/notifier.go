package port

import "context"

// Notifier delivers a notification to the configured webhook endpoint.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
