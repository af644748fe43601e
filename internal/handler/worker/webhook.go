package worker

import (
	"context"
	"log"

	"github.com/pcourtois/media-vault-go/internal/port"
)

// WebhookNotificationHandler handles a webhook-notification task. It hands
// the decoded payload to the notifier and reports the outcome. Delivery is
// single-shot: a failure here is logged, never retried.
func WebhookNotificationHandler(ctx context.Context, p port.Notification, n port.Notifier) error {
	if err := n.Notify(ctx, p); err != nil {
		log.Printf("❌  Failed to deliver %q notification for %q: %v", p.Type, p.Filename, err)
		return err
	}

	log.Printf("✅  Successfully delivered %q notification for %q", p.Type, p.Filename)
	return nil
}
