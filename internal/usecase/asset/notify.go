package asset

import (
	"context"
	"log"

	"github.com/pcourtois/media-vault-go/internal/port"
)

// Event types carried by outbound webhook notifications.
const (
	EventAssetUploaded = "media.uploaded"
	EventAssetUpdated  = "media.updated"
	EventAssetDeleted  = "media.deleted"
)

// dispatchNotification enqueues the fire-and-forget webhook call. Enqueue
// failures are logged and swallowed; they must never reach the caller.
func dispatchNotification(ctx context.Context, d port.TaskDispatcher, n port.Notification) {
	if d == nil {
		return
	}
	if err := d.EnqueueWebhookNotification(ctx, n); err != nil {
		log.Printf("failed to enqueue webhook notification %q: %v", n.Type, err)
	}
}
