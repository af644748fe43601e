package task

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/pcourtois/media-vault-go/internal/port"
)

const TypeWebhookNotification = "webhook:notify"

// notificationTimeout bounds the outbound call; the task is never retried,
// matching the fire-and-forget contract of the notification.
const notificationTimeout = 10 * time.Second

// NewWebhookNotificationTask creates an Asynq task for one webhook call.
func NewWebhookNotificationTask(n port.Notification) (*asynq.Task, error) {
	data, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("could not marshal webhook-notification payload: %w", err)
	}
	return asynq.NewTask(TypeWebhookNotification, data,
		asynq.MaxRetry(0),
		asynq.Timeout(notificationTimeout),
	), nil
}

// ParseWebhookNotificationPayload parses the task payload back to a Notification.
func ParseWebhookNotificationPayload(t *asynq.Task) (port.Notification, error) {
	var n port.Notification
	if err := json.Unmarshal(t.Payload(), &n); err != nil {
		return port.Notification{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return n, nil
}
