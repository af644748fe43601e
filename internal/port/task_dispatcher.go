package port

import "context"

// Notification is the payload of the outbound webhook call.
type Notification struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Filename string `json:"filename"`
}

// TaskDispatcher enqueues asynchronous tasks. Dispatch failures are loggable,
// never fatal to the request that triggered them.
type TaskDispatcher interface {
	EnqueueWebhookNotification(ctx context.Context, n Notification) error
}
