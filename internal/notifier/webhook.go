package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/pcourtois/media-vault-go/internal/port"
)

const requestTimeout = 10 * time.Second

// WebhookNotifier posts notification payloads to the configured endpoint.
// It is executed from the worker; callers never wait on it.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

// compile-time check: *WebhookNotifier must satisfy port.Notifier
var _ port.Notifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: requestTimeout},
	}
}

func (n *WebhookNotifier) Notify(ctx context.Context, p port.Notification) error {
	if n.url == "" {
		log.Println("WEBHOOK_URL is not configured, skipping notification")
		return nil
	}

	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("could not marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("notification call failed: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("notification endpoint answered %d", resp.StatusCode)
	}

	log.Printf("successfully notified webhook for event %q", p.Type)
	return nil
}
