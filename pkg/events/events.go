package events

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"giftlist/pkg/log"
)

// Recorder is a fire-and-forget hook invoked after an action executed,
// successfully or not. A failing recorder never fails the action.
type Recorder interface {
	Record(ctx context.Context, e Event)
}

// Event describes one executed action.
type Event struct {
	Action  string    `json:"action"`
	ActorID string    `json:"actor_id,omitempty"`
	Error   string    `json:"error,omitempty"`
	At      time.Time `json:"at"`
}

// Noop discards all events.
type Noop struct{}

func (Noop) Record(ctx context.Context, e Event) {}

// Webhook posts events to an HTTP endpoint in the background.
type Webhook struct {
	url    string
	client *http.Client
	l      log.Logger
}

var _ Recorder = (*Webhook)(nil)

func NewWebhook(url string, l log.Logger) *Webhook {
	return &Webhook{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
		l:      l,
	}
}

// Record posts the event asynchronously. Detached from the caller's context:
// the action finishing must not cancel the hook mid-flight.
func (w *Webhook) Record(ctx context.Context, e Event) {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	go func() {
		body, err := json.Marshal(e)
		if err != nil {
			w.l.Warnf(context.Background(), "events: marshal: %v", err)
			return
		}
		resp, err := w.client.Post(w.url, "application/json", bytes.NewReader(body))
		if err != nil {
			w.l.Warnf(context.Background(), "events: post: %v", err)
			return
		}
		resp.Body.Close()
	}()
}
