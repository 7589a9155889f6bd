// Package events delivers catalog change notifications over NATS. The
// service publishes one message per committed mutation on
// "catalog.events.<kind>"; payloads carry identifiers only, so consumers
// react by re-fetching authoritative state, never by merging event data.
package events

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"

	"github.com/dwellhq/homecat/internal/constants"
	"github.com/dwellhq/homecat/pkg/catalog"
)

// NATSWatcher implements catalog.Watcher over a NATS connection.
type NATSWatcher struct {
	mu     sync.Mutex
	conn   *nats.Conn
	subs   []*nats.Subscription
	logger catalog.Logger
	closed bool
}

// NewNATSWatcher connects to the given NATS URL.
func NewNATSWatcher(url string, logger catalog.Logger) (*NATSWatcher, error) {
	conn, err := nats.Connect(url, nats.Name("homecat-watch"))
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	return &NATSWatcher{conn: conn, logger: logger}, nil
}

// Subject returns the event subject for one entity kind.
func Subject(kind catalog.Kind) string {
	return constants.EventSubjectPrefix + "." + string(kind)
}

// SubjectAll returns the wildcard subject covering every entity kind.
func SubjectAll() string {
	return constants.EventSubjectPrefix + ".>"
}

// Watch implements catalog.Watcher.Watch. Malformed event payloads are
// dropped after a warning; they never reach the handler.
func (w *NATSWatcher) Watch(kinds []catalog.Kind, handler catalog.EventHandler) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return catalog.ErrWatcherDisconnected
	}

	subjects := []string{SubjectAll()}
	if len(kinds) > 0 {
		subjects = subjects[:0]
		for _, kind := range kinds {
			subjects = append(subjects, Subject(kind))
		}
	}

	for _, subject := range subjects {
		sub, err := w.conn.Subscribe(subject, func(msg *nats.Msg) {
			var event catalog.Event

			err := json.Unmarshal(msg.Data, &event)
			if err != nil || event.Kind == "" {
				if w.logger != nil {
					w.logger.Warn("dropping malformed catalog event", map[string]interface{}{
						"subject": msg.Subject,
					})
				}

				return
			}

			handler(event)
		})
		if err != nil {
			return fmt.Errorf("subscribing to %s: %w", subject, err)
		}

		w.subs = append(w.subs, sub)
	}

	return nil
}

// Close implements catalog.Watcher.Close.
func (w *NATSWatcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}

	w.closed = true

	for _, sub := range w.subs {
		_ = sub.Drain()
	}

	w.conn.Close()

	return nil
}
