package catalog

// EventAction is the mutation a change event describes.
type EventAction string

const (
	EventCreated EventAction = "created"
	EventUpdated EventAction = "updated"
	EventDeleted EventAction = "deleted"
)

// Event is a change notification published by the catalog service after a
// mutation commits. Events carry identifiers only, never entity payloads:
// consumers re-fetch authoritative state through their loader instead of
// merging event data.
type Event struct {
	Kind   Kind        `json:"kind"   yaml:"kind"`
	ID     string      `json:"id"     yaml:"id"`
	Action EventAction `json:"action" yaml:"action"`
}

// EventHandler consumes one change event.
type EventHandler func(Event)

// Watcher delivers catalog change events until stopped.
type Watcher interface {
	// Watch subscribes to events for the given kinds (all kinds when
	// empty) and invokes handler for each. It returns once the
	// subscription is established.
	Watch(kinds []Kind, handler EventHandler) error
	// Close drains the subscription and releases the connection.
	Close() error
}
