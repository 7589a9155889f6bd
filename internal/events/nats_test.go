package events_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwellhq/homecat/internal/events"
	"github.com/dwellhq/homecat/pkg/catalog"
)

func TestSubject(t *testing.T) {
	t.Parallel()
	t.Run("per-kind subjects", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "catalog.events.homes", events.Subject(catalog.KindHomes))
		assert.Equal(t, "catalog.events.styling-guides", events.Subject(catalog.KindStylingGuides))
	})

	t.Run("wildcard covers every kind", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "catalog.events.>", events.SubjectAll())
	})

	t.Run("every kind maps under the wildcard prefix", func(t *testing.T) {
		t.Parallel()

		for _, kind := range catalog.Kinds() {
			assert.Contains(t, events.Subject(kind), "catalog.events.")
		}
	})
}

func TestEventWireShape(t *testing.T) {
	t.Parallel()

	var event catalog.Event

	payload := []byte(`{"kind":"homes","id":"home-1","action":"updated"}`)
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, catalog.KindHomes, event.Kind)
	assert.Equal(t, "home-1", event.ID)
	assert.Equal(t, catalog.EventUpdated, event.Action)
}
