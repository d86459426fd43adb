package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsSeed(t *testing.T) {
	events := Events()
	require.Len(t, events, 10)

	seenEvents := make(map[string]bool)
	for _, ev := range events {
		assert.NotEmpty(t, ev.Name)
		assert.NotEmpty(t, ev.Country)
		assert.NotEmpty(t, ev.RaceDate)
		assert.NotEmpty(t, ev.ImagePath)
		assert.False(t, seenEvents[ev.Name], "duplicate event %q", ev.Name)
		seenEvents[ev.Name] = true

		require.NotEmpty(t, ev.Areas, "event %q has no seating areas", ev.Name)
		seenAreas := make(map[string]bool)
		for _, a := range ev.Areas {
			assert.NotEmpty(t, a.Name, "event %q has an unnamed area", ev.Name)
			assert.False(t, seenAreas[a.Name], "event %q repeats area %q", ev.Name, a.Name)
			seenAreas[a.Name] = true
			assert.Positive(t, a.PriceINR, "area %q of %q has no price", a.Name, ev.Name)
			assert.Positive(t, a.Capacity, "area %q of %q has no capacity", a.Name, ev.Name)
		}
	}
}

// Events must return a fresh slice each call so callers cannot mutate the
// seed through aliasing.
func TestEventsReturnsCopy(t *testing.T) {
	a := Events()
	a[0].Name = "mutated"
	a[0].Areas[0].Capacity = -1

	b := Events()
	assert.NotEqual(t, "mutated", b[0].Name)
	assert.Positive(t, b[0].Areas[0].Capacity)
}
