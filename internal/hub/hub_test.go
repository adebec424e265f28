package hub

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcast(t *testing.T) {
	h := NewHub()
	a := make(Client, 1)
	b := make(Client, 1)
	other := make(Client, 1)
	h.Subscribe(ImportTopic, a)
	h.Subscribe(ImportTopic, b)
	h.Subscribe("other", other)

	h.Broadcast(ImportTopic, Event{Type: "import.progress", Payload: map[string]int{"done": 1, "total": 3}})

	for _, c := range []Client{a, b} {
		var got struct {
			Type    string         `json:"type"`
			Payload map[string]int `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(<-c, &got))
		assert.Equal(t, "import.progress", got.Type)
		assert.Equal(t, 3, got.Payload["total"])
	}
	assert.Empty(t, other)
}

func TestBroadcast_SlowClientDoesNotBlock(t *testing.T) {
	h := NewHub()
	c := make(Client, 1)
	h.Subscribe(ImportTopic, c)

	h.Broadcast(ImportTopic, Event{Type: "first"})
	h.Broadcast(ImportTopic, Event{Type: "second"})

	assert.Contains(t, string(<-c), "first")
	assert.Empty(t, c)
}

func TestUnsubscribe(t *testing.T) {
	h := NewHub()
	c := make(Client, 1)
	h.Subscribe(ImportTopic, c)
	assert.Equal(t, 1, h.Subscribers(ImportTopic))

	h.Unsubscribe(ImportTopic, c)
	assert.Zero(t, h.Subscribers(ImportTopic))

	_, open := <-c
	assert.False(t, open)

	// Second unsubscribe must not close the channel again.
	h.Unsubscribe(ImportTopic, c)
	h.Broadcast(ImportTopic, Event{Type: "ignored"})
}
