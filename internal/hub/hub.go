package hub

import (
	"sync"

	"gierkopolecacz/backend/internal/logging"

	"github.com/goccy/go-json"
)

// ImportTopic carries progress of catalog imports.
const ImportTopic = "import"

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Client is the channel an SSE handler listens to.
type Client chan []byte

// Hub fans events out to the clients subscribed to a topic.
type Hub struct {
	topics map[string]map[Client]bool
	mu     sync.RWMutex
}

// GlobalHub is the hub shared by the server.
var GlobalHub = NewHub()

func NewHub() *Hub {
	return &Hub{
		topics: make(map[string]map[Client]bool),
	}
}

// Subscribe adds a client to a topic.
func (h *Hub) Subscribe(topic string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.topics[topic]; !ok {
		h.topics[topic] = make(map[Client]bool)
	}
	h.topics[topic][client] = true
}

// Unsubscribe removes a client from a topic and closes its channel.
func (h *Hub) Unsubscribe(topic string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.topics[topic]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client)
			if len(clients) == 0 {
				delete(h.topics, topic)
			}
		}
	}
}

// Subscribers returns the number of clients listening to a topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// Broadcast sends an event to every client of a topic. Clients whose buffer is
// full miss the event.
func (h *Hub) Broadcast(topic string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.topics[topic]
	if !ok {
		return
	}
	message, err := json.Marshal(event)
	if err != nil {
		logging.Error().Err(err).Str("topic", topic).Str("type", event.Type).Msg("failed to encode event")
		return
	}

	for client := range clients {
		select {
		case client <- message:
		default:
			logging.Debug().Str("topic", topic).Msg("dropping event for slow client")
		}
	}
}
