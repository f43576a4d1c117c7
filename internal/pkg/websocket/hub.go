package websocket

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
)

// EventNewAnnouncement is the single event type pushed to subscribers.
const EventNewAnnouncement = "new-announcement"

// Hub maintains the set of active subscribers and broadcasts events to them.
// Delivery is unconditional: every connected subscriber receives every event
// regardless of the section it cares about. Section filtering happens only on
// read-side queries, never at publish time.
type Hub struct {
	// Registered subscribers
	clients map[*Client]bool

	// Channel for outbound events to fan out
	broadcast chan *Event

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Mutex for concurrent access to clients map
	mu sync.RWMutex

	// Logger for Hub operations
	logger zerolog.Logger
}

// Event represents an event pushed over WebSocket.
type Event struct {
	// Event name, e.g. "new-announcement"
	Event string `json:"event"`

	// Payload carried by the event
	Payload interface{} `json:"payload"`
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan *Event),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		logger:     logger,
	}
}

// Run starts the hub, handling client registrations and broadcasts.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

// registerClient registers a new subscriber with the hub
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	h.logger.Info().
		Str("addr", client.conn.RemoteAddr().String()).
		Int("subscriberCount", len(h.clients)).
		Msg("Subscriber registered")
}

// unregisterClient removes a subscriber from the hub
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)

		h.logger.Info().
			Str("addr", client.conn.RemoteAddr().String()).
			Int("subscriberCount", len(h.clients)).
			Msg("Subscriber unregistered")
	}
}

// broadcastEvent fans an event out to every connected subscriber. Delivery is
// at-most-once: subscribers that connect after the event is published never
// receive it retroactively.
func (h *Hub) broadcastEvent(event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("event", event.Event).
			Msg("Failed to marshal event for broadcast")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.send <- data:
			// Event queued for delivery
		default:
			// Subscriber's send buffer is full; they are slow or gone.
			// Evict them inline, the write pump closes the connection.
			close(client.send)
			delete(h.clients, client)
		}
	}

	h.logger.Debug().
		Str("event", event.Event).
		Int("subscriberCount", len(h.clients)).
		Msg("Event broadcast to subscribers")
}

// BroadcastAll queues an event for delivery to all connected subscribers.
func (h *Hub) BroadcastAll(event *Event) {
	h.broadcast <- event
}

// SubscriberCount returns the number of connected subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
