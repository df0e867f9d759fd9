package websockets

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/yogi-fashion/embroidery-service/internal/models"
)

// Hub fans change events out to connected clients. Clients that subscribed
// to particular entities only receive those; the rest receive everything.
type Hub struct {
	clients map[*Client]bool

	register chan *Client

	unregister chan *Client

	broadcast chan outbound

	done chan struct{}

	subscriptions map[models.EntityKind]map[*Client]bool

	mu sync.Mutex
}

type outbound struct {
	entity  models.EntityKind
	payload []byte
}

func NewHub() *Hub {
	return &Hub{
		broadcast:     make(chan outbound, 64),
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		done:          make(chan struct{}),
		clients:       make(map[*Client]bool),
		subscriptions: make(map[models.EntityKind]map[*Client]bool),
	}
}

// Subscribe limits client to events about the given entities.
func (h *Hub) Subscribe(client *Client, entities ...models.EntityKind) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, e := range entities {
		if _, ok := h.subscriptions[e]; !ok {
			h.subscriptions[e] = make(map[*Client]bool)
		}
		h.subscriptions[e][client] = true
	}
	client.filtered = true
}

// Notify queues a change event for delivery. It never blocks the caller; if
// the queue is full the event is dropped and listeners catch up on their
// next re-read.
func (h *Hub) Notify(event models.ChangeEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode change event")
		return
	}
	payload, err := json.Marshal(Message{Type: TypeEntityChanged, Data: data})
	if err != nil {
		log.Error().Err(err).Msg("failed to encode change message")
		return
	}

	select {
	case h.broadcast <- outbound{entity: event.Entity, payload: payload}:
	default:
		log.Warn().Str("entity", string(event.Entity)).Msg("change feed full, dropping event")
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Stop ends Run and disconnects every client.
func (h *Hub) Stop() {
	close(h.done)
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for client := range h.clients {
				h.drop(client)
			}
			h.mu.Unlock()
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				h.drop(client)
			}
			h.mu.Unlock()
		case msg := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				if client.filtered && !h.subscriptions[msg.entity][client] {
					continue
				}
				select {
				case client.send <- msg.payload:
				default:
					h.drop(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// drop must be called with mu held.
func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.send)
	for _, clients := range h.subscriptions {
		delete(clients, client)
	}
}
