// Package ws pushes live contribution alerts to event dashboards over
// websockets. One hub serves the whole process; clients are grouped by the
// event they watch.
package ws

import (
	"encoding/json"

	"go.uber.org/zap"
)

// ContributionAlert is what the dashboard receives the moment a payment
// succeeds, before the next full funding refresh.
type ContributionAlert struct {
	EventID    uint    `json:"event_id"`
	WishID     uint    `json:"wish_id"`
	SenderName string  `json:"sender_name"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
}

type Hub struct {
	clients    map[uint]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan ContributionAlert
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uint]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan ContributionAlert),
	}
}

// Broadcast queues an alert for every client watching the alert's event.
func (h *Hub) Broadcast(alert ContributionAlert) {
	h.broadcast <- alert
}

// Run owns the client registry; it must run in its own goroutine for the
// lifetime of the process.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if h.clients[client.eventID] == nil {
				h.clients[client.eventID] = make(map[*Client]struct{})
			}
			h.clients[client.eventID][client] = struct{}{}
			zap.L().Debug("feed client registered", zap.Uint("eventID", client.eventID))

		case client := <-h.unregister:
			if _, ok := h.clients[client.eventID][client]; ok {
				delete(h.clients[client.eventID], client)
				close(client.send)
				if len(h.clients[client.eventID]) == 0 {
					delete(h.clients, client.eventID)
				}
			}

		case alert := <-h.broadcast:
			payload, err := json.Marshal(alert)
			if err != nil {
				zap.L().Error("failed to marshal contribution alert", zap.Error(err))
				continue
			}
			for client := range h.clients[alert.EventID] {
				select {
				case client.send <- payload:
				default:
					// Slow consumer; drop it rather than block the hub.
					close(client.send)
					delete(h.clients[alert.EventID], client)
				}
			}
		}
	}
}
