package ws

import (
	"context"
	"encoding/json"

	"laundry-admin/pkg/logger"
)

const (
	EventOrderCreated     = "order_created"
	EventOrderHighlighted = "order_highlighted"
	EventOrdersRefreshed  = "orders_refreshed"
)

// Event is a dashboard push message. All connected operators receive every
// event; there is a single audience.
type Event struct {
	Type    string `json:"type"`
	OrderID int64  `json:"order_id,omitempty"`
	Message string `json:"message,omitempty"`
}

// Hub keeps the set of connected dashboard clients and fans events out to
// them.
type Hub struct {
	log wsLogger

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
}

func NewHub(log wsLogger) *Hub {
	return &Hub{
		log:        log.With(logger.NewField("component", "ws-hub")),
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 256),
	}
}

// Run owns the client set; only this loop touches it. Returns when ctx is
// cancelled, closing every client's send channel.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return

		case client := <-h.register:
			h.clients[client] = true
			h.log.Info("client connected",
				logger.NewField("clients", len(h.clients)),
			)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}

		case event := <-h.broadcast:
			message, err := json.Marshal(event)
			if err != nil {
				h.log.Error("marshal event",
					logger.NewField("error", err),
				)
				continue
			}

			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow client, drop it.
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// BroadcastNewOrder announces a freshly created order to every open
// dashboard.
func (h *Hub) BroadcastNewOrder(message string, orderID int64) {
	h.send(Event{
		Type:    EventOrderCreated,
		OrderID: orderID,
		Message: message,
	})
}

// OrderHighlighted tells clients which row the view engine is highlighting.
func (h *Hub) OrderHighlighted(orderID int64) {
	h.send(Event{
		Type:    EventOrderHighlighted,
		OrderID: orderID,
	})
}

// OrdersRefreshed tells clients to refetch the current view.
func (h *Hub) OrdersRefreshed() {
	h.send(Event{Type: EventOrdersRefreshed})
}

func (h *Hub) send(event Event) {
	select {
	case h.broadcast <- event:
	default:
		h.log.Warn("broadcast buffer full, event dropped",
			logger.NewField("type", event.Type),
		)
	}
}
