package ws

import (
	"net/http"

	"github.com/gorilla/websocket"
	"laundry-admin/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The dashboard is served from the same camp intranet.
		return true
	},
}

// Handler upgrades GET /ws and hands the connection to the hub.
type Handler struct {
	log wsLogger
	hub *Hub
}

func NewHandler(log wsLogger, hub *Hub) *Handler {
	return &Handler{
		log: log.With(),
		hub: hub,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade",
			logger.NewField("error", err),
		)
		return
	}

	client := &Client{
		hub:  h.hub,
		conn: conn,
		send: make(chan []byte, 256),
	}
	h.hub.register <- client

	go client.writePump()
	go client.readPump()
}
