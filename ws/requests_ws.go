package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/meghk47/FindWorker/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Event is pushed to connected admin dashboards whenever a booking
// request is created or processed.
type Event struct {
	Type    string                 `json:"type"` // "created" | "updated"
	Request *entity.BookingRequest `json:"request"`
}

// RequestHub fans booking-request events out to every connected admin.
type RequestHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan Event
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewRequestHub() *RequestHub {
	return &RequestHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Event),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Run listens for register/unregister/broadcast until the process exits.
func (h *RequestHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Notify is safe to call from any handler; a nil hub drops the event.
func (h *RequestHub) Notify(eventType string, req *entity.BookingRequest) {
	if h == nil {
		return
	}
	h.broadcast <- Event{Type: eventType, Request: req}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/requests (admin only, guarded by WSAuthMiddleware)
func (h *RequestHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn
	go h.listen(conn)
}

// listen drains the connection so pings are answered and a close is
// noticed; admins never send application messages.
func (h *RequestHub) listen(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
