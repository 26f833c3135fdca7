package notify

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	EventNewOrder      = "newOrder"
	EventOrderUpdated  = "orderUpdated"
	EventPrepareStatus = "prepareStatus"
	EventBillCreated   = "billCreated"
)

// Message is the envelope written to every connected terminal.
type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

const (
	// writeWait bounds a single frame write to a terminal.
	writeWait = 10 * time.Second
	// sendBuffer is how many messages a terminal may fall behind before it
	// is disconnected.
	sendBuffer = 64
)

// client is one connected terminal. Its writer goroutine owns conn writes.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

type Hub struct {
	upgrader websocket.Upgrader
	mu       sync.Mutex
	clients  map[*client]bool
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]bool),
	}
}

// HandleWebSocket registers the caller as a listener until its connection
// drops. Inbound frames are read and discarded.
func (h *Hub) HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("Error during connection upgrade:", err)
			return
		}
		cl := &client{conn: conn, send: make(chan []byte, sendBuffer)}

		h.mu.Lock()
		h.clients[cl] = true
		h.mu.Unlock()

		go h.writePump(cl)
		defer h.remove(cl)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}

// writePump delivers queued messages to one client until its queue closes or
// a write fails or times out.
func (h *Hub) writePump(cl *client) {
	defer cl.conn.Close()
	for msg := range cl.send {
		cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := cl.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			log.Println("Error writing message:", err)
			h.remove(cl)
			return
		}
	}
	cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
	cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// remove unregisters cl and stops its writer. Safe to call more than once.
func (h *Hub) remove(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[cl] {
		delete(h.clients, cl)
		close(cl.send)
	}
}

// Broadcast queues event for every client without blocking. A client whose
// queue is full is disconnected.
func (h *Hub) Broadcast(event string, payload interface{}) {
	messageBytes, err := json.Marshal(Message{Event: event, Payload: payload})
	if err != nil {
		log.Println("Error marshaling message:", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for cl := range h.clients {
		select {
		case cl.send <- messageBytes:
		default:
			log.Println("Dropping slow websocket client")
			delete(h.clients, cl)
			close(cl.send)
		}
	}
}

func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
