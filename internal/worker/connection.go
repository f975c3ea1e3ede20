// internal/worker/connection.go
package worker

import (
	"log"

	"github.com/gorilla/websocket"
)

// Connection wraps a WebSocket with a buffered outbound queue so the solver
// never blocks on a slow peer.
type Connection struct {
	ws   *websocket.Conn
	send chan []byte
}

func NewConnection(ws *websocket.Conn) *Connection {
	return &Connection{
		ws:   ws,
		send: make(chan []byte, 64),
	}
}

// MessageHandler receives each inbound frame.
type MessageHandler interface {
	HandleMessage(conn *Connection, message []byte)
}

// ReadPump reads frames until the connection drops and feeds them to the
// handler. Runs on the caller's goroutine.
func (c *Connection) ReadPump(h MessageHandler) {
	defer c.ws.Close()
	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("worker: read error: %v", err)
			}
			return
		}
		h.HandleMessage(c, message)
	}
}

// WritePump drains the send queue onto the wire.
func (c *Connection) WritePump() {
	defer c.ws.Close()
	for message := range c.send {
		if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.ws.WriteMessage(websocket.CloseMessage, []byte{})
}

// Send queues an already-wrapped frame. A full queue drops the connection
// rather than stalling the solver.
func (c *Connection) Send(frame []byte) {
	select {
	case c.send <- frame:
	default:
		c.ws.Close()
	}
}

// Close shuts the outbound queue, which lets WritePump finish.
func (c *Connection) Close() {
	close(c.send)
}
