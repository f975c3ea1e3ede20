// internal/worker/handler.go
package worker

import (
	"encoding/json"
	"log"
	"sync"
)

// Handler services pathfinding requests from one connection. Each request
// is solved on its own goroutine, so responses may arrive out of order;
// the request id is the caller's correlation key.
type Handler struct {
	wg sync.WaitGroup
}

func NewHandler() *Handler {
	return &Handler{}
}

// HandleMessage implements MessageHandler.
func (h *Handler) HandleMessage(conn *Connection, message []byte) {
	var env Envelope
	if err := json.Unmarshal(message, &env); err != nil {
		h.sendError(conn, 0, "malformed message: "+err.Error())
		return
	}

	switch env.Type {
	case MessageTypeFindPath:
		var req FindPathRequest
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			h.sendError(conn, 0, "malformed find_path payload: "+err.Error())
			return
		}
		h.wg.Add(1)
		go func() {
			defer h.wg.Done()
			h.solve(conn, &req)
		}()
	default:
		h.sendError(conn, 0, "unknown message type "+string(env.Type))
	}
}

func (h *Handler) solve(conn *Connection, req *FindPathRequest) {
	result, err := Solve(req)
	if err != nil {
		h.sendError(conn, req.RequestID, err.Error())
		return
	}
	frame, err := Wrap(MessageTypePathResult, result)
	if err != nil {
		log.Printf("worker: marshal result %d: %v", req.RequestID, err)
		return
	}
	conn.Send(frame)
}

func (h *Handler) sendError(conn *Connection, requestID uint64, msg string) {
	frame, err := Wrap(MessageTypeError, ErrorMessage{RequestID: requestID, Message: msg})
	if err != nil {
		return
	}
	conn.Send(frame)
}

// Wait blocks until all in-flight solves for this handler finish.
func (h *Handler) Wait() {
	h.wg.Wait()
}
