// internal/worker/messages.go
package worker

import (
	"encoding/json"

	"serpentine-td/pkg/gridmap"
)

// MessageType defines the type of message being sent over the wire.
type MessageType string

const (
	MessageTypeFindPath   MessageType = "find_path"
	MessageTypePathResult MessageType = "path_result"
	MessageTypeError      MessageType = "error"
)

// Envelope is the outer structure for every message; the payload is decoded
// a second time once the type is known.
type Envelope struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// FindPathRequest asks the solver for a route across a field snapshot.
// RequestID lets the caller match responses to in-flight requests, since
// results can arrive in any order.
type FindPathRequest struct {
	RequestID uint64         `json:"requestId"`
	Cols      int            `json:"cols"`
	Rows      int            `json:"rows"`
	Start     gridmap.Cell   `json:"start"`
	Goal      gridmap.Cell   `json:"goal"`
	Walls     []gridmap.Cell `json:"walls,omitempty"`
	Blocked   []gridmap.Cell `json:"blocked,omitempty"`
}

// PathResult carries the solved route back. Found is false when no route
// exists; Path then holds the degenerate start/goal pair.
type PathResult struct {
	RequestID uint64         `json:"requestId"`
	Found     bool           `json:"found"`
	Path      []gridmap.Cell `json:"path"`
}

// ErrorMessage reports a malformed or unserviceable request.
type ErrorMessage struct {
	RequestID uint64 `json:"requestId,omitempty"`
	Message   string `json:"message"`
}

// Wrap marshals a payload into a typed envelope ready to send.
func Wrap(t MessageType, payload interface{}) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: t, Payload: raw})
}
