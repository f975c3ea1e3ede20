// internal/worker/client.go
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"serpentine-td/pkg/gridmap"
)

// Client talks to a remote path solver. FindPath is safe for concurrent
// use; responses are matched to callers by request id, so several routes
// can be in flight at once.
type Client struct {
	conn    *websocket.Conn
	nextID  atomic.Uint64
	writeMu sync.Mutex // gorilla allows one concurrent writer

	mu      sync.Mutex
	pending map[uint64]chan *PathResult
	readErr error
	closed  bool
}

// Dial connects to a solver at the given ws:// URL and starts the reader.
func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial solver %s: %w", url, err)
	}
	c := &Client{
		conn:    conn,
		pending: make(map[uint64]chan *PathResult),
	}
	go c.readLoop()
	return c, nil
}

// FindPath solves a route remotely, blocking until the result arrives, the
// context is done, or the connection fails.
func (c *Client) FindPath(ctx context.Context, grid *gridmap.Grid, start, goal gridmap.Cell) (*PathResult, error) {
	walls, blocked := SnapshotObstacles(grid)
	req := FindPathRequest{
		RequestID: c.nextID.Add(1),
		Cols:      grid.Cols,
		Rows:      grid.Rows,
		Start:     start,
		Goal:      goal,
		Walls:     walls,
		Blocked:   blocked,
	}

	ch := make(chan *PathResult, 1)
	c.mu.Lock()
	if c.closed {
		err := c.readErr
		c.mu.Unlock()
		if err == nil {
			err = fmt.Errorf("solver connection closed")
		}
		return nil, err
	}
	c.pending[req.RequestID] = ch
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, req.RequestID)
		c.mu.Unlock()
	}()

	frame, err := Wrap(MessageTypeFindPath, &req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	c.writeMu.Lock()
	err = c.conn.WriteMessage(websocket.TextMessage, frame)
	c.writeMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("send request %d: %w", req.RequestID, err)
	}

	select {
	case result, ok := <-ch:
		if !ok {
			c.mu.Lock()
			err := c.readErr
			c.mu.Unlock()
			return nil, fmt.Errorf("solver connection lost: %w", err)
		}
		if result == nil {
			return nil, fmt.Errorf("solver rejected request %d", req.RequestID)
		}
		return result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Client) readLoop() {
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			c.failAll(err)
			return
		}
		var env Envelope
		if err := json.Unmarshal(message, &env); err != nil {
			continue
		}
		switch env.Type {
		case MessageTypePathResult:
			var result PathResult
			if err := json.Unmarshal(env.Payload, &result); err != nil {
				continue
			}
			c.deliver(result.RequestID, &result)
		case MessageTypeError:
			var errMsg ErrorMessage
			if err := json.Unmarshal(env.Payload, &errMsg); err != nil {
				continue
			}
			c.deliver(errMsg.RequestID, nil)
		}
	}
}

func (c *Client) deliver(requestID uint64, result *PathResult) {
	c.mu.Lock()
	ch, ok := c.pending[requestID]
	if ok {
		delete(c.pending, requestID)
	}
	c.mu.Unlock()
	if ok {
		ch <- result
	}
}

func (c *Client) failAll(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.readErr = err
	for id, ch := range c.pending {
		close(ch)
		delete(c.pending, id)
	}
}

// Close tears down the connection; in-flight calls fail.
func (c *Client) Close() error {
	return c.conn.Close()
}
