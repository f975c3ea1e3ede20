package worker

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"serpentine-td/pkg/gridmap"
)

func startSolverServer(t *testing.T) string {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conn := NewConnection(ws)
		handler := NewHandler()
		go conn.WritePump()
		conn.ReadPump(handler)
		handler.Wait()
		conn.Close()
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestClientFindPath(t *testing.T) {
	url := startSolverServer(t)
	client, err := Dial(context.Background(), url+"/ws")
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer client.Close()

	grid := gridmap.NewOpenGrid(12, 8)
	result, err := client.FindPath(context.Background(), grid, gridmap.Cell{X: 0, Y: 0}, gridmap.Cell{X: 11, Y: 7})
	if err != nil {
		t.Fatalf("FindPath failed: %v", err)
	}
	if !result.Found {
		t.Fatal("Expected a route across an open grid")
	}
	if len(result.Path) != 19 {
		t.Errorf("Expected 19-cell route, got %d", len(result.Path))
	}
}

func TestClientConcurrentRequests(t *testing.T) {
	url := startSolverServer(t)
	client, err := Dial(context.Background(), url)
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()

	grid := gridmap.NewOpenGrid(20, 20)
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		goal := gridmap.Cell{X: 2 + i*2, Y: 19}
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := client.FindPath(context.Background(), grid, gridmap.Cell{X: 0, Y: 0}, goal)
			if err != nil {
				errs <- err
				return
			}
			// Responses arrive out of order; each caller must still get
			// the route for its own goal.
			last := result.Path[len(result.Path)-1]
			if last != goal {
				errs <- fmt.Errorf("route for %v ends at %v", goal, last)
			}
			if want := goal.X + goal.Y + 1; len(result.Path) != want {
				errs <- fmt.Errorf("route for %v has %d cells, want %d", goal, len(result.Path), want)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestClientSolverRejection(t *testing.T) {
	url := startSolverServer(t)
	client, err := Dial(context.Background(), url)
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()

	grid := gridmap.NewOpenGrid(5, 5)
	// Goal outside the grid the request describes.
	_, err = client.FindPath(context.Background(), grid, gridmap.Cell{X: 0, Y: 0}, gridmap.Cell{X: 50, Y: 50})
	if err == nil {
		t.Fatal("Expected rejection for an off-grid goal")
	}
	if !strings.Contains(err.Error(), "rejected") {
		t.Errorf("Expected a rejection error, got %v", err)
	}
}

func TestClientContextTimeout(t *testing.T) {
	// A peer that accepts the socket but never answers.
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				ws.Close()
				return
			}
		}
	}))
	defer srv.Close()

	client, err := Dial(context.Background(), "ws"+strings.TrimPrefix(srv.URL, "http"))
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	grid := gridmap.NewOpenGrid(5, 5)
	_, err = client.FindPath(ctx, grid, gridmap.Cell{X: 0, Y: 0}, gridmap.Cell{X: 4, Y: 4})
	if err != context.DeadlineExceeded {
		t.Errorf("Expected context.DeadlineExceeded, got %v", err)
	}
}

func TestClientConnectionLoss(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		// Hang up as soon as the first request arrives.
		ws.ReadMessage()
		ws.Close()
	}))
	defer srv.Close()

	client, err := Dial(context.Background(), "ws"+strings.TrimPrefix(srv.URL, "http"))
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()

	grid := gridmap.NewOpenGrid(5, 5)
	_, err = client.FindPath(context.Background(), grid, gridmap.Cell{X: 0, Y: 0}, gridmap.Cell{X: 4, Y: 4})
	if err == nil {
		t.Fatal("Expected an error after the peer hung up")
	}
}

func TestHandlerReportsMalformedFrames(t *testing.T) {
	url := startSolverServer(t)
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer ws.Close()

	if err := ws.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatal(err)
	}
	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, frame, err := ws.ReadMessage()
	if err != nil {
		t.Fatalf("Expected an error frame back: %v", err)
	}
	if !strings.Contains(string(frame), string(MessageTypeError)) {
		t.Errorf("Expected %s frame, got %s", MessageTypeError, frame)
	}
}
