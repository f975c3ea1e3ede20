// cmd/pathserver/main.go
//
// Standalone pathfinding service. Clients stream find_path requests over a
// WebSocket and receive results keyed by request id; a plain HTTP endpoint
// serves one-shot requests for tooling.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"serpentine-td/internal/worker"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The solver is stateless and carries no credentials.
		return true
	},
}

func main() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/ws", serveWS)
	r.Post("/api/path", servePathOnce)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("path solver listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}

func serveWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade failed: %v", err)
		return
	}

	conn := worker.NewConnection(ws)
	handler := worker.NewHandler()

	go conn.WritePump()
	conn.ReadPump(handler)

	handler.Wait()
	conn.Close()
}

func servePathOnce(w http.ResponseWriter, r *http.Request) {
	var req worker.FindPathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed request: "+err.Error(), http.StatusBadRequest)
		return
	}
	result, err := worker.Solve(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
