//go:build !js

package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	decorated "github.com/danielgatis/go-decorated"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for demo
	},
}

// request asks the server to process encoded text the same way the wasm build does,
// so the page can compare both.
type request struct {
	Type       string `json:"type"` // "render", "decompose" or "compose"
	Text       string `json:"text"`
	Capability string `json:"capability"`
}

type response struct {
	Type      string   `json:"type"`
	Output    string   `json:"output"`
	Error     string   `json:"error,omitempty"`
	Anomalies []string `json:"anomalies,omitempty"`
}

func handle(req request) response {
	resp := response{Type: req.Type}
	anomalies := decorated.AnomalyFunc(func(kind decorated.Anomaly, offset int, code string) {
		resp.Anomalies = append(resp.Anomalies, kind.String())
	})

	var err error
	switch req.Type {
	case "render":
		var c decorated.Capability
		if c, err = decorated.ParseCapability(req.Capability); err == nil {
			resp.Output, err = decorated.Render(req.Text, c, decorated.WithAnomalyProvider(anomalies))
		}
	case "decompose":
		resp.Output = decorated.Parse(req.Text, decorated.WithAnomalyProvider(anomalies)).Decompose()
	case "compose":
		resp.Output, err = decorated.Compose(req.Text)
	default:
		resp.Error = "unknown request type"
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("New session from %s", r.RemoteAddr)

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		var req request
		if err := json.Unmarshal(data, &req); err != nil {
			log.Printf("Bad request: %v", err)
			continue
		}
		if err := conn.WriteJSON(handle(req)); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
}

func main() {
	// Static files (index.html, main.wasm, wasm_exec.js)
	fs := http.FileServer(http.Dir("."))
	http.Handle("/", fs)

	// WebSocket endpoint
	http.HandleFunc("/ws", handleWebSocket)

	// Handle graceful shutdown
	go func() {
		sigchan := make(chan os.Signal, 1)
		signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
		<-sigchan
		log.Println("Shutting down...")
		os.Exit(0)
	}()

	addr := ":8080"
	log.Printf("Server starting on http://localhost%s", addr)
	log.Printf("WebSocket endpoint: ws://localhost%s/ws", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}
