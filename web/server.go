package web

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/darwins-challenge/moonlander-gp/logx"
)

// Hub manages WebSocket connections and broadcasts
type Hub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan Message
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mutex      sync.RWMutex
	running    bool
}

// Message represents a WebSocket message
type Message struct {
	Type string      `json:"type"` // "generation", "champion", "run_stats", "status", etc.
	Data interface{} `json:"data"` // Payload data
	Time int64       `json:"time"` // Unix timestamp
}

var hub *Hub
var feedEnabled = false

// Message type constants
const (
	MsgTypeGeneration = "generation"
	MsgTypeChampion   = "champion"
	MsgTypeRunStats   = "run_stats"
	MsgTypeStatus     = "status"
	MsgTypeError      = "error"
	MsgTypeWarning    = "warning"
)

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>moonlander-gp live feed</title></head>
<body style="background:#111;color:#ddd;font-family:monospace">
<h3>moonlander-gp live feed</h3>
<pre id="log"></pre>
<script>
var ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = function(e) {
  var log = document.getElementById("log");
  log.textContent += e.data + "\n";
  window.scrollTo(0, document.body.scrollHeight);
};
</script>
</body>
</html>
`

// initHub initializes the WebSocket hub
func initHub() {
	hub = &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Message, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		running:    true,
	}
	go hub.run()
}

// Start starts the HTTP/WebSocket server and blocks. Run it in a
// goroutine; broadcasts are dropped until it has been called.
func Start(port int) error {
	initHub()
	feedEnabled = true

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, indexHTML)
	})

	// WebSocket endpoint
	mux.HandleFunc("/ws", hub.handleWebSocket)

	// CORS middleware wrapper
	handler := corsMiddleware(mux)

	addr := fmt.Sprintf(":%d", port)
	logx.LogWebServer(fmt.Sprintf("localhost%s", addr))

	return http.ListenAndServe(addr, handler)
}

// handleWebSocket handles WebSocket connections
func (hub *Hub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	// Upgrade HTTP to WebSocket
	ws, err := websocket.Upgrade(w, r, nil, 0, 0)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	// Register client
	hub.register <- ws
	defer func() {
		hub.unregister <- ws
		ws.Close()
	}()

	// Send buffered messages for new connections
	hub.sendBufferedMessages(ws)

	// Read messages from client
	for {
		var msg Message
		err := ws.ReadJSON(&msg)
		if err != nil {
			break
		}
		// Client can send ping/heartbeat if needed
	}
}

// run processes messages in the hub
func (hub *Hub) run() {
	for {
		select {
		case client := <-hub.register:
			hub.mutex.Lock()
			hub.clients[client] = true
			count := len(hub.clients)
			hub.mutex.Unlock()
			logx.LogWebClients(count)

		case client := <-hub.unregister:
			hub.mutex.Lock()
			if _, ok := hub.clients[client]; ok {
				delete(hub.clients, client)
			}
			hub.mutex.Unlock()

		case message := <-hub.broadcast:
			hub.mutex.RLock()
			for client := range hub.clients {
				err := client.WriteJSON(message)
				if err != nil {
					// Client disconnected, will be cleaned up by unregister
					continue
				}
			}
			hub.mutex.RUnlock()
		}
	}
}

// Broadcast sends a message to all connected clients
func Broadcast(msgType string, data interface{}) {
	if !feedEnabled || hub == nil {
		return
	}

	msg := Message{
		Type: msgType,
		Data: data,
		Time: time.Now().Unix(),
	}

	select {
	case hub.broadcast <- msg:
		// Message queued
	default:
		// Channel full, skip this message (backpressure protection)
	}
}

// sendBufferedMessages sends recent history to new connections
func (hub *Hub) sendBufferedMessages(ws *websocket.Conn) {
	// Send current status
	statusMsg := Message{
		Type: MsgTypeStatus,
		Data: map[string]interface{}{
			"status": "running",
			"msg":    "Live feed connected",
		},
		Time: time.Now().Unix(),
	}
	ws.WriteJSON(statusMsg)
}

// corsMiddleware adds CORS headers to responses
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// FindAvailablePort finds an available port starting from startPort
func FindAvailablePort(startPort int) int {
	for port := startPort; port < 9000; port++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			ln.Close()
			return port
		}
	}
	return startPort // fallback
}

// Message structures for WebSocket payloads

// GenerationData represents per-generation progress
type GenerationData struct {
	Generation     int     `json:"generation"`
	Best           float32 `json:"best"`
	Avg            float32 `json:"avg"`
	MeanDepth      float64 `json:"mean_depth"`
	PopulationSize int     `json:"population_size"`
	TimeElapsed    string  `json:"time_elapsed"`
	ProgPerSec     float64 `json:"prog_per_sec"`
}

// ChampionData represents a new best program
type ChampionData struct {
	Generation int                `json:"generation"`
	Score      float32            `json:"score"`
	Scores     map[string]float32 `json:"scores"`
	Depth      int                `json:"depth"`
	Nodes      int                `json:"nodes"`
	Program    string             `json:"program"`
}

// RunStatsData represents aggregate statistics over the run so far
type RunStatsData struct {
	Generation int     `json:"generation"`
	BestMean   float64 `json:"best_mean"`
	BestStd    float64 `json:"best_std"`
	BestMin    float64 `json:"best_min"`
	BestMax    float64 `json:"best_max"`
	AvgMean    float64 `json:"avg_mean"`
	AvgStd     float64 `json:"avg_std"`
}

// Helper functions for sending specific message types

func SendGeneration(generation int, best, avg float32, meanDepth float64, popSize int, elapsed string, progPerSec float64) {
	data := GenerationData{
		Generation:     generation,
		Best:           best,
		Avg:            avg,
		MeanDepth:      meanDepth,
		PopulationSize: popSize,
		TimeElapsed:    elapsed,
		ProgPerSec:     progPerSec,
	}
	Broadcast(MsgTypeGeneration, data)
}

func SendChampion(generation int, score float32, scores map[string]float32, depth, nodes int, program string) {
	data := ChampionData{
		Generation: generation,
		Score:      score,
		Scores:     scores,
		Depth:      depth,
		Nodes:      nodes,
		Program:    program,
	}
	Broadcast(MsgTypeChampion, data)
}

func SendRunStats(stats RunStatsData) {
	Broadcast(MsgTypeRunStats, stats)
}

func SendStatus(status, msg string) {
	data := map[string]interface{}{
		"status": status,
		"msg":    msg,
	}
	Broadcast(MsgTypeStatus, data)
}

func SendError(msg string) {
	Broadcast(MsgTypeError, msg)
}

func SendWarning(msg string) {
	Broadcast(MsgTypeWarning, msg)
}
