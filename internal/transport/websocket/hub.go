// Package websocket serves browser game sessions. Every connection plays its
// own game: intents arrive as JSON text frames, and a Snapshot goes out each tick.
package websocket

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/tomz197/electroblast/internal/config"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Snapshots buffered per client before frames are dropped.
	sendBuffer = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub tracks the connected clients so they can be shut down together.
// Clients never see each other's games.
type Hub struct {
	rules config.Rules
	log   *zap.Logger

	mu      sync.RWMutex
	clients map[int]*Client
	nextID  int

	register   chan *Client
	unregister chan *Client
	done       chan struct{}
}

// NewHub creates a hub whose sessions play with rules. A nil logger discards logs.
func NewHub(rules config.Rules, logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		rules:      rules,
		log:        logger,
		clients:    make(map[int]*Client),
		nextID:     1,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run processes registrations until stop is closed, then stops every client.
func (h *Hub) Run(stop <-chan struct{}) {
	defer close(h.done)
	for {
		select {
		case <-stop:
			h.mu.Lock()
			for id, c := range h.clients {
				c.stop()
				delete(h.clients, id)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c.id] = c
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Info("client registered", zap.Int("client", c.id), zap.Int("clients", total))

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c.id]; ok {
				delete(h.clients, c.id)
				c.stop()
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Info("client unregistered", zap.Int("client", c.id), zap.Int("clients", total))
		}
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Shutdown stops every game, which closes the connections with
// CloseGoingAway, and waits for the clients to disconnect (up to timeout).
// Run must still be running.
func (h *Hub) Shutdown(timeout time.Duration) {
	h.mu.RLock()
	for _, c := range h.clients {
		c.stop()
	}
	h.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			h.log.Warn("shutdown timed out", zap.Int("clients", h.Len()))
			return
		case <-ticker.C:
			if h.Len() == 0 {
				return
			}
		}
	}
}

// ServeHTTP upgrades the request and starts a new game for the connection.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.mu.Unlock()

	c := newClient(h, id, conn)
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
	go c.play()
}

// leave unregisters c unless the hub has already stopped.
func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}
