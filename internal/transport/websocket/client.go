package websocket

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/tomz197/electroblast/internal/event"
	"github.com/tomz197/electroblast/internal/game"
)

// inputMessage is the only frame clients send.
type inputMessage struct {
	Intents []string `json:"intents"`
}

// parseIntents decodes an input frame. Unknown intent names are skipped.
func parseIntents(data []byte) ([]game.Intent, error) {
	var msg inputMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	intents := make([]game.Intent, 0, len(msg.Intents))
	for _, name := range msg.Intents {
		if in, ok := game.ParseIntent(name); ok {
			intents = append(intents, in)
		}
	}
	return intents, nil
}

// Client is one websocket connection and the game it plays.
type Client struct {
	id   int
	hub  *Hub
	conn *websocket.Conn
	log  *zap.Logger

	state   *game.State
	intents chan []game.Intent // readPump → play
	send    chan []byte        // play → writePump

	quit     chan struct{}
	stopOnce sync.Once
}

func newClient(h *Hub, id int, conn *websocket.Conn) *Client {
	seed := time.Now().UnixNano() + int64(id)
	return &Client{
		id:      id,
		hub:     h,
		conn:    conn,
		log:     h.log.With(zap.Int("client", id), zap.String("remote", conn.RemoteAddr().String())),
		state:   game.New(h.rules, rand.New(rand.NewSource(seed))),
		intents: make(chan []game.Intent, 64),
		send:    make(chan []byte, sendBuffer),
		quit:    make(chan struct{}),
	}
}

// stop ends the game. Safe to call more than once.
func (c *Client) stop() {
	c.stopOnce.Do(func() { close(c.quit) })
}

// play ticks the game at the rules' tick rate and queues a snapshot per tick.
// A client that cannot keep up loses frames, not the session.
func (c *Client) play() {
	defer close(c.send)

	ticker := time.NewTicker(c.hub.rules.TickDuration())
	defer ticker.Stop()

	var pending []game.Intent
	for {
		select {
		case <-c.quit:
			return
		case in := <-c.intents:
			pending = append(pending, in...)
			continue
		case <-ticker.C:
		}

		c.state.Tick(pending)
		pending = pending[:0]
		c.logEvents(c.state.Events.Drain())

		data, err := json.Marshal(c.state.Snapshot())
		if err != nil {
			c.log.Error("encode snapshot", zap.Error(err))
			return
		}
		select {
		case c.send <- data:
		default:
		}
	}
}

func (c *Client) logEvents(events []event.Event) {
	for _, ev := range events {
		switch ev.Type {
		case event.LevelStarted:
			c.log.Info("level started", zap.Int("level", ev.Value))
		case event.LevelComplete:
			c.log.Info("level complete", zap.Int("level", c.state.Level), zap.Int("score", c.state.Player.Score))
		case event.GameOver:
			c.log.Info("game over", zap.Int("level", c.state.Level), zap.Int("score", ev.Value))
		}
	}
}

// readPump decodes input frames until the connection fails or closes.
func (c *Client) readPump() {
	defer func() {
		c.hub.leave(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		intents, err := parseIntents(data)
		if err != nil {
			c.log.Debug("ignoring input frame", zap.Error(err))
			continue
		}
		select {
		case c.intents <- intents:
		default:
		}
	}
}

// writePump sends queued snapshots and keeps the connection alive with pings.
// When the game stops it closes the connection with CloseGoingAway.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "game ended")
				c.conn.WriteMessage(websocket.CloseMessage, msg)
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				c.log.Debug("websocket write failed", zap.Error(err))
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
