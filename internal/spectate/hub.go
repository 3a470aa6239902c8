// Package spectate streams live 2048 boards to browsers and other
// websocket clients. Each SSH session publishes its board under a session
// ID; any number of spectators may follow it.
package spectate

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
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

	// Queued board updates per spectator before it is dropped.
	sendBuffer = 64
)

// Events carried by Message.
const (
	EventBoard = "board"
	EventEnded = "ended"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Spectating is read-only.
		return true
	},
}

// Message is one update sent to spectators.
type Message struct {
	SessionID string          `json:"session_id"`
	Event     string          `json:"event"`
	Board     *t2048.Snapshot `json:"board,omitempty"`
}

// SessionInfo describes a game that can be watched.
type SessionInfo struct {
	ID         string    `json:"id"`
	GameID     string    `json:"game_id"`
	Score      int       `json:"score"`
	MaxTile    int       `json:"max_tile"`
	State      string    `json:"state"`
	Spectators int       `json:"spectators"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	sessionID string
}

type board struct {
	snap       t2048.Snapshot
	updatedAt  time.Time
	spectators int
}

// Hub fans board updates out to spectators. Client bookkeeping happens on
// the Run goroutine; the latest board per session is kept under a mutex so
// late joiners and the session list see it.
type Hub struct {
	logger *log.Logger

	// Spectators by session ID; owned by Run.
	sessions map[string]map[*client]bool

	mu     sync.RWMutex
	boards map[string]*board

	broadcast  chan *Message
	register   chan *client
	unregister chan *client
	done       chan struct{}
}

// NewHub creates a hub. Call Run to start delivering updates.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		logger:     logger,
		sessions:   make(map[string]map[*client]bool),
		boards:     make(map[string]*board),
		broadcast:  make(chan *Message, 256),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
	}
}

// Run delivers updates until ctx is cancelled, then disconnects every
// spectator.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case c := <-h.register:
			h.registerClient(c)

		case c := <-h.unregister:
			h.unregisterClient(c)

		case m := <-h.broadcast:
			h.broadcastMessage(m)

		case <-ctx.Done():
			for _, clients := range h.sessions {
				for c := range clients {
					h.unregisterClient(c)
				}
			}
			return
		}
	}
}

// Publish records snap as the latest board of sessionID and sends it to
// its spectators. Never blocks the caller; updates are dropped when the
// hub is saturated or stopped.
func (h *Hub) Publish(sessionID string, snap t2048.Snapshot) {
	h.mu.Lock()
	b, ok := h.boards[sessionID]
	if !ok {
		b = &board{}
		h.boards[sessionID] = b
	}
	b.snap = snap
	b.updatedAt = time.Now()
	h.mu.Unlock()

	h.send(&Message{SessionID: sessionID, Event: EventBoard, Board: &snap})
}

// End removes sessionID from the session list and tells its spectators.
func (h *Hub) End(sessionID string) {
	h.mu.Lock()
	delete(h.boards, sessionID)
	h.mu.Unlock()

	h.send(&Message{SessionID: sessionID, Event: EventEnded})
}

// Observer returns a t2048.Observer publishing under sessionID.
func (h *Hub) Observer(sessionID string) t2048.Observer {
	return t2048.ObserverFunc(func(s t2048.Snapshot) {
		h.Publish(sessionID, s)
	})
}

// Board returns the latest board of sessionID.
func (h *Hub) Board(sessionID string) (t2048.Snapshot, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	b, ok := h.boards[sessionID]
	if !ok {
		return t2048.Snapshot{}, false
	}
	return b.snap, true
}

// Sessions lists the games being played, most recently updated first.
func (h *Hub) Sessions() []SessionInfo {
	h.mu.RLock()
	out := make([]SessionInfo, 0, len(h.boards))
	for id, b := range h.boards {
		out = append(out, SessionInfo{
			ID:         id,
			GameID:     b.snap.GameID,
			Score:      b.snap.Score,
			MaxTile:    b.snap.MaxTile,
			State:      string(b.snap.State),
			Spectators: b.spectators,
			UpdatedAt:  b.updatedAt,
		})
	}
	h.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ServeWS upgrades the request and follows sessionID.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, sessionID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "session", sessionID, "error", err)
		return
	}

	c := &client{
		hub:       h,
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
		sessionID: sessionID,
	}

	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

func (h *Hub) send(m *Message) {
	select {
	case h.broadcast <- m:
	case <-h.done:
	default:
		h.logger.Debug("spectator update dropped", "session", m.SessionID, "event", m.Event)
	}
}

// registerClient adds a spectator and sends it the current board. A
// session that ended before the spectator got here closes it right away.
func (h *Hub) registerClient(c *client) {
	snap, ok := h.Board(c.sessionID)
	if !ok {
		if data, err := json.Marshal(&Message{SessionID: c.sessionID, Event: EventEnded}); err == nil {
			c.send <- data
		}
		close(c.send)
		return
	}

	if h.sessions[c.sessionID] == nil {
		h.sessions[c.sessionID] = make(map[*client]bool)
	}
	h.sessions[c.sessionID][c] = true
	h.setSpectators(c.sessionID)

	if data, err := json.Marshal(&Message{SessionID: c.sessionID, Event: EventBoard, Board: &snap}); err == nil {
		c.send <- data
	}

	h.logger.Info("spectator joined", "session", c.sessionID, "spectators", len(h.sessions[c.sessionID]))
}

// unregisterClient removes a spectator and closes its queue.
func (h *Hub) unregisterClient(c *client) {
	clients, ok := h.sessions[c.sessionID]
	if !ok || !clients[c] {
		return
	}
	delete(clients, c)
	close(c.send)

	if len(clients) == 0 {
		delete(h.sessions, c.sessionID)
	}
	h.setSpectators(c.sessionID)

	h.logger.Info("spectator left", "session", c.sessionID, "spectators", len(clients))
}

// broadcastMessage sends a message to every spectator of its session. An
// ended session disconnects its spectators once the message is queued.
func (h *Hub) broadcastMessage(m *Message) {
	data, err := json.Marshal(m)
	if err != nil {
		h.logger.Error("marshal spectator message", "error", err)
		return
	}

	for c := range h.sessions[m.SessionID] {
		select {
		case c.send <- data:
			if m.Event == EventEnded {
				h.unregisterClient(c)
			}
		default:
			// Too slow to keep up.
			h.unregisterClient(c)
		}
	}
}

func (h *Hub) setSpectators(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if b, ok := h.boards[sessionID]; ok {
		b.spectators = len(h.sessions[sessionID])
	}
}

// readPump discards client input and detects disconnects.
func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Debug("spectator connection error", "session", c.sessionID, "error", err)
			}
			return
		}
	}
}

// writePump sends queued updates, one websocket message each, and pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
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
