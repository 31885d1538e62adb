package websocket

import (
	"context"
	"sync"
	"time"

	"listingadmin/internal/logger"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// client is a connection tagged with the login session it belongs to.
type client struct {
	conn      *websocket.Conn
	sessionID string
}

type envelope struct {
	sessionID string
	payload   []byte
}

// HubService fans messages out to the websocket connections of one session.
type HubService struct {
	clients    map[*websocket.Conn]string
	broadcast  chan envelope
	register   chan client
	unregister chan *websocket.Conn
	done       chan struct{}
	mutex      sync.RWMutex
	logger     *logger.Logger
}

func NewHubService(logger *logger.Logger) *HubService {
	return &HubService{
		clients:    make(map[*websocket.Conn]string),
		broadcast:  make(chan envelope, 16),
		register:   make(chan client),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run processes registrations and broadcasts until ctx is done, then
// closes every remaining connection.
func (h *HubService) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mutex.Lock()
			for conn := range h.clients {
				conn.Close()
				delete(h.clients, conn)
			}
			h.mutex.Unlock()
			return

		case c := <-h.register:
			h.mutex.Lock()
			h.clients[c.conn] = c.sessionID
			total := len(h.clients)
			h.mutex.Unlock()
			h.logger.Info("Feedback client connected. Total: %d", total)

		case conn := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			total := len(h.clients)
			h.mutex.Unlock()
			h.logger.Info("Feedback client disconnected. Total: %d", total)

		case msg := <-h.broadcast:
			h.mutex.Lock()
			for conn, sessionID := range h.clients {
				if sessionID != msg.sessionID {
					continue
				}
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.TextMessage, msg.payload); err != nil {
					h.logger.Error("Error sending message: %v", err)
					delete(h.clients, conn)
					conn.Close()
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Register adds conn under sessionID. After Run has stopped the connection
// is closed instead.
func (h *HubService) Register(conn *websocket.Conn, sessionID string) {
	select {
	case h.register <- client{conn: conn, sessionID: sessionID}:
	case <-h.done:
		conn.Close()
	}
}

func (h *HubService) Unregister(conn *websocket.Conn) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// Publish queues payload for every connection of sessionID. It never
// blocks: when the queue is full the message is dropped. The dashboard
// reads /api/feedback after each action, so a dropped push is not lost.
func (h *HubService) Publish(sessionID string, payload []byte) {
	select {
	case h.broadcast <- envelope{sessionID: sessionID, payload: payload}:
	default:
		h.logger.Warning("Feedback queue full, dropping message for session %s", sessionID)
	}
}

func (h *HubService) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
