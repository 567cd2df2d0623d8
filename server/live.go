package server

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/arenascope/arenascope/pkg/domain"
)

// writeWait bounds each push so a stalled client can't wedge the hub
const writeWait = 5 * time.Second

// LiveHub fans match updates out to websocket subscribers. Subscriptions are
// grouped per match id, one group per viewed match, torn down on disconnect.
type LiveHub struct {
	upgrader websocket.Upgrader

	mu   sync.Mutex
	subs map[string]map[*websocket.Conn]struct{}
}

// NewLiveHub creates an empty hub
func NewLiveHub() *LiveHub {
	return &LiveHub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// auth and origin checks happen at the fronting proxy
			CheckOrigin: func(*http.Request) bool { return true },
		},
		subs: map[string]map[*websocket.Conn]struct{}{},
	}
}

// Serve upgrades the connection, sends the current match snapshot and keeps
// the subscription open until the client disconnects. Blocks for the lifetime
// of the connection.
func (h *LiveHub) Serve(w http.ResponseWriter, r *http.Request, match *domain.Match) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("websocket upgrade: %w", err)
	}

	h.mu.Lock()
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(match); err != nil {
		h.mu.Unlock()
		_ = conn.Close()
		return fmt.Errorf("send snapshot: %w", err)
	}
	if h.subs[match.ID] == nil {
		h.subs[match.ID] = map[*websocket.Conn]struct{}{}
	}
	h.subs[match.ID][conn] = struct{}{}
	h.mu.Unlock()

	defer h.drop(match.ID, conn)

	// drain inbound frames to detect disconnect, clients never send data
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}

// MatchUpdated pushes the full match document to every subscriber of the match.
// Connections that fail to take the write are dropped.
func (h *LiveHub) MatchUpdated(match *domain.Match) {
	h.mu.Lock()
	var failed []*websocket.Conn
	for conn := range h.subs[match.ID] {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(match); err != nil {
			log.Printf("[WARN] live push failed for match %s: %v", match.ID, err)
			failed = append(failed, conn)
		}
	}
	h.mu.Unlock()

	for _, conn := range failed {
		h.drop(match.ID, conn)
	}
}

// SubscriberCount reports the number of live subscribers for a match
func (h *LiveHub) SubscriberCount(matchID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[matchID])
}

// drop closes and unregisters a subscriber connection
func (h *LiveHub) drop(matchID string, conn *websocket.Conn) {
	_ = conn.Close()

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs[matchID], conn)
	if len(h.subs[matchID]) == 0 {
		delete(h.subs, matchID)
	}
}
