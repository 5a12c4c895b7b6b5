package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn
}

// FeedHub fans completed comparison results out to the participants'
// open websocket connections.
type FeedHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewFeedHub() *FeedHub {
	return &FeedHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *FeedHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *FeedHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

type feedEvent struct {
	Type   string           `json:"type"`
	Result ComparisonResult `json:"result"`
}

// NotifyResult implements ResultNotifier.
func (h *FeedHub) NotifyResult(userID uint, result ComparisonResult) {
	msg, _ := json.Marshal(feedEvent{Type: "comparison_completed", Result: result})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
