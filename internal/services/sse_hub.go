package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/onegreenvn/lecture-post-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// SSEHub manages Server-Sent Events connections for generation progress
type SSEHub struct {
	// Map of session IDs to client channels
	clients map[string]map[chan []byte]bool
	mu      sync.RWMutex
}

// NewSSEHub creates a new SSE hub
func NewSSEHub() *SSEHub {
	return &SSEHub{
		clients: make(map[string]map[chan []byte]bool),
	}
}

// RegisterClient registers a new SSE client for a session
func (h *SSEHub) RegisterClient(sessionID string) chan []byte {
	h.mu.Lock()
	defer h.mu.Unlock()

	clientChan := make(chan []byte, 10) // Buffer size 10

	if h.clients[sessionID] == nil {
		h.clients[sessionID] = make(map[chan []byte]bool)
	}
	h.clients[sessionID][clientChan] = true

	logrus.Infof("SSE client registered for session %s (total clients: %d)", sessionID, len(h.clients[sessionID]))
	return clientChan
}

// UnregisterClient unregisters an SSE client
func (h *SSEHub) UnregisterClient(sessionID string, clientChan chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[sessionID] != nil {
		if _, ok := h.clients[sessionID][clientChan]; ok {
			delete(h.clients[sessionID], clientChan)
			close(clientChan)
		}

		// Clean up empty maps
		if len(h.clients[sessionID]) == 0 {
			delete(h.clients, sessionID)
		}
	}

	logrus.Infof("SSE client unregistered for session %s (remaining clients: %d)", sessionID, len(h.clients[sessionID]))
}

// Broadcast sends a generation event to every client of the event's session
func (h *SSEHub) Broadcast(event *models.GenerationEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients := h.clients[event.SessionID]
	if len(clients) == 0 {
		return
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		logrus.Errorf("Failed to marshal generation event for SSE: %v", err)
		return
	}

	// EventSource listeners dispatch on the event name
	message := fmt.Sprintf("event: generation\ndata: %s\n\n", string(eventJSON))

	// Send to all clients (non-blocking)
	for clientChan := range clients {
		select {
		case clientChan <- []byte(message):
		default:
			logrus.Warnf("SSE client channel full, skipping: %s", event.SessionID)
		}
	}
}

// GetClientCount returns the number of clients for a session
func (h *SSEHub) GetClientCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

// SendHeartbeat sends a heartbeat message to keep connections alive
func (h *SSEHub) SendHeartbeat(sessionID string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, exists := h.clients[sessionID]
	if !exists {
		return
	}

	heartbeat := fmt.Sprintf(": heartbeat %s\n\n", time.Now().Format(time.RFC3339))
	for clientChan := range clients {
		select {
		case clientChan <- []byte(heartbeat):
		default:
		}
	}
}
