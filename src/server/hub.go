package server

import (
	"net/http"
	"time"

	"coinscope/src/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// -----------------------------------------------------------------------------
// Hub Pattern Implementation
// -----------------------------------------------------------------------------

// handleWebsockets is the main Hub loop
func (s *APIServer) handleWebsockets() {
	for {
		select {
		case client, ok := <-s.register:
			if !ok {
				return
			}
			s.clientsMu.Lock()
			s.clients[client] = struct{}{}
			s.clientsMu.Unlock()

			// Send the dataset snapshot on connect
			client.send <- s.buildSnapshot("SNAPSHOT")

		case client, ok := <-s.unregister:
			if !ok {
				return
			}
			s.clientsMu.Lock()
			if _, exists := s.clients[client]; exists {
				delete(s.clients, client)
				close(client.send)
			}
			s.clientsMu.Unlock()

		case snapshot, ok := <-s.broadcast:
			if !ok {
				return
			}
			s.clientsMu.Lock()
			for client := range s.clients {
				select {
				case client.send <- snapshot:
				default:
					// Client too slow, disconnect to keep the Hub moving
					delete(s.clients, client)
					close(client.send)
				}
			}
			s.clientsMu.Unlock()
		}
	}
}

// -----------------------------------------------------------------------------

// Broadcast pushes a dataset snapshot to every connected client.
func (s *APIServer) Broadcast() {
	s.broadcast <- s.buildSnapshot("UPDATE")
}

// -----------------------------------------------------------------------------

// buildSnapshot shapes the summary payload sent over the websocket.
func (s *APIServer) buildSnapshot(snapshotType string) *models.MDatasetSnapshot {
	snap := s.Loader.EnsureLoaded()

	return &models.MDatasetSnapshot{
		Type:           snapshotType,
		TotalCoins:     snap.Count,
		Source:         s.Loader.SourceName(),
		MarketCapStats: s.Analyzer.MarketCapSummary(snap.Rows),
		Timestamp:      time.Now().Unix(),
	}
}

// -----------------------------------------------------------------------------
// WebSocket Handlers
// -----------------------------------------------------------------------------

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// -----------------------------------------------------------------------------

func (s *APIServer) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.Logger.Info("Failed to upgrade websocket: %v", err)
		return
	}

	client := &Client{
		hub:  s,
		conn: conn,
		// Buffered channel to prevent blocking the Hub loop
		send: make(chan *models.MDatasetSnapshot, 16),
	}

	s.register <- client

	// Start goroutines for reading/writing
	go client.writePump()
	go client.readPump()
}
