package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/devinterview/question-catalog/internal/catalog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// EventMessage is pushed to stream clients whenever the collection changes
type EventMessage struct {
	Type      string         `json:"type"`
	Online    bool           `json:"online"`
	Source    catalog.Source `json:"source"`
	Total     int            `json:"total"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func snapshotEvent(snap catalog.Snapshot) EventMessage {
	return EventMessage{
		Type:      "snapshot",
		Online:    snap.Online,
		Source:    snap.Source,
		Total:     len(snap.Questions),
		UpdatedAt: snap.UpdatedAt,
	}
}

func (s *Server) handleEventsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("failed to upgrade to websocket", "error", err)
		return
	}
	defer conn.Close()

	updates, unsubscribe := s.store.Subscribe()
	defer unsubscribe()

	slog.Info("events websocket connected", "remote_addr", r.RemoteAddr)

	if err := s.sendEvent(conn, snapshotEvent(*s.store.Snapshot())); err != nil {
		return
	}

	// Clients only listen; reading detects the close
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					slog.Debug("websocket read error", "error", err)
				}
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			slog.Info("events websocket disconnected", "remote_addr", r.RemoteAddr)
			return
		case snap, ok := <-updates:
			if !ok {
				return
			}
			if err := s.sendEvent(conn, snapshotEvent(snap)); err != nil {
				return
			}
		}
	}
}

func (s *Server) sendEvent(conn *websocket.Conn, msg EventMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("failed to marshal event message", "error", err)
		return err
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		slog.Debug("failed to send event message", "error", err)
		return err
	}
	return nil
}
