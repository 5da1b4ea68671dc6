package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/devinterview/question-catalog/internal/catalog"
)

// Response helpers

type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: false,
		Error: &apiError{
			Code:    code,
			Message: message,
		},
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// Health handlers

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.store.Snapshot() == nil {
		respondError(w, http.StatusServiceUnavailable, "not_ready", "service not ready")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

// Connectivity handlers

type statusResponse struct {
	Online    bool           `json:"online"`
	Source    catalog.Source `json:"source"`
	Total     int            `json:"total"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Message   string         `json:"message"`
	Detail    string         `json:"detail"`
}

func newStatusResponse(snap *catalog.Snapshot) statusResponse {
	resp := statusResponse{
		Online:    snap.Online,
		Source:    snap.Source,
		Total:     len(snap.Questions),
		UpdatedAt: snap.UpdatedAt,
	}
	if snap.Online {
		resp.Message = "Connected to GitHub Integration Server"
		resp.Detail = "You can now add GitHub repositories to import interview questions dynamically."
	} else {
		resp.Message = "GitHub Integration Server Offline"
		resp.Detail = "Start the integration server to enable GitHub integration. Currently showing demo questions."
	}
	return resp
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, newStatusResponse(s.store.Snapshot()))
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Refresh(r.Context())
	if err != nil {
		slog.Warn("manual refresh failed", "error", err, "online", snap.Online)
	}
	respondJSON(w, http.StatusOK, newStatusResponse(snap))
}
