package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/devinterview/question-catalog/internal/models"
	"github.com/devinterview/question-catalog/pkg/client"
)

const networkErrorMessage = "Network error. Please check if the server is running."

// respondRemoteError reports an import service failure as a bad gateway
func respondRemoteError(w http.ResponseWriter, err error, fallback string) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = fallback
		}
		respondError(w, http.StatusBadGateway, "remote_error", msg)
		return
	}
	respondError(w, http.StatusBadGateway, "remote_unavailable", networkErrorMessage)
}

// refreshAfterImport reloads the collection so imported questions show up
func (s *Server) refreshAfterImport(r *http.Request) {
	if _, err := s.store.Refresh(r.Context()); err != nil {
		slog.Warn("refresh after import failed", "error", err)
	}
}

func (s *Server) handleListRepositories(w http.ResponseWriter, r *http.Request) {
	repos, err := s.repositories.ListRepositories(r.Context())
	if err != nil {
		slog.Error("failed to list repositories", "error", err)
		respondRemoteError(w, err, "Failed to fetch repositories")
		return
	}
	if repos == nil {
		repos = []models.Repository{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"repositories": repos,
		"total":        len(repos),
	})
}

func (s *Server) handleAddRepository(w http.ResponseWriter, r *http.Request) {
	var req models.AddRepositoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	req.Owner = strings.TrimSpace(req.Owner)
	req.Repo = strings.TrimSpace(req.Repo)
	req.Technology = strings.TrimSpace(req.Technology)
	req.Category = strings.TrimSpace(req.Category)

	if req.Owner == "" || req.Repo == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "Please enter both owner and repository name")
		return
	}

	result, err := s.repositories.AddRepository(r.Context(), req)
	if err != nil {
		slog.Error("failed to add repository", "error", err, "owner", req.Owner, "repo", req.Repo)
		respondRemoteError(w, err, "Failed to add repository")
		return
	}

	slog.Info("repository added",
		"owner", req.Owner,
		"repo", req.Repo,
		"repository_id", result.RepositoryID,
		"questions", result.QuestionsCount,
	)
	s.refreshAfterImport(r)

	respondJSON(w, http.StatusCreated, result)
}

func (s *Server) handleSyncRepository(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "validation_error", "invalid repository id")
		return
	}

	result, err := s.repositories.SyncRepository(r.Context(), id)
	if err != nil {
		slog.Error("failed to sync repository", "error", err, "id", id)
		respondRemoteError(w, err, "Failed to sync repository")
		return
	}

	slog.Info("repository synced", "id", id, "questions", result.QuestionsCount)
	s.refreshAfterImport(r)

	respondJSON(w, http.StatusOK, result)
}
