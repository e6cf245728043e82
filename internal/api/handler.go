// internal/api/handler.go
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	errs "github-ai-assistant/internal/errors"
)

// ChatFunc answers one free-text question about the repository identified by
// owner/name, using the requested model backend.
type ChatFunc func(ctx context.Context, owner, name, backend, query string) (string, error)

// Handler is the container for API dependencies.
type Handler struct {
	chat   ChatFunc
	logger *slog.Logger
}

// NewRouter creates and configures a new chi router with all API routes.
func NewRouter(chat ChatFunc, logger *slog.Logger) http.Handler {
	h := &Handler{
		chat:   chat,
		logger: logger,
	}

	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger) // Chi's default logger
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	// API Routes
	r.Get("/health", h.healthCheck)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/chat", h.handleChat)
	})

	return r
}

// healthCheck is a simple health endpoint.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type chatRequest struct {
	RepoURL string `json:"repo_url"`
	Query   string `json:"query"`
	Model   string `json:"model"`
}

type chatResponse struct {
	Answer string `json:"answer"`
}

// handleChat runs one query through the classify/fetch/compose pipeline.
// POST /v1/chat
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	owner, name, err := ParseRepoURL(req.RepoURL)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		respondWithError(w, http.StatusBadRequest, "Query must not be empty")
		return
	}

	answer, err := h.chat(r.Context(), owner, name, req.Model, req.Query)
	if err != nil {
		h.logger.Error("Chat pipeline failed", "owner", owner, "repo", name, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, chatResponse{Answer: answer})
}

// ParseRepoURL validates a user-supplied repository URL and extracts the
// owner and repository name. Only 'https://github.com/<owner>/<repo>' is
// accepted; a trailing slash or extra path segments after the repo are
// tolerated.
func ParseRepoURL(repoURL string) (string, string, error) {
	trimmed := strings.TrimSuffix(repoURL, "/")
	if !strings.HasPrefix(trimmed, "https://github.com/") {
		return "", "", &errs.ErrInvalidRepoURL{URL: repoURL}
	}

	parts := strings.Split(trimmed, "/")
	if len(parts) < 5 || parts[3] == "" || parts[4] == "" {
		return "", "", &errs.ErrInvalidRepoURL{URL: repoURL}
	}
	return parts[3], parts[4], nil
}
