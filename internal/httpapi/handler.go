// ABOUTME: HTTP transport for the dialogue manager using chi
// ABOUTME: One chat endpoint plus health; auth is a static bearer token

package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/repuai/parts-gateway/internal/conversation"
)

// Handler exposes the dialogue manager over HTTP.
type Handler struct {
	mgr    *conversation.Manager
	apiKey string
	logger *slog.Logger
}

// NewHandler creates the HTTP handler. An empty apiKey disables auth.
func NewHandler(mgr *conversation.Manager, apiKey string) *Handler {
	return &Handler{
		mgr:    mgr,
		apiKey: apiKey,
		logger: slog.Default().With("component", "httpapi"),
	}
}

// Router builds the chi router with middleware and routes.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)

	r.Group(func(r chi.Router) {
		if h.apiKey != "" {
			r.Use(h.requireAPIKey)
		}
		r.Post("/api/chat", h.handleChat)
	})

	return r
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Language  string `json:"language"`
}

type chatResponse struct {
	SessionID string                `json:"session_id"`
	Response  string                `json:"response"`
	Metadata  conversation.Metadata `json:"metadata"`
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// A missing session id starts a new conversation.
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}
	if req.Language == "" {
		req.Language = "es"
	}

	response, meta := h.mgr.Process(r.Context(), req.SessionID, req.Message, req.Language)

	h.logger.Debug("chat processed",
		"session_id", req.SessionID,
		"state", meta.State,
		"message_count", meta.MessageCount)

	writeJSON(w, http.StatusOK, chatResponse{
		SessionID: req.SessionID,
		Response:  response,
		Metadata:  meta,
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requireAPIKey checks the Authorization header against the static API key.
func (h *Handler) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token != h.apiKey {
			writeError(w, http.StatusUnauthorized, "invalid or missing token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
