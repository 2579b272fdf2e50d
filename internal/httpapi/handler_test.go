// ABOUTME: Tests for the HTTP API: chat endpoint, health check and bearer auth
// ABOUTME: Runs the real dialogue manager against the in-memory session store

package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repuai/parts-gateway/internal/conversation"
	"github.com/repuai/parts-gateway/internal/intent"
	"github.com/repuai/parts-gateway/internal/messages"
	"github.com/repuai/parts-gateway/internal/store"
)

func newTestHandler(t *testing.T, apiKey string) *Handler {
	t.Helper()
	msgs, err := messages.Load()
	require.NoError(t, err)

	menu := conversation.NewIntentMenu(intent.NewParser(), msgs)
	mgr := conversation.NewManager(store.NewMemoryStore(), conversation.NewTransitions(), conversation.NewRegistry(), menu)
	return NewHandler(mgr, apiKey)
}

func postChat(t *testing.T, handler *Handler, body map[string]any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.Router().ServeHTTP(rec, req)
	return rec
}

func TestHandler_Health(t *testing.T) {
	handler := newTestHandler(t, "")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandler_ChatMintsSessionID(t *testing.T) {
	handler := newTestHandler(t, "")

	rec := postChat(t, handler, map[string]any{"message": ""}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		SessionID string                `json:"session_id"`
		Response  string                `json:"response"`
		Metadata  conversation.Metadata `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.SessionID)
	assert.Contains(t, resp.Response, "RepuAI")
	assert.Equal(t, conversation.StateIntentMenu, resp.Metadata.State)
	assert.True(t, resp.Metadata.InitialGreeting)
	assert.Equal(t, "es", resp.Metadata.Language)
}

func TestHandler_ChatKeepsSessionAcrossRequests(t *testing.T) {
	handler := newTestHandler(t, "")

	rec := postChat(t, handler, map[string]any{"session_id": "sess-1", "message": "9"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postChat(t, handler, map[string]any{"session_id": "sess-1", "message": "9"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Metadata conversation.Metadata `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Metadata.MessageCount)
}

func TestHandler_ChatRejectsBadBody(t *testing.T) {
	handler := newTestHandler(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	handler.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_AuthRequired(t *testing.T) {
	handler := newTestHandler(t, "secret-token")

	// No header.
	rec := postChat(t, handler, map[string]any{"message": ""}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Wrong token.
	rec = postChat(t, handler, map[string]any{"message": ""}, map[string]string{
		"Authorization": "Bearer wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Wrong scheme.
	rec = postChat(t, handler, map[string]any{"message": ""}, map[string]string{
		"Authorization": "Basic secret-token",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Correct token.
	rec = postChat(t, handler, map[string]any{"message": ""}, map[string]string{
		"Authorization": "Bearer secret-token",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_HealthSkipsAuth(t *testing.T) {
	handler := newTestHandler(t, "secret-token")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
