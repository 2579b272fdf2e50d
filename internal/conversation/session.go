// ABOUTME: Session model and its flat JSON wire form for the session store
// ABOUTME: Sessions expire via store TTL and are never explicitly deleted

package conversation

import (
	"encoding/json"
	"fmt"
	"time"
)

// Session is the persisted record of one user's ongoing conversation.
// It is created on the first message for a new session id, mutated by every
// processed message, and expires through the store's TTL.
type Session struct {
	ID           string
	CurrentState State
	Context      Context
	MessageCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewSession returns a fresh session at the intent menu.
func NewSession(id, language string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:           id,
		CurrentState: StateIntentMenu,
		Context:      NewContext(language),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// sessionRecord is the flat serialized form of a session.
type sessionRecord struct {
	SessionID    string    `json:"session_id"`
	CurrentState string    `json:"current_state"`
	Context      Context   `json:"context"`
	MessageCount int       `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Encode serializes the session for the session store.
func (s *Session) Encode() ([]byte, error) {
	rec := sessionRecord{
		SessionID:    s.ID,
		CurrentState: string(s.CurrentState),
		Context:      s.Context,
		MessageCount: s.MessageCount,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
	return json.Marshal(rec)
}

// DecodeSession parses a stored session record. A record whose state is not
// a member of the declared enum is rejected rather than resurrected.
func DecodeSession(data []byte) (*Session, error) {
	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding session record: %w", err)
	}
	st := State(rec.CurrentState)
	if !st.Valid() {
		return nil, fmt.Errorf("decoding session record: unknown state %q", rec.CurrentState)
	}
	return &Session{
		ID:           rec.SessionID,
		CurrentState: st,
		Context:      rec.Context,
		MessageCount: rec.MessageCount,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}, nil
}
