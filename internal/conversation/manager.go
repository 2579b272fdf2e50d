// ABOUTME: Dialogue manager owning session lifecycle, dispatch and transition commits
// ABOUTME: Process always returns a response; failures route to the error state

package conversation

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/repuai/parts-gateway/internal/store"
)

const (
	sessionKeyPrefix  = "conversation:"
	defaultSessionTTL = 24 * time.Hour
	lockStripes       = 64
	maxAutoHops       = 3
)

// autoStates are pass-through states: entering one immediately runs its
// handler with an empty message, within the same turn.
var autoStates = map[State]bool{
	StateProductSearchInit: true,
}

// Metadata accompanies every response.
type Metadata struct {
	State           State  `json:"state"`
	Journey         string `json:"journey,omitempty"`
	Language        string `json:"language"`
	MessageCount    int    `json:"message_count"`
	InitialGreeting bool   `json:"initial_greeting,omitempty"`
	LanguageChanged bool   `json:"language_changed,omitempty"`
	Error           string `json:"error,omitempty"`
}

// Manager is the root dispatcher: it loads or creates the session, detects
// language switches, routes to the menu or the owning journey, merges context
// patches, validates and commits transitions, and persists the session.
//
// Messages for the same session id are serialized through a striped lock, so
// two concurrent messages never race on the session's read-modify-write.
type Manager struct {
	store       store.Store
	transitions *Transitions
	registry    *Registry
	menu        *IntentMenu
	ttl         time.Duration
	logger      *slog.Logger

	locks [lockStripes]sync.Mutex
}

// errorMessage returns the localized generic recovery message.
func (m *Manager) errorMessage(language string) string {
	return m.menu.msgs.Get("error_generic", language)
}

// NewManager wires the dispatcher. Pass the single Transitions instance and
// the single Registry built at process start.
func NewManager(st store.Store, transitions *Transitions, registry *Registry, menu *IntentMenu) *Manager {
	return &Manager{
		store:       st,
		transitions: transitions,
		registry:    registry,
		menu:        menu,
		ttl:         defaultSessionTTL,
		logger:      slog.Default().With("component", "dialogue-manager"),
	}
}

// SetSessionTTL overrides the default 24h session TTL.
func (m *Manager) SetSessionTTL(ttl time.Duration) {
	if ttl > 0 {
		m.ttl = ttl
	}
}

// Process handles one inbound message and always returns a (response,
// metadata) pair; no failure propagates to the transport layer.
func (m *Manager) Process(ctx context.Context, sessionID, message, language string) (string, Metadata) {
	if language == "" {
		language = "es"
	}

	lock := m.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	// An empty message is a greeting request: it does not consume a turn.
	if strings.TrimSpace(message) == "" {
		return m.greet(ctx, sessionID, language)
	}

	sess, err := m.loadOrCreate(ctx, sessionID, language)
	if err != nil {
		m.logger.Error("session load failed", "session_id", sessionID, "error", err)
		return m.errorMessage(language), Metadata{
			State:    StateError,
			Language: language,
			Error:    err.Error(),
		}
	}

	// A language switch is a hard reset: in-progress journeys are lost.
	if sess.Context.Language != language {
		m.logger.Info("language switch, resetting session",
			"session_id", sessionID,
			"from", sess.Context.Language,
			"to", language)
		sess = NewSession(sessionID, language)
		if err := m.save(ctx, sess); err != nil {
			m.logger.Error("session reset save failed", "session_id", sessionID, "error", err)
		}
		response := m.menu.msgs.Get("language_changed", language) + "\n\n" + m.menu.EntryMessage(language)
		return response, Metadata{
			State:           sess.CurrentState,
			Language:        language,
			LanguageChanged: true,
		}
	}

	sess.MessageCount++

	response, errMeta := m.dispatch(ctx, sess, message)
	if errMeta != "" {
		sess.CurrentState = StateError
		if err := m.save(ctx, sess); err != nil {
			m.logger.Error("error-state save failed", "session_id", sessionID, "error", err)
		}
		return m.errorMessage(language), Metadata{
			State:        StateError,
			Journey:      sess.Context.CurrentJourney,
			Language:     language,
			MessageCount: sess.MessageCount,
			Error:        errMeta,
		}
	}

	if err := m.save(ctx, sess); err != nil {
		m.logger.Error("session save failed", "session_id", sessionID, "error", err)
	}

	return response, Metadata{
		State:        sess.CurrentState,
		Journey:      sess.Context.CurrentJourney,
		Language:     language,
		MessageCount: sess.MessageCount,
	}
}

// dispatch routes the message to the menu or the owning journey and applies
// the handler's result. It returns the outgoing response, or a non-empty
// diagnostic when the turn must be answered with the generic error message.
// Pass-through states are chained within the same turn, so the user never
// sees an intermediate state's placeholder response.
func (m *Manager) dispatch(ctx context.Context, sess *Session, message string) (response string, errDiag string) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("handler panic", "session_id", sess.ID, "panic", r)
			errDiag = fmt.Sprintf("panic: %v", r)
		}
	}()

	response, errDiag = m.step(ctx, sess, message)
	for hops := 0; errDiag == "" && autoStates[sess.CurrentState] && hops < maxAutoHops; hops++ {
		response, errDiag = m.step(ctx, sess, "")
	}
	return response, errDiag
}

// step runs one handler for the session's current state and applies its
// result: context patch first, then the validated transition.
func (m *Manager) step(ctx context.Context, sess *Session, message string) (response string, errDiag string) {
	var result *Result
	if sess.CurrentState == StateIntentMenu {
		result = m.menu.Process(sess, message)
	} else {
		journey := m.registry.ForState(sess.CurrentState)
		if journey == nil {
			m.logger.Warn("no journey claims state",
				"session_id", sess.ID,
				"state", sess.CurrentState)
			// Forced recovery to the menu, bypassing graph validation.
			sess.CurrentState = StateIntentMenu
			return m.menu.msgs.Get("state_not_implemented", sess.Context.Language), ""
		}
		var err error
		result, err = journey.ProcessState(ctx, sess, message)
		if err != nil {
			m.logger.Error("journey failed",
				"session_id", sess.ID,
				"journey", journey.Name(),
				"state", sess.CurrentState,
				"error", err)
			return "", err.Error()
		}
	}

	// Merge and persist slot data before committing any transition, so a
	// crash in between does not lose slots the handler already computed.
	if result.Patch != nil {
		sess.Context.Apply(result.Patch)
		if err := m.save(ctx, sess); err != nil {
			m.logger.Error("patch save failed", "session_id", sess.ID, "error", err)
		}
	}

	if result.NextState != "" && result.NextState != sess.CurrentState {
		if !m.transitions.Valid(sess.CurrentState, result.NextState) {
			m.logger.Warn("invalid transition rejected",
				"session_id", sess.ID,
				"from", sess.CurrentState,
				"to", result.NextState)
			sess.CurrentState = StateError
			if err := m.save(ctx, sess); err != nil {
				m.logger.Error("error-state save failed", "session_id", sess.ID, "error", err)
			}
			return m.errorMessage(sess.Context.Language), ""
		}
		sess.CurrentState = result.NextState
		if err := m.save(ctx, sess); err != nil {
			m.logger.Error("transition save failed", "session_id", sess.ID, "error", err)
		}
	}

	return result.Response, ""
}

// greet loads or creates the session and returns the menu entry message
// without incrementing the message count.
func (m *Manager) greet(ctx context.Context, sessionID, language string) (string, Metadata) {
	sess, err := m.loadOrCreate(ctx, sessionID, language)
	if err != nil {
		m.logger.Error("greeting session load failed", "session_id", sessionID, "error", err)
		return m.errorMessage(language), Metadata{
			State:    StateError,
			Language: language,
			Error:    err.Error(),
		}
	}
	return m.menu.EntryMessage(language), Metadata{
		State:           sess.CurrentState,
		Language:        language,
		MessageCount:    sess.MessageCount,
		InitialGreeting: true,
	}
}

func (m *Manager) loadOrCreate(ctx context.Context, sessionID, language string) (*Session, error) {
	key := sessionKeyPrefix + sessionID
	data, err := m.store.Get(ctx, key)
	if err == nil {
		sess, decErr := DecodeSession(data)
		if decErr == nil {
			// Sliding expiry: every touch refreshes the TTL.
			if expErr := m.store.Expire(ctx, key, m.ttl); expErr != nil {
				m.logger.Warn("ttl refresh failed", "session_id", sessionID, "error", expErr)
			}
			return sess, nil
		}
		m.logger.Warn("discarding undecodable session record",
			"session_id", sessionID,
			"error", decErr)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	sess := NewSession(sessionID, language)
	if err := m.save(ctx, sess); err != nil {
		return nil, err
	}
	m.logger.Info("session created", "session_id", sessionID, "language", language)
	return sess, nil
}

func (m *Manager) save(ctx context.Context, sess *Session) error {
	sess.UpdatedAt = time.Now().UTC()
	data, err := sess.Encode()
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := m.store.Set(ctx, sessionKeyPrefix+sess.ID, data, m.ttl); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	return nil
}

func (m *Manager) sessionLock(sessionID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	return &m.locks[h.Sum32()%lockStripes]
}
