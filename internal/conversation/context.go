// ABOUTME: Slot-filling context carried through a conversation session
// ABOUTME: Known slots are typed fields, journey-specific slots live in Extra

package conversation

import (
	"encoding/json"
)

// Known slot keys. Journeys may introduce arbitrary additional keys; those
// land in Extra without any schema change.
const (
	slotLanguage       = "language"
	slotChannel        = "channel"
	slotCurrentJourney = "current_journey"
	slotSelectedIntent = "selected_intent"
)

// Patch is a set of context updates returned by a state handler.
type Patch map[string]any

// Context is the accumulated slot-filling state for a session. Known keys
// retain their last value until overwritten; unknown keys are tolerated so a
// handler can add a new slot without a schema migration.
type Context struct {
	Language       string
	Channel        string
	CurrentJourney string
	SelectedIntent int
	Extra          map[string]any
}

// NewContext returns a context seeded with the given language.
// The default language is "es".
func NewContext(language string) Context {
	if language == "" {
		language = "es"
	}
	return Context{
		Language: language,
		Channel:  "web",
		Extra:    map[string]any{},
	}
}

// Apply merges a handler patch into the context. Every key in the patch
// overwrites an existing slot (built-in or dynamic) or is added as a new
// dynamic slot. Apply is total: it never rejects unknown keys.
func (c *Context) Apply(patch Patch) {
	if c.Extra == nil {
		c.Extra = map[string]any{}
	}
	for key, value := range patch {
		if c.applyKnown(key, value) {
			continue
		}
		c.Extra[key] = value
	}
}

func (c *Context) applyKnown(key string, value any) bool {
	switch key {
	case slotLanguage:
		if s, ok := value.(string); ok {
			c.Language = s
			return true
		}
	case slotChannel:
		if s, ok := value.(string); ok {
			c.Channel = s
			return true
		}
	case slotCurrentJourney:
		if s, ok := value.(string); ok {
			c.CurrentJourney = s
			return true
		}
	case slotSelectedIntent:
		if n, ok := asInt(value); ok {
			c.SelectedIntent = n
			return true
		}
	}
	return false
}

// Int returns a dynamic slot as an int. JSON round-trips turn numbers into
// float64, so both forms are accepted.
func (c *Context) Int(key string) (int, bool) {
	v, ok := c.Extra[key]
	if !ok {
		return 0, false
	}
	return asInt(v)
}

// String returns a dynamic slot as a string.
func (c *Context) String(key string) (string, bool) {
	v, ok := c.Extra[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	}
	return 0, false
}

// MarshalJSON flattens known slots and dynamic slots into one object, so the
// persisted record looks the same regardless of which side a key lives on.
func (c Context) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(c.Extra)+4)
	for k, v := range c.Extra {
		flat[k] = v
	}
	flat[slotLanguage] = c.Language
	flat[slotChannel] = c.Channel
	flat[slotCurrentJourney] = c.CurrentJourney
	flat[slotSelectedIntent] = c.SelectedIntent
	return json.Marshal(flat)
}

// UnmarshalJSON splits a flat object back into known and dynamic slots.
func (c *Context) UnmarshalJSON(data []byte) error {
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	c.Extra = map[string]any{}
	for key, value := range flat {
		if c.applyKnown(key, value) {
			continue
		}
		c.Extra[key] = value
	}
	return nil
}
