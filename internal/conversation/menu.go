// ABOUTME: Intent menu handler for the root INTENT_MENU state
// ABOUTME: Maps parsed selections to journeys; only product search is live

package conversation

import (
	"log/slog"

	"github.com/repuai/parts-gateway/internal/intent"
	"github.com/repuai/parts-gateway/internal/messages"
)

// IntentMenu renders the numbered menu and handles selections. Options 2-6
// reply "not yet available" without a state transition; that is an immediate
// reply, not an error.
type IntentMenu struct {
	parser *intent.Parser
	msgs   *messages.Catalog
	logger *slog.Logger
}

// NewIntentMenu creates the menu handler.
func NewIntentMenu(parser *intent.Parser, msgs *messages.Catalog) *IntentMenu {
	return &IntentMenu{
		parser: parser,
		msgs:   msgs,
		logger: slog.Default().With("component", "intent-menu"),
	}
}

// EntryMessage returns the localized numbered menu.
func (m *IntentMenu) EntryMessage(language string) string {
	return m.msgs.Get("menu", language)
}

// Process parses a menu selection. A parse failure re-prompts without a
// transition; intent 1 starts the product search journey.
func (m *IntentMenu) Process(sess *Session, message string) *Result {
	language := sess.Context.Language
	parsed := m.parser.Parse(message)

	if parsed.Intent == intent.None {
		m.logger.Debug("menu selection not understood",
			"session_id", sess.ID,
			"input", message)
		return &Result{Response: m.msgs.Format("invalid_selection", language, message)}
	}

	if parsed.Intent == intent.ProductSearch {
		return &Result{
			Response:  m.msgs.Get("product_search_selected", language),
			NextState: StateProductSearchInit,
			Patch: Patch{
				slotSelectedIntent: int(parsed.Intent),
				slotCurrentJourney: "product_search",
			},
		}
	}

	intentName := m.msgs.Get("intent_name_"+parsed.Intent.String(), language)
	m.logger.Debug("intent not implemented",
		"session_id", sess.ID,
		"intent", parsed.Intent.String())
	return &Result{Response: m.msgs.Format("not_implemented", language, intentName)}
}
