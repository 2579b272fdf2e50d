// Package conversation implements the dialogue state machine and
// journey-routing engine.
//
// # Overview
//
// Each end-user session advances through a constrained set of dialogue
// states while accumulating slot-filling context. The package owns the
// single source of truth for a conversation: current state plus context,
// persisted as one record in the session store.
//
// # Manager
//
// The Manager is the root dispatcher:
//
//	mgr := conversation.NewManager(store, transitions, registry, menu)
//	response, meta := mgr.Process(ctx, sessionID, message, language)
//
// Process always returns a (response, metadata) pair. The error taxonomy is
// local-recovery only:
//
//   - parse failure: re-prompt, no state change
//   - invalid transition: forced into the error state with a localized message
//   - collaborator failure: handled inside the journey, no state change
//   - anything else: forced into the error state, session persisted, generic
//     localized message plus a diagnostic in metadata
//
// # Transitions
//
// The transition graph is a static edge map built once by NewTransitions and
// injected into the Manager. Any proposed edge not in the map is rejected.
//
// # Journeys
//
// A Journey is a named group of states implementing one multi-step task. The
// Registry maps the session's current state to the owning journey; the menu
// state is handled by IntentMenu directly.
//
// Some states are pass-through: entering one immediately runs its handler
// with an empty message in the same turn, so a menu selection answers with
// the first real prompt of the journey rather than a placeholder.
//
// # Concurrency
//
// Sessions are independent actors. Messages for the same session id are
// serialized through a striped mutex held for the whole turn, so concurrent
// messages cannot race on the session's read-modify-write cycle.
package conversation
