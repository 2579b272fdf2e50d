// ABOUTME: Journey interface and registry for multi-step user tasks
// ABOUTME: A journey owns a cluster of states and is dispatched as an opaque unit

package conversation

import "context"

// Result is what a state handler returns: the outgoing response, an optional
// state change, and an optional context patch. An empty NextState means the
// machine stays where it is; a nil Patch means no slot updates.
type Result struct {
	Response  string
	NextState State
	Patch     Patch
}

// Journey is a named collection of state handlers. The Manager treats it as
// an opaque unit: it asks which journey claims the session's current state
// and hands the message over.
type Journey interface {
	Name() string
	HandlesState(st State) bool
	ProcessState(ctx context.Context, sess *Session, message string) (*Result, error)
}

// Registry holds the journeys known to the dispatcher. Build one at process
// start and pass it to the Manager; there are no package-level registries.
type Registry struct {
	journeys []Journey
}

// NewRegistry creates a registry over the given journeys.
func NewRegistry(journeys ...Journey) *Registry {
	return &Registry{journeys: journeys}
}

// ForState returns the first journey claiming the state, or nil.
func (r *Registry) ForState(st State) Journey {
	for _, j := range r.journeys {
		if j.HandlesState(st) {
			return j
		}
	}
	return nil
}
