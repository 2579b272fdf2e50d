// ABOUTME: Static transition graph for the dialogue state machine
// ABOUTME: Every state change is gated by a lookup against this edge set

package conversation

// Transitions validates proposed state changes against a static edge map.
// Build exactly one with NewTransitions at startup and inject it into the
// Manager; the edge set never changes at runtime.
type Transitions struct {
	edges map[State][]State
}

// NewTransitions returns the validator for the dialogue graph.
// Edges model both forward progress and explicit go-back moves.
func NewTransitions() *Transitions {
	edges := map[State][]State{
		StateIntentMenu: {
			StateProductSearchInit,
			StateTechnicalInfo,
			StateOrderStatus,
			StateReturnsWarranty,
			StateGeneralInfo,
			StateError,
		},
		StateProductSearchInit: {
			StateVehicleIdentification,
			StateIntentMenu,
			StateError,
		},
		StateVehicleIdentification: {
			StatePartTypeSelection,
			StateProductSearchInit,
			StateIntentMenu,
			StateError,
		},
		StateVehicleInfoCollection: {
			StatePartTypeSelection,
			StateProductSearchInit,
			StateError,
		},
		StatePartTypeSelection: {
			StateProductPresentation,
			StateVehicleIdentification,
			StateVehicleInfoCollection,
			StateError,
		},
		StateProductPresentation: {
			StatePriceNegotiation,
			StateOrderConfirmation,
			StatePartTypeSelection,
			StateIntentMenu,
			StateError,
		},
		StatePriceNegotiation: {
			StateOrderConfirmation,
			StateProductPresentation,
			StateError,
		},
		StateOrderConfirmation: {
			StateEnd,
			StateIntentMenu,
			StateError,
		},
		// Error is a recovery hub: the machine may return to any state.
		StateError: AllStates,
		StateEnd:   {StateIntentMenu},
	}
	return &Transitions{edges: edges}
}

// Valid reports whether the edge from -> to exists in the graph.
// An edge not present in the map is rejected; the Manager forces the
// machine into StateError rather than silently ignoring the request.
func (t *Transitions) Valid(from, to State) bool {
	for _, allowed := range t.edges[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
