// ABOUTME: Conversation state enum for the dialogue state machine
// ABOUTME: Every session is always in exactly one of these states

package conversation

// State identifies where a session currently sits in the dialogue graph.
type State string

const (
	// StateIntentMenu is the root menu and the initial state of every session.
	StateIntentMenu State = "intent_menu"

	// Product search journey states.
	StateProductSearchInit     State = "product_search_init"
	StateVehicleIdentification State = "vehicle_identification"
	StateVehicleInfoCollection State = "vehicle_info_collection"
	StatePartTypeSelection     State = "part_type_selection"
	StateProductPresentation   State = "product_presentation"
	StatePriceNegotiation      State = "price_negotiation"
	StateOrderConfirmation     State = "order_confirmation"

	// Reserved states for journeys that are not implemented yet.
	StateTechnicalInfo   State = "technical_info"
	StateOrderStatus     State = "order_status"
	StateReturnsWarranty State = "returns_warranty"
	StateGeneralInfo     State = "general_info"
	StateOther           State = "other"

	// StateError is enterable from any state and is used for user-facing recovery.
	StateError State = "error"

	// StateEnd terminates a journey; its only exit is back to the menu.
	StateEnd State = "end"
)

// AllStates lists every declared state. Order is stable for iteration in tests.
var AllStates = []State{
	StateIntentMenu,
	StateProductSearchInit,
	StateVehicleIdentification,
	StateVehicleInfoCollection,
	StatePartTypeSelection,
	StateProductPresentation,
	StatePriceNegotiation,
	StateOrderConfirmation,
	StateTechnicalInfo,
	StateOrderStatus,
	StateReturnsWarranty,
	StateGeneralInfo,
	StateOther,
	StateError,
	StateEnd,
}

// Valid reports whether s is a member of the declared state enum.
func (s State) Valid() bool {
	for _, st := range AllStates {
		if st == s {
			return true
		}
	}
	return false
}

func (s State) String() string {
	return string(s)
}
