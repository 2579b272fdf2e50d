// ABOUTME: Product search journey: vehicle identification through article listing
// ABOUTME: Owns the init, vehicle, part-selection and presentation states

package productsearch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/repuai/parts-gateway/internal/catalog"
	"github.com/repuai/parts-gateway/internal/conversation"
	"github.com/repuai/parts-gateway/internal/inventory"
	"github.com/repuai/parts-gateway/internal/messages"
)

// Name is the journey name recorded in the session context.
const Name = "product_search"

const (
	defaultMaxArticlesPerPage = 20
	defaultCategoryLevels     = 3
)

var ownedStates = []conversation.State{
	conversation.StateProductSearchInit,
	conversation.StateVehicleIdentification,
	conversation.StatePartTypeSelection,
	conversation.StateProductPresentation,
}

// Options tune the journey's listing behavior.
type Options struct {
	MaxArticlesPerPage int
	CategoryLevels     int
}

// Journey walks a customer from vehicle identification to an article listing
// enriched with inventory data.
type Journey struct {
	catalog        catalog.Client
	inventory      inventory.Service
	msgs           *messages.Catalog
	logger         *slog.Logger
	maxArticles    int
	categoryLevels int
}

// New wires the journey with its catalog and inventory collaborators.
func New(cat catalog.Client, inv inventory.Service, msgs *messages.Catalog, opts Options) *Journey {
	maxArticles := opts.MaxArticlesPerPage
	if maxArticles <= 0 {
		maxArticles = defaultMaxArticlesPerPage
	}
	levels := opts.CategoryLevels
	if levels <= 0 {
		levels = defaultCategoryLevels
	}
	return &Journey{
		catalog:        cat,
		inventory:      inv,
		msgs:           msgs,
		logger:         slog.Default().With("component", "product-search"),
		maxArticles:    maxArticles,
		categoryLevels: levels,
	}
}

// Name implements conversation.Journey.
func (j *Journey) Name() string {
	return Name
}

// HandlesState implements conversation.Journey.
func (j *Journey) HandlesState(st conversation.State) bool {
	for _, owned := range ownedStates {
		if owned == st {
			return true
		}
	}
	return false
}

// ProcessState dispatches the message to the handler for the session's
// current state.
func (j *Journey) ProcessState(ctx context.Context, sess *conversation.Session, message string) (*conversation.Result, error) {
	switch sess.CurrentState {
	case conversation.StateProductSearchInit:
		return j.processInit(ctx, sess)
	case conversation.StateVehicleIdentification:
		return j.processVehicleIdentification(ctx, sess, message)
	case conversation.StatePartTypeSelection:
		return j.processPartSelection(ctx, sess, message)
	case conversation.StateProductPresentation:
		return j.processPresentation(sess, message)
	}
	return nil, fmt.Errorf("product search journey does not handle state %q", sess.CurrentState)
}
