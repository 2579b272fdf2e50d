// Package catalog talks to the external vehicle/parts catalog.
//
// The catalog is a read-only black box keyed by integer identifiers: vehicle
// types, manufacturers, models, concrete vehicles, a hierarchical category
// tree and per-category article lists. The Client interface is what journeys
// consume; HTTPClient implements it against the upstream REST API with a
// bounded timeout, and every transport failure wraps ErrUnavailable so
// handlers can degrade to a localized message.
package catalog
