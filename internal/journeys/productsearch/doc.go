// Package productsearch implements the product search journey.
//
// The journey owns four dialogue states: the pass-through init state, vehicle
// identification, part-type selection and product presentation. Handlers
// answer either localized prose or structured JSON payloads tagged with a
// type the rich client dispatches on (VEHICLE_ID_OPTIONS, CATEGORIES_DATA,
// ARTICLES_DATA, ...). Collaborator failures never abort a turn; they degrade
// to an ERROR payload or a reduced listing.
package productsearch
