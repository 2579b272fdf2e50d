// ABOUTME: Inventory collaborator contract for per-article stock and price records
// ABOUTME: Articles missing from inventory default to not-in-stock at the join

package inventory

import "context"

// Record is the stock/price information for one catalog article.
type Record struct {
	ArticleID         int64
	InStock           bool
	QuantityAvailable int
	PriceCOP          *float64
	Currency          string
	HasInventory      bool
	WarehouseLocation string
}

// Service answers read-only inventory lookups keyed by article identifier.
type Service interface {
	// ArticlesWithInventory returns records for the articles that exist in
	// inventory. Absent articles are simply omitted; callers default them to
	// not-in-stock.
	ArticlesWithInventory(ctx context.Context, articleIDs []int64) ([]Record, error)
}
