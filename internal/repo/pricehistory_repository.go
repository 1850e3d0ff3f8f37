package repo

import "github.com/reev-boutik/produit/internal/models"

// PriceHistoryRepository stores and aggregates recorded purchase prices.
type PriceHistoryRepository interface {
	Record(entry models.PriceEntry) (models.PriceEntry, error)
	// History returns the recorded prices for a product, newest first.
	History(productID string) ([]models.PriceEntry, error)
	// Stats aggregates min/max/avg over the history. Empty strings mean
	// no history has been recorded yet.
	Stats(productID string) (models.PriceStats, error)
}
