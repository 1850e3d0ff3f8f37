package search

import "github.com/reev-boutik/produit/internal/models"

const (
	// DefaultLimit is the page size used when the caller supplies none.
	DefaultLimit = 10
	// LimitAll asks for the complete result set: no LIMIT clause on the
	// storage path, no slicing on the in-memory path.
	LimitAll = -1
)

// paginate slices an ordered candidate list to the requested window.
// An offset past the end yields an empty page, not an error.
func paginate(items []models.Product, limit, offset int) []models.Product {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []models.Product{}
	}
	items = items[offset:]
	if limit == LimitAll || limit >= len(items) {
		return items
	}
	return items[:limit]
}
