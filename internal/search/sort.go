package search

import (
	"sort"
	"strconv"
	"strings"

	"github.com/reev-boutik/produit/internal/models"
)

// SortKey is the closed set of result orderings a caller can request.
type SortKey int

const (
	// SortRelevance keeps the ranker's order on the initials path and
	// falls back to name ascending on the storage path.
	SortRelevance SortKey = iota
	SortName
	SortPrice
	SortStock
	SortCategory
	SortBarcode
	SortCreated
	SortModified
)

// SortOrder is the requested sort direction.
type SortOrder int

const (
	OrderAsc SortOrder = iota
	OrderDesc
)

// OrderBy is the ordering a storage adapter translates to its query
// language.
type OrderBy struct {
	Key  SortKey
	Desc bool
}

// ParseSortKey maps a raw sortBy parameter to a SortKey. An empty value
// keeps relevance semantics. Unrecognized values are not an error: they
// fall back to name ascending, the documented leniency policy.
func ParseSortKey(s string) SortKey {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "relevance":
		return SortRelevance
	case "name":
		return SortName
	case "price":
		return SortPrice
	case "stock":
		return SortStock
	case "category":
		return SortCategory
	case "barcode":
		return SortBarcode
	case "created":
		return SortCreated
	case "modified":
		return SortModified
	default:
		return SortName
	}
}

// ParseSortOrder maps a raw sortOrder parameter to a direction,
// defaulting to ascending.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), "desc") {
		return OrderDesc
	}
	return OrderAsc
}

// SortProducts stably re-orders materialized candidates by the given
// key. SortRelevance is a no-op: the ranked order is already the
// desired one. Numeric fields compare as numbers, so "10" sorts after
// "9".
func SortProducts(items []models.Product, key SortKey, desc bool) {
	if key == SortRelevance {
		return
	}
	less := lessFunc(key)
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

func lessFunc(key SortKey) func(a, b models.Product) bool {
	switch key {
	case SortPrice:
		return func(a, b models.Product) bool { return decimal(a.Price) < decimal(b.Price) }
	case SortStock:
		return func(a, b models.Product) bool { return decimal(a.StockQuantity) < decimal(b.StockQuantity) }
	case SortCategory:
		return func(a, b models.Product) bool {
			return strings.ToLower(a.Category) < strings.ToLower(b.Category)
		}
	case SortBarcode:
		return func(a, b models.Product) bool { return a.Barcode < b.Barcode }
	case SortCreated:
		return func(a, b models.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortModified:
		return func(a, b models.Product) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	default:
		return func(a, b models.Product) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
}

// decimal coerces a stored decimal string; malformed values sort as zero.
func decimal(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
