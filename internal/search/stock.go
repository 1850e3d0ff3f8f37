package search

import "strings"

// StockStatus filters results by the coerced stock quantity.
type StockStatus int

const (
	StockAll StockStatus = iota
	StockOut             // quantity == 0
	StockLow             // 0 < quantity < 10
	StockIn              // quantity >= 10
)

// lowStockThreshold separates low-stock from in-stock quantities.
const lowStockThreshold = 10

// ParseStockStatus maps a raw stockStatus parameter to a StockStatus.
// The empty string and "all" disable the filter, as does any value
// outside the closed enum.
func ParseStockStatus(s string) StockStatus {
	norm := strings.Join(strings.Fields(strings.ToLower(strings.NewReplacer("-", " ", "_", " ").Replace(s))), " ")
	switch norm {
	case "out of stock":
		return StockOut
	case "low stock":
		return StockLow
	case "in stock":
		return StockIn
	default:
		return StockAll
	}
}

func stockPredicate(s StockStatus) Predicate {
	switch s {
	case StockOut:
		return Eq{Field: FieldStock, Value: 0.0}
	case StockLow:
		return Range{Field: FieldStock, Min: ptr(0), ExclMin: true, Max: ptr(lowStockThreshold), ExclMax: true}
	case StockIn:
		return Range{Field: FieldStock, Min: ptr(lowStockThreshold)}
	default:
		return nil
	}
}

func ptr(v float64) *float64 { return &v }
