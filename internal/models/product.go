package models

import "time"

// Product represents a catalog entry resolved by barcode scans.
// Price and StockQuantity are kept as decimal strings, exactly as the
// upstream sync job delivers them; numeric comparisons coerce on demand.
type Product struct {
	ID            string    `json:"id"`
	Barcode       string    `json:"codebar"`
	Name          string    `json:"designation"`
	Price         string    `json:"prixVente"`
	StockQuantity string    `json:"stockActuel"`
	Category      string    `json:"category,omitempty"`
	Active        bool      `json:"valide"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
}

// PriceEntry is one historical purchase price observation for a product.
type PriceEntry struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Price     string    `json:"price"`
	Quantity  int       `json:"quantity"`
	OrderedAt time.Time `json:"ordered_at"`
}

// ProductScan records a single barcode scan of a product.
type ProductScan struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	ScannedAt time.Time `json:"scanned_at"`
}

// PriceStats aggregates the recorded price history of a product.
type PriceStats struct {
	MinPrice string `json:"min_price"`
	MaxPrice string `json:"max_price"`
	AvgPrice string `json:"avg_price"`
}
