package handlers

import (
	"time"

	"github.com/reev-boutik/produit/internal/models"
)

type ProductRequest struct {
	Barcode       string `json:"codebar"`
	Name          string `json:"designation"`
	Price         string `json:"prixVente"`
	StockQuantity string `json:"stockActuel"`
	Category      string `json:"category"`
	Active        bool   `json:"valide"`
}

type PriceRequest struct {
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

type ProductAnalyticsResponse struct {
	models.Product
	MinPrice   string `json:"minPrice"`
	MaxPrice   string `json:"maxPrice"`
	AvgPrice   string `json:"avgPrice"`
	ScansCount int    `json:"scansCount"`
}

type StatsResponse struct {
	TotalProducts int       `json:"totalProducts"`
	ScansToday    int       `json:"scansToday"`
	LastUpdate    time.Time `json:"lastUpdate"`
}

type SortOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type SortOrderOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type SortOptionsResponse struct {
	SortOptions []SortOption      `json:"sortOptions"`
	SortOrders  []SortOrderOption `json:"sortOrders"`
}

type RatesCacheInfo struct {
	LastUpdated *time.Time `json:"lastUpdated"`
	ExpiresAt   *time.Time `json:"expiresAt"`
}

type RatesResponse struct {
	Rates any            `json:"rates"`
	Cache RatesCacheInfo `json:"cache"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}
