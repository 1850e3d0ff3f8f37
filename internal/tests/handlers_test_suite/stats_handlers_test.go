package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/reev-boutik/produit/internal/http"
	handler "github.com/reev-boutik/produit/internal/http/handlers"
)

func TestGetStatsHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	mustCreateProduct(r, handler.ProductRequest{Barcode: "400", Name: "Counted", Price: "10.00", Active: true})
	mustCreateProduct(r, handler.ProductRequest{Barcode: "401", Name: "Also Counted", Price: "10.00", Active: true})
	get(r, "/api/products/barcode/400")
	get(r, "/api/products/barcode/400")

	w := get(r, "/api/stats")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.StatsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.TotalProducts != 2 {
		t.Errorf("total products = %d, want 2", resp.TotalProducts)
	}
	// The Redis counter is absent in the suite, so the count comes from
	// the scan repository.
	if resp.ScansToday != 2 {
		t.Errorf("scans today = %d, want 2", resp.ScansToday)
	}
	if resp.LastUpdate.IsZero() {
		t.Error("expected a last-update timestamp")
	}
}

func TestGetExchangeRatesHandler(t *testing.T) {
	r := api.NewRouter()

	w := get(r, "/api/exchange-rates")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp struct {
		Rates struct {
			FCFA float64 `json:"FCFA"`
			EUR  float64 `json:"EUR"`
			USD  float64 `json:"USD"`
		} `json:"rates"`
		Cache handler.RatesCacheInfo `json:"cache"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	// The suite's provider is unreachable, so the hardcoded fallback is
	// served and no cache exists.
	if resp.Rates.FCFA != 1 {
		t.Errorf("FCFA rate = %v, want 1", resp.Rates.FCFA)
	}
	if resp.Rates.EUR == 0 || resp.Rates.USD == 0 {
		t.Errorf("expected non-zero EUR and USD rates, got %+v", resp.Rates)
	}
	if resp.Cache.LastUpdated != nil {
		t.Error("expected no cache metadata for fallback rates")
	}
}
