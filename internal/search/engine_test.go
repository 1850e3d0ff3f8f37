package search_test

import (
	"context"
	"testing"

	"github.com/reev-boutik/produit/internal/models"
	"github.com/reev-boutik/produit/internal/repo"
	"github.com/reev-boutik/produit/internal/search"
)

func seededEngine(t *testing.T, products []models.Product) *search.Engine {
	t.Helper()
	store := repo.NewInMemoryProductRepository()
	for _, p := range products {
		if _, err := store.Create(p); err != nil {
			t.Fatalf("seeding product %q: %v", p.Name, err)
		}
	}
	return search.NewEngine(store)
}

func resultNames(r search.Result) []string {
	out := make([]string, len(r.Products))
	for i, p := range r.Products {
		out[i] = p.Name
	}
	return out
}

func mustSearch(t *testing.T, e *search.Engine, req search.Request) search.Result {
	t.Helper()
	result, err := e.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	return result
}

var catalog = []models.Product{
	{Barcode: "1000", Name: "Bella Cake Chocolate Cream", Price: "350.00", StockQuantity: "5", Category: "Food", Active: true},
	{Barcode: "1001", Name: "Boss Classic Cola", Price: "500.00", StockQuantity: "15", Category: "Drinks", Active: true},
	{Barcode: "1002", Name: "Golden Oil", Price: "1200.00", StockQuantity: "0", Category: "Food", Active: true},
	{Barcode: "1003", Name: "Hidden Cola", Price: "450.00", StockQuantity: "9", Category: "Drinks", Active: false},
	{Barcode: "2500", Name: "Soap Bar", Price: "150.00", StockQuantity: "10", Category: "Beauty", Active: true},
}

func TestSearchActiveOnly(t *testing.T) {
	e := seededEngine(t, catalog)

	for _, query := range []string{"", "cola", "450", "hc"} {
		result := mustSearch(t, e, search.Request{Query: query})
		for _, p := range result.Products {
			if !p.Active {
				t.Errorf("query %q returned inactive product %q", query, p.Name)
			}
			if p.Name == "Hidden Cola" {
				t.Errorf("query %q returned the inactive record", query)
			}
		}
	}
}

func TestSearchTotalIndependentOfPagination(t *testing.T) {
	e := seededEngine(t, catalog)

	full := mustSearch(t, e, search.Request{})
	if full.Total != 4 {
		t.Fatalf("expected 4 active products, got total %d", full.Total)
	}

	page := mustSearch(t, e, search.Request{Limit: 2, Offset: 2})
	if page.Total != full.Total {
		t.Errorf("total changed under pagination: %d vs %d", page.Total, full.Total)
	}
	if len(page.Products) != 2 {
		t.Errorf("expected 2 products on page, got %d", len(page.Products))
	}
}

func TestSearchPaginationReconstructsFullSet(t *testing.T) {
	e := seededEngine(t, catalog)

	all := mustSearch(t, e, search.Request{Limit: search.LimitAll})
	var paged []string
	for offset := 0; ; offset += 2 {
		page := mustSearch(t, e, search.Request{Limit: 2, Offset: offset})
		if len(page.Products) == 0 {
			break
		}
		paged = append(paged, resultNames(page)...)
	}

	allNames := resultNames(all)
	if len(paged) != len(allNames) {
		t.Fatalf("paged walk yielded %d items, want %d", len(paged), len(allNames))
	}
	for i := range paged {
		if paged[i] != allNames[i] {
			t.Fatalf("paged walk = %v, want %v", paged, allNames)
		}
	}
}

func TestSearchInitialsPriority(t *testing.T) {
	// Scenario: "bcc" matches "Bella Cake Chocolate Cream" (BCCC) and
	// "Boss Classic Cola" (BCC) by initials; both must precede any
	// substring-only hit.
	e := seededEngine(t, append(catalog, models.Product{
		Barcode: "3000", Name: "Abcc Snack", Price: "200.00", StockQuantity: "3", Category: "Food", Active: true,
	}))

	result := mustSearch(t, e, search.Request{Query: "bcc"})
	got := resultNames(result)
	want := []string{"Bella Cake Chocolate Cream", "Boss Classic Cola", "Abcc Snack"}
	if len(got) != len(want) {
		t.Fatalf("results = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("results = %v, want %v", got, want)
		}
	}
	if result.Total != 3 {
		t.Errorf("total = %d, want 3", result.Total)
	}
}

func TestSearchInitialsFallsBackToSubstring(t *testing.T) {
	// "boss" is an initials candidate but BCC does not start with BOSS;
	// the record is still found via the substring interpretation.
	e := seededEngine(t, catalog)

	result := mustSearch(t, e, search.Request{Query: "boss"})
	if result.Total != 1 || result.Products[0].Name != "Boss Classic Cola" {
		t.Fatalf("expected Boss Classic Cola via substring fallback, got %v", resultNames(result))
	}
}

func TestSearchNumericMatchesExactPrice(t *testing.T) {
	// "500" appears nowhere in the text fields of Boss Classic Cola,
	// but its price is exactly 500.00.
	e := seededEngine(t, catalog)

	result := mustSearch(t, e, search.Request{Query: "500"})
	got := resultNames(result)
	found := false
	for _, n := range got {
		if n == "Boss Classic Cola" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected exact-price match for 500, got %v", got)
	}
	// "2500" contains "500", so Soap Bar matches on barcode.
	foundBarcode := false
	for _, n := range got {
		if n == "Soap Bar" {
			foundBarcode = true
		}
	}
	if !foundBarcode {
		t.Fatalf("expected barcode substring match for 500, got %v", got)
	}
}

func TestSearchOffsetPastEnd(t *testing.T) {
	e := seededEngine(t, catalog)

	result := mustSearch(t, e, search.Request{Limit: 10, Offset: 20})
	if len(result.Products) != 0 {
		t.Errorf("expected empty page, got %d products", len(result.Products))
	}
	if result.Total != 4 {
		t.Errorf("total = %d, want 4", result.Total)
	}

	// Same on the initials path.
	result = mustSearch(t, e, search.Request{Query: "bcc", Limit: 10, Offset: 20})
	if len(result.Products) != 0 {
		t.Errorf("expected empty initials page, got %d products", len(result.Products))
	}
}

func TestSearchStockStatusFilter(t *testing.T) {
	quantities := []string{"0", "5", "9", "10", "15"}
	var products []models.Product
	for i, q := range quantities {
		products = append(products, models.Product{
			Barcode:       string(rune('a' + i)),
			Name:          "Item " + q,
			Price:         "100.00",
			StockQuantity: q,
			Active:        true,
		})
	}
	e := seededEngine(t, products)

	tests := []struct {
		status string
		want   []string
	}{
		{"Low Stock", []string{"Item 5", "Item 9"}},
		{"Out of Stock", []string{"Item 0"}},
		{"In Stock", []string{"Item 10", "Item 15"}},
		{"all", []string{"Item 0", "Item 10", "Item 15", "Item 5", "Item 9"}},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			result := mustSearch(t, e, search.Request{StockStatus: search.ParseStockStatus(tt.status)})
			got := resultNames(result)
			if len(got) != len(tt.want) {
				t.Fatalf("%s results = %v, want %v", tt.status, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("%s results = %v, want %v", tt.status, got, tt.want)
				}
			}
		})
	}
}

func TestSearchCategoryFilter(t *testing.T) {
	e := seededEngine(t, catalog)

	result := mustSearch(t, e, search.Request{Category: "Drinks"})
	if result.Total != 1 || result.Products[0].Name != "Boss Classic Cola" {
		t.Fatalf("category filter results = %v", resultNames(result))
	}

	for _, sentinel := range []string{"", "all", "All Categories"} {
		result := mustSearch(t, e, search.Request{Category: sentinel})
		if result.Total != 4 {
			t.Errorf("sentinel %q should disable the filter, total = %d", sentinel, result.Total)
		}
	}
}

func TestSearchInitialsPathExplicitSort(t *testing.T) {
	// An explicit sort key re-orders the merged initials result.
	e := seededEngine(t, append(catalog, models.Product{
		Barcode: "3000", Name: "Abcc Snack", Price: "200.00", StockQuantity: "3", Category: "Food", Active: true,
	}))

	result := mustSearch(t, e, search.Request{Query: "bcc", SortBy: search.SortPrice, SortOrder: search.OrderDesc})
	got := resultNames(result)
	want := []string{"Boss Classic Cola", "Bella Cake Chocolate Cream", "Abcc Snack"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("price desc on initials path = %v, want %v", got, want)
		}
	}
}

func TestSearchMultiTermAndSemantics(t *testing.T) {
	e := seededEngine(t, catalog)

	result := mustSearch(t, e, search.Request{Query: "classic cola"})
	if result.Total != 1 || result.Products[0].Name != "Boss Classic Cola" {
		t.Fatalf("multi-term results = %v", resultNames(result))
	}

	// A term matching nothing eliminates everything.
	result = mustSearch(t, e, search.Request{Query: "classic nothing"})
	if result.Total != 0 {
		t.Fatalf("expected no matches, got %v", resultNames(result))
	}
	if result.Products == nil {
		t.Error("empty result must be an empty slice, not nil")
	}
}

func TestSearchEmptyQueryHonorsSort(t *testing.T) {
	e := seededEngine(t, catalog)

	result := mustSearch(t, e, search.Request{SortBy: search.SortStock, SortOrder: search.OrderDesc})
	got := resultNames(result)
	want := []string{"Boss Classic Cola", "Soap Bar", "Bella Cake Chocolate Cream", "Golden Oil"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("stock desc = %v, want %v", got, want)
		}
	}
}
