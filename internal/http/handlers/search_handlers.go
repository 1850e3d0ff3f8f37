package handlers

import (
	"log"
	"net/http"

	"github.com/reev-boutik/produit/internal/search"
)

// SearchProductsHandler godoc
// @Summary Search and rank products
// @Description Free-text search with category/stock filters, sorting and pagination. Short alphabetic queries also match product-name initials (acronyms), ranked first.
// @Tags products
// @Produce json
// @Param q query string false "Search query (alias: search)"
// @Param category query string false "Category filter; 'All Categories' disables it"
// @Param stockStatus query string false "Out of Stock | Low Stock | In Stock | all"
// @Param limit query string false "Page size, or 'all' for the complete set" default(10)
// @Param offset query int false "Page offset" default(0)
// @Param sortBy query string false "relevance|name|price|stock|category|barcode|created|modified"
// @Param sortOrder query string false "asc|desc" default(asc)
// @Success 200 {object} search.Result
// @Failure 500 {string} string "Internal error"
// @Router /products/search [get]
func SearchProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := q.Get("q")
	if query == "" {
		query = q.Get("search")
	}

	req := search.Request{
		Query:       query,
		Category:    q.Get("category"),
		StockStatus: search.ParseStockStatus(q.Get("stockStatus")),
		Limit:       parseLimit(q.Get("limit")),
		Offset:      parseIntDefault(q.Get("offset"), 0),
		SortBy:      search.ParseSortKey(q.Get("sortBy")),
		SortOrder:   search.ParseSortOrder(q.Get("sortOrder")),
	}

	result, err := searchEngine.Search(r.Context(), req)
	if err != nil {
		log.Printf("search failed: %v", err)
		http.Error(w, "could not search products", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		log.Printf("failed to encode search response: %v", err)
	}
}

// GetCategoriesHandler godoc
// @Summary List distinct product categories
// @Tags products
// @Produce json
// @Success 200 {array} string
// @Failure 500 {string} string "Internal error"
// @Router /categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := productRepo.Categories()
	if err != nil {
		http.Error(w, "could not fetch categories", http.StatusInternalServerError)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	writeJSON(w, http.StatusOK, categories)
}

// GetSortOptionsHandler godoc
// @Summary List supported sort keys and directions
// @Tags products
// @Produce json
// @Success 200 {object} SortOptionsResponse
// @Router /sort-options [get]
func GetSortOptionsHandler(w http.ResponseWriter, r *http.Request) {
	resp := SortOptionsResponse{
		SortOptions: []SortOption{
			{Value: "relevance", Label: "Relevance", Description: "Best match for search query"},
			{Value: "name", Label: "Name (A-Z)", Description: "Sort by product name alphabetically"},
			{Value: "price", Label: "Price", Description: "Sort by price"},
			{Value: "stock", Label: "Stock Level", Description: "Sort by available stock"},
			{Value: "category", Label: "Category", Description: "Sort by product category"},
			{Value: "barcode", Label: "Barcode", Description: "Sort by barcode"},
			{Value: "created", Label: "Date Added", Description: "Sort by creation date"},
			{Value: "modified", Label: "Last Modified", Description: "Sort by last modification date"},
		},
		SortOrders: []SortOrderOption{
			{Value: "asc", Label: "Ascending"},
			{Value: "desc", Label: "Descending"},
		},
	}
	writeJSON(w, http.StatusOK, resp)
}
