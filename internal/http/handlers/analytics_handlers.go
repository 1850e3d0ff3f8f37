package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/reev-boutik/produit/internal/models"
	"github.com/reev-boutik/produit/internal/repo"
)

// GetProductAnalyticsHandler godoc
// @Summary Price analytics for a product
// @Description Min/max/average over recorded purchase prices plus the scan count. Products without history fall back to the current price.
// @Tags analytics
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductAnalyticsResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id}/analytics [get]
func GetProductAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	stats, err := priceRepo.Stats(id)
	if err != nil {
		http.Error(w, "could not fetch product analytics", http.StatusInternalServerError)
		return
	}
	if stats.MinPrice == "" {
		stats.MinPrice = product.Price
	}
	if stats.MaxPrice == "" {
		stats.MaxPrice = product.Price
	}
	if stats.AvgPrice == "" {
		stats.AvgPrice = product.Price
	}

	scans, err := scanRepo.CountByProduct(id)
	if err != nil {
		log.Printf("failed to count scans for %s: %v", id, err)
	}

	writeJSON(w, http.StatusOK, ProductAnalyticsResponse{
		Product:    product,
		MinPrice:   stats.MinPrice,
		MaxPrice:   stats.MaxPrice,
		AvgPrice:   stats.AvgPrice,
		ScansCount: scans,
	})
}

// GetPriceHistoryHandler godoc
// @Summary Recorded purchase prices for a product, newest first
// @Tags analytics
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {array} models.PriceEntry
// @Failure 500 {string} string "Internal error"
// @Router /products/{id}/price-history [get]
func GetPriceHistoryHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	history, err := priceRepo.History(id)
	if err != nil {
		http.Error(w, "could not fetch price history", http.StatusInternalServerError)
		return
	}
	if history == nil {
		history = []models.PriceEntry{}
	}
	writeJSON(w, http.StatusOK, history)
}

// RecordPriceHandler godoc
// @Summary Record a purchase price observation
// @Tags analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param price body PriceRequest true "Observed price"
// @Success 201 {object} models.PriceEntry
// @Failure 400 {object} []ProductValidationError
// @Failure 404 {string} string "Not found"
// @Router /products/{id}/prices [post]
func RecordPriceHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := productRepo.GetByID(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	var req PriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validatePrice(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	entry, err := priceRepo.Record(models.PriceEntry{
		ProductID: id,
		Price:     req.Price,
		Quantity:  req.Quantity,
	})
	if err != nil {
		http.Error(w, "could not record price", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}
