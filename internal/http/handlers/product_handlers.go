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

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, product)
}

// GetProductByBarcodeHandler godoc
// @Summary Resolve a scanned barcode to a product
// @Description The scan is recorded for the daily statistics.
// @Tags products
// @Produce json
// @Param codebar path string true "Barcode"
// @Success 200 {object} models.Product
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/barcode/{codebar} [get]
func GetProductByBarcodeHandler(w http.ResponseWriter, r *http.Request) {
	codebar := chi.URLParam(r, "codebar")

	product, err := productRepo.GetByBarcode(codebar)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product by barcode", http.StatusInternalServerError)
		return
	}

	if _, err := scanRepo.Record(product.ID); err != nil {
		// A lost scan record must not fail the lookup.
		log.Printf("failed to record scan for %s: %v", product.Barcode, err)
	}
	scanService.RecordScan(product.ID, product.Barcode)

	writeJSON(w, http.StatusOK, product)
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} models.Product
// @Failure 400 {object} []ProductValidationError
// @Failure 409 {string} string "Duplicate barcode"
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	product := models.Product{
		Barcode:       req.Barcode,
		Name:          req.Name,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Category:      req.Category,
		Active:        req.Active,
	}
	created, err := productRepo.Create(product)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateBarcode) {
			http.Error(w, "could not create product: barcode already exists", http.StatusConflict)
			return
		}
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} models.Product
// @Failure 400 {object} []ProductValidationError
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	product := models.Product{
		ID:            id,
		Barcode:       req.Barcode,
		Name:          req.Name,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Category:      req.Category,
		Active:        req.Active,
	}
	updated, err := productRepo.Update(product)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
