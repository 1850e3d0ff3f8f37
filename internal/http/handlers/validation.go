package handlers

import (
	"strconv"
	"strings"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Barcode) == "" {
		errs = append(errs, ProductValidationError{Field: "Codebar", Description: "Barcode is required"})
	}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Designation", Description: "Designation is required"})
	}
	if price, err := strconv.ParseFloat(p.Price, 64); err != nil || price < 0 {
		errs = append(errs, ProductValidationError{Field: "PrixVente", Description: "Price must be a non-negative decimal"})
	}
	if p.StockQuantity != "" {
		if qty, err := strconv.ParseFloat(p.StockQuantity, 64); err != nil || qty < 0 {
			errs = append(errs, ProductValidationError{Field: "StockActuel", Description: "Stock quantity must be a non-negative decimal"})
		}
	}
	return errs
}

func validatePrice(p PriceRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if price, err := strconv.ParseFloat(p.Price, 64); err != nil || price <= 0 {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price must be a positive decimal"})
	}
	if p.Quantity <= 0 {
		errs = append(errs, ProductValidationError{Field: "Quantity", Description: "Quantity must be greater than zero"})
	}
	return errs
}
