package repo

import (
	"errors"

	"github.com/reev-boutik/produit/internal/models"
)

// ProductRepository defines the interface for product data operations.
// The search engine does not use it; search goes through search.Store.
type ProductRepository interface {
	GetByID(id string) (models.Product, error)
	GetByBarcode(codebar string) (models.Product, error)
	Create(product models.Product) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Categories() ([]string, error)
	TotalCount() (int, error)
}

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ErrDuplicateBarcode is returned when a create collides with an existing barcode.
var ErrDuplicateBarcode = errors.New("barcode already exists")
