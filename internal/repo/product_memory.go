package repo

import (
	"fmt"
	"time"

	"github.com/reev-boutik/produit/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository. It also implements search.Store (search_memory.go)
// so handler tests can run the full search path without a database.
type InMemoryProductRepository struct {
	products []models.Product
	nextID   int
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

func (r *InMemoryProductRepository) GetByID(id string) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) GetByBarcode(codebar string) (models.Product, error) {
	for _, p := range r.products {
		if p.Barcode == codebar {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	for _, p := range r.products {
		if p.Barcode == product.Barcode {
			return models.Product{}, ErrDuplicateBarcode
		}
	}
	if product.ID == "" {
		product.ID = fmt.Sprintf("mem-%d", r.nextID)
		r.nextID++
	}
	now := time.Now().UTC()
	product.CreatedAt, product.UpdatedAt = now, now
	r.products = append(r.products, product)
	return product, nil
}

func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	for i, p := range r.products {
		if p.ID == product.ID {
			product.CreatedAt = p.CreatedAt
			product.UpdatedAt = time.Now().UTC()
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Categories() ([]string, error) {
	seen := map[string]bool{}
	var categories []string
	for _, p := range r.products {
		if p.Active && p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

func (r *InMemoryProductRepository) TotalCount() (int, error) {
	return len(r.products), nil
}

func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
}
