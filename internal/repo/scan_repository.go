package repo

import "github.com/reev-boutik/produit/internal/models"

// ScanRepository persists barcode scan events.
type ScanRepository interface {
	Record(productID string) (models.ProductScan, error)
	CountToday() (int, error)
	CountByProduct(productID string) (int, error)
}
