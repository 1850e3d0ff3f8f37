package repo

import (
	"fmt"
	"time"

	"github.com/reev-boutik/produit/internal/models"
)

type InMemoryScanRepository struct {
	scans  []models.ProductScan
	nextID int
}

func NewInMemoryScanRepository() *InMemoryScanRepository {
	return &InMemoryScanRepository{nextID: 1}
}

func (r *InMemoryScanRepository) Record(productID string) (models.ProductScan, error) {
	scan := models.ProductScan{
		ID:        fmt.Sprintf("scan-%d", r.nextID),
		ProductID: productID,
		ScannedAt: time.Now().UTC(),
	}
	r.nextID++
	r.scans = append(r.scans, scan)
	return scan, nil
}

func (r *InMemoryScanRepository) CountToday() (int, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	count := 0
	for _, s := range r.scans {
		if !s.ScannedAt.Before(today) {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryScanRepository) CountByProduct(productID string) (int, error) {
	count := 0
	for _, s := range r.scans {
		if s.ProductID == productID {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryScanRepository) Clear() {
	r.scans = nil
}
