package repo

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/reev-boutik/produit/internal/models"
)

type InMemoryPriceHistoryRepository struct {
	entries []models.PriceEntry
	nextID  int
}

func NewInMemoryPriceHistoryRepository() *InMemoryPriceHistoryRepository {
	return &InMemoryPriceHistoryRepository{nextID: 1}
}

func (r *InMemoryPriceHistoryRepository) Record(entry models.PriceEntry) (models.PriceEntry, error) {
	entry.ID = fmt.Sprintf("price-%d", r.nextID)
	r.nextID++
	if entry.OrderedAt.IsZero() {
		entry.OrderedAt = time.Now().UTC()
	}
	r.entries = append(r.entries, entry)
	return entry, nil
}

func (r *InMemoryPriceHistoryRepository) History(productID string) ([]models.PriceEntry, error) {
	var entries []models.PriceEntry
	for _, e := range r.entries {
		if e.ProductID == productID {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].OrderedAt.After(entries[j].OrderedAt)
	})
	return entries, nil
}

func (r *InMemoryPriceHistoryRepository) Stats(productID string) (models.PriceStats, error) {
	var minP, maxP, sum float64
	count := 0
	for _, e := range r.entries {
		if e.ProductID != productID {
			continue
		}
		p, err := strconv.ParseFloat(e.Price, 64)
		if err != nil {
			continue
		}
		if count == 0 || p < minP {
			minP = p
		}
		if count == 0 || p > maxP {
			maxP = p
		}
		sum += p
		count++
	}
	if count == 0 {
		return models.PriceStats{}, nil
	}
	return models.PriceStats{
		MinPrice: strconv.FormatFloat(minP, 'f', 2, 64),
		MaxPrice: strconv.FormatFloat(maxP, 'f', 2, 64),
		AvgPrice: strconv.FormatFloat(sum/float64(count), 'f', 2, 64),
	}, nil
}

func (r *InMemoryPriceHistoryRepository) Clear() {
	r.entries = nil
}
