package repo

import (
	"context"
	"database/sql"

	"github.com/reev-boutik/produit/internal/models"
)

type PostgresPriceHistoryRepository struct {
	db *sql.DB
}

func NewPostgresPriceHistoryRepository(db *sql.DB) *PostgresPriceHistoryRepository {
	return &PostgresPriceHistoryRepository{db: db}
}

func (r *PostgresPriceHistoryRepository) Record(entry models.PriceEntry) (models.PriceEntry, error) {
	query := `INSERT INTO detail_commande (product_id, price, quantity)
		VALUES ($1, $2, $3)
		RETURNING id, commande_date`
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, entry.ProductID, entry.Price, entry.Quantity).
		Scan(&entry.ID, &entry.OrderedAt)
	return entry, err
}

func (r *PostgresPriceHistoryRepository) History(productID string) ([]models.PriceEntry, error) {
	query := `SELECT id, product_id, price, quantity, commande_date
		FROM detail_commande
		WHERE product_id = $1
		ORDER BY commande_date DESC`
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.PriceEntry
	for rows.Next() {
		var e models.PriceEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.Price, &e.Quantity, &e.OrderedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PostgresPriceHistoryRepository) Stats(productID string) (models.PriceStats, error) {
	query := `SELECT MIN(CAST(price AS NUMERIC)), MAX(CAST(price AS NUMERIC)), ROUND(AVG(CAST(price AS NUMERIC)), 2)
		FROM detail_commande
		WHERE product_id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var minPrice, maxPrice, avgPrice sql.NullString
	err := r.db.QueryRowContext(ctx, query, productID).Scan(&minPrice, &maxPrice, &avgPrice)
	if err != nil {
		return models.PriceStats{}, err
	}
	return models.PriceStats{
		MinPrice: minPrice.String,
		MaxPrice: maxPrice.String,
		AvgPrice: avgPrice.String,
	}, nil
}
