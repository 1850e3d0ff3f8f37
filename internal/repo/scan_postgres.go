package repo

import (
	"context"
	"database/sql"

	"github.com/reev-boutik/produit/internal/models"
)

type PostgresScanRepository struct {
	db *sql.DB
}

func NewPostgresScanRepository(db *sql.DB) *PostgresScanRepository {
	return &PostgresScanRepository{db: db}
}

func (r *PostgresScanRepository) Record(productID string) (models.ProductScan, error) {
	query := `INSERT INTO product_scans (product_id) VALUES ($1) RETURNING id, scanned_at`
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	scan := models.ProductScan{ProductID: productID}
	err := r.db.QueryRowContext(ctx, query, productID).Scan(&scan.ID, &scan.ScannedAt)
	return scan, err
}

func (r *PostgresScanRepository) CountToday() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM product_scans WHERE DATE(scanned_at) = CURRENT_DATE`).Scan(&count)
	return count, err
}

func (r *PostgresScanRepository) CountByProduct(productID string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM product_scans WHERE product_id = $1`, productID).Scan(&count)
	return count, err
}
