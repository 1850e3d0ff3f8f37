package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/reev-boutik/produit/internal/models"
)

const queryTimeout = 3 * time.Second

// productColumns is the select list every product query shares.
// Price, stock and category are nullable in the synced schema.
const productColumns = `id, codebar, designation, COALESCE(prix_vente, '0'), COALESCE(stock_actuel, '0'), COALESCE(category, ''), valide, created_at, updated_at`

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) GetByID(id string) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) GetByBarcode(codebar string) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE codebar = $1`
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, codebar))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO products (codebar, designation, prix_vente, stock_actuel, category, valide)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		RETURNING id, created_at, updated_at`
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var created, updated sql.NullTime
	err := r.db.QueryRowContext(ctx, query, p.Barcode, p.Name, p.Price, p.StockQuantity, p.Category, p.Active).
		Scan(&p.ID, &created, &updated)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") || strings.Contains(err.Error(), "duplicate key") {
			return models.Product{}, ErrDuplicateBarcode
		}
		return models.Product{}, err
	}
	p.CreatedAt, p.UpdatedAt = created.Time, updated.Time
	return p, nil
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	query := `UPDATE products
		SET designation = $1, prix_vente = $2, stock_actuel = $3, category = NULLIF($4, ''), valide = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var updated sql.NullTime
	err := r.db.QueryRowContext(ctx, query, p.Name, p.Price, p.StockQuantity, p.Category, p.Active, p.ID).
		Scan(&updated)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	p.UpdatedAt = updated.Time
	return p, nil
}

func (r *PostgresProductRepository) Categories() ([]string, error) {
	query := `SELECT DISTINCT category FROM products
		WHERE valide = TRUE AND category IS NOT NULL AND category <> ''
		ORDER BY category`
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresProductRepository) TotalCount() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	var created, updated sql.NullTime
	err := row.Scan(&p.ID, &p.Barcode, &p.Name, &p.Price, &p.StockQuantity, &p.Category, &p.Active, &created, &updated)
	if err != nil {
		return models.Product{}, err
	}
	p.CreatedAt, p.UpdatedAt = created.Time, updated.Time
	return p, nil
}
