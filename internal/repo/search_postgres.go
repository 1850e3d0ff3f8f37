package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/reev-boutik/produit/internal/models"
	"github.com/reev-boutik/produit/internal/search"
)

// DefaultCandidateCap bounds how many rows QueryAll will materialize
// for the initials path. Full-table ranking is the one operation that
// scales with catalog size, so it gets a hard limit.
const DefaultCandidateCap = 10000

// PostgresSearchStore implements search.Store by compiling the
// predicate AST to parameterized SQL.
type PostgresSearchStore struct {
	db  *sql.DB
	cap int
}

func NewPostgresSearchStore(db *sql.DB, candidateCap int) *PostgresSearchStore {
	if candidateCap <= 0 {
		candidateCap = DefaultCandidateCap
	}
	return &PostgresSearchStore{db: db, cap: candidateCap}
}

func (s *PostgresSearchStore) Count(ctx context.Context, p search.Predicate) (int, error) {
	args := []any{}
	where, err := compilePredicate(p, &args)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var count int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products WHERE `+where, args...).Scan(&count)
	return count, err
}

func (s *PostgresSearchStore) Query(ctx context.Context, p search.Predicate, order search.OrderBy, limit, offset int) ([]models.Product, error) {
	args := []any{}
	where, err := compilePredicate(p, &args)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE ` + where + orderClause(order)
	if limit != search.LimitAll {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, limit)
	}
	if offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, offset)
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return s.queryProducts(ctx, query, args)
}

// QueryAll fetches the complete matching set in name order, capped to
// bound memory on the initials path.
func (s *PostgresSearchStore) QueryAll(ctx context.Context, p search.Predicate) ([]models.Product, error) {
	args := []any{}
	where, err := compilePredicate(p, &args)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE ` + where +
		fmt.Sprintf(" ORDER BY designation ASC LIMIT $%d", len(args)+1)
	args = append(args, s.cap)

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return s.queryProducts(ctx, query, args)
}

func (s *PostgresSearchStore) queryProducts(ctx context.Context, query string, args []any) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// columnFor maps a predicate field to its SQL expression. Numeric
// columns are cast so "10" compares after "9" instead of before it.
func columnFor(f search.Field) string {
	switch f {
	case search.FieldName:
		return "designation"
	case search.FieldBarcode:
		return "codebar"
	case search.FieldCategory:
		return "COALESCE(category, '')"
	case search.FieldPrice:
		return "CAST(COALESCE(prix_vente, '0') AS NUMERIC)"
	case search.FieldStock:
		return "CAST(COALESCE(stock_actuel, '0') AS NUMERIC)"
	case search.FieldActive:
		return "valide"
	case search.FieldCreated:
		return "created_at"
	default:
		return "updated_at"
	}
}

// compilePredicate renders the predicate AST as a WHERE fragment with
// $n placeholders, appending values to args.
func compilePredicate(p search.Predicate, args *[]any) (string, error) {
	switch v := p.(type) {
	case search.And:
		return compileJunction([]search.Predicate(v), " AND ", "TRUE", args)
	case search.Or:
		return compileJunction([]search.Predicate(v), " OR ", "FALSE", args)
	case search.Eq:
		*args = append(*args, v.Value)
		return fmt.Sprintf("%s = $%d", columnFor(v.Field), len(*args)), nil
	case search.Like:
		*args = append(*args, "%"+v.Term+"%")
		return fmt.Sprintf("%s ILIKE $%d", columnFor(v.Field), len(*args)), nil
	case search.Range:
		return compileRange(v, args)
	default:
		return "", fmt.Errorf("unsupported predicate %T", p)
	}
}

func compileJunction(preds []search.Predicate, sep, empty string, args *[]any) (string, error) {
	if len(preds) == 0 {
		return empty, nil
	}
	clause := "("
	for i, p := range preds {
		part, err := compilePredicate(p, args)
		if err != nil {
			return "", err
		}
		if i > 0 {
			clause += sep
		}
		clause += part
	}
	return clause + ")", nil
}

func compileRange(v search.Range, args *[]any) (string, error) {
	col := columnFor(v.Field)
	clause := ""
	if v.Min != nil {
		op := ">="
		if v.ExclMin {
			op = ">"
		}
		*args = append(*args, *v.Min)
		clause = fmt.Sprintf("%s %s $%d", col, op, len(*args))
	}
	if v.Max != nil {
		op := "<="
		if v.ExclMax {
			op = "<"
		}
		*args = append(*args, *v.Max)
		part := fmt.Sprintf("%s %s $%d", col, op, len(*args))
		if clause != "" {
			clause += " AND " + part
		} else {
			clause = part
		}
	}
	if clause == "" {
		return "TRUE", nil
	}
	return "(" + clause + ")", nil
}

func orderClause(o search.OrderBy) string {
	var col string
	switch o.Key {
	case search.SortPrice:
		col = "CAST(COALESCE(prix_vente, '0') AS NUMERIC)"
	case search.SortStock:
		col = "CAST(COALESCE(stock_actuel, '0') AS NUMERIC)"
	case search.SortCategory:
		col = "COALESCE(category, '')"
	case search.SortBarcode:
		col = "codebar"
	case search.SortCreated:
		col = "created_at"
	case search.SortModified:
		col = "updated_at"
	default:
		// Name sort, and the relevance fallback on this path.
		col = "designation"
	}
	dir := " ASC"
	if o.Desc {
		dir = " DESC"
	}
	return " ORDER BY " + col + dir
}
