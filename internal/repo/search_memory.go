package repo

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/reev-boutik/produit/internal/models"
	"github.com/reev-boutik/produit/internal/search"
)

// The in-memory search.Store implementation. Records are matched by
// evaluating the predicate AST directly, and retrieval order mirrors
// the Postgres store: name ascending.

func (r *InMemoryProductRepository) Count(_ context.Context, p search.Predicate) (int, error) {
	count := 0
	for _, prod := range r.products {
		ok, err := evalPredicate(p, prod)
		if err != nil {
			return 0, err
		}
		if ok {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryProductRepository) Query(ctx context.Context, p search.Predicate, order search.OrderBy, limit, offset int) ([]models.Product, error) {
	matched, err := r.matching(p)
	if err != nil {
		return nil, err
	}

	key := order.Key
	if key == search.SortRelevance {
		key = search.SortName
	}
	search.SortProducts(matched, key, order.Desc)

	if offset >= len(matched) {
		return []models.Product{}, nil
	}
	matched = matched[offset:]
	if limit != search.LimitAll && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *InMemoryProductRepository) QueryAll(_ context.Context, p search.Predicate) ([]models.Product, error) {
	matched, err := r.matching(p)
	if err != nil {
		return nil, err
	}
	search.SortProducts(matched, search.SortName, false)
	return matched, nil
}

func (r *InMemoryProductRepository) matching(p search.Predicate) ([]models.Product, error) {
	var matched []models.Product
	for _, prod := range r.products {
		ok, err := evalPredicate(p, prod)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, prod)
		}
	}
	return matched, nil
}

func evalPredicate(p search.Predicate, prod models.Product) (bool, error) {
	switch v := p.(type) {
	case search.And:
		for _, sub := range v {
			ok, err := evalPredicate(sub, prod)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	case search.Or:
		for _, sub := range v {
			ok, err := evalPredicate(sub, prod)
			if err != nil || ok {
				return ok, err
			}
		}
		return false, nil
	case search.Eq:
		return evalEq(v, prod)
	case search.Like:
		text := textField(v.Field, prod)
		return strings.Contains(strings.ToLower(text), strings.ToLower(v.Term)), nil
	case search.Range:
		n := numericField(v.Field, prod)
		if v.Min != nil && (n < *v.Min || (v.ExclMin && n == *v.Min)) {
			return false, nil
		}
		if v.Max != nil && (n > *v.Max || (v.ExclMax && n == *v.Max)) {
			return false, nil
		}
		return true, nil
	default:
		return false, fmt.Errorf("unsupported predicate %T", p)
	}
}

func evalEq(v search.Eq, prod models.Product) (bool, error) {
	switch v.Field {
	case search.FieldActive:
		want, ok := v.Value.(bool)
		return ok && prod.Active == want, nil
	case search.FieldPrice, search.FieldStock:
		want, err := toFloat(v.Value)
		if err != nil {
			return false, err
		}
		return numericField(v.Field, prod) == want, nil
	default:
		want, ok := v.Value.(string)
		return ok && textField(v.Field, prod) == want, nil
	}
}

func textField(f search.Field, prod models.Product) string {
	switch f {
	case search.FieldName:
		return prod.Name
	case search.FieldBarcode:
		return prod.Barcode
	case search.FieldCategory:
		return prod.Category
	default:
		return ""
	}
}

// numericField coerces the stored decimal strings; malformed values
// behave as zero, matching the COALESCE defaults on the SQL side.
func numericField(f search.Field, prod models.Product) float64 {
	var s string
	switch f {
	case search.FieldPrice:
		s = prod.Price
	case search.FieldStock:
		s = prod.StockQuantity
	default:
		return 0
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return n
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("non-numeric comparison value %T", v)
	}
}
