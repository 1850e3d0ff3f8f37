package repo

import (
	"testing"

	"github.com/reev-boutik/produit/internal/search"
)

func compileOrFail(t *testing.T, p search.Predicate) (string, []any) {
	t.Helper()
	args := []any{}
	clause, err := compilePredicate(p, &args)
	if err != nil {
		t.Fatalf("compilePredicate: %v", err)
	}
	return clause, args
}

func TestCompilePredicate(t *testing.T) {
	tests := []struct {
		name       string
		pred       search.Predicate
		wantClause string
		wantArgs   []any
	}{
		{
			name:       "eq active",
			pred:       search.Eq{Field: search.FieldActive, Value: true},
			wantClause: "valide = $1",
			wantArgs:   []any{true},
		},
		{
			name:       "eq price casts column",
			pred:       search.Eq{Field: search.FieldPrice, Value: 500.0},
			wantClause: "CAST(COALESCE(prix_vente, '0') AS NUMERIC) = $1",
			wantArgs:   []any{500.0},
		},
		{
			name:       "like wraps term in wildcards",
			pred:       search.Like{Field: search.FieldName, Term: "cola"},
			wantClause: "designation ILIKE $1",
			wantArgs:   []any{"%cola%"},
		},
		{
			name:       "category coalesces null",
			pred:       search.Like{Field: search.FieldCategory, Term: "drinks"},
			wantClause: "COALESCE(category, '') ILIKE $1",
			wantArgs:   []any{"%drinks%"},
		},
		{
			name: "and numbers placeholders in order",
			pred: search.And{
				search.Eq{Field: search.FieldActive, Value: true},
				search.Like{Field: search.FieldBarcode, Term: "12"},
			},
			wantClause: "(valide = $1 AND codebar ILIKE $2)",
			wantArgs:   []any{true, "%12%"},
		},
		{
			name: "or over text fields",
			pred: search.Or{
				search.Like{Field: search.FieldName, Term: "x"},
				search.Like{Field: search.FieldBarcode, Term: "x"},
			},
			wantClause: "(designation ILIKE $1 OR codebar ILIKE $2)",
			wantArgs:   []any{"%x%", "%x%"},
		},
		{
			name:       "empty and is true",
			pred:       search.And{},
			wantClause: "TRUE",
			wantArgs:   []any{},
		},
		{
			name:       "empty or is false",
			pred:       search.Or{},
			wantClause: "FALSE",
			wantArgs:   []any{},
		},
		{
			name: "exclusive range both bounds",
			pred: search.Range{
				Field:   search.FieldStock,
				Min:     ptrFloat(0),
				Max:     ptrFloat(10),
				ExclMin: true,
				ExclMax: true,
			},
			wantClause: "(CAST(COALESCE(stock_actuel, '0') AS NUMERIC) > $1 AND CAST(COALESCE(stock_actuel, '0') AS NUMERIC) < $2)",
			wantArgs:   []any{0.0, 10.0},
		},
		{
			name: "inclusive min only",
			pred: search.Range{
				Field: search.FieldStock,
				Min:   ptrFloat(10),
			},
			wantClause: "(CAST(COALESCE(stock_actuel, '0') AS NUMERIC) >= $1)",
			wantArgs:   []any{10.0},
		},
		{
			name:       "unbounded range is true",
			pred:       search.Range{Field: search.FieldStock},
			wantClause: "TRUE",
			wantArgs:   []any{},
		},
		{
			name: "nested ast",
			pred: search.And{
				search.Eq{Field: search.FieldActive, Value: true},
				search.Or{
					search.Like{Field: search.FieldName, Term: "500"},
					search.Eq{Field: search.FieldPrice, Value: 500.0},
				},
			},
			wantClause: "(valide = $1 AND (designation ILIKE $2 OR CAST(COALESCE(prix_vente, '0') AS NUMERIC) = $3))",
			wantArgs:   []any{true, "%500%", 500.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := compileOrFail(t, tt.pred)
			if clause != tt.wantClause {
				t.Errorf("clause = %q, want %q", clause, tt.wantClause)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("args = %v, want %v", args, tt.wantArgs)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("arg[%d] = %v, want %v", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name  string
		order search.OrderBy
		want  string
	}{
		{"name asc", search.OrderBy{Key: search.SortName}, " ORDER BY designation ASC"},
		{"relevance falls back to name", search.OrderBy{Key: search.SortRelevance}, " ORDER BY designation ASC"},
		{"price desc casts", search.OrderBy{Key: search.SortPrice, Desc: true}, " ORDER BY CAST(COALESCE(prix_vente, '0') AS NUMERIC) DESC"},
		{"stock asc casts", search.OrderBy{Key: search.SortStock}, " ORDER BY CAST(COALESCE(stock_actuel, '0') AS NUMERIC) ASC"},
		{"category coalesces", search.OrderBy{Key: search.SortCategory}, " ORDER BY COALESCE(category, '') ASC"},
		{"barcode", search.OrderBy{Key: search.SortBarcode}, " ORDER BY codebar ASC"},
		{"created desc", search.OrderBy{Key: search.SortCreated, Desc: true}, " ORDER BY created_at DESC"},
		{"modified", search.OrderBy{Key: search.SortModified}, " ORDER BY updated_at ASC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := orderClause(tt.order); got != tt.want {
				t.Errorf("orderClause = %q, want %q", got, tt.want)
			}
		})
	}
}

func ptrFloat(n float64) *float64 { return &n }
