package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/reev-boutik/produit/internal/models"
)

// Store is the storage capability the engine consumes. Implementations
// compile the predicate AST to their query language and must restrict
// nothing on their own: every filter arrives through the predicate.
type Store interface {
	Count(ctx context.Context, p Predicate) (int, error)
	Query(ctx context.Context, p Predicate, order OrderBy, limit, offset int) ([]models.Product, error)
	// QueryAll fetches every record matching p in a stable storage
	// order. Implementations may apply a hard cap to bound
	// materialization on the initials path.
	QueryAll(ctx context.Context, p Predicate) ([]models.Product, error)
}

// Request carries the parsed parameters of one search invocation.
type Request struct {
	Query       string
	Category    string
	StockStatus StockStatus
	Limit       int
	Offset      int
	SortBy      SortKey
	SortOrder   SortOrder
}

// Result is one ranked page plus the match count before pagination.
type Result struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
}

// Engine resolves search requests against a Store. It holds no mutable
// state; a single Engine serves concurrent requests.
type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// Search classifies the query, retrieves candidates through the
// appropriate strategy and returns one ranked page together with the
// total match count.
func (e *Engine) Search(ctx context.Context, req Request) (Result, error) {
	req = req.normalized()

	class, terms := Classify(req.Query)
	var strat retrievalStrategy
	if class == ClassInitials {
		strat = initialsStrategy{store: e.store, term: terms[0]}
	} else {
		strat = storeStrategy{store: e.store, text: textPredicate(class, terms)}
	}
	return strat.resolve(ctx, req)
}

func (r Request) normalized() Request {
	if r.Limit == 0 {
		r.Limit = DefaultLimit
	}
	if r.Limit < 0 {
		r.Limit = LimitAll
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return r
}

// basePredicate restricts to active records and applies the category
// and stock filters. The text predicate, when any, is appended by the
// storage strategy.
func (r Request) basePredicate() And {
	pred := And{Eq{Field: FieldActive, Value: true}}
	if cat := strings.TrimSpace(r.Category); cat != "" && !isAllCategories(cat) {
		pred = append(pred, Eq{Field: FieldCategory, Value: cat})
	}
	if sp := stockPredicate(r.StockStatus); sp != nil {
		pred = append(pred, sp)
	}
	return pred
}

// isAllCategories recognizes the sentinel that disables the category
// filter. "All Categories" is what the legacy client sends.
func isAllCategories(cat string) bool {
	switch strings.ToLower(cat) {
	case "all", "all categories":
		return true
	}
	return false
}

// retrievalStrategy is one way of turning a request into a ranked page.
// The store variant pushes filtering, ordering and paging down to the
// storage layer. The initials variant materializes every candidate
// first, because acronym ranking cannot be expressed in the storage
// query language.
type retrievalStrategy interface {
	resolve(ctx context.Context, req Request) (Result, error)
}

type storeStrategy struct {
	store Store
	text  Predicate
}

func (s storeStrategy) resolve(ctx context.Context, req Request) (Result, error) {
	pred := req.basePredicate()
	if s.text != nil {
		pred = append(pred, s.text)
	}

	total, err := s.store.Count(ctx, pred)
	if err != nil {
		return Result{}, fmt.Errorf("counting candidates: %w", err)
	}

	order := OrderBy{Key: req.SortBy, Desc: req.SortOrder == OrderDesc}
	products, err := s.store.Query(ctx, pred, order, req.Limit, req.Offset)
	if err != nil {
		return Result{}, fmt.Errorf("querying candidates: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return Result{Products: products, Total: total}, nil
}

type initialsStrategy struct {
	store Store
	term  string
}

func (s initialsStrategy) resolve(ctx context.Context, req Request) (Result, error) {
	candidates, err := s.store.QueryAll(ctx, req.basePredicate())
	if err != nil {
		return Result{}, fmt.Errorf("materializing candidates: %w", err)
	}

	ranked := rankByInitials(candidates, s.term)
	SortProducts(ranked, req.SortBy, req.SortOrder == OrderDesc)
	return Result{
		Products: paginate(ranked, req.Limit, req.Offset),
		Total:    len(ranked),
	}, nil
}

// rankByInitials partitions candidates into acronym matches followed by
// plain substring matches. Retrieval order is preserved inside each
// bucket; candidates matching neither way are dropped. The bucket
// order is the relevance signal: acronym matches always outrank
// incidental substring hits.
func rankByInitials(candidates []models.Product, term string) []models.Product {
	var initials, substrings []models.Product
	for _, p := range candidates {
		switch {
		case MatchesInitials(term, p.Name):
			initials = append(initials, p)
		case containsFold(p.Name, term), containsFold(p.Barcode, term), containsFold(p.Category, term):
			substrings = append(substrings, p)
		}
	}
	return append(initials, substrings...)
}

func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}
