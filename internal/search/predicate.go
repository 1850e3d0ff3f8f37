package search

// Field identifies a product attribute that a predicate can test.
type Field int

const (
	FieldName Field = iota
	FieldBarcode
	FieldCategory
	FieldPrice
	FieldStock
	FieldActive
	FieldCreated
	FieldUpdated
)

// Predicate is a storage-agnostic filter expression. Storage adapters
// compile the AST to their native query language; the in-memory store
// evaluates it directly. Keeping the classifier decoupled from any
// query syntax is the reason this exists.
type Predicate interface {
	pred()
}

// Eq asserts equality on a field. Price and stock equality is numeric,
// not textual.
type Eq struct {
	Field Field
	Value any
}

// Like is a case-insensitive substring test on a text field.
type Like struct {
	Field Field
	Term  string
}

// And combines predicates conjunctively. An empty And matches everything.
type And []Predicate

// Or combines predicates disjunctively. An empty Or matches nothing.
type Or []Predicate

// Range bounds a numeric field. Nil bounds are open. Bounds are
// inclusive unless the corresponding Excl flag is set.
type Range struct {
	Field   Field
	Min     *float64
	Max     *float64
	ExclMin bool
	ExclMax bool
}

func (Eq) pred()    {}
func (Like) pred()  {}
func (And) pred()   {}
func (Or) pred()    {}
func (Range) pred() {}
