package search

import (
	"regexp"
	"strconv"
	"strings"
)

// Classification selects the matching strategy for a raw search query.
type Classification int

const (
	// ClassNone means no text filtering at all.
	ClassNone Classification = iota
	// ClassSingle is a plain one-term substring match.
	ClassSingle
	// ClassMulti AND-combines substring conditions over every term.
	ClassMulti
	// ClassNumeric matches a substring hit or an exact price equality.
	ClassNumeric
	// ClassInitials marks a short alphabetic term as a possible acronym.
	ClassInitials
)

var (
	numericTerm = regexp.MustCompile(`^\d+(\.\d+)?$`)
	// A 2-6 letter token is treated as a potential acronym. This is a
	// heuristic: short plain-text queries get misclassified and pay the
	// full-materialization cost; do not tighten without product input.
	initialsTerm = regexp.MustCompile(`^[a-zA-Z]{2,6}$`)
)

// Classify inspects the raw query string and decides the matching
// strategy. The returned terms are trimmed and lower-cased.
func Classify(query string) (Classification, []string) {
	trimmed := strings.ToLower(strings.TrimSpace(query))
	if trimmed == "" {
		return ClassNone, nil
	}
	terms := strings.Fields(trimmed)
	if len(terms) > 1 {
		return ClassMulti, terms
	}
	switch term := terms[0]; {
	case numericTerm.MatchString(term):
		return ClassNumeric, terms
	case initialsTerm.MatchString(term):
		// Resolution is deferred to the ranking stage, which keeps the
		// plain substring interpretation alive as a fallback.
		return ClassInitials, terms
	default:
		return ClassSingle, terms
	}
}

// textPredicate builds the storage predicate for a classification.
// ClassInitials returns nil: its candidates are ranked in memory.
func textPredicate(class Classification, terms []string) Predicate {
	switch class {
	case ClassSingle:
		return anyFieldLike(terms[0])
	case ClassMulti:
		and := make(And, 0, len(terms))
		for _, term := range terms {
			and = append(and, anyFieldLike(term))
		}
		return and
	case ClassNumeric:
		n, _ := strconv.ParseFloat(terms[0], 64)
		return Or{anyFieldLike(terms[0]), Eq{Field: FieldPrice, Value: n}}
	default:
		return nil
	}
}

func anyFieldLike(term string) Or {
	return Or{
		Like{Field: FieldName, Term: term},
		Like{Field: FieldBarcode, Term: term},
		Like{Field: FieldCategory, Term: term},
	}
}
