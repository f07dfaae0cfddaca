package pattern

import (
	"github.com/quadrel/quadrel/internal/rdf"
)

// Index names, kept in sync with schema.sql in internal/store.
const (
	IndexContext          = "idx_quadruples_context"
	IndexSubject          = "idx_quadruples_subject"
	IndexPredicate        = "idx_quadruples_predicate"
	IndexObject           = "idx_quadruples_object"
	IndexSubjectPredicate = "idx_quadruples_subject_predicate"
	IndexSubjectObject    = "idx_quadruples_subject_object"
	IndexPredicateObject  = "idx_quadruples_predicate_object"
)

// selectColumns is the projection every compiled shape reads.
const selectColumns = "flavor, context, subject, predicate, object"

// Shape is a compiled quad pattern: a placeholder-only WHERE fragment, the
// matching argument list, and the name of the index the shape is built to
// hit. The fully unbound shape has an empty Where and an empty Index; it is
// the one shape that is allowed to scan.
type Shape struct {
	Where string
	Args  []any
	Index string
}

// Query renders the full retrieval statement for the shape. Ordering by the
// primary key makes results deterministic across runs.
func (s Shape) Query() string {
	q := "SELECT " + selectColumns + " FROM quadruples"
	if s.Where != "" {
		q += " WHERE " + s.Where
	}
	return q + " ORDER BY id ASC"
}

// Bound component bitmask. The object bit covers both facets; which facet
// was bound only changes the flavor argument, not the shape.
const (
	boundContext = 1 << iota
	boundSubject
	boundPredicate
	boundObject
)

// Compile selects the canonical shape for the pattern's bound/unbound
// combination. There are sixteen: one per subset of {context, subject,
// predicate, object-or-literal}. Whenever the object dimension is bound the
// shape filters on flavor as well, so a resource and a literal sharing the
// same raw string can never satisfy each other's queries.
//
// Filters are ordered to match the leading columns of the target index.
// Term values are canonicalized and hashed here; the SQL text never
// contains a caller-supplied value.
func Compile(p Pattern) (Shape, error) {
	if err := p.Validate(); err != nil {
		return Shape{}, err
	}

	var (
		mask                   int
		ckey, skey, pkey, okey int64
		flavor                 int64
	)
	if p.Context != nil {
		mask |= boundContext
		ckey = int64(rdf.TermKey(*p.Context))
	}
	if p.Subject != nil {
		mask |= boundSubject
		skey = int64(rdf.TermKey(*p.Subject))
	}
	if p.Predicate != nil {
		mask |= boundPredicate
		pkey = int64(rdf.TermKey(*p.Predicate))
	}
	if p.Object != nil {
		mask |= boundObject
		okey = int64(rdf.TermKey(*p.Object))
		flavor = int64(rdf.ResourceObject)
	}
	if p.Literal != nil {
		mask |= boundObject
		okey = int64(rdf.TermKey(*p.Literal))
		flavor = int64(rdf.LiteralObject)
	}

	switch mask {
	case 0:
		// Nothing bound: the explicit return-everything shape.
		return Shape{}, nil

	case boundContext:
		return Shape{
			Where: "context_key = ?",
			Args:  []any{ckey},
			Index: IndexContext,
		}, nil

	case boundSubject:
		return Shape{
			Where: "subject_key = ?",
			Args:  []any{skey},
			Index: IndexSubject,
		}, nil

	case boundPredicate:
		return Shape{
			Where: "predicate_key = ?",
			Args:  []any{pkey},
			Index: IndexPredicate,
		}, nil

	case boundObject:
		return Shape{
			Where: "object_key = ? AND flavor = ?",
			Args:  []any{okey, flavor},
			Index: IndexObject,
		}, nil

	case boundContext | boundSubject:
		return Shape{
			Where: "subject_key = ? AND context_key = ?",
			Args:  []any{skey, ckey},
			Index: IndexSubject,
		}, nil

	case boundContext | boundPredicate:
		return Shape{
			Where: "predicate_key = ? AND context_key = ?",
			Args:  []any{pkey, ckey},
			Index: IndexPredicate,
		}, nil

	case boundContext | boundObject:
		return Shape{
			Where: "object_key = ? AND flavor = ? AND context_key = ?",
			Args:  []any{okey, flavor, ckey},
			Index: IndexObject,
		}, nil

	case boundSubject | boundPredicate:
		return Shape{
			Where: "subject_key = ? AND predicate_key = ?",
			Args:  []any{skey, pkey},
			Index: IndexSubjectPredicate,
		}, nil

	case boundSubject | boundObject:
		return Shape{
			Where: "subject_key = ? AND object_key = ? AND flavor = ?",
			Args:  []any{skey, okey, flavor},
			Index: IndexSubjectObject,
		}, nil

	case boundPredicate | boundObject:
		return Shape{
			Where: "predicate_key = ? AND object_key = ? AND flavor = ?",
			Args:  []any{pkey, okey, flavor},
			Index: IndexPredicateObject,
		}, nil

	case boundContext | boundSubject | boundPredicate:
		return Shape{
			Where: "subject_key = ? AND predicate_key = ? AND context_key = ?",
			Args:  []any{skey, pkey, ckey},
			Index: IndexSubjectPredicate,
		}, nil

	case boundContext | boundSubject | boundObject:
		return Shape{
			Where: "subject_key = ? AND object_key = ? AND flavor = ? AND context_key = ?",
			Args:  []any{skey, okey, flavor, ckey},
			Index: IndexSubjectObject,
		}, nil

	case boundContext | boundPredicate | boundObject:
		return Shape{
			Where: "predicate_key = ? AND object_key = ? AND flavor = ? AND context_key = ?",
			Args:  []any{pkey, okey, flavor, ckey},
			Index: IndexPredicateObject,
		}, nil

	case boundSubject | boundPredicate | boundObject:
		return Shape{
			Where: "subject_key = ? AND predicate_key = ? AND object_key = ? AND flavor = ?",
			Args:  []any{skey, pkey, okey, flavor},
			Index: IndexSubjectPredicate,
		}, nil

	case boundContext | boundSubject | boundPredicate | boundObject:
		return Shape{
			Where: "subject_key = ? AND predicate_key = ? AND object_key = ? AND flavor = ? AND context_key = ?",
			Args:  []any{skey, pkey, okey, flavor, ckey},
			Index: IndexSubjectPredicate,
		}, nil
	}

	panic("pattern: bound mask out of range")
}
