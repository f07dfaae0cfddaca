package rdf

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// MaxTermLen is the storage bound for a canonical term form, in bytes.
// Terms whose canonical form exceeds it are rejected before any mutation.
const MaxTermLen = 1000

// Flavor distinguishes whether a quadruple's object is an RDF resource
// (IRI or blank node) or a literal value. The integer codes are persisted.
type Flavor int32

const (
	ResourceObject Flavor = 0
	LiteralObject  Flavor = 1
)

// String returns the flavor name for diagnostics.
func (f Flavor) String() string {
	switch f {
	case ResourceObject:
		return "resource"
	case LiteralObject:
		return "literal"
	default:
		return fmt.Sprintf("flavor(%d)", int32(f))
	}
}

// TermKind identifies which component of a quadruple a term occupies.
type TermKind int

const (
	KindContext TermKind = iota
	KindSubject
	KindPredicate
	KindObject
	KindLiteral
)

// String returns the kind name for diagnostics.
func (k TermKind) String() string {
	switch k {
	case KindContext:
		return "context"
	case KindSubject:
		return "subject"
	case KindPredicate:
		return "predicate"
	case KindObject:
		return "object"
	case KindLiteral:
		return "literal"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// TermTooLongError reports a term whose canonical form exceeds MaxTermLen.
// It is returned before any transaction is opened.
type TermTooLongError struct {
	Kind TermKind
	Len  int
}

// Error implements the error interface.
func (e *TermTooLongError) Error() string {
	return fmt.Sprintf("%s term is %d bytes, exceeds storage bound of %d", e.Kind, e.Len, MaxTermLen)
}

// IsTermTooLong reports whether err is (or wraps) a TermTooLongError.
func IsTermTooLong(err error) bool {
	var te *TermTooLongError
	return errors.As(err, &te)
}

// Term is a single quadruple component in canonical form.
type Term struct {
	Kind  TermKind
	Value string // canonical (NFC-normalized) string form
}

// NewTerm canonicalizes a raw term string and validates it against the
// storage bound. The returned Term always holds the canonical form.
func NewTerm(kind TermKind, value string) (Term, error) {
	c := Canonical(value)
	if len(c) > MaxTermLen {
		return Term{}, &TermTooLongError{Kind: kind, Len: len(c)}
	}
	return Term{Kind: kind, Value: c}, nil
}

// Quad is the persisted unit: a (context, subject, predicate, object)
// tuple plus the object's flavor. All four strings are canonical forms;
// construct quads via NewQuad or Canonicalize before handing them to the
// store.
type Quad struct {
	Context   string
	Subject   string
	Predicate string
	Object    string
	Flavor    Flavor
}

// NewQuad canonicalizes and validates all four terms. The object term is
// validated as a resource or literal according to flavor.
func NewQuad(context, subject, predicate, object string, flavor Flavor) (Quad, error) {
	q := Quad{
		Context:   context,
		Subject:   subject,
		Predicate: predicate,
		Object:    object,
		Flavor:    flavor,
	}
	return q.Canonicalize()
}

// Canonicalize returns a copy of q with every term NFC-normalized,
// rejecting any term whose canonical form exceeds the storage bound.
func (q Quad) Canonicalize() (Quad, error) {
	terms := []struct {
		kind TermKind
		val  string
		dst  *string
	}{
		{KindContext, q.Context, &q.Context},
		{KindSubject, q.Subject, &q.Subject},
		{KindPredicate, q.Predicate, &q.Predicate},
		{q.objectKind(), q.Object, &q.Object},
	}
	for _, t := range terms {
		term, err := NewTerm(t.kind, t.val)
		if err != nil {
			return Quad{}, err
		}
		*t.dst = term.Value
	}
	return q, nil
}

func (q Quad) objectKind() TermKind {
	if q.Flavor == LiteralObject {
		return KindLiteral
	}
	return KindObject
}

// NewBlankNode mints a fresh blank node label. UUIDv7 keeps labels
// unique across processes and roughly time-ordered.
func NewBlankNode() string {
	return "_:b" + uuid.Must(uuid.NewV7()).String()
}
