package pattern

import "errors"

// ErrConflictingObjectBinding is returned when a pattern binds both the
// resource-object and literal-object facets at once. The two are mutually
// exclusive views of the same column family, so this is a caller contract
// violation, not a retryable condition.
var ErrConflictingObjectBinding = errors.New("pattern binds both object and literal")

// Pattern describes a quad-pattern query: any combination of bound and
// unbound components. A nil field is unbound; a non-nil field is an
// equality constraint on that component's raw term string (canonicalized
// during compilation).
//
// At most one of Object and Literal may be bound. Binding Object constrains
// the query to resource-flavored rows; binding Literal to literal-flavored
// rows; binding neither leaves the object dimension, and therefore the
// flavor, unconstrained.
type Pattern struct {
	Context   *string
	Subject   *string
	Predicate *string
	Object    *string
	Literal   *string
}

// Bind is a convenience for building patterns from literals.
func Bind(term string) *string {
	return &term
}

// Validate checks the pattern's binding contract. It is called by Compile;
// callers only need it to fail fast before reaching the store.
func (p Pattern) Validate() error {
	if p.Object != nil && p.Literal != nil {
		return ErrConflictingObjectBinding
	}
	return nil
}
