// Package pattern compiles quad-pattern queries into parameterized SQL
// filters over the quadruples table.
//
// A pattern binds any combination of {context, subject, predicate} plus at
// most one of {object, literal}. Every combination maps to exactly one of
// sixteen canonical shapes, each aligned with one of the table's composite
// indexes so that no shape with at least one bound component performs a
// full scan. The fully unbound shape is the explicit return-everything case.
//
// Values are never interpolated into SQL text: every shape carries a
// placeholder-only WHERE fragment and a matching argument list.
package pattern
