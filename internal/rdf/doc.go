// Package rdf defines the term model for the quadruple store.
//
// A quadruple is a (context, subject, predicate, object) tuple where the
// object is either an RDF resource (IRI or blank node) or a literal value.
// That distinction is the quadruple's flavor and participates in identity:
// a resource and a literal with the same string form are distinct rows.
//
// All terms are stored in canonical form (NFC-normalized strings). Identity
// keys are 64-bit xxHash values over canonical forms:
//   - Key/TermKey: identity of a single term, used for indexed lookup
//   - QuadID: identity of a whole quadruple, used as the primary key
//
// Hash collisions are an accepted risk of this layer. Two distinct inputs
// that collide deduplicate silently; there is no detection or resolution.
package rdf
