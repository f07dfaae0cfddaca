package rdf

import "github.com/cespare/xxhash/v2"

// Key computes the 64-bit identity of a single canonical term form.
// Deterministic and total; used for the per-term key columns.
func Key(canonical string) uint64 {
	return xxhash.Sum64String(canonical)
}

// TermKey canonicalizes a raw term string and returns its identity key.
// Callers binding query parameters from raw user input go through this;
// code already holding canonical forms uses Key directly.
func TermKey(raw string) uint64 {
	return Key(Canonical(raw))
}

// QuadID computes the 64-bit identity of a whole quadruple from its four
// canonical terms and its flavor. The flavor tag is hashed first and a
// null byte separates every component, so no concatenation of differing
// terms can produce the same byte stream.
//
// Two logically identical quadruples always produce the same id, which is
// what makes insertion idempotent.
func QuadID(q Quad) uint64 {
	var h xxhash.Digest
	h.Reset()
	if q.Flavor == LiteralObject {
		h.WriteString("L")
	} else {
		h.WriteString("R")
	}
	for _, s := range []string{q.Context, q.Subject, q.Predicate, q.Object} {
		h.Write([]byte{0x00})
		h.WriteString(s)
	}
	return h.Sum64()
}
