package rdf

import "golang.org/x/text/unicode/norm"

// Canonical returns the canonical string form of a raw term: NFC
// normalization, so that visually identical terms hash and compare
// identically regardless of the composition the source data used.
//
// Canonical forms are the only strings that feed the identity functions
// and the only strings persisted to storage.
func Canonical(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
