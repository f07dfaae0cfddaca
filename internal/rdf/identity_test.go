package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyDeterminism(t *testing.T) {
	assert.Equal(t, Key("urn:a"), Key("urn:a"))
	assert.NotEqual(t, Key("urn:a"), Key("urn:b"))
}

func TestTermKeyNormalizesBeforeHashing(t *testing.T) {
	// Composed and decomposed spellings of the same grapheme must key
	// identically; the raw byte streams differ.
	composed := "urn:café"
	decomposed := "urn:café"
	require.NotEqual(t, composed, decomposed)

	assert.Equal(t, TermKey(composed), TermKey(decomposed))
	assert.NotEqual(t, Key(composed), Key(decomposed))
}

func TestQuadIDDeterminism(t *testing.T) {
	q := Quad{Context: "urn:g1", Subject: "urn:a", Predicate: "urn:b", Object: "urn:c", Flavor: ResourceObject}

	assert.Equal(t, QuadID(q), QuadID(q))
}

func TestQuadIDChangesWithEachTerm(t *testing.T) {
	base := Quad{Context: "urn:g1", Subject: "urn:a", Predicate: "urn:b", Object: "urn:c", Flavor: ResourceObject}

	variants := []Quad{
		{Context: "urn:g2", Subject: "urn:a", Predicate: "urn:b", Object: "urn:c", Flavor: ResourceObject},
		{Context: "urn:g1", Subject: "urn:x", Predicate: "urn:b", Object: "urn:c", Flavor: ResourceObject},
		{Context: "urn:g1", Subject: "urn:a", Predicate: "urn:x", Object: "urn:c", Flavor: ResourceObject},
		{Context: "urn:g1", Subject: "urn:a", Predicate: "urn:b", Object: "urn:x", Flavor: ResourceObject},
	}
	for _, v := range variants {
		assert.NotEqual(t, QuadID(base), QuadID(v), "%+v", v)
	}
}

// Flavor participates in identity: a resource object and a literal object
// with identical string forms are distinct rows.
func TestQuadIDFlavorSeparation(t *testing.T) {
	res := Quad{Context: "urn:g1", Subject: "urn:a", Predicate: "urn:b", Object: "urn:c", Flavor: ResourceObject}
	lit := res
	lit.Flavor = LiteralObject

	assert.NotEqual(t, QuadID(res), QuadID(lit))
}

// The null separator prevents adjacent terms from bleeding into each
// other: ("ab","") and ("a","b") must not hash identically.
func TestQuadIDSeparatorPreventsBoundaryAmbiguity(t *testing.T) {
	q1 := Quad{Context: "ab", Subject: "", Predicate: "p", Object: "o"}
	q2 := Quad{Context: "a", Subject: "b", Predicate: "p", Object: "o"}

	assert.NotEqual(t, QuadID(q1), QuadID(q2))
}

// Per-term keys are independent of the whole-quad id.
func TestKeyIndependentOfQuadID(t *testing.T) {
	q := Quad{Context: "urn:g1", Subject: "urn:a", Predicate: "urn:b", Object: "urn:c", Flavor: ResourceObject}

	assert.NotEqual(t, QuadID(q), Key(q.Subject))
	assert.NotEqual(t, QuadID(q), Key(q.Context))
}
