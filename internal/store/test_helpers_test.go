package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/quadrel/quadrel/internal/pattern"
	"github.com/quadrel/quadrel/internal/rdf"
)

// createTestStore creates a fresh on-disk store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// resourceQuad builds a resource-flavored test quadruple.
func resourceQuad(context, subject, predicate, object string) rdf.Quad {
	return rdf.Quad{
		Context:   context,
		Subject:   subject,
		Predicate: predicate,
		Object:    object,
		Flavor:    rdf.ResourceObject,
	}
}

// literalQuad builds a literal-flavored test quadruple.
func literalQuad(context, subject, predicate, object string) rdf.Quad {
	q := resourceQuad(context, subject, predicate, object)
	q.Flavor = rdf.LiteralObject
	return q
}

// mustInsert inserts a quadruple or fails the test.
func mustInsert(t *testing.T, s *Store, q rdf.Quad) {
	t.Helper()
	if err := s.Insert(context.Background(), q); err != nil {
		t.Fatalf("Insert(%+v) failed: %v", q, err)
	}
}

// mustSelect runs a pattern query or fails the test.
func mustSelect(t *testing.T, s *Store, p pattern.Pattern) []rdf.Quad {
	t.Helper()
	quads, err := s.Select(context.Background(), p)
	if err != nil {
		t.Fatalf("Select(%+v) failed: %v", p, err)
	}
	return quads
}

// patternContext builds a context-only pattern.
func patternContext(c string) pattern.Pattern {
	return pattern.Pattern{Context: pattern.Bind(c)}
}

// countRows returns the current table size or fails the test.
func countRows(t *testing.T, s *Store) int64 {
	t.Helper()
	n, err := s.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	return n
}
