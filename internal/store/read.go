package store

import (
	"context"
	"fmt"

	"github.com/quadrel/quadrel/internal/pattern"
	"github.com/quadrel/quadrel/internal/rdf"
)

// Select returns every quadruple matching the pattern's bound components.
// The pattern compiles to one of sixteen canonical shapes; whenever the
// object dimension is bound the shape also filters by flavor, so resource
// and literal rows never contaminate each other's results.
//
// Results are ordered by id for determinism. Returns an empty slice (not
// nil) when nothing matches.
func (s *Store) Select(ctx context.Context, p pattern.Pattern) ([]rdf.Quad, error) {
	shape, err := pattern.Compile(p)
	if err != nil {
		return nil, err
	}

	ctx, cancel := opContext(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, shape.Query(), shape.Args...)
	if err != nil {
		return nil, fmt.Errorf("select quadruples: %w", err)
	}
	defer rows.Close()

	var quads []rdf.Quad
	for rows.Next() {
		var q rdf.Quad
		var flavor int32
		if err := rows.Scan(&flavor, &q.Context, &q.Subject, &q.Predicate, &q.Object); err != nil {
			return nil, fmt.Errorf("select quadruples: scan: %w", err)
		}
		q.Flavor = rdf.Flavor(flavor)
		quads = append(quads, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select quadruples: iterate: %w", err)
	}

	if quads == nil {
		quads = []rdf.Quad{}
	}

	return quads, nil
}

// Count returns the total number of stored quadruples.
func (s *Store) Count(ctx context.Context) (int64, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM quadruples").Scan(&n); err != nil {
		return 0, fmt.Errorf("count quadruples: %w", err)
	}
	return n, nil
}
