package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quadrel/quadrel/internal/rdf"
)

// Insert writes a single quadruple. The id is a deterministic hash of the
// quadruple's canonical form, and the insert is expressed as
// ON CONFLICT(id) DO NOTHING, so re-inserting an existing quadruple is a
// silent no-op.
//
// Terms are canonicalized and length-validated before the transaction
// opens; an oversized term never reaches the engine.
func (s *Store) Insert(ctx context.Context, q rdf.Quad) error {
	q, err := q.Canonicalize()
	if err != nil {
		return err
	}

	ctx, cancel := opContext(ctx)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert quadruple: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	if err := insertQuad(ctx, tx, q); err != nil {
		return fmt.Errorf("insert quadruple: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert quadruple: commit: %w", err)
	}

	return nil
}

// MergeGraph inserts every quadruple in the batch under the shared graph
// context, inside one transaction: readers never observe a partially
// applied batch. Duplicate members collapse onto the same id and count
// once. Terms are validated before the transaction opens.
func (s *Store) MergeGraph(ctx context.Context, quads []rdf.Quad, graph string) error {
	graphTerm, err := rdf.NewTerm(rdf.KindContext, graph)
	if err != nil {
		return err
	}

	batch := make([]rdf.Quad, 0, len(quads))
	for _, q := range quads {
		q.Context = graphTerm.Value
		cq, err := q.Canonicalize()
		if err != nil {
			return err
		}
		batch = append(batch, cq)
	}

	ctx, cancel := opContext(ctx)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("merge graph: begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, q := range batch {
		if err := insertQuad(ctx, tx, q); err != nil {
			return fmt.Errorf("merge graph: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("merge graph: commit: %w", err)
	}

	return nil
}

// insertQuad executes the idempotent insert for one canonicalized quadruple
// inside an open transaction.
func insertQuad(ctx context.Context, tx *sql.Tx, q rdf.Quad) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO quadruples
		(id, flavor, context, context_key, subject, subject_key, predicate, predicate_key, object, object_key)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		int64(rdf.QuadID(q)),
		int32(q.Flavor),
		q.Context, int64(rdf.Key(q.Context)),
		q.Subject, int64(rdf.Key(q.Subject)),
		q.Predicate, int64(rdf.Key(q.Predicate)),
		q.Object, int64(rdf.Key(q.Object)),
	)
	return err
}

// DeleteByID removes the quadruple with the exact identity, if present.
// Returns the number of rows removed (0 or 1).
func (s *Store) DeleteByID(ctx context.Context, id uint64) (int64, error) {
	return s.deleteWhere(ctx, "delete by id", "id = ?", int64(id))
}

// DeleteByComponent removes every quadruple whose indexed key matches the
// given term. KindObject and KindLiteral are distinct operations: each
// filters by its own flavor, so deleting resources never touches literals
// with the same string form. Returns the number of rows removed.
func (s *Store) DeleteByComponent(ctx context.Context, kind rdf.TermKind, term string) (int64, error) {
	key := int64(rdf.TermKey(term))

	switch kind {
	case rdf.KindContext:
		return s.deleteWhere(ctx, "delete by context", "context_key = ?", key)
	case rdf.KindSubject:
		return s.deleteWhere(ctx, "delete by subject", "subject_key = ?", key)
	case rdf.KindPredicate:
		return s.deleteWhere(ctx, "delete by predicate", "predicate_key = ?", key)
	case rdf.KindObject:
		return s.deleteWhere(ctx, "delete by object", "object_key = ? AND flavor = ?", key, int64(rdf.ResourceObject))
	case rdf.KindLiteral:
		return s.deleteWhere(ctx, "delete by literal", "object_key = ? AND flavor = ?", key, int64(rdf.LiteralObject))
	default:
		return 0, fmt.Errorf("delete by component: unknown component %v", kind)
	}
}

// Clear removes every quadruple. Returns the number of rows removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("clear: begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "DELETE FROM quadruples")
	if err != nil {
		return 0, fmt.Errorf("clear: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear: rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("clear: commit: %w", err)
	}

	return n, nil
}

// deleteWhere runs one transactional delete with a placeholder-only WHERE
// fragment. Absent matches are a no-op, not an error.
func (s *Store) deleteWhere(ctx context.Context, op, where string, args ...any) (int64, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: begin tx: %w", op, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "DELETE FROM quadruples WHERE "+where, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: rows affected: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit: %w", op, err)
	}

	return n, nil
}
