package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenCreatesSchema(t *testing.T) {
	s := createTestStore(t)

	// The table and all seven indexes must exist.
	var tables int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type = 'table' AND name = 'quadruples'
	`).Scan(&tables)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if tables != 1 {
		t.Errorf("quadruples table count = %d, want 1", tables)
	}

	indexes := []string{
		"idx_quadruples_context",
		"idx_quadruples_subject",
		"idx_quadruples_predicate",
		"idx_quadruples_object",
		"idx_quadruples_subject_predicate",
		"idx_quadruples_subject_object",
		"idx_quadruples_predicate_object",
	}
	for _, name := range indexes {
		var n int
		err := s.db.QueryRow(`
			SELECT COUNT(*) FROM sqlite_master
			WHERE type = 'index' AND name = ?
		`, name).Scan(&n)
		if err != nil {
			t.Fatalf("query index %s: %v", name, err)
		}
		if n != 1 {
			t.Errorf("index %s count = %d, want 1", name, n)
		}
	}
}

func TestOpenIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("first Open() failed: %v", err)
	}
	mustInsert(t, s1, resourceQuad("urn:g1", "urn:a", "urn:b", "urn:c"))
	s1.Close()

	// Reopening an already-provisioned database must not fail or lose data.
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer s2.Close()

	if n := countRows(t, s2); n != 1 {
		t.Errorf("row count after reopen = %d, want 1", n)
	}
}

func TestOpenUnreachablePath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "nested", "test.db"))
	if err == nil {
		t.Fatal("Open() with unreachable path succeeded, want error")
	}
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("error = %v, want ErrUnreachable", err)
	}
	if errors.Is(err, ErrSchemaBootstrap) {
		t.Error("unreachable engine must not report as schema failure")
	}
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.db")
	if err := os.WriteFile(path, []byte("this is not a sqlite database, promise"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	if err == nil {
		t.Fatal("Open() on corrupt file succeeded, want error")
	}
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("error = %v, want ErrUnreachable", err)
	}
}

func TestOpenPragmas(t *testing.T) {
	s := createTestStore(t)

	if err := s.verifyPragma("journal_mode", "wal"); err != nil {
		t.Error(err)
	}
	if err := s.verifyPragma("synchronous", "1"); err != nil { // NORMAL
		t.Error(err)
	}
	if err := s.verifyPragma("busy_timeout", "5000"); err != nil {
		t.Error(err)
	}
}

func TestCloseNilSafe(t *testing.T) {
	var s Store
	if err := s.Close(); err != nil {
		t.Errorf("Close() on zero store = %v, want nil", err)
	}
}
