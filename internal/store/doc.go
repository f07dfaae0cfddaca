// Package store is the SQLite backing layer for the quadruple store.
//
// It owns a single quadruples table plus seven supporting indexes, created
// idempotently at Open. Every quadruple's primary key is a deterministic
// hash of its canonical form, so inserts are naturally idempotent; every
// mutation runs inside one transaction with rollback on any failure, so a
// bulk merge is never observed half-applied.
//
// Retrieval goes through internal/pattern: a pattern's bound components
// compile to one of sixteen shapes, each aligned with one of the table's
// indexes.
//
// Concurrency is delegated entirely to SQLite: the store holds no
// in-process locks or caches, and each operation is a single transaction
// boundary executed under a bounded timeout.
package store
