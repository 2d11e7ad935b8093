// Package store persists tables into a SQLite database file.
//
// The store is backed by modernc.org/sqlite, a pure Go SQLite implementation,
// through database/sql. A Store owns exactly one connection for its lifetime.
//
// Tables are written with replace semantics: Replace drops any existing table
// of the same name and recreates it from the in-memory table's current column
// types, inside a single transaction. Nothing is appended or merged.
//
// Usage:
//
//	s, err := store.Open(ctx, "football_data.db")
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//
//	n, err := s.Replace(ctx, "receiving", table)
package store
