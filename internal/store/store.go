// Package store is the repository layer: CRUD over clients, products
// and orders, plus the aggregate report queries.
//
// Every operation is a single auto-committed statement. Storage errors
// propagate to the caller wrapped with context only; the store never
// retries and never maps them to domain errors. Lookups that find
// nothing return empty results, not errors.
package store

import "gorm.io/gorm"

// Store wraps the shared database handle. Construct it once at startup
// and pass it to everything that needs persistence.
type Store struct {
	db *gorm.DB
}

// New returns a Store over an opened, migrated database.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
