// Package repository is the data access layer of the recruitment site. It
// owns every read and write against the persistent store; controllers and the
// intake service never touch the ORM directly.
package repository

import (
	"errors"

	"satellite-recruit-backend/internal/database"
)

// ErrNotFound reports that a get-by-id or delete targeted a row that does not
// exist. Every other error from this package is a store failure.
var ErrNotFound = errors.New("record not found")

// Repository exposes typed CRUD operations over the database instance.
type Repository struct {
	db *database.DBinstanceStruct
}

// New creates a Repository bound to the given database instance.
func New(db *database.DBinstanceStruct) *Repository {
	return &Repository{db: db}
}
