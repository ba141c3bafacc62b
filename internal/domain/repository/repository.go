// Package repository declares the persistence contracts the application
// layer depends on. The original generic predicate-object queries are
// replaced by a small set of named, strongly-typed methods per entity.
package repository

import "errors"

var (
	// ErrNotFound is returned by any repository method whose target row
	// does not exist. Services translate it into the entity-specific error.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert or update violates a unique
	// constraint (username/email) despite the service-level pre-check.
	ErrDuplicate = errors.New("duplicate key")
)
