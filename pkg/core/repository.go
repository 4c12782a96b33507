package core

import "context"

// Repository defines the contract for persisting a whole collection.
// Adhering to this interface keeps the managers independent of the
// underlying document format and location.
type Repository[T any] interface {
	// Load reads the full collection. A missing, corrupted or malformed
	// document is reported with an error wrapping ErrPersistence.
	Load(ctx context.Context) ([]T, error)

	// Save overwrites the document with the given collection.
	Save(ctx context.Context, items []T) error
}

// Watchable defines an interface for repositories that report changes made
// to the persisted document by other processes or editors.
type Watchable interface {
	Watch(ctx context.Context) (<-chan Event, error)
}
