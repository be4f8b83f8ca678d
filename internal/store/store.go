// Package store provides a generic per-collection document repository.
// Entities are stored as JSON documents keyed by a repository-assigned id;
// updates are merge-patches (supplied fields overwrite, absent fields are
// left untouched).
package store

import "context"

// Document is a raw stored document: its id plus the JSON-encoded body.
type Document struct {
	ID   string
	Data []byte
}

// Store is interface-driven so services stay testable and the Postgres
// implementation can be swapped for the in-memory one without rewiring
// business code.
type Store interface {
	// Create persists data under a fresh repository-assigned id and
	// returns that id.
	Create(ctx context.Context, collection string, data any) (string, error)

	// Put upserts a document under a caller-chosen id. Used for records
	// keyed by an external identity (role claims keyed by subject id).
	Put(ctx context.Context, collection, id string, data any) error

	// GetAll returns every document in the collection, ordered by id.
	GetAll(ctx context.Context, collection string) ([]Document, error)

	// GetByID returns the document with the given id, or ErrNotFound.
	GetByID(ctx context.Context, collection, id string) (Document, error)

	// Update merge-patches the stored document with the supplied fields.
	// Returns ErrNotFound when no document exists under the id.
	Update(ctx context.Context, collection, id string, patch any) error

	// Delete removes the document. Deleting a nonexistent id is not an
	// error.
	Delete(ctx context.Context, collection, id string) error
}
