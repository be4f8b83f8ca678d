package store

import "errors"

// ErrNotFound keeps store-level 404s consistent across the Postgres and
// in-memory implementations. Services translate it into a domain not-found
// error with an entity-specific message.
var ErrNotFound = errors.New("document not found")
