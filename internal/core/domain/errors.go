package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID indicates an identifier that could not be decoded.
	// Returned for malformed encoded ids arriving from outside.
	ErrInvalidID = errors.New("invalid id")

	// ErrMissingCatalog indicates a required export catalog is absent.
	// The item catalog and the recipe directory are required; the
	// pipeline aborts without them.
	ErrMissingCatalog = errors.New("missing catalog")

	// ErrNotBuilt indicates the dataset has not been built yet.
	// Queries are impossible until a pipeline run has published.
	ErrNotBuilt = errors.New("dataset not built")
)
