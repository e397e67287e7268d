package catalog

import "errors"

// Sentinel errors returned by catalog operations.
var (
	// ErrEmptyCatalog is returned when an operation runs on a catalog with zero records.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrNotFound is returned when no record has the requested title.
	ErrNotFound = errors.New("book not found")

	// ErrInvalidRange is returned when the minimum price exceeds the maximum.
	ErrInvalidRange = errors.New("invalid price range")

	// ErrNoMatch is returned when a non-empty catalog has no record in the price range.
	ErrNoMatch = errors.New("no books in price range")

	// ErrInvalidSortKey is returned for a sort selector outside Title, Author, Year.
	ErrInvalidSortKey = errors.New("invalid sort key")

	// ErrInvalidBook is returned by a strict catalog when a record fails validation.
	ErrInvalidBook = errors.New("invalid book")
)
