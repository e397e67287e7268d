// Package catalog provides the in-memory book catalog.
//
// The package holds all domain logic independent of any console or
// transport layer. A [Catalog] is an ordered sequence of [Book] values kept
// in insertion order. Listing returns a sorted copy and never reorders the
// stored sequence.
//
// # Operations
//
//   - [Catalog.Add] appends a record.
//   - [Catalog.Remove] deletes the first record with an exact title match.
//   - [Catalog.Find] returns the first record with an exact title match.
//   - [Catalog.List] returns a stable, sorted copy by [SortKey].
//   - [Catalog.FindInRange] filters by an inclusive price range.
//
// # Error Handling
//
// Every failure wraps one of the sentinel errors in errors.go, so callers
// branch with errors.Is:
//
//	if _, err := c.Find(title); errors.Is(err, catalog.ErrNotFound) {
//	    // ...
//	}
//
// Empty-catalog checks always run before any search, so an empty catalog
// reports [ErrEmptyCatalog] rather than [ErrNotFound].
//
// # Validation
//
// By default the catalog is permissive and Add always succeeds. Setting
// [Options.Strict] rejects empty titles and negative or non-finite prices
// with [ErrInvalidBook].
package catalog
