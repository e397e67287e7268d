package catalog

import (
	"fmt"
	"math"
	"slices"
)

// Options configures a Catalog.
type Options struct {
	// Strict makes Add reject records that fail Book.Validate.
	Strict bool
}

// Catalog is an ordered, in-memory collection of books.
// The zero value is an empty, permissive catalog ready to use.
// A Catalog is not safe for concurrent use.
type Catalog struct {
	books  []Book
	strict bool
}

// New creates an empty catalog.
func New(opts Options) *Catalog {
	return &Catalog{strict: opts.Strict}
}

// Strict reports whether Add validates records.
func (c *Catalog) Strict() bool {
	return c.strict
}

// Len returns the number of stored records.
func (c *Catalog) Len() int {
	return len(c.books)
}

// All returns a copy of the stored records in insertion order.
func (c *Catalog) All() []Book {
	return slices.Clone(c.books)
}

// Add appends b to the end of the catalog.
// It only fails when the catalog is strict and b does not validate.
func (c *Catalog) Add(b Book) error {
	if c.strict {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	c.books = append(c.books, b)
	return nil
}

// Remove deletes the first record whose title equals title exactly.
// At most one record is removed; the order of the rest is preserved.
func (c *Catalog) Remove(title string) error {
	if len(c.books) == 0 {
		return fmt.Errorf("remove %q: %w", title, ErrEmptyCatalog)
	}

	i := c.index(title)
	if i < 0 {
		return fmt.Errorf("remove %q: %w", title, ErrNotFound)
	}

	c.books = slices.Delete(c.books, i, i+1)
	return nil
}

// Find returns the first record whose title equals title exactly.
func (c *Catalog) Find(title string) (Book, error) {
	if len(c.books) == 0 {
		return Book{}, fmt.Errorf("find %q: %w", title, ErrEmptyCatalog)
	}

	i := c.index(title)
	if i < 0 {
		return Book{}, fmt.Errorf("find %q: %w", title, ErrNotFound)
	}
	return c.books[i], nil
}

// List returns a copy of the catalog sorted ascending by key.
// The sort is stable, so records with equal keys keep insertion order.
// The stored order is not changed.
func (c *Catalog) List(key SortKey) ([]Book, error) {
	if !key.Valid() {
		return nil, fmt.Errorf("list by %s: %w", key, ErrInvalidSortKey)
	}
	if len(c.books) == 0 {
		return nil, fmt.Errorf("list by %s: %w", key, ErrEmptyCatalog)
	}

	sorted := slices.Clone(c.books)
	slices.SortStableFunc(sorted, key.compare)
	return sorted, nil
}

// FindInRange returns every record with minPrice <= Price <= maxPrice,
// in insertion order.
func (c *Catalog) FindInRange(minPrice, maxPrice float64) ([]Book, error) {
	if len(c.books) == 0 {
		return nil, fmt.Errorf("price range [%v, %v]: %w", minPrice, maxPrice, ErrEmptyCatalog)
	}
	if math.IsNaN(minPrice) || math.IsNaN(maxPrice) || minPrice > maxPrice {
		return nil, fmt.Errorf("price range [%v, %v]: %w", minPrice, maxPrice, ErrInvalidRange)
	}

	var matches []Book
	for _, b := range c.books {
		if b.Price >= minPrice && b.Price <= maxPrice {
			matches = append(matches, b)
		}
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("price range [%v, %v]: %w", minPrice, maxPrice, ErrNoMatch)
	}
	return matches, nil
}

// index returns the position of the first record titled title, or -1.
func (c *Catalog) index(title string) int {
	return slices.IndexFunc(c.books, func(b Book) bool {
		return b.Title == title
	})
}
