package catalog

import (
	"cmp"
	"fmt"
	"strings"
)

// SortKey selects the field a listing is ordered by.
// Values match the 1-based menu index.
type SortKey int

const (
	SortByTitle  SortKey = 1
	SortByAuthor SortKey = 2
	SortByYear   SortKey = 3
)

// ParseSortKey maps a menu index to a SortKey.
// Anything outside 1..3 returns ErrInvalidSortKey.
func ParseSortKey(n int) (SortKey, error) {
	k := SortKey(n)
	if !k.Valid() {
		return 0, fmt.Errorf("sort option %d: %w", n, ErrInvalidSortKey)
	}
	return k, nil
}

// Valid reports whether k is one of the defined keys.
func (k SortKey) Valid() bool {
	return k >= SortByTitle && k <= SortByYear
}

func (k SortKey) String() string {
	switch k {
	case SortByTitle:
		return "title"
	case SortByAuthor:
		return "author"
	case SortByYear:
		return "year"
	default:
		return fmt.Sprintf("SortKey(%d)", int(k))
	}
}

// compare orders a before b by the key's field.
// Strings compare bytewise.
func (k SortKey) compare(a, b Book) int {
	switch k {
	case SortByAuthor:
		return strings.Compare(a.Author, b.Author)
	case SortByYear:
		return cmp.Compare(a.Year, b.Year)
	default:
		return strings.Compare(a.Title, b.Title)
	}
}
