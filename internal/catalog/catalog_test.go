package catalog

import (
	"errors"
	"math"
	"testing"
)

func titles(books []Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

func equalTitles(t *testing.T, got []Book, want ...string) {
	t.Helper()
	gotTitles := titles(got)
	if len(gotTitles) != len(want) {
		t.Fatalf("titles = %q, want %q", gotTitles, want)
	}
	for i := range want {
		if gotTitles[i] != want[i] {
			t.Errorf("titles = %q, want %q", gotTitles, want)
			return
		}
	}
}

// newDuneCatalog returns the two-book catalog used across scenarios.
func newDuneCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := New(Options{})
	mustAdd(t, c, Book{Title: "Dune", Author: "Herbert", Year: 1965, Price: 12.5})
	mustAdd(t, c, Book{Title: "1984", Author: "Orwell", Year: 1949, Price: 9.99})
	return c
}

func mustAdd(t *testing.T, c *Catalog, b Book) {
	t.Helper()
	if err := c.Add(b); err != nil {
		t.Fatalf("Add(%q) error = %v", b.Title, err)
	}
}

// ============================================================================
// Add
// ============================================================================

func TestAdd_AppendsInInsertionOrder(t *testing.T) {
	c := New(Options{})
	mustAdd(t, c, Book{Title: "B"})
	mustAdd(t, c, Book{Title: "A"})
	mustAdd(t, c, Book{Title: "C"})

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	equalTitles(t, c.All(), "B", "A", "C")
}

func TestAdd_PermissiveAcceptsAnything(t *testing.T) {
	var c Catalog

	books := []Book{
		{Title: "", Author: "", Year: -500, Price: -1},
		{Title: "NaN", Price: math.NaN()},
		{Title: "Inf", Price: math.Inf(1)},
	}
	for _, b := range books {
		if err := c.Add(b); err != nil {
			t.Errorf("Add(%+v) error = %v, want nil", b, err)
		}
	}
	if c.Len() != len(books) {
		t.Errorf("Len() = %d, want %d", c.Len(), len(books))
	}
}

func TestAdd_Strict(t *testing.T) {
	tests := []struct {
		name    string
		book    Book
		wantErr bool
	}{
		{name: "valid", book: Book{Title: "Dune", Author: "Herbert", Year: 1965, Price: 12.5}},
		{name: "free book", book: Book{Title: "Free", Price: 0}},
		{name: "empty title", book: Book{Title: "", Price: 1}, wantErr: true},
		{name: "whitespace title", book: Book{Title: "   ", Price: 1}, wantErr: true},
		{name: "negative price", book: Book{Title: "X", Price: -0.01}, wantErr: true},
		{name: "NaN price", book: Book{Title: "X", Price: math.NaN()}, wantErr: true},
		{name: "infinite price", book: Book{Title: "X", Price: math.Inf(1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(Options{Strict: true})
			err := c.Add(tt.book)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidBook) {
					t.Fatalf("Add() error = %v, want ErrInvalidBook", err)
				}
				if c.Len() != 0 {
					t.Errorf("Len() = %d after rejected add, want 0", c.Len())
				}
				return
			}
			if err != nil {
				t.Fatalf("Add() error = %v", err)
			}
			if c.Len() != 1 {
				t.Errorf("Len() = %d, want 1", c.Len())
			}
		})
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	c := newDuneCatalog(t)

	all := c.All()
	all[0].Title = "mutated"

	if got, _ := c.Find("Dune"); got.Title != "Dune" {
		t.Errorf("stored record changed through All() copy: %+v", got)
	}
}

// ============================================================================
// Remove / Find
// ============================================================================

func TestRemove(t *testing.T) {
	c := newDuneCatalog(t)

	if err := c.Remove("Dune"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	if _, err := c.Find("Dune"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find() after remove error = %v, want ErrNotFound", err)
	}
	equalTitles(t, c.All(), "1984")
}

func TestRemove_NotFound(t *testing.T) {
	c := newDuneCatalog(t)

	err := c.Remove("Nonexistent")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Remove() error = %v, want ErrNotFound", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestRemove_OnlyFirstDuplicate(t *testing.T) {
	c := New(Options{})
	mustAdd(t, c, Book{Title: "Twin", Author: "first"})
	mustAdd(t, c, Book{Title: "Other"})
	mustAdd(t, c, Book{Title: "Twin", Author: "second"})

	if err := c.Remove("Twin"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	all := c.All()
	equalTitles(t, all, "Other", "Twin")
	if all[1].Author != "second" {
		t.Errorf("remaining Twin author = %q, want %q", all[1].Author, "second")
	}
}

func TestRemove_CaseSensitive(t *testing.T) {
	c := newDuneCatalog(t)

	if err := c.Remove("dune"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove(\"dune\") error = %v, want ErrNotFound", err)
	}
}

func TestFind(t *testing.T) {
	c := newDuneCatalog(t)

	got, err := c.Find("1984")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	want := Book{Title: "1984", Author: "Orwell", Year: 1949, Price: 9.99}
	if got != want {
		t.Errorf("Find() = %+v, want %+v", got, want)
	}
}

func TestFind_FirstDuplicate(t *testing.T) {
	c := New(Options{})
	mustAdd(t, c, Book{Title: "Twin", Year: 1})
	mustAdd(t, c, Book{Title: "Twin", Year: 2})

	got, err := c.Find("Twin")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if got.Year != 1 {
		t.Errorf("Find().Year = %d, want 1", got.Year)
	}
}

func TestEmptyCatalog(t *testing.T) {
	var c Catalog

	if err := c.Remove("Dune"); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("Remove() error = %v, want ErrEmptyCatalog", err)
	}
	if _, err := c.Find("Dune"); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("Find() error = %v, want ErrEmptyCatalog", err)
	}
	if _, err := c.List(SortByTitle); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("List() error = %v, want ErrEmptyCatalog", err)
	}
	// Empty is checked before the range itself.
	if _, err := c.FindInRange(10, 1); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("FindInRange() error = %v, want ErrEmptyCatalog", err)
	}
}

// ============================================================================
// List
// ============================================================================

func TestList_Scenario(t *testing.T) {
	c := newDuneCatalog(t)

	byTitle, err := c.List(SortByTitle)
	if err != nil {
		t.Fatalf("List(Title) error = %v", err)
	}
	equalTitles(t, byTitle, "1984", "Dune")

	byYear, err := c.List(SortByYear)
	if err != nil {
		t.Fatalf("List(Year) error = %v", err)
	}
	equalTitles(t, byYear, "1984", "Dune")

	// Listing must not reorder storage.
	equalTitles(t, c.All(), "Dune", "1984")
}

func TestList_Stable(t *testing.T) {
	c := New(Options{})
	mustAdd(t, c, Book{Title: "c", Author: "Same", Year: 2000})
	mustAdd(t, c, Book{Title: "a", Author: "Other", Year: 1990})
	mustAdd(t, c, Book{Title: "b", Author: "Same", Year: 2000})
	mustAdd(t, c, Book{Title: "d", Author: "Same", Year: 1990})

	tests := []struct {
		key  SortKey
		want []string
	}{
		{key: SortByTitle, want: []string{"a", "b", "c", "d"}},
		{key: SortByAuthor, want: []string{"a", "c", "b", "d"}},
		{key: SortByYear, want: []string{"a", "d", "c", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			got, err := c.List(tt.key)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			equalTitles(t, got, tt.want...)
		})
	}
}

func TestList_NoLossOrDuplication(t *testing.T) {
	c := New(Options{})
	const n = 50
	for i := 0; i < n; i++ {
		mustAdd(t, c, Book{Title: string(rune('A' + i%26)), Author: "x", Year: n - i})
	}

	for _, key := range []SortKey{SortByTitle, SortByAuthor, SortByYear} {
		got, err := c.List(key)
		if err != nil {
			t.Fatalf("List(%s) error = %v", key, err)
		}
		if len(got) != n {
			t.Errorf("List(%s) len = %d, want %d", key, len(got), n)
		}
	}
}

func TestList_InvalidKey(t *testing.T) {
	c := newDuneCatalog(t)

	for _, key := range []SortKey{0, 4, -1} {
		if _, err := c.List(key); !errors.Is(err, ErrInvalidSortKey) {
			t.Errorf("List(%d) error = %v, want ErrInvalidSortKey", key, err)
		}
	}
}

// ============================================================================
// FindInRange
// ============================================================================

func TestFindInRange(t *testing.T) {
	c := New(Options{})
	mustAdd(t, c, Book{Title: "cheap", Price: 5})
	mustAdd(t, c, Book{Title: "mid", Price: 10})
	mustAdd(t, c, Book{Title: "dear", Price: 20})
	mustAdd(t, c, Book{Title: "mid2", Price: 15})

	tests := []struct {
		name    string
		min     float64
		max     float64
		want    []string
		wantErr error
	}{
		{name: "inclusive bounds", min: 10, max: 20, want: []string{"mid", "dear", "mid2"}},
		{name: "single point", min: 5, max: 5, want: []string{"cheap"}},
		{name: "everything", min: 0, max: 100, want: []string{"cheap", "mid", "dear", "mid2"}},
		{name: "no match", min: 21, max: 30, wantErr: ErrNoMatch},
		{name: "inverted", min: 20, max: 10, wantErr: ErrInvalidRange},
		{name: "NaN bound", min: math.NaN(), max: 10, wantErr: ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.FindInRange(tt.min, tt.max)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FindInRange() error = %v, want %v", err, tt.wantErr)
				}
				if got != nil {
					t.Errorf("FindInRange() = %v, want nil", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindInRange() error = %v", err)
			}
			equalTitles(t, got, tt.want...)
		})
	}

	if c.Len() != 4 {
		t.Errorf("Len() = %d after range queries, want 4", c.Len())
	}
}
