package catalog

import (
	"fmt"
	"math"
	"strings"
)

// Book is a single catalog entry. It has no identity beyond its title.
type Book struct {
	Title  string
	Author string
	Year   int
	Price  float64
}

// Validate reports every field that a strict catalog would reject.
// The returned error wraps ErrInvalidBook.
func (b Book) Validate() error {
	var problems []string

	if strings.TrimSpace(b.Title) == "" {
		problems = append(problems, "title is empty")
	}
	if math.IsNaN(b.Price) || math.IsInf(b.Price, 0) {
		problems = append(problems, fmt.Sprintf("price %v is not a finite number", b.Price))
	} else if b.Price < 0 {
		problems = append(problems, fmt.Sprintf("price %v is negative", b.Price))
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidBook, strings.Join(problems, "; "))
}
