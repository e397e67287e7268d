package console

import (
	"strconv"

	"github.com/JonMunkholm/bookstore/internal/catalog"
)

const separator = "-------------------------------"

// formatPrice prints the shortest decimal that round-trips, without exponent.
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// printBook writes one listing entry followed by a separator line.
func (c *Console) printBook(b catalog.Book) {
	c.printf("Title: %s\nAuthor: %s\nYear: %d\nPrice: %s\n%s\n",
		b.Title, b.Author, b.Year, formatPrice(b.Price), separator)
}

func (c *Console) printBooks(books []catalog.Book) {
	for _, b := range books {
		c.printBook(b)
	}
}

// printFound writes a single lookup result with the configured currency.
func (c *Console) printFound(b catalog.Book) {
	c.println("Book found:")
	c.printf("Title: %s\nAuthor: %s\nYear: %d\nPrice: %s %s\n",
		b.Title, b.Author, b.Year, formatPrice(b.Price), c.cfg.Currency)
}
