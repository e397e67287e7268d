package console

import (
	"context"
	"errors"
	"strings"

	"github.com/JonMunkholm/bookstore/internal/catalog"
	"github.com/JonMunkholm/bookstore/internal/logging"
)

func (c *Console) addBook(ctx context.Context) error {
	title, err := c.promptLine("Enter book title: ")
	if err != nil {
		return err
	}
	author, err := c.promptLine("Enter author name: ")
	if err != nil {
		return err
	}
	year, err := c.promptInt("Enter year of publication: ",
		"Error: please enter an integer for the year.")
	if err != nil {
		return err
	}
	price, err := c.promptFloat("Enter book price: ",
		"Error: please enter a valid number for the price.", false)
	if err != nil {
		return err
	}

	b := catalog.Book{Title: title, Author: author, Year: year, Price: price}
	if err := c.catalog.Add(b); err != nil {
		c.report(ctx, "add", err, invalidDetail(err))
		return nil
	}

	logging.WithFields(ctx, "title", title).Debug("book added", "books", c.catalog.Len())
	c.println("Book added successfully!")
	return nil
}

func (c *Console) removeBook(ctx context.Context) error {
	title, err := c.promptLine("Enter the title of the book to delete: ")
	if err != nil {
		return err
	}

	if err := c.catalog.Remove(title); err != nil {
		c.report(ctx, "remove", err, title)
		return nil
	}

	logging.WithFields(ctx, "title", title).Info("book removed", "books", c.catalog.Len())
	c.println("Book deleted successfully!")
	return nil
}

func (c *Console) findBook(ctx context.Context) error {
	title, err := c.promptLine("Enter the title of the book to find: ")
	if err != nil {
		return err
	}

	b, err := c.catalog.Find(title)
	if err != nil {
		c.report(ctx, "find", err, title)
		return nil
	}

	c.printFound(b)
	return nil
}

func (c *Console) listBooks(ctx context.Context) error {
	c.println("Sort by: 1. Title 2. Author 3. Year")
	n, err := c.promptInt("Choose an option: ", "Error: please enter a valid option.")
	if err != nil {
		return err
	}

	key, err := catalog.ParseSortKey(n)
	if err != nil {
		c.report(ctx, "list", err, "")
		return nil
	}

	books, err := c.catalog.List(key)
	if err != nil {
		c.report(ctx, "list", err, "")
		return nil
	}

	logging.FromContext(ctx).Debug("listing books", "sort", key.String(), "books", len(books))
	c.println("")
	c.println("List of all books:")
	c.printBooks(books)
	return nil
}

func (c *Console) findInRange(ctx context.Context) error {
	minPrice, err := c.promptFloat("Enter minimum price: ",
		"Error: please enter a valid non-negative number for the minimum price.", true)
	if err != nil {
		return err
	}
	maxPrice, err := c.promptFloat("Enter maximum price: ",
		"Error: please enter a valid non-negative number for the maximum price.", true)
	if err != nil {
		return err
	}

	books, err := c.catalog.FindInRange(minPrice, maxPrice)
	if err == nil || errors.Is(err, catalog.ErrNoMatch) {
		c.printf("Books in price range %s - %s:\n", formatPrice(minPrice), formatPrice(maxPrice))
	}
	if err != nil {
		c.report(ctx, "range", err, "")
		return nil
	}

	c.printBooks(books)
	return nil
}

func (c *Console) exit(context.Context) error {
	c.println("Exiting program...")
	return errExit
}

// invalidDetail strips the sentinel prefix from a validation error.
func invalidDetail(err error) string {
	return strings.TrimPrefix(err.Error(), catalog.ErrInvalidBook.Error()+": ")
}
