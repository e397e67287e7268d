// Package console drives a catalog through a line-based text menu.
//
// The console owns everything the catalog does not: prompting, re-prompting
// on malformed numbers, rendering records, clearing the screen and ending
// the session. Each menu action maps to exactly one catalog operation.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/JonMunkholm/bookstore/internal/catalog"
	"github.com/JonMunkholm/bookstore/internal/config"
	"github.com/JonMunkholm/bookstore/internal/logging"
	"github.com/google/uuid"
)

// ErrInvalidMenuChoice is reported when the selected option is not on the menu.
var ErrInvalidMenuChoice = errors.New("invalid menu choice")

// errExit is returned by the exit action to stop the loop.
var errExit = errors.New("exit requested")

const clearSequence = "\033[H\033[2J"

/* ----------------------------------------
	MENU
---------------------------------------- */

// MenuItem is one numbered entry of the main menu.
type MenuItem struct {
	Label  string
	Action func(ctx context.Context) error
}

// Console reads commands from in and writes results to out.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	catalog *catalog.Catalog
	cfg     config.ConsoleConfig
	menu    []MenuItem
}

// New creates a console bound to the given catalog.
func New(in io.Reader, out io.Writer, c *catalog.Catalog, cfg config.ConsoleConfig) *Console {
	con := &Console{
		in:      bufio.NewReader(in),
		out:     out,
		catalog: c,
		cfg:     cfg,
	}
	con.menu = con.buildMenu()
	return con
}

func (c *Console) buildMenu() []MenuItem {
	return []MenuItem{
		{Label: "Add a book", Action: c.addBook},
		{Label: "Delete a book", Action: c.removeBook},
		{Label: "Find a book", Action: c.findBook},
		{Label: "Show all books", Action: c.listBooks},
		{Label: "Find books in price range", Action: c.findInRange},
		{Label: "Exit", Action: c.exit},
	}
}

/* ----------------------------------------
	LOOP
---------------------------------------- */

// Run shows the menu and executes one action per iteration until the user
// exits, input ends, or ctx is cancelled. Exit and end of input return nil.
func (c *Console) Run(ctx context.Context) error {
	ctx = logging.WithSession(ctx, uuid.NewString())
	logger := logging.FromContext(ctx)
	logger.Info("session started", "strict", c.catalog.Strict())

	for {
		if err := ctx.Err(); err != nil {
			logger.Info("session cancelled", "error", err)
			return err
		}

		err := c.step(ctx)
		switch {
		case err == nil:
			continue
		case errors.Is(err, errExit):
			logger.Info("session ended", "books", c.catalog.Len())
			return nil
		case errors.Is(err, io.EOF):
			logger.Info("input closed", "books", c.catalog.Len())
			return nil
		default:
			return fmt.Errorf("console: %w", err)
		}
	}
}

// step runs a single menu iteration.
func (c *Console) step(ctx context.Context) error {
	c.clear()
	c.showMenu()

	line, err := c.readLine()
	if err != nil {
		return err
	}

	choice, ok := parseInt(line)
	if !ok {
		c.println("Error: please enter a valid option.")
		_, err := c.readLine()
		return err
	}

	if choice < 1 || choice > len(c.menu) {
		c.report(ctx, "menu", fmt.Errorf("option %d: %w", choice, ErrInvalidMenuChoice), "")
		return c.pause()
	}

	item := c.menu[choice-1]
	logging.FromContext(ctx).Debug("menu action", "choice", choice, "label", item.Label)

	c.clear()
	if err := item.Action(ctx); err != nil {
		return err
	}
	return c.pause()
}

func (c *Console) showMenu() {
	for i, item := range c.menu {
		c.printf("%d. %s\n", i+1, item.Label)
	}
	c.printf("Choose an option: ")
}

func (c *Console) pause() error {
	if !c.cfg.Pause {
		return nil
	}
	c.printf("Press Enter to continue...")
	_, err := c.readLine()
	return err
}

func (c *Console) clear() {
	if c.cfg.ClearScreen {
		c.printf(clearSequence)
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
