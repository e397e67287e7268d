package console

// messages.go maps catalog and console errors to the text shown to the user.
//
// Each message carries a code that is attached to the log record, so a
// printed line can be matched to its log entry:
//
//	CAT001 - Empty catalog: the operation needs at least one book
//	CAT002 - Not found: no book has the requested title
//	CAT003 - Invalid range: minimum price is above the maximum
//	CAT004 - No match: nothing is priced inside the range
//	CAT005 - Invalid sort key: sort option outside 1..3
//	CAT006 - Invalid book: strict catalog rejected the record
//	CON001 - Invalid menu choice: option not on the menu
//	ERR000 - Anything else

import (
	"context"
	"errors"
	"strings"

	"github.com/JonMunkholm/bookstore/internal/catalog"
	"github.com/JonMunkholm/bookstore/internal/logging"
)

// subjectToken is replaced with the action's subject (usually a title).
const subjectToken = "{subject}"

// UserMessage is the printed form of an error.
type UserMessage struct {
	Message string // What the user sees
	Code    string // Reference code written to the log
}

// errorPattern matches an error, optionally only for one action.
type errorPattern struct {
	op     string // empty matches every action
	target error
	msg    UserMessage
}

// errorPatterns is checked in order; the first match wins, so
// action-specific entries come before general ones.
var errorPatterns = []errorPattern{
	{
		op:     "remove",
		target: catalog.ErrEmptyCatalog,
		msg:    UserMessage{Message: "No books available to delete.", Code: "CAT001"},
	},
	{
		target: catalog.ErrEmptyCatalog,
		msg:    UserMessage{Message: "No books available.", Code: "CAT001"},
	},
	{
		target: catalog.ErrNotFound,
		msg:    UserMessage{Message: `Error: Book with title "{subject}" not found.`, Code: "CAT002"},
	},
	{
		target: catalog.ErrInvalidRange,
		msg:    UserMessage{Message: "Error: Minimum price cannot be greater than maximum price.", Code: "CAT003"},
	},
	{
		target: catalog.ErrNoMatch,
		msg:    UserMessage{Message: "No books found in the specified price range.", Code: "CAT004"},
	},
	{
		target: catalog.ErrInvalidSortKey,
		msg:    UserMessage{Message: "Error: invalid sort option, choose 1, 2 or 3.", Code: "CAT005"},
	},
	{
		target: catalog.ErrInvalidBook,
		msg:    UserMessage{Message: "Error: book rejected: {subject}.", Code: "CAT006"},
	},
	{
		target: ErrInvalidMenuChoice,
		msg:    UserMessage{Message: "Invalid option, please try again.", Code: "CON001"},
	},
}

var defaultMessage = UserMessage{
	Message: "Error: the operation failed.",
	Code:    "ERR000",
}

// MapError returns the message for err raised by action op.
// A nil error maps to an empty UserMessage.
func MapError(op string, err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, ep := range errorPatterns {
		if ep.op != "" && ep.op != op {
			continue
		}
		if errors.Is(err, ep.target) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError renders the message for err with subject substituted.
func FormatUserError(op string, err error, subject string) string {
	msg := MapError(op, err)
	return strings.ReplaceAll(msg.Message, subjectToken, subject)
}

// report prints the user message for err and logs it with its code.
func (c *Console) report(ctx context.Context, op string, err error, subject string) {
	msg := MapError(op, err)
	c.println(strings.ReplaceAll(msg.Message, subjectToken, subject))

	logger := logging.WithFields(ctx, "op", op, "code", msg.Code)
	if msg.Code == defaultMessage.Code {
		logger.Error("operation failed", "error", err)
		return
	}
	logger.Info("operation rejected", "error", err)
}
