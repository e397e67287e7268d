package console

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// readLine returns the next input line without its line terminator.
// A final line without a newline is returned before io.EOF.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptLine prints prompt and reads one line verbatim.
func (c *Console) promptLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	return c.readLine()
}

// promptInt re-prompts until the line parses as an integer.
func (c *Console) promptInt(prompt, errMsg string) (int, error) {
	for {
		line, err := c.promptLine(prompt)
		if err != nil {
			return 0, err
		}
		if n, ok := parseInt(line); ok {
			return n, nil
		}
		c.println(errMsg)
	}
}

// promptFloat re-prompts until the line parses as a finite number,
// and when nonNegative is set, one that is >= 0.
func (c *Console) promptFloat(prompt, errMsg string, nonNegative bool) (float64, error) {
	for {
		line, err := c.promptLine(prompt)
		if err != nil {
			return 0, err
		}
		f, ok := parseFloat(line)
		if ok && (!nonNegative || f >= 0) {
			return f, nil
		}
		c.println(errMsg)
	}
}

func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseFloat rejects NaN and infinities along with malformed text.
func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
