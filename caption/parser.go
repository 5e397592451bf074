package caption

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// One sentinel per violated line-format rule.
var (
	ErrUnmatchedQuote   = errors.New("message must be first field and either single or double quoted")
	ErrUnexpectedPrefix = errors.New("expected no characters before message")
	ErrMissingSeparator = errors.New("expected a colon after end of message")
	ErrFieldCount       = errors.New("expected exactly 3 colon separated fields after message")
	ErrEmptyColor       = errors.New("color must not be empty")
	ErrInvalidSize      = errors.New("size must be a positive integer")
	ErrInvalidPosition  = errors.New("position must be either 'TOP' or 'BOTTOM'")
	ErrInvalidTimeRange = errors.New("time range must be <start>-<end> in whole seconds")
)

// ParseError reports the first malformed line of a caption script,
// carrying the 1-based line number and the raw line text.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v on parse of line %d: %s", e.Err, e.Line, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

var quoteUnescaper = strings.NewReplacer(`\'`, `'`, `\"`, `"`)

// Parse turns script lines into Captions, preserving line order. Blank
// lines and lines whose first non-whitespace character is '#' produce
// nothing. The first malformed line aborts the whole parse.
func Parse(lines []string) ([]Caption, error) {
	captions := make([]Caption, 0, len(lines))
	for i, line := range lines {
		text := strings.TrimSpace(line)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		c, err := parseLine(text)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: text, Err: err}
		}
		captions = append(captions, c)
	}
	return captions, nil
}

// ParseFile reads a caption script fully into memory and parses it.
func ParseFile(path string) ([]Caption, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(strings.Split(string(data), "\n"))
}

func parseLine(line string) (Caption, error) {
	// The message is delimited by the first and last quote of the same
	// style; a single quote anywhere in the line wins over double quotes.
	quote := "'"
	if !strings.Contains(line, quote) {
		quote = `"`
	}
	first := strings.Index(line, quote)
	last := strings.LastIndex(line, quote)
	if first == -1 || first == last {
		return Caption{}, ErrUnmatchedQuote
	}
	if strings.TrimSpace(line[:first]) != "" {
		return Caption{}, ErrUnexpectedPrefix
	}
	message := quoteUnescaper.Replace(line[first+1 : last])

	rest := strings.TrimSpace(line[last+1:])
	if !strings.HasPrefix(rest, ":") {
		return Caption{}, ErrMissingSeparator
	}
	rest = strings.TrimSpace(rest[1:])
	if strings.Count(rest, ":") != 3 {
		return Caption{}, ErrFieldCount
	}
	parts := strings.Split(rest, ":")

	color := strings.TrimSpace(parts[0])
	if color == "" {
		return Caption{}, ErrEmptyColor
	}

	size, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || size <= 0 {
		return Caption{}, ErrInvalidSize
	}

	position := Position(strings.ToUpper(strings.TrimSpace(parts[2])))
	if position != Top && position != Bottom {
		return Caption{}, ErrInvalidPosition
	}

	startSec, endSec, err := parseTimeRange(strings.TrimSpace(parts[3]))
	if err != nil {
		return Caption{}, err
	}

	return Caption{
		Message:  message,
		Color:    color,
		Size:     size,
		Position: position,
		StartSec: startSec,
		EndSec:   endSec,
	}, nil
}

func parseTimeRange(s string) (start, end int, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidTimeRange
	}
	start, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, ErrInvalidTimeRange
	}
	end, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, ErrInvalidTimeRange
	}
	return start, end, nil
}
