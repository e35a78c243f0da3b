package lines

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Default context window size around a matched line
const (
	DefaultBefore = 2
	DefaultAfter  = 2
)

// NoMatchNotice is the fixed notice printed when no line contains the marker
const NoMatchNotice = "no match"

// Line is a single line of a file, numbered for display
type Line struct {
	// Number is the 1-based line number
	Number int

	// Text is the raw line text, without the trailing newline
	Text string
}

// Format renders the line as it is printed: a 4-digit zero-padded 1-based
// line number, a colon, and the original text.
func (l Line) Format() string {
	return fmt.Sprintf("%04d: %s", l.Number, l.Text)
}

// Window is the clamped range of lines surrounding a matched line
type Window struct {
	// Match is the first line containing the marker
	Match Line

	// Lines holds the window in order, match line included
	Lines []Line
}

// FindContext scans content line by line and returns the window of lines
// around the first line containing marker as a substring. The window spans
// [i-before, i+after] clamped to the file's bounds. Scanning stops at the
// first match; later matching lines never open a new window. found is false
// when no line contains the marker, which is a normal outcome.
func FindContext(content []byte, marker string, before, after int) (w *Window, found bool) {
	if before < 0 {
		before = 0
	}
	if after < 0 {
		after = 0
	}

	ls := splitLines(content)
	for i, line := range ls {
		if !strings.Contains(line, marker) {
			continue
		}

		start := i - before
		if start < 0 {
			start = 0
		}
		end := i + after
		if end > len(ls)-1 {
			end = len(ls) - 1
		}

		w = &Window{Match: Line{Number: i + 1, Text: line}}
		for j := start; j <= end; j++ {
			w.Lines = append(w.Lines, Line{Number: j + 1, Text: ls[j]})
		}
		return w, true
	}

	return nil, false
}

// FindContextFile loads the file at path and runs FindContext on its
// content. The file is never mutated.
func FindContextFile(ctx context.Context, path, marker string, before, after int) (*Window, bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false, errors.Errorf("reading %s: %w", path, err)
	}

	w, found := FindContext(content, marker, before, after)

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Str("marker", marker).
		Bool("found", found).
		Msg("scanned for marker")

	return w, found, nil
}

// splitLines splits content into display lines: a single trailing newline
// does not produce an empty final line, and CRLF endings are normalized.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	ls := strings.Split(string(content), "\n")
	if ls[len(ls)-1] == "" {
		ls = ls[:len(ls)-1]
	}
	for i, l := range ls {
		ls[i] = strings.TrimSuffix(l, "\r")
	}
	return ls
}
