package patch

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrPatternNotFound is returned when the expected old text does not occur
// verbatim in the target content. Nothing is written in that case.
var ErrPatternNotFound = errors.Base("pattern not found")

// Patch describes a single literal substitution. OldText must occur verbatim
// in the target (exact character match, including whitespace and newlines);
// its first occurrence in document order is replaced with NewText.
type Patch struct {
	// OldText is the literal text block expected to exist in the target
	OldText string

	// NewText is the literal replacement text
	NewText string
}

// Result contains the outcome of applying a patch
type Result struct {
	// OriginalContent is the content before the patch
	OriginalContent []byte

	// PatchedContent is the content after the patch
	PatchedContent []byte

	// Offset is the byte offset of the replaced occurrence
	Offset int

	// Remaining counts later occurrences of OldText left untouched
	Remaining int
}

// Validate checks that the patch is well formed
func (p Patch) Validate() error {
	if p.OldText == "" {
		return errors.New("old text is required")
	}
	return nil
}

// Apply verifies that p.OldText occurs in content and replaces exactly its
// first occurrence with p.NewText, leaving every other byte untouched. If the
// pattern is absent it returns an error wrapping ErrPatternNotFound and no
// replacement happens.
func Apply(ctx context.Context, content []byte, p Patch) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Errorf("validating patch: %w", err)
	}

	text := string(content)
	idx := strings.Index(text, p.OldText)
	if idx < 0 {
		return nil, errors.Errorf("%w: %s", ErrPatternNotFound, summarize(p.OldText))
	}

	patched := text[:idx] + p.NewText + text[idx+len(p.OldText):]

	zerolog.Ctx(ctx).Debug().
		Int("offset", idx).
		Int("old_len", len(p.OldText)).
		Int("new_len", len(p.NewText)).
		Msg("applied patch")

	return &Result{
		OriginalContent: content,
		PatchedContent:  []byte(patched),
		Offset:          idx,
		Remaining:       strings.Count(text[idx+len(p.OldText):], p.OldText),
	}, nil
}

// summarize shortens a pattern for error messages, keeping the first line
func summarize(pattern string) string {
	line := pattern
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i] + "..."
	}
	if len(line) > 80 {
		line = line[:77] + "..."
	}
	return strings.TrimSpace(line)
}
