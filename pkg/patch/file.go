package patch

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ApplyFile loads the file at path, applies p, and writes the full patched
// content back in place, preserving the file's mode. When the pattern is
// missing the file on disk is left byte-for-byte unchanged and the returned
// error wraps ErrPatternNotFound.
func ApplyFile(ctx context.Context, path string, p Patch) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Errorf("stating %s: %w", path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}

	result, err := Apply(ctx, content, p)
	if err != nil {
		return nil, errors.Errorf("patching %s: %w", path, err)
	}

	if err := os.WriteFile(path, result.PatchedContent, info.Mode().Perm()); err != nil {
		return nil, errors.Errorf("writing %s: %w", path, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Int("offset", result.Offset).
		Msg("wrote patched file")

	return result, nil
}
