package operation

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/kareem0o0/patchline/pkg/config"
	"github.com/kareem0o0/patchline/pkg/lines"
	"github.com/kareem0o0/patchline/pkg/patch"
	"github.com/kareem0o0/patchline/pkg/status"
)

func writeTarget(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "target.cs")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestPrinter(t *testing.T) (*status.Printer, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return status.NewPrinter(context.Background(), &buf), &buf
}

func TestPatchOperation(t *testing.T) {
	t.Run("applies_rules_in_order", func(t *testing.T) {
		path := writeTarget(t, "first OLD1 then OLD2\n")
		printer, buf := newTestPrinter(t)

		op := NewPatchOperation(Options{
			Target: config.Target{File: path, Patches: []config.PatchRule{
				{Old: "OLD1", New: "NEW1"},
				{Old: "OLD2", New: "NEW2"},
			}},
			Printer: printer,
		})
		require.NoError(t, op.Execute(context.Background()))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "first NEW1 then NEW2\n", string(content))
		assert.Contains(t, buf.String(), "Patched")
	})

	t.Run("glob_mismatch_skips_rule", func(t *testing.T) {
		path := writeTarget(t, "keep OLD\n")
		printer, buf := newTestPrinter(t)

		op := NewPatchOperation(Options{
			Target: config.Target{File: path, Patches: []config.PatchRule{
				{Old: "OLD", New: "NEW", Glob: "**/*.go"},
			}},
			Printer: printer,
		})
		require.NoError(t, op.Execute(context.Background()))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "keep OLD\n", string(content), "skipped rule must not touch the file")
		assert.Contains(t, buf.String(), "Skipped")
	})

	t.Run("glob_match_applies_rule", func(t *testing.T) {
		path := writeTarget(t, "keep OLD\n")
		printer, _ := newTestPrinter(t)

		op := NewPatchOperation(Options{
			Target: config.Target{File: path, Patches: []config.PatchRule{
				{Old: "OLD", New: "NEW", Glob: "**/*.cs"},
			}},
			Printer: printer,
		})
		require.NoError(t, op.Execute(context.Background()))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "keep NEW\n", string(content))
	})

	t.Run("missing_pattern_aborts_target", func(t *testing.T) {
		path := writeTarget(t, "only OLD1 here\n")
		printer, buf := newTestPrinter(t)

		op := NewPatchOperation(Options{
			Target: config.Target{File: path, Patches: []config.PatchRule{
				{Old: "OLD1", New: "NEW1"},
				{Old: "ABSENT", New: "NEW2"},
				{Old: "NEW1", New: "never reached"},
			}},
			Printer: printer,
		})

		err := op.Execute(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, patch.ErrPatternNotFound))

		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "only NEW1 here\n", string(content), "failed rule must not write, later rules must not run")
		assert.Contains(t, buf.String(), "Failed")
	})
}

func TestShowOperation(t *testing.T) {
	t.Run("prints_clamped_window", func(t *testing.T) {
		path := writeTarget(t, "A\nB\nFullyDefineSketch(...)\nC\nD\n")
		printer, buf := newTestPrinter(t)

		op := NewShowOperation(Options{
			Target: config.Target{File: path, Shows: []config.ShowRule{
				{Marker: "FullyDefineSketch"},
			}},
			Printer: printer,
		})
		require.NoError(t, op.Execute(context.Background()))

		out := buf.String()
		assert.Contains(t, out, "0001: A")
		assert.Contains(t, out, "0002: B")
		assert.Contains(t, out, "0003: FullyDefineSketch(...)")
		assert.Contains(t, out, "0004: C")
		assert.Contains(t, out, "0005: D")
	})

	t.Run("missing_marker_is_not_an_error", func(t *testing.T) {
		path := writeTarget(t, "A\nB\n")
		printer, buf := newTestPrinter(t)

		op := NewShowOperation(Options{
			Target: config.Target{File: path, Shows: []config.ShowRule{
				{Marker: "absent"},
			}},
			Printer: printer,
		})
		require.NoError(t, op.Execute(context.Background()))
		assert.Contains(t, buf.String(), lines.NoMatchNotice)
	})

	t.Run("never_mutates_the_file", func(t *testing.T) {
		original := "A\nmarker\nB\n"
		path := writeTarget(t, original)
		printer, _ := newTestPrinter(t)

		op := NewShowOperation(Options{
			Target: config.Target{File: path, Shows: []config.ShowRule{
				{Marker: "marker"},
				{Marker: "absent"},
			}},
			Printer: printer,
		})
		require.NoError(t, op.Execute(context.Background()))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, original, string(content))
	})

	t.Run("honors_explicit_bounds", func(t *testing.T) {
		path := writeTarget(t, "l1\nl2\nl3 marker\nl4\nl5\n")
		printer, buf := newTestPrinter(t)

		zero := 0
		op := NewShowOperation(Options{
			Target: config.Target{File: path, Shows: []config.ShowRule{
				{Marker: "marker", Before: &zero, After: &zero},
			}},
			Printer: printer,
		})
		require.NoError(t, op.Execute(context.Background()))

		out := buf.String()
		assert.Contains(t, out, "0003: l3 marker")
		assert.NotContains(t, out, "0002: l2")
		assert.NotContains(t, out, "0004: l4")
	})

	t.Run("missing_file", func(t *testing.T) {
		printer, _ := newTestPrinter(t)

		op := NewShowOperation(Options{
			Target: config.Target{
				File:  filepath.Join(t.TempDir(), "nope.cs"),
				Shows: []config.ShowRule{{Marker: "x"}},
			},
			Printer: printer,
		})
		require.Error(t, op.Execute(context.Background()))
	})
}

func TestVerifyOperation(t *testing.T) {
	t.Run("all_patterns_present", func(t *testing.T) {
		original := "has OLD1 and OLD2\n"
		path := writeTarget(t, original)
		printer, buf := newTestPrinter(t)

		op := NewVerifyOperation(Options{
			Target: config.Target{File: path, Patches: []config.PatchRule{
				{Old: "OLD1", New: "NEW1"},
				{Old: "OLD2", New: "NEW2"},
			}},
			Printer: printer,
		})
		require.NoError(t, op.Execute(context.Background()))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, original, string(content), "verify must never write")
		assert.Contains(t, buf.String(), "present")
	})

	t.Run("missing_pattern_fails", func(t *testing.T) {
		original := "has OLD1 only\n"
		path := writeTarget(t, original)
		printer, buf := newTestPrinter(t)

		op := NewVerifyOperation(Options{
			Target: config.Target{File: path, Patches: []config.PatchRule{
				{Old: "OLD1", New: "NEW1"},
				{Old: "ABSENT", New: "NEW2"},
			}},
			Printer: printer,
		})

		err := op.Execute(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, patch.ErrPatternNotFound))

		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, original, string(content), "verify must never write")
		assert.Contains(t, buf.String(), "missing")
	})
}
