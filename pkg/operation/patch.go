package operation

import (
	"context"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"

	"github.com/kareem0o0/patchline/pkg/patch"
)

// 📦 NewPatchOperation creates an operation applying a target's patch rules
func NewPatchOperation(opts Options) Operation {
	return &patchOperation{opts: opts}
}

type patchOperation struct {
	opts Options
}

func (op *patchOperation) Name() string {
	return "patch " + op.opts.Target.File
}

// 🏃 Execute applies the target's patch rules in order. The first missing
// pattern aborts the target; the file is never written for a failed rule.
func (op *patchOperation) Execute(ctx context.Context) error {
	target := op.opts.Target

	for i, rule := range target.Patches {
		if rule.Glob != "" {
			matched, err := doublestar.Match(rule.Glob, filepath.ToSlash(target.File))
			if err != nil {
				return errors.Errorf("matching glob %q: %w", rule.Glob, err)
			}
			if !matched {
				op.opts.Printer.RuleSkipped(target.File, rule.Glob)
				continue
			}
		}

		result, err := patch.ApplyFile(ctx, target.File, patch.Patch{
			OldText: rule.Old,
			NewText: rule.New,
		})
		if err != nil {
			op.opts.Printer.PatchFailed(target.File, err)
			return errors.Errorf("applying patch %d to %s: %w", i, target.File, err)
		}

		op.opts.Printer.PatchApplied(target.File, result)
	}

	return nil
}
