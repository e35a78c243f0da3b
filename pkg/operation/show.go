package operation

import (
	"context"

	"gitlab.com/tozd/go/errors"

	"github.com/kareem0o0/patchline/pkg/lines"
)

// 📦 NewShowOperation creates an operation printing a target's context windows
func NewShowOperation(opts Options) Operation {
	return &showOperation{opts: opts}
}

type showOperation struct {
	opts Options
}

func (op *showOperation) Name() string {
	return "show " + op.opts.Target.File
}

// 🏃 Execute runs the target's show rules. A missing marker is a normal
// outcome reported via the notice, not an error; the file is never mutated.
func (op *showOperation) Execute(ctx context.Context) error {
	target := op.opts.Target

	for _, rule := range target.Shows {
		before := lines.DefaultBefore
		if rule.Before != nil {
			before = *rule.Before
		}
		after := lines.DefaultAfter
		if rule.After != nil {
			after = *rule.After
		}

		w, found, err := lines.FindContextFile(ctx, target.File, rule.Marker, before, after)
		if err != nil {
			return errors.Errorf("scanning %s: %w", target.File, err)
		}

		if !found {
			op.opts.Printer.NoMatch(target.File, rule.Marker)
			continue
		}
		op.opts.Printer.Window(w)
	}

	return nil
}
