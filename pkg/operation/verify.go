package operation

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/kareem0o0/patchline/pkg/patch"
)

// 📦 NewVerifyOperation creates a dry-run operation checking that every
// patch rule's old text is still present in its target. It never writes.
func NewVerifyOperation(opts Options) Operation {
	return &verifyOperation{opts: opts}
}

type verifyOperation struct {
	opts Options
}

func (op *verifyOperation) Name() string {
	return "verify " + op.opts.Target.File
}

// 🏃 Execute reports per-rule presence and fails if any pattern is missing
func (op *verifyOperation) Execute(ctx context.Context) error {
	target := op.opts.Target

	content, err := os.ReadFile(target.File)
	if err != nil {
		return errors.Errorf("reading %s: %w", target.File, err)
	}

	var missing int
	for i, rule := range target.Patches {
		detail := fmt.Sprintf("rule %d present", i)
		ok := strings.Contains(string(content), rule.Old)
		if !ok {
			detail = fmt.Sprintf("rule %d missing", i)
			missing++
		}
		op.opts.Printer.VerifyRule(target.File, detail, ok)
	}

	if missing > 0 {
		return errors.Errorf("verifying %s: %d rule(s): %w", target.File, missing, patch.ErrPatternNotFound)
	}

	return nil
}
