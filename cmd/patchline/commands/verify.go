package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/kareem0o0/patchline/cmd/patchline/opts"
	"github.com/kareem0o0/patchline/pkg/operation"
)

// NewVerifyCmd creates a new verify command
func NewVerifyCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that every configured pattern is still present",
		Long: `Verify is a dry run of apply: it checks that every patch rule's old text
still occurs verbatim in its target file and reports each rule. Nothing is
ever written. The command exits non-zero when any pattern is missing, which
makes it useful as a pipeline guard before an automated edit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := ro.LoadConfig(ctx)
			if err != nil {
				return err
			}

			ops := make([]operation.Operation, 0, len(cfg.Targets))
			for _, target := range cfg.Targets {
				ops = append(ops, operation.NewVerifyOperation(operation.Options{
					Target:  target,
					Printer: ro.Printer,
				}))
			}

			if err := operation.NewRunner(false).Run(ctx, ops...); err != nil {
				return errors.Errorf("verifying patterns: %w", err)
			}

			ro.Printer.Summary("All patterns present")
			return nil
		},
	}

	return cmd
}
