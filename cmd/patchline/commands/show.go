package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/kareem0o0/patchline/cmd/patchline/opts"
	"github.com/kareem0o0/patchline/pkg/config"
	"github.com/kareem0o0/patchline/pkg/lines"
	"github.com/kareem0o0/patchline/pkg/operation"
)

// NewShowCmd creates a new show command
func NewShowCmd(ro *opts.RootOpts) *cobra.Command {
	var (
		file   string
		marker string
		before int
		after  int
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print numbered context windows around marker lines",
		Long: `Show scans each target file for the first line containing a marker and
prints the surrounding window of lines, each prefixed with its zero-padded
1-based line number. A missing marker prints the fixed notice "no match" and
is not a failure. Files are never mutated.

With --file and --marker the config is ignored and a single query runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if file != "" {
				if marker == "" {
					return errors.New("--marker is required with --file")
				}
				op := operation.NewShowOperation(operation.Options{
					Target: config.Target{File: file, Shows: []config.ShowRule{
						{Marker: marker, Before: &before, After: &after},
					}},
					Printer: ro.Printer,
				})
				return operation.NewRunner(false).Run(ctx, op)
			}

			cfg, err := ro.LoadConfig(ctx)
			if err != nil {
				return err
			}

			// Show always runs sequentially so windows never interleave
			ops := make([]operation.Operation, 0, len(cfg.Targets))
			for _, target := range cfg.Targets {
				ops = append(ops, operation.NewShowOperation(operation.Options{
					Target:  target,
					Printer: ro.Printer,
				}))
			}

			if err := operation.NewRunner(false).Run(ctx, ops...); err != nil {
				return errors.Errorf("showing context: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "scan a single file instead of using the config")
	cmd.Flags().StringVar(&marker, "marker", "", "literal substring locating the line to display")
	cmd.Flags().IntVar(&before, "before", lines.DefaultBefore, "lines of context before the match")
	cmd.Flags().IntVar(&after, "after", lines.DefaultAfter, "lines of context after the match")

	return cmd
}
