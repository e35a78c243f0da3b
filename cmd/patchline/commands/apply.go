package commands

import (
	"os"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/kareem0o0/patchline/cmd/patchline/opts"
	"github.com/kareem0o0/patchline/pkg/config"
	"github.com/kareem0o0/patchline/pkg/operation"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(ro *opts.RootOpts) *cobra.Command {
	var (
		file    string
		oldText string
		newText string
		oldFile string
		newFile string
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply configured patches to their target files",
		Long: `Apply runs every patch rule from the config against its target file.
Each rule is verified first: when the old text no longer occurs verbatim the
rule fails and the file is left byte-for-byte unchanged. Re-running after a
successful apply fails the same way, which guards against double application.

With --file the config is ignored and a single inline patch is applied. The
old and new text can be given directly (--old/--new) or read from files
(--old-file/--new-file), which is the practical choice for patterns spanning
several lines.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if file != "" {
				rule, err := inlineRule(oldText, newText, oldFile, newFile)
				if err != nil {
					return err
				}
				op := operation.NewPatchOperation(operation.Options{
					Target:  config.Target{File: file, Patches: []config.PatchRule{rule}},
					Printer: ro.Printer,
				})
				return operation.NewRunner(false).Run(ctx, op)
			}

			cfg, err := ro.LoadConfig(ctx)
			if err != nil {
				return err
			}

			ops := make([]operation.Operation, 0, len(cfg.Targets))
			for _, target := range cfg.Targets {
				ops = append(ops, operation.NewPatchOperation(operation.Options{
					Target:  target,
					Printer: ro.Printer,
				}))
			}

			if err := operation.NewRunner(cfg.Async).Run(ctx, ops...); err != nil {
				return errors.Errorf("applying patches: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "apply a single inline patch to this file instead of using the config")
	cmd.Flags().StringVar(&oldText, "old", "", "literal old text for the inline patch")
	cmd.Flags().StringVar(&newText, "new", "", "literal new text for the inline patch")
	cmd.Flags().StringVar(&oldFile, "old-file", "", "read the inline patch's old text from this file")
	cmd.Flags().StringVar(&newFile, "new-file", "", "read the inline patch's new text from this file")

	return cmd
}

// inlineRule builds a patch rule from the inline flags
func inlineRule(oldText, newText, oldFile, newFile string) (config.PatchRule, error) {
	var rule config.PatchRule

	switch {
	case oldText != "" && oldFile != "":
		return rule, errors.New("--old and --old-file are mutually exclusive")
	case oldFile != "":
		data, err := os.ReadFile(oldFile)
		if err != nil {
			return rule, errors.Errorf("reading old text: %w", err)
		}
		rule.Old = string(data)
	case oldText != "":
		rule.Old = oldText
	default:
		return rule, errors.New("either --old or --old-file is required")
	}

	if newText != "" && newFile != "" {
		return rule, errors.New("--new and --new-file are mutually exclusive")
	}
	if newFile != "" {
		data, err := os.ReadFile(newFile)
		if err != nil {
			return rule, errors.Errorf("reading new text: %w", err)
		}
		rule.New = string(data)
	} else {
		rule.New = newText
	}

	return rule, nil
}
