package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kareem0o0/patchline/cmd/patchline/commands"
	"github.com/kareem0o0/patchline/cmd/patchline/opts"
	"github.com/kareem0o0/patchline/pkg/status"
)

func main() {
	ctx := context.Background()

	// Create root options, shared by all commands
	ro := &opts.RootOpts{}

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "patchline",
		Short: "Verified literal patches and context windows for source files",
		Long: `patchline makes fail-fast literal edits to text files and prints numbered
context windows around marker lines. A patch is applied only when its old
text still occurs verbatim, so an automated edit can never silently no-op
or corrupt content.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Flags are parsed by now
			setupLogging()
			ro.ConfigFile = configFile
			ro.Printer = status.NewPrinter(cmd.Context(), os.Stdout)
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewApplyCmd(ro),
		commands.NewShowCmd(ro),
		commands.NewVerifyCmd(ro),
		newVersionCmd(),
	)

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if err := rootCmd.ExecuteContext(log.WithContext(ctx)); err != nil {
		if ro.Printer == nil {
			ro.Printer = status.NewPrinter(ctx, os.Stdout)
		}
		ro.Printer.Failed("Command failed", err)
		os.Exit(1)
	}
}
