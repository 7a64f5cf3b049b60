// Package cli implements the cobra-based CLI for kate-sync.
//
// Running the root command with no arguments performs the bootstrap: the
// placeholder binary fetch followed by the vendored submodule updates. The
// plan subcommand (plan.go) prints the same steps without running them.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/kate-sync/internal/bootstrap"
	"github.com/shinji-kodama/kate-sync/internal/logging"
	"github.com/shinji-kodama/kate-sync/internal/model"
	"github.com/shinji-kodama/kate-sync/internal/runner"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to the plan subcommand as well.
var (
	// jsonOutput switches error output (on stderr) and plan output (on
	// stdout) to indented JSON. The bootstrap itself prints no structured
	// output, so a plain `kate-sync --json` only changes how errors look.
	jsonOutput bool

	// verbose lowers the log level to debug, which traces every command
	// kate-sync spawns and the exit status git reported.
	verbose bool
)

// Build metadata shown by --version. main copies its ldflags-injected
// values into these before calling NewRootCommand, so the CLI package has
// no dependency on how the binary was built.
var (
	// Version is the release version (e.g. "0.1.0"), or "dev" for local
	// builds.
	Version = "dev"

	// Commit is the kate-sync commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// newRunner builds the command runner used by the bootstrap. Tests replace
// it with a recording fake.
var newRunner = func(stdout, stderr io.Writer, logger zerolog.Logger) runner.Runner {
	return runner.NewExecRunner(stdout, stderr, logger)
}

// errorPrefix renders the "Error:" label for w. Whether it is colored
// depends on w alone: fatih/color's global default looks at stdout, which
// says nothing about a redirected stderr.
func errorPrefix(w io.Writer) string {
	c := color.New(color.FgRed, color.Bold)
	if isColorTerminal(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint("Error:")
}

// isColorTerminal reports whether w is a terminal that should receive
// escape codes. NO_COLOR set to any non-empty value disables color.
func isColorTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kate-sync",
		Short: "Bootstrap the kate source tree",
		Long: `kate-sync prepares a fresh kate checkout for building.

It runs, in order:
  1. the build tool fetch (not implemented yet; prints a notice)
  2. git submodule update --init . in each vendored Vulkan-Hpp dependency

Run it from the root of the checkout. A git failure inside a submodule is
reported by git itself and does not stop the run; a missing submodule
directory does.`,

		// The bootstrap takes no input. Anything extra is a usage error.
		Args: cobra.NoArgs,

		// We handle error output ourselves (text or JSON based on --json).
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runBootstrap(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output errors and plans in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewPlanCommand())

	return rootCmd
}

// runBootstrap wires the production components to the command's streams
// and runs the full sequence.
func runBootstrap(cmd *cobra.Command) error {
	logger := logging.New(cmd.ErrOrStderr(), verbose)
	r := newRunner(cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)

	return bootstrap.New(cmd.OutOrStdout(), r, logger).Run(cmd.Context())
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(int(ExitCodeFor(err)))
	}
}

// ExitCodeFor maps an error returned by a command to a process exit code.
// CLIError values carry their own code; anything else is a general error.
func ExitCodeFor(err error) model.ExitCode {
	if err == nil {
		return model.ExitSuccess
	}
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return model.ExitGeneralError
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(w io.Writer, err error) {
	message := err.Error()
	var underlying error

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		message = cliErr.Message
		underlying = cliErr.Err
	}

	if jsonOutput {
		errObj := map[string]interface{}{
			"message": message,
			"code":    int(ExitCodeFor(err)),
		}
		if underlying != nil {
			errObj["detail"] = underlying.Error()
		}
		data, _ := json.MarshalIndent(map[string]interface{}{"error": errObj}, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "%s %s: %v\n", errorPrefix(w), message, underlying)
	} else {
		fmt.Fprintf(w, "%s %s\n", errorPrefix(w), message)
	}
}
