// Package cmd provides the Cobra CLI command structure for lc.
//
// The root command takes a list of file names, counts their lines with the
// linecount package and prints the aligned results. A file that cannot be
// read aborts the run with a message on stderr but still exits 0, so no
// partial results are ever printed.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/otuschhoff/linecount"
	"github.com/otuschhoff/linecount/pkg/output"
	"github.com/spf13/cobra"
)

// Version is the release version, set at build time:
//
//	go build -ldflags "-X github.com/otuschhoff/linecount/cmd/lc/cmd.Version=1.2.3"
//
// When empty the module version from the build info is used.
var Version = ""

// NewRootCommand creates the lc root command.
//
// Flag parsing is disabled: every argument, including "-v", "--help" or
// "--", is a file name.
func NewRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lc [file...]",
		Short: "Count lines in files",
		Long: `lc counts the newline-delimited lines of each file and prints one
right-justified count per file, plus a total when several files are given.

Invalid UTF-8 never stops a count; such bytes are replaced before counting.
If any file cannot be read, nothing is printed except the error.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               runCount,
	}
}

// runCount prints the banner when no files are given, otherwise counts
// every file and prints the formatted results.
func runCount(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(cmd.OutOrStdout(), output.Banner(invocation(), version()))
		return nil
	}

	results, err := linecount.NewCounter(args).Count()
	if err != nil {
		var fe *linecount.FileError
		if errors.As(err, &fe) {
			// Unreadable files are reported, not failed on.
			fmt.Fprintln(cmd.ErrOrStderr(), fe)
			return nil
		}
		return fmt.Errorf("failed to count lines: %w", err)
	}

	formatter := output.NewFormatter(len(args) > 1)
	fmt.Fprint(cmd.OutOrStdout(), formatter.Format(results))

	return nil
}

// Execute builds the root command and runs it against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// invocation returns the path the program was started as.
func invocation() string {
	if len(os.Args) == 0 {
		return ""
	}
	return os.Args[0]
}

// version resolves the displayed version: ldflags first, then the module
// version recorded by the Go toolchain, then "dev".
func version() string {
	if Version != "" {
		return Version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "dev"
}
