package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	hioerrors "github.com/hyperaprog/hio/internal/errors"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "hio",
	Short: "Hiolang interpreter and compiler",
	Long: `hio is a toolchain for Hiolang, a small dynamically-typed scripting
language: a lexer, a recursive-descent parser, a tree-walking evaluator,
a stack-machine bytecode emitter, and a library catalog, wrapped in a
CLI for running, compiling, and exploring programs.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Int("context", 0, "lines of surrounding source to show around each error (0 for none)")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

// formatCompileErrors renders parse errors, showing contextLines of
// surrounding source around each one when contextLines > 0 (--context).
func formatCompileErrors(errs []*hioerrors.CompilerError, contextLines int) string {
	if contextLines > 0 {
		return hioerrors.FormatErrorsWithContext(errs, contextLines, false)
	}
	return hioerrors.FormatErrors(errs, false)
}
