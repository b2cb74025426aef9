package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	hioerrors "github.com/hyperaprog/hio/internal/errors"
	"github.com/hyperaprog/hio/internal/interp"
	"github.com/hyperaprog/hio/internal/lexer"
	"github.com/hyperaprog/hio/internal/parser"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a hio source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		context, _ := cmd.Flags().GetInt("context")
		return runFile(args[0], verbose, context)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(filename string, verbose bool, contextLines int) error {
	source, err := os.ReadFile(filename)
	if err != nil {
		exitWithError("failed to read file %s: %v", filename, err)
		return err
	}

	l := lexer.New(string(source))
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		compErrs := hioerrors.FromStringErrors(errs, string(source), filename)
		fmt.Fprint(os.Stderr, formatCompileErrors(compErrs, contextLines))
		fmt.Fprintln(os.Stderr)
		os.Exit(1)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "parsed %d top-level statement(s)\n", len(program.Statements))
	}

	i := interp.New()
	result, err := i.Run(program)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("Result: %s\n", result.String())
	return nil
}
