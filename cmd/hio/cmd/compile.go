package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	hioerrors "github.com/hyperaprog/hio/internal/errors"
	"github.com/hyperaprog/hio/internal/emitter"
	"github.com/hyperaprog/hio/internal/lexer"
	"github.com/hyperaprog/hio/internal/parser"
)

var compileCmd = &cobra.Command{
	Use:   "compile <file> [output]",
	Short: "Compile a hio source file to a bytecode dump",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		output := "a.hio"
		if len(args) == 2 {
			output = args[1]
		}
		context, _ := cmd.Flags().GetInt("context")
		return compileFile(args[0], output, context)
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)
}

func compileFile(filename, output string, contextLines int) error {
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

	e := emitter.New()
	chunk := e.Compile(program)

	var sb strings.Builder
	sb.WriteString(chunk.Dump())

	functions := e.Functions()
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("\n\nfunction %s:\n%s", name, functions[name].Dump()))
	}

	if err := os.WriteFile(output, []byte(sb.String()), 0o644); err != nil {
		exitWithError("failed to write bytecode: %v", err)
		return err
	}

	fmt.Printf("Successfully compiled to %s\n", output)
	return nil
}
