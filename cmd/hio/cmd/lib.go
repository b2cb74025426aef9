package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hyperaprog/hio/internal/catalog"
)

var libCmd = &cobra.Command{
	Use:   "lib",
	Short: "List available libraries",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		mgr := catalog.NewStdlibManager()
		fmt.Println("Available Libraries:")
		for _, name := range mgr.List() {
			lib, _ := mgr.Get(name)
			fmt.Printf("  %s v%s (%s)\n", lib.Name, lib.Version, lib.Language)
			fmt.Printf("    %s\n", lib.Description)
		}
	},
}

var libInfoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show library information",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mgr := catalog.NewStdlibManager()
		lib, ok := mgr.Get(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Library not found: %s\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("Library: %s v%s\n", lib.Name, lib.Version)
		fmt.Printf("Language: %s\n", lib.Language)
		fmt.Printf("Description: %s\n", lib.Description)
		fmt.Println()
		fmt.Println("Functions:")
		for _, name := range lib.FunctionOrder {
			fn := lib.Functions[name]
			fmt.Printf("  %s(%s) -> %s\n", fn.Name, joinComma(fn.Params), fn.ReturnType)
			fmt.Printf("    Implementation: %s\n", fn.ImplementationLanguage)
		}
	},
}

var libCreateCmd = &cobra.Command{
	Use:   "create <name> <language>",
	Short: "Create a new library descriptor",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, language := args[0], args[1]
		entry := catalog.NewEntry(name, "1.0.0", fmt.Sprintf("Custom library in %s", language), language)
		doc, err := entry.ExportJSON()
		if err != nil {
			return err
		}
		filename := name + ".hiolib"
		if err := os.WriteFile(filename, []byte(doc), 0o644); err != nil {
			exitWithError("failed to create library: %v", err)
			return err
		}
		fmt.Printf("Created library %s at %s\n", name, filename)
		return nil
	},
}

func init() {
	libCmd.AddCommand(libInfoCmd)
	libCmd.AddCommand(libCreateCmd)
	rootCmd.AddCommand(libCmd)
}

func joinComma(items []string) string {
	out := ""
	for idx, it := range items {
		if idx > 0 {
			out += ", "
		}
		out += it
	}
	return out
}
