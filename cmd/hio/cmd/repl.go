package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hyperaprog/hio/internal/replio"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive REPL",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := replio.New("hio> ", os.Stdout)
		return r.Run(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
