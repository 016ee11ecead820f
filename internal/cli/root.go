package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the root command for mapdiff.
var rootCmd = &cobra.Command{
	Use:     "mapdiff",
	Version: "dev",
	Short:   "Reviewable diffs between flat key/value mappings",
	Long: `mapdiff computes the edit instructions needed to turn one flat key/value
mapping into another, lets you review and tweak each instruction
interactively, and applies saved instruction plans to other mappings
under permission flags.

The instruction plan is the point: when the mapping stands in for rows in
a store, the plan is what gets carried out there instead of a blind
overwrite.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the mapdiff CLI version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(applyCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
