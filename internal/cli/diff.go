package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/danieljhkim/mapdiff/internal/diff"
	"github.com/danieljhkim/mapdiff/internal/mapfile"
	"github.com/danieljhkim/mapdiff/internal/prompt"
	"github.com/danieljhkim/mapdiff/internal/render"
)

var (
	diffAuto     bool
	diffTitle    string
	diffPlanPath string
)

var diffCmd = &cobra.Command{
	Use:   "diff <a-file> <b-file>",
	Short: "Compute the instructions that turn mapping A into mapping B",
	Long: `Walk every key of two mapping files, show each difference, and ask what
to do with it: keep the current value, take the new one, enter a
replacement, or delete the key. The accepted instructions can be saved
as a plan file for a later apply.

With --auto every difference is accepted without asking: deleted keys
are deleted, added keys added, changed values taken from B.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := mapfile.LoadMapping(args[0])
		if err != nil {
			return err
		}
		b, err := mapfile.LoadMapping(args[1])
		if err != nil {
			return err
		}

		if !diffAuto && !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("stdin is not a terminal; use --auto for non-interactive runs")
		}

		title := diffTitle
		if title == "" {
			title = fmt.Sprintf("%s → %s", args[0], args[1])
		}

		session := diff.NewSession(a, b,
			render.NewConsolePresenter(os.Stdout),
			prompt.NewLinePrompter(os.Stdin, os.Stdout))

		instructions, err := session.Run(title, diffAuto)
		if err != nil {
			return err
		}

		if diffPlanPath != "" {
			if err := mapfile.SavePlan(diffPlanPath, instructions); err != nil {
				return err
			}
			PrintSuccess(fmt.Sprintf("Saved %d instructions to %s", len(instructions), diffPlanPath))
		}

		if !diff.Changed(instructions) {
			PrintEmptyState("No changes detected")
		}
		return nil
	},
}

func init() {
	diffCmd.Flags().BoolVar(&diffAuto, "auto", false, "Accept every difference without prompting")
	diffCmd.Flags().StringVar(&diffTitle, "title", "", "Banner title for the diff (default: file names)")
	diffCmd.Flags().StringVarP(&diffPlanPath, "plan", "p", "", "Write the accepted instructions to this JSON file")
}
