package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/mapdiff/internal/diff"
	"github.com/danieljhkim/mapdiff/internal/mapfile"
)

var (
	applyOut      string
	applyNoAdd    bool
	applyNoDelete bool
	applyNoChange bool
	applyNoKeep   bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <source-file> <plan-file>",
	Short: "Apply a saved instruction plan to a mapping file",
	Long: `Interpret the instructions in a plan file against a source mapping and
print (or write) the result. The source file itself is never modified.

The --no-* flags forbid individual instruction kinds; an instruction of a
forbidden kind fails the whole apply instead of being silently skipped.
Useful when some edits cannot or should not be carried out against the
store the mapping represents.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := mapfile.LoadMapping(args[0])
		if err != nil {
			return err
		}
		plan, err := mapfile.LoadPlan(args[1])
		if err != nil {
			return err
		}

		perms := applyPermissions(applyNoAdd, applyNoDelete, applyNoChange, applyNoKeep)

		result, err := diff.Apply(source, plan, perms)
		if err != nil {
			return err
		}

		if result == nil {
			PrintEmptyState("No changes to apply")
			return nil
		}

		if applyOut != "" {
			if err := mapfile.SaveMapping(applyOut, result); err != nil {
				return err
			}
			PrintSuccess(fmt.Sprintf("Applied %d instructions, wrote %s", len(plan), applyOut))
			return nil
		}
		return outputJSON(result)
	},
}

// applyPermissions translates the prohibition flags into apply permissions.
func applyPermissions(noAdd, noDelete, noChange, noKeep bool) diff.Permissions {
	perms := diff.DefaultPermissions()
	perms.AllowAdd = !noAdd
	perms.AllowDelete = !noDelete
	perms.AllowChange = !noChange
	perms.AllowKeep = !noKeep
	return perms
}

func init() {
	applyCmd.Flags().StringVarP(&applyOut, "out", "o", "", "Write the result to this file instead of stdout")
	applyCmd.Flags().BoolVar(&applyNoAdd, "no-add", false, "Forbid add instructions")
	applyCmd.Flags().BoolVar(&applyNoDelete, "no-delete", false, "Forbid delete instructions")
	applyCmd.Flags().BoolVar(&applyNoChange, "no-change", false, "Forbid change instructions")
	applyCmd.Flags().BoolVar(&applyNoKeep, "no-keep", false, "Forbid keep instructions")
}
