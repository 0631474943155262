package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every member and clear the persisted snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				confirmed := false
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewConfirm().
							Title("Reset the board?").
							Description("Deletes every member and the persisted snapshot.").
							Affirmative("Reset").
							Negative("Cancel").
							Value(&confirmed),
					),
				).WithTheme(intakeHuhTheme())
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), dim("Reset cancelled."))
					return nil
				}
			}

			if err := app.Board.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Board reset.\n", styleGreen.Render("✔"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")

	return cmd
}
