package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resolveMember matches input against member IDs: exact first, then
// unique prefix. Lets users paste the 8-character display ID.
func resolveMember(app *App, cmd *cobra.Command, input string) (*domain.Member, error) {
	if input == "" {
		return nil, fmt.Errorf("member ID is required")
	}

	members := app.Board.List(cmd.Context())
	for _, m := range members {
		if m.ID == input {
			return m, nil
		}
	}

	var matches []*domain.Member
	for _, m := range members {
		if strings.HasPrefix(m.ID, input) {
			matches = append(matches, m)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("member not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("member ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func parseStage(input string) (domain.Stage, error) {
	s := domain.Stage(strings.ToLower(strings.TrimSpace(input)))
	if !domain.ValidStages[s] {
		names := make([]string, 0, len(domain.StageOrder))
		for _, st := range domain.StageOrder {
			names = append(names, string(st))
		}
		return "", fmt.Errorf("unknown stage %q (expected one of: %s)", input, strings.Join(names, ", "))
	}
	return s, nil
}

func newMemberCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage intake members",
	}

	cmd.AddCommand(
		newMemberAddCmd(app),
		newMemberListCmd(app),
		newMemberEditCmd(app),
		newMemberMoveCmd(app),
		newMemberRemoveCmd(app),
	)

	return cmd
}

func newMemberAddCmd(app *App) *cobra.Command {
	var title, name, age, email, phone string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new member in the unclaimed stage",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ferrs, err := app.Board.Create(cmd.Context(), domain.Candidate{
				Title: title, Name: name, Age: age, Email: email, Phone: phone,
			})
			if err != nil {
				return err
			}
			if ferrs != nil {
				fmt.Fprintln(cmd.OutOrStdout(), formatFieldErrors(ferrs))
				return fmt.Errorf("member not created")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Added: %s (%s, %s)\n",
				styleGreen.Render("✔"), bold(m.Name), m.DisplayID(), m.Stage.Label())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "salutation (Mr, Ms, Mrs, Dr)")
	cmd.Flags().StringVar(&name, "name", "", "member name")
	cmd.Flags().StringVar(&age, "age", "", "age in years (18 or older)")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number (10+ characters)")

	return cmd
}

func newMemberListCmd(app *App) *cobra.Command {
	var stageFlag string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List members, optionally filtered by stage",
		RunE: func(cmd *cobra.Command, args []string) error {
			var members []*domain.Member
			if stageFlag != "" {
				stage, err := parseStage(stageFlag)
				if err != nil {
					return err
				}
				members = app.Board.ListByStage(cmd.Context(), stage)
			} else {
				members = app.Board.List(cmd.Context())
			}

			if asJSON {
				return printMembersJSON(cmd, members)
			}

			if len(members) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), dim("No members."))
				return nil
			}
			for _, m := range members {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %s (%d) %s  %s  %s\n",
					dim(m.DisplayID()),
					string(m.Title), bold(m.Name), m.Age,
					dim(m.Email), dim(m.Phone),
					stageStyle(m.Stage).Render(m.Stage.Label()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&stageFlag, "stage", "", "filter by stage identifier")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}

func printMembersJSON(cmd *cobra.Command, members []*domain.Member) error {
	type row struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Name  string `json:"name"`
		Age   int    `json:"age"`
		Email string `json:"email"`
		Phone string `json:"phone"`
		Stage string `json:"stage"`
	}
	rows := make([]row, 0, len(members))
	for _, m := range members {
		rows = append(rows, row{
			ID: m.ID, Title: string(m.Title), Name: m.Name,
			Age: m.Age, Email: m.Email, Phone: m.Phone, Stage: string(m.Stage),
		})
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func newMemberEditCmd(app *App) *cobra.Command {
	var title, name, age, email, phone string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a member's fields (unset flags keep current values)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := resolveMember(app, cmd, args[0])
			if err != nil {
				return err
			}

			cand := domain.Candidate{
				Title: string(current.Title),
				Name:  current.Name,
				Age:   strconv.Itoa(current.Age),
				Email: current.Email,
				Phone: current.Phone,
			}
			cmd.Flags().Visit(func(f *pflag.Flag) {
				switch f.Name {
				case "title":
					cand.Title = title
				case "name":
					cand.Name = name
				case "age":
					cand.Age = age
				case "email":
					cand.Email = email
				case "phone":
					cand.Phone = phone
				}
			})

			m, ferrs, err := app.Board.Update(cmd.Context(), current.ID, cand)
			if err != nil {
				return err
			}
			if ferrs != nil {
				fmt.Fprintln(cmd.OutOrStdout(), formatFieldErrors(ferrs))
				return fmt.Errorf("member not updated")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Updated: %s\n",
				styleGreen.Render("✔"), bold(m.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "salutation (Mr, Ms, Mrs, Dr)")
	cmd.Flags().StringVar(&name, "name", "", "member name")
	cmd.Flags().StringVar(&age, "age", "", "age in years")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")

	return cmd
}

func newMemberMoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <stage>",
		Short: "Move a member to another pipeline stage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stage, err := parseStage(args[1])
			if err != nil {
				return err
			}
			m, err := resolveMember(app, cmd, args[0])
			if err != nil {
				return err
			}
			if err := app.Board.Move(cmd.Context(), m.ID, stage); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Moved %s %s %s\n",
				styleGreen.Render("✔"), dim(m.DisplayID()), dim("→"),
				stageStyle(stage).Render(stage.Label()))
			return nil
		},
	}
	return cmd
}

func newMemberRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a member",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMember(app, cmd, args[0])
			if err != nil {
				return err
			}
			if err := app.Board.Delete(cmd.Context(), m.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted %s\n",
				styleGreen.Render("✔"), dim(m.DisplayID()))
			return nil
		},
	}
	return cmd
}
