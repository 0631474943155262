package cli

import (
	"context"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/spf13/cobra"
)

// BoardService is the board store surface the CLI depends on.
// Implemented by *board.Store.
type BoardService interface {
	Create(ctx context.Context, cand domain.Candidate) (*domain.Member, domain.FieldErrors, error)
	Update(ctx context.Context, id string, cand domain.Candidate) (*domain.Member, domain.FieldErrors, error)
	Delete(ctx context.Context, id string) error
	Move(ctx context.Context, id string, stage domain.Stage) error
	Reset(ctx context.Context) error
	Get(ctx context.Context, id string) (*domain.Member, error)
	List(ctx context.Context) []*domain.Member
	ListByStage(ctx context.Context, stage domain.Stage) []*domain.Member
	CountByStage(ctx context.Context, stage domain.Stage) int
}

// App holds references to the services used by CLI commands.
type App struct {
	Board BoardService

	// IsInteractive reports whether stdin is an interactive terminal.
	// When true, bare `intake` opens the TUI board.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "intake" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "intake",
		Short: "Kanban board for member intake bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runBoard(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newMemberCmd(app),
		newBoardCmd(app),
		newResetCmd(app),
	)

	return root
}
