package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/intake/internal/blob"
	"github.com/alexanderramin/intake/internal/board"
	"github.com/alexanderramin/intake/internal/cli"
	"github.com/alexanderramin/intake/internal/db"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.intake/intake.db
	dbPath := os.Getenv("INTAKE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".intake", "intake.db")
	}

	// Open database and wire the blob-backed board store
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	boardStore := board.NewStore(blob.NewSQLiteStore(database))
	if err := boardStore.Load(context.Background()); err != nil {
		return fmt.Errorf("loading board: %w", err)
	}

	app := &cli.App{
		Board: boardStore,
	}

	// Detect interactive terminal: bare `intake` opens the TUI board.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
