package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jumper/internal/platform/tui"
	"github.com/vovakirdan/jumper/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsPlain bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse recorded runs",
	Long: `List recorded runs. In a terminal this opens an interactive browser
where Enter replays the selected run and X deletes it; otherwise, or with
--plain, a table is printed.

Examples:
  jumper runs
  jumper runs --plain --limit 5`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to print with --plain")
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print a table instead of the browser")
}

func runRuns(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if !flagRunsPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		return tui.RunRunsBrowser(store)
	}

	entries, err := store.Runs(flagRunsLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderRunsTable(entries))
	return nil
}
