package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pixloop/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show recent sessions",
	Long: `List the most recent runs stored in the session database.

Examples:
  pixloop sessions
  pixloop sessions --limit 5
  pixloop sessions --clear`,
	Args: cobra.NoArgs,
	RunE: runSessions,
}

func init() {
	sessionsCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of sessions to show")
	sessionsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the session history")
}

func runSessions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagClear {
		if err := store.ClearSessions(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Session history cleared.")
		return nil
	}

	sessions, err := store.RecentSessions(flagLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'pixloop run' to start one.")
		return nil
	}

	fmt.Fprintf(out, "  %-16s  %-8s  %-8s  %-9s  %-6s  %s\n", "Date", "Backend", "Frames", "Duration", "FPS", "Exit")
	fmt.Fprintf(out, "  %-16s  %-8s  %-8s  %-9s  %-6s  %s\n", "----", "-------", "------", "--------", "---", "----")
	for _, s := range sessions {
		fmt.Fprintf(out, "  %-16s  %-8s  %-8d  %-9s  %-6.1f  %s\n",
			s.CreatedAt.Format("2006-01-02 15:04"), s.Backend, s.Frames,
			s.Duration.Round(100*time.Millisecond).String(), s.AvgFPS, s.Exit)
	}
	return nil
}
