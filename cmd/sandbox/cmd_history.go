package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sandbox/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently evaluated operations",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var (
	historyLimit int
	historyClear bool
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Rows to show (default: history.limit from config)")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete all history")
}

// openHistory opens the history store, or returns nil when history is disabled.
func openHistory() (*store.Store, error) {
	c, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if !c.History.Enabled {
		return nil, nil
	}
	return store.Open(c.ResolveDatabasePath(resolveWorkspace()))
}

// recordHistory stores an operation. Failures are logged and never returned.
func recordHistory(ctx context.Context, kind store.Kind, input, output string, opErr error) {
	s, err := openHistory()
	if err != nil {
		logger.Warn("history unavailable", zap.Error(err))
		return
	}
	if s == nil {
		return
	}
	defer s.Close()

	r := store.Record{Kind: kind, Input: input, Output: output}
	if opErr != nil {
		r.Error = opErr.Error()
	}
	if _, err := s.Add(ctx, r); err != nil {
		logger.Warn("failed to record history", zap.Error(err))
	}
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	s, err := openHistory()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if s == nil {
		fmt.Fprintln(out, "History is disabled (history.enabled: false).")
		return nil
	}
	defer s.Close()

	if historyClear {
		n, err := s.Clear(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared %d record(s).\n", n)
		return nil
	}

	limit := historyLimit
	if limit <= 0 {
		limit = cfg.History.Limit
	}
	records, err := s.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "No history yet.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tKIND\tINPUT\tRESULT")
	for _, r := range records {
		result := r.Output
		if r.Error != "" {
			result = "error: " + r.Error
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.CreatedAt.Format("2006-01-02 15:04:05"), r.Kind, r.Input, result)
	}
	return tw.Flush()
}
