package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/themizzi/swaglabs-e2e/internal/models"
)

// RunLister returns recent runs. services.RunService satisfies it.
type RunLister interface {
	RecentRuns(limit int) ([]*models.Run, error)
}

// ListRuns writes the most recent runs to w as an aligned table
func ListRuns(w io.Writer, lister RunLister, limit int) error {
	runs, err := lister.RecentRuns(limit)
	if err != nil {
		return err
	}
	return PrintRuns(w, runs)
}

// PrintRuns writes runs as an aligned table, one row per run
func PrintRuns(w io.Writer, runs []*models.Run) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "no runs recorded")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSCENARIO\tBROWSER\tSTATUS\tSTARTED\tDURATION\tFAILURE")
	for _, r := range runs {
		duration := "-"
		if !r.IsRunning() {
			duration = r.Duration().Round(time.Millisecond).String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			r.Scenario,
			r.Browser,
			r.Status,
			r.StartedAt.Format(time.RFC3339),
			duration,
			r.FailureReason,
		)
	}
	return tw.Flush()
}
