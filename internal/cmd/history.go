package cmd

import (
	"fmt"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/quantmind-br/mayasweep/internal/config"
	"github.com/quantmind-br/mayasweep/internal/db"
	"github.com/quantmind-br/mayasweep/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command
func NewHistoryCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		limit     int
		search    string
		pruneDays int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past cleaning runs",
		Long:  `List past cleaning runs recorded in the local history database, newest first.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			database, err := db.New(ctx, cfg.Paths.DBFile)
			if err != nil {
				ui.PrintError("failed to open history database: %v", err)
				return err
			}
			defer database.Close()

			if pruneDays > 0 {
				removed, err := database.Prune(ctx, time.Duration(pruneDays)*24*time.Hour)
				if err != nil {
					ui.PrintError("failed to prune history: %v", err)
					return err
				}
				ui.PrintInfo("Pruned %d run(s) older than %d days.", removed, pruneDays)
			}

			runs, err := database.List(ctx, limit)
			if err != nil {
				ui.PrintError("failed to list runs: %v", err)
				return err
			}

			if search != "" {
				runs = filterRuns(runs, search)
			}

			if len(runs) == 0 {
				ui.PrintInfo("No cleaning runs recorded.")
				return nil
			}

			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeader([]string{"Date", "Mode", "Path", "Status", "Cleaned", "Processed"}),
				tablewriter.WithAlignment(tw.MakeAlign(6, tw.AlignLeft)),
				tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
			)

			for _, run := range runs {
				path := run.Path
				if path == "" {
					path = "-"
				}
				table.Append(
					run.RunDate.Local().Format("2006-01-02 15:04"),
					run.Mode,
					path,
					run.Status,
					fmt.Sprintf("%d", run.CleanedCount),
					fmt.Sprintf("%d", run.ProcessedCount),
				)
			}

			table.Render()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs to show (0 = all)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "fuzzy-filter runs by path or mode")
	cmd.Flags().IntVar(&pruneDays, "prune", 0, "delete runs older than this many days before listing")

	return cmd
}

// filterRuns keeps runs whose path or mode fuzzy-matches the query
func filterRuns(runs []db.Run, query string) []db.Run {
	var matched []db.Run
	for _, run := range runs {
		if fuzzy.MatchNormalizedFold(query, run.Path) || fuzzy.MatchNormalizedFold(query, run.Mode) {
			matched = append(matched, run)
		}
	}
	return matched
}
