package cfg

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"tubaudio/internal/database"
	"tubaudio/internal/domain/keys"
	"tubaudio/internal/models"
	"tubaudio/internal/parsing"
	"tubaudio/internal/repo"
	"tubaudio/internal/utils/logging"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initHistoryCmd builds the 'history' subcommand.
func initHistoryCmd() (*cobra.Command, error) {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded download attempts.",
		Long:  "Lists attempts recorded with --history, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			since, err := parsing.ParseSince(viper.GetString(keys.HistorySince), time.Now())
			if err != nil {
				return err
			}

			s, err := LoadSettings()
			if err != nil {
				return err
			}

			db, err := database.InitDB(s.HistoryDB)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					logging.E(0, "Failed to close history database: %v", err)
				}
			}()

			attempts, err := repo.GetAttemptStore(db.DB).ListAttempts(cmd.Context(), models.AttemptFilter{
				Since:      since,
				FailedOnly: viper.GetBool(keys.HistoryFailed),
				Limit:      viper.GetUint64(keys.HistoryLimit),
			})
			if err != nil {
				return err
			}

			if len(attempts) == 0 {
				logging.I("No attempts recorded in %q", s.HistoryDB)
				return nil
			}
			return printAttempts(cmd.OutOrStdout(), attempts, time.Now())
		},
	}

	historyCmd.Flags().String(keys.HistorySince, "", "Only show attempts since this date or age (e.g. '2024-05-01', '7d', '36h')")
	if err := viper.BindPFlag(keys.HistorySince, historyCmd.Flags().Lookup(keys.HistorySince)); err != nil {
		return nil, err
	}

	historyCmd.Flags().Bool(keys.HistoryFailed, false, "Only show failed attempts")
	if err := viper.BindPFlag(keys.HistoryFailed, historyCmd.Flags().Lookup(keys.HistoryFailed)); err != nil {
		return nil, err
	}

	historyCmd.Flags().Uint64(keys.HistoryLimit, 50, "Maximum number of attempts to show (0 for all)")
	if err := viper.BindPFlag(keys.HistoryLimit, historyCmd.Flags().Lookup(keys.HistoryLimit)); err != nil {
		return nil, err
	}
	return historyCmd, nil
}

// printAttempts writes attempts as an aligned table.
func printAttempts(w io.Writer, attempts []*models.Attempt, now time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tSTATUS\tSAVED\tSKIPPED\tURL\tERROR")
	for _, a := range attempts {
		detail := ""
		if a.Message != "" {
			detail = fmt.Sprintf("%s: %s", a.ErrKind, a.Message)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\n",
			humanize.RelTime(a.CreatedAt, now, "ago", "from now"),
			a.Status, a.Saved, a.Skipped, a.URL, detail)
	}
	return tw.Flush()
}
