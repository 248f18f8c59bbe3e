package cmd

import (
	"fmt"
	"strconv"

	"bbref-transactions/lib/scrapers/bbref"
	"bbref-transactions/lib/serviceutil"
	"bbref-transactions/services/transactions"

	"github.com/spf13/cobra"
)

var seasonCmd = &cobra.Command{
	Use:   "season <year>",
	Short: "Scrape a single season page, e.g. `season 2021` for the 2020-21 season.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seasonYear, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid season year %q: %w", args[0], err)
		}

		ctx := serviceutil.SignalContext()
		database, cleanup := setup(ctx)
		defer cleanup()

		service := transactions.NewService(database)
		syncer := transactions.NewSyncer(service, bbref.NewClient())

		latest, err := service.LatestTransactionDate(ctx)
		if err != nil {
			serviceutil.Fatal("failed to read latest transaction date", err)
		}
		err = syncer.SyncSeason(ctx, seasonYear, latest)
		if err != nil {
			serviceutil.Fatal("season sync failed", err)
		}
		return nil
	},
}
