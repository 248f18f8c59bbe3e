package cmd

import (
	"bbref-transactions/lib/scrapers/bbref"
	"bbref-transactions/lib/serviceutil"
	"bbref-transactions/services/transactions"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Scrape every season page since the last stored transaction.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := serviceutil.SignalContext()
		database, cleanup := setup(ctx)
		defer cleanup()

		syncer := transactions.NewSyncer(
			transactions.NewService(database),
			bbref.NewClient(),
		)
		err := syncer.Sync(ctx)
		if err != nil {
			serviceutil.Fatal("sync failed", err)
		}
	},
}
