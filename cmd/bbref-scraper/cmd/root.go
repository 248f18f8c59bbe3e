package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"bbref-transactions/lib/configutil"
	configlibsql "bbref-transactions/lib/configutil/libsql"
	"bbref-transactions/lib/serviceutil"
	"bbref-transactions/lib/telemetry"
	"bbref-transactions/services/transactions/db"

	"github.com/spf13/cobra"
)

var configPath string

type Config struct {
	Database configlibsql.Struct `json:"database"`
}

var rootCmd = &cobra.Command{
	Use:   "bbref-scraper",
	Short: "bbref-scraper syncs basketball reference transactions into a local database.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.json5", "path to the configuration file")
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(seasonCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup opens the database and telemetry from the configuration file.
// telemetry is optional: without a telemetry.json5 nearby, spans go to the
// noop provider.
func setup(ctx context.Context) (*sql.DB, func()) {
	config, err := configutil.ReadConfig[Config](configPath)
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}

	database, err := config.Database.OpenDB(db.Schema)
	if err != nil {
		serviceutil.Fatal("failed to open db", err)
	}

	tel, err := telemetry.SetupFromEnv(ctx, "bbref-scraper")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	telemetry.InstrumentPerfStats(ctx)

	return database, func() {
		tel.Shutdown(ctx)
		database.Close()
	}
}
