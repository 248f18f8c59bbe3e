package main

import (
	"log/slog"
	"os"
	"time"

	"bbref-transactions/cmd/bbref-scraper/cmd"

	"github.com/lmittmann/tint"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	cmd.Execute()
}
