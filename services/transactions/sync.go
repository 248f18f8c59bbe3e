package transactions

import (
	"context"
	"log/slog"
	"time"

	"bbref-transactions/lib/scrapers/bbref"
	"bbref-transactions/lib/season"
	"bbref-transactions/lib/timezone"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Syncer struct {
	service Service
	client  *bbref.Client
}

func NewSyncer(service Service, client *bbref.Client) Syncer {
	return Syncer{
		service: service,
		client:  client,
	}
}

// Sync scrapes every season page from the newest stored transaction's
// season through the current season, storing whatever parses. Season
// fetches are spaced out by the crawl delay.
func (s Syncer) Sync(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Sync")
	defer span.End()

	latest, err := s.service.LatestTransactionDate(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	slog.InfoContext(ctx, "latest stored transaction date", "date", latest.Format(time.DateOnly))

	startYear := season.Year(latest)
	endYear := season.Year(timezone.Now())

	for seasonYear := startYear; seasonYear <= endYear; seasonYear++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		start := time.Now()
		err := s.SyncSeason(ctx, seasonYear, latest)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		season.CrawlDelay(ctx, time.Since(start))
	}

	return nil
}

// SyncSeason fetches, parses, filters, and stores one season's
// transactions. latest gates the de-duplication lookup: statements dated
// before it might already be stored.
func (s Syncer) SyncSeason(ctx context.Context, seasonYear int, latest time.Time) error {
	ctx, span := tracer.Start(ctx, "SyncSeason")
	defer span.End()
	span.SetAttributes(attribute.Int("season_year", seasonYear))

	slog.InfoContext(ctx, "syncing season", "season_year", seasonYear)

	dayBlocks, err := s.client.FetchSeason(ctx, seasonYear)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	parsed := bbref.ParseSeason(ctx, dayBlocks, seasonYear)

	fresh, err := s.filterNew(ctx, parsed, latest)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	slog.InfoContext(ctx, "storing season transactions",
		"season_year", seasonYear,
		"parsed", len(parsed),
		"new", len(fresh),
	)
	return s.service.InsertTransactions(ctx, fresh)
}

// filterNew drops transactions dated today or later (the page may list
// pending moves) and ones already stored from a previous sync.
func (s Syncer) filterNew(ctx context.Context, parsed []bbref.Transaction, latest time.Time) ([]bbref.Transaction, error) {
	today := timezone.Today()

	var fresh []bbref.Transaction
	for _, transaction := range parsed {
		header := transaction.Header
		if !header.Date.Before(today) {
			slog.InfoContext(ctx, "skipping transaction dated today or later", "date", header.Date.Format(time.DateOnly))
			continue
		}
		if header.Date.Before(latest) {
			exists, err := s.service.Exists(ctx, header.Description)
			if err != nil {
				return nil, err
			}
			if exists {
				continue
			}
		}
		fresh = append(fresh, transaction)
	}

	return fresh, nil
}
