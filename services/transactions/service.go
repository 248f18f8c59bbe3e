package transactions

import (
	"context"
	"database/sql"
	"time"

	"bbref-transactions/lib/scrapers/bbref"
	"bbref-transactions/lib/timezone"
	"bbref-transactions/services/transactions/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/transactions")

// the league's founding offseason; used when the store holds nothing yet
var earliestTransactionDate = time.Date(1949, time.July, 1, 0, 0, 0, 0, timezone.Location)

type Service struct {
	db  *sql.DB
	qry *db.Queries
}

func NewService(database *sql.DB) Service {
	return Service{
		db:  database,
		qry: db.New(database),
	}
}

// LatestTransactionDate returns the newest stored transaction date, or the
// league's first offseason when the store is empty.
func (s Service) LatestTransactionDate(ctx context.Context) (time.Time, error) {
	ctx, span := tracer.Start(ctx, "LatestTransactionDate")
	defer span.End()

	latest, err := s.qry.GetLatestTransactionDate(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return time.Time{}, err
	}
	if !latest.Valid {
		return earliestTransactionDate, nil
	}
	return time.Unix(latest.Int64, 0).In(timezone.Location), nil
}

// Exists reports whether a transaction with this exact description was
// stored before. Descriptions are the de-duplication key since the source
// pages have no stable per-statement identifier.
func (s Service) Exists(ctx context.Context, description string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Exists")
	defer span.End()

	count, err := s.qry.CountTransactionsByDescription(ctx, description)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}
	return count > 0, nil
}

// InsertTransactions stores one parse pass's headers and assets in a
// single database transaction; any failure rolls back the whole batch.
func (s Service) InsertTransactions(ctx context.Context, transactions []bbref.Transaction) error {
	ctx, span := tracer.Start(ctx, "InsertTransactions")
	defer span.End()
	span.SetAttributes(attribute.Int("count", len(transactions)))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	for _, transaction := range transactions {
		header := transaction.Header
		err := txqry.CreateTransactionDetail(ctx, db.CreateTransactionDetailParams{
			TransactionID:          header.ID.String(),
			TransactionDate:        header.Date.Unix(),
			TransactionType:        string(header.Type),
			TransactionDescription: header.Description,
			Verified:               header.Verified,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}

		for _, asset := range transaction.Assets {
			err := txqry.CreateTransactionAsset(ctx, db.CreateTransactionAssetParams{
				TransactionID: asset.HeaderID.String(),
				Origin:        asset.Origin,
				Destination:   asset.Destination,
				Asset:         asset.Asset,
				AssetType:     string(asset.AssetType),
			})
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return err
			}
		}
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
