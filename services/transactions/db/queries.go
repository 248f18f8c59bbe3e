package db

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

const createTransactionDetail = `
INSERT INTO TransactionDetail (TransactionId, TransactionDate, TransactionType, TransactionDescription, Verified)
VALUES (?, ?, ?, ?, ?)
`

type CreateTransactionDetailParams struct {
	TransactionID          string
	TransactionDate        int64
	TransactionType        string
	TransactionDescription string
	Verified               bool
}

func (q *Queries) CreateTransactionDetail(ctx context.Context, arg CreateTransactionDetailParams) error {
	_, err := q.db.ExecContext(ctx, createTransactionDetail,
		arg.TransactionID,
		arg.TransactionDate,
		arg.TransactionType,
		arg.TransactionDescription,
		arg.Verified,
	)
	return err
}

const createTransactionAsset = `
INSERT INTO TransactionAsset (TransactionId, Origin, Destination, Asset, AssetType)
VALUES (?, ?, ?, ?, ?)
`

type CreateTransactionAssetParams struct {
	TransactionID string
	Origin        string
	Destination   string
	Asset         string
	AssetType     string
}

func (q *Queries) CreateTransactionAsset(ctx context.Context, arg CreateTransactionAssetParams) error {
	_, err := q.db.ExecContext(ctx, createTransactionAsset,
		arg.TransactionID,
		arg.Origin,
		arg.Destination,
		arg.Asset,
		arg.AssetType,
	)
	return err
}

const getLatestTransactionDate = `
SELECT MAX(TransactionDate) FROM TransactionDetail
`

func (q *Queries) GetLatestTransactionDate(ctx context.Context) (sql.NullInt64, error) {
	row := q.db.QueryRowContext(ctx, getLatestTransactionDate)
	var latest sql.NullInt64
	err := row.Scan(&latest)
	return latest, err
}

const countTransactionsByDescription = `
SELECT COUNT(1) FROM TransactionDetail WHERE TransactionDescription = ?
`

func (q *Queries) CountTransactionsByDescription(ctx context.Context, description string) (int64, error) {
	row := q.db.QueryRowContext(ctx, countTransactionsByDescription, description)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const getTransactionAssets = `
SELECT TransactionId, Origin, Destination, Asset, AssetType
FROM TransactionAsset
WHERE TransactionId = ?
ORDER BY rowid
`

type TransactionAssetRow struct {
	TransactionID string
	Origin        string
	Destination   string
	Asset         string
	AssetType     string
}

func (q *Queries) GetTransactionAssets(ctx context.Context, transactionID string) ([]TransactionAssetRow, error) {
	rows, err := q.db.QueryContext(ctx, getTransactionAssets, transactionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []TransactionAssetRow
	for rows.Next() {
		var i TransactionAssetRow
		err := rows.Scan(
			&i.TransactionID,
			&i.Origin,
			&i.Destination,
			&i.Asset,
			&i.AssetType,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getTransactionDetailByDescription = `
SELECT TransactionId, TransactionDate, TransactionType, TransactionDescription, Verified
FROM TransactionDetail
WHERE TransactionDescription = ?
`

type TransactionDetailRow struct {
	TransactionID          string
	TransactionDate        int64
	TransactionType        string
	TransactionDescription string
	Verified               bool
}

func (q *Queries) GetTransactionDetailByDescription(ctx context.Context, description string) (TransactionDetailRow, error) {
	row := q.db.QueryRowContext(ctx, getTransactionDetailByDescription, description)
	var i TransactionDetailRow
	err := row.Scan(
		&i.TransactionID,
		&i.TransactionDate,
		&i.TransactionType,
		&i.TransactionDescription,
		&i.Verified,
	)
	return i, err
}
