package bbref

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bbref-transactions/lib/htmlutil"
	"bbref-transactions/lib/season"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/net/html"
)

var tracer = otel.Tracer("scrapers/bbref")

// ParseSeason parses one season page's day blocks into transactions.
//
// Failure isolation is per day block: a fatal error inside a statement
// (no type keyword, unknown asset link) logs, discards everything parsed
// from that block, and moves on to the next block.
func ParseSeason(ctx context.Context, dayBlocks *goquery.Selection, seasonYear int) []Transaction {
	ctx, span := tracer.Start(ctx, "ParseSeason")
	defer span.End()
	span.SetAttributes(attribute.Int("season_year", seasonYear))

	var out []Transaction
	dayBlocks.Each(func(_ int, day *goquery.Selection) {
		transactions, err := parseDay(ctx, day, seasonYear)
		if err != nil {
			slog.ErrorContext(ctx, "failed to parse day block", "err", err)
			span.RecordError(err)
			return
		}
		out = append(out, transactions...)
	})

	return out
}

// parseDay parses every non-blank statement of one day block. The first
// error aborts the rest of the block and drops its records.
func parseDay(ctx context.Context, day *goquery.Selection, seasonYear int) ([]Transaction, error) {
	if len(day.Nodes) == 0 {
		return nil, nil
	}
	date := dayDate(day.Nodes[0], seasonYear)

	var transactions []Transaction
	var parseErr error
	day.Find("p").EachWithBreak(func(_ int, statement *goquery.Selection) bool {
		node := statement.Nodes[0]
		description := htmlutil.GetText(node)
		if strings.TrimSpace(description) == "" {
			return true
		}

		transaction, err := parseStatement(ctx, node, date, description)
		if err != nil {
			parseErr = err
			return false
		}
		transactions = append(transactions, transaction)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return transactions, nil
}

// dayDate reads the block's leading label. Labels that aren't a full
// calendar date ("1976 NBA Expansion Draft") get a best-effort guess.
func dayDate(day *html.Node, seasonYear int) time.Time {
	label := ""
	if day.FirstChild != nil {
		label = htmlutil.GetText(day.FirstChild)
	}
	return season.ParseDate(label, seasonYear)
}

// parseStatement builds the header and assets for a single statement. The
// generated id ties every asset back to its header.
func parseStatement(ctx context.Context, statement *html.Node, date time.Time, description string) (Transaction, error) {
	ttype, err := classifyType(statement, description)
	if err != nil {
		return Transaction{}, err
	}

	id := uuid.New()
	header := TransactionHeader{
		ID:          id,
		Date:        date,
		Type:        ttype,
		Description: description,
	}

	origins, destinations, assetNodes := collectAssets(ctx, statement)

	var assets []TransactionAsset
	for _, node := range assetNodes {
		origin, destination := resolveOriginDestination(origins, destinations, node)
		assetType, err := classifyAssetType(node)
		if err != nil {
			return Transaction{}, err
		}

		for _, asset := range expandAsset(node) {
			assets = append(assets, TransactionAsset{
				HeaderID:    id,
				Origin:      origin,
				Destination: destination,
				Asset:       asset,
				AssetType:   assetType,
			})
		}
	}

	return Transaction{Header: header, Assets: assets}, nil
}

// expandAsset turns an asset node into its asset strings: the link target
// for hyperlinks, otherwise the cash/draft pick tokens its text mentions.
func expandAsset(node assetNode) []string {
	if node.isLink {
		return []string{node.link}
	}

	var out []string
	if strings.Contains(node.text, " sold ") || strings.Contains(node.text, " cash") {
		out = append(out, parseCashConsiderations(node)...)
	}
	if strings.Contains(node.text, "future draft pick") || strings.Contains(node.text, "round draft pick") {
		out = append(out, parseDraftPicks(node)...)
	}
	return out
}
