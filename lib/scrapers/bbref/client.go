package bbref

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"bbref-transactions/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const seasonPageFormat = "https://www.basketball-reference.com/leagues/NBA_%d_transactions.html"

type Client struct {
	http *resty.Client
}

func NewClient() *Client {
	client := resty.New()
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/bbref/http")

	return &Client{http: client}
}

// FetchSeason downloads one season's transaction page and returns its day
// block nodes in document order.
func (c *Client) FetchSeason(ctx context.Context, seasonYear int) (*goquery.Selection, error) {
	ctx, span := tracer.Start(ctx, "FetchSeason")
	defer span.End()
	span.SetAttributes(attribute.Int("season_year", seasonYear))

	res, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf(seasonPageFormat, seasonYear))
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch season page")
		return nil, err
	}
	if res.StatusCode() != 200 {
		span.SetStatus(codes.Error, "unexpected status code")
		return nil, fmt.Errorf("unexpected status %d fetching season %d", res.StatusCode(), seasonYear)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, err
	}

	return doc.Find(".page_index li"), nil
}
