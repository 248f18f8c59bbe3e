package bbref

import (
	"context"
	"strings"
	"testing"
	"time"

	"bbref-transactions/lib/timezone"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func dayBlocks(t *testing.T, fragment string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		t.Fatal(err)
	}
	sel := doc.Find(".page_index li")
	require.NotEmpty(t, sel.Nodes)
	return sel
}

func TestParseTrade(t *testing.T) {
	blocks := dayBlocks(t, `<ul class="page_index">
		<li><span>February 6, 2020</span>
		<p><a data-attr-from="MIA">Miami Heat</a> traded G <a href="/players/s/smithal01.html">Alpha Smith</a> to the <a data-attr-to="BOS">Boston Celtics</a>.</p></li>
	</ul>`)

	parsed := ParseSeason(context.Background(), blocks, 2020)
	require.Len(t, parsed, 1)

	header := parsed[0].Header
	require.Equal(t, TypeTrade, header.Type)
	require.Equal(t, time.Date(2020, time.February, 6, 0, 0, 0, 0, timezone.Location), header.Date)
	require.Contains(t, header.Description, "traded G Alpha Smith")
	require.False(t, header.Verified)

	require.Len(t, parsed[0].Assets, 1)
	asset := parsed[0].Assets[0]
	require.Equal(t, header.ID, asset.HeaderID)
	require.Equal(t, "MIA", asset.Origin)
	require.Equal(t, "BOS", asset.Destination)
	require.Equal(t, "/players/s/smithal01.html", asset.Asset)
	require.Equal(t, AssetPlayer, asset.AssetType)
}

func TestParseSoldPickFlipsDirection(t *testing.T) {
	blocks := dayBlocks(t, `<ul class="page_index">
		<li><span>July 30, 2020</span>
		<p><a data-attr-from="LAL">Los Angeles Lakers</a> sold a 2021 2nd round draft pick to the <a data-attr-to="DEN">Denver Nuggets</a>.</p></li>
	</ul>`)

	parsed := ParseSeason(context.Background(), blocks, 2021)
	require.Len(t, parsed, 1)
	require.Equal(t, TypeTrade, parsed[0].Header.Type)

	// a sale mentions both cash and the pick
	require.Len(t, parsed[0].Assets, 2)
	for _, asset := range parsed[0].Assets {
		require.Equal(t, "DEN", asset.Origin)
		require.Equal(t, "LAL", asset.Destination)
		require.Equal(t, AssetOther, asset.AssetType)
	}
	require.Equal(t, "Cash Considerations", parsed[0].Assets[0].Asset)
	require.Equal(t, "2021 2nd Round Draft Pick", parsed[0].Assets[1].Asset)
}

func TestParseFutureDraftPick(t *testing.T) {
	blocks := dayBlocks(t, `<ul class="page_index">
		<li><span>June 23, 2020</span>
		<p><a data-attr-from="NYK">New York Knicks</a> traded a future draft pick to the <a data-attr-to="PHO">Phoenix Suns</a>.</p></li>
	</ul>`)

	parsed := ParseSeason(context.Background(), blocks, 2020)
	require.Len(t, parsed, 1)
	require.Len(t, parsed[0].Assets, 1)

	asset := parsed[0].Assets[0]
	require.Equal(t, "NYK", asset.Origin)
	require.Equal(t, "PHO", asset.Destination)
	require.Equal(t, "Future Draft Pick", asset.Asset)
	require.Equal(t, AssetOther, asset.AssetType)
}

func TestParseCashWithoutMarkers(t *testing.T) {
	blocks := dayBlocks(t, `<ul class="page_index">
		<li><span>January 7, 2020</span>
		<p>Trade: the Hawks received cash considerations.</p></li>
	</ul>`)

	parsed := ParseSeason(context.Background(), blocks, 2020)
	require.Len(t, parsed, 1)
	require.Len(t, parsed[0].Assets, 1)

	asset := parsed[0].Assets[0]
	require.Equal(t, FreeAgent, asset.Origin)
	require.Equal(t, FreeAgent, asset.Destination)
	require.Equal(t, "Cash Considerations", asset.Asset)
	require.Equal(t, AssetOther, asset.AssetType)
}

func TestParseDayBlockIsolation(t *testing.T) {
	// the second statement of the first block has no type keyword, which
	// kills the whole block, including its already parsed first statement.
	// the second block is unaffected.
	blocks := dayBlocks(t, `<ul class="page_index">
		<li><span>March 1, 2020</span>
		<p><a data-attr-from="MIA">Miami Heat</a> waived <a href="/players/g/guyso01.html">Some Guy</a>.</p>
		<p>Atlanta Hawks exercised an option on <a href="/players/p/playerx01.html">Player X</a>.</p></li>
		<li><span>March 2, 2020</span>
		<p>The <a data-attr-to="BOS">Boston Celtics</a> signed <a href="/players/o/otherg01.html">Other Guy</a>.</p></li>
	</ul>`)

	parsed := ParseSeason(context.Background(), blocks, 2020)
	require.Len(t, parsed, 1)
	require.Equal(t, TypeSigning, parsed[0].Header.Type)
	require.Equal(t, time.Date(2020, time.March, 2, 0, 0, 0, 0, timezone.Location), parsed[0].Header.Date)
}

func TestParseUnknownAssetLinkKillsBlock(t *testing.T) {
	blocks := dayBlocks(t, `<ul class="page_index">
		<li><span>March 3, 2020</span>
		<p>The <a data-attr-to="BOS">Boston Celtics</a> signed <a href="/referees/w/whistl01.html">A Referee</a>.</p></li>
	</ul>`)

	parsed := ParseSeason(context.Background(), blocks, 2020)
	require.Empty(t, parsed)
}

func TestParseSkipsAnomalousAnchor(t *testing.T) {
	// an anchor with an unrecognized first attribute is skipped without
	// aborting the statement
	blocks := dayBlocks(t, `<ul class="page_index">
		<li><span>March 4, 2020</span>
		<p>The <a data-attr-to="BOS">Boston Celtics</a> signed <a data-stat="x">nobody</a> and <a href="/players/o/otherg01.html">Other Guy</a>.</p></li>
	</ul>`)

	parsed := ParseSeason(context.Background(), blocks, 2020)
	require.Len(t, parsed, 1)
	require.Len(t, parsed[0].Assets, 1)
	require.Equal(t, "/players/o/otherg01.html", parsed[0].Assets[0].Asset)
}

func TestParseSkipsBlankStatements(t *testing.T) {
	blocks := dayBlocks(t, `<ul class="page_index">
		<li><span>March 5, 2020</span>
		<p>  </p>
		<p></p>
		<p><a href="/players/o/oldguy01.html">Old Guy</a> announced his retirement.</p></li>
	</ul>`)

	parsed := ParseSeason(context.Background(), blocks, 2020)
	require.Len(t, parsed, 1)
	require.Equal(t, TypeRetirement, parsed[0].Header.Type)
}

func TestParseHeaderWithoutAssets(t *testing.T) {
	blocks := dayBlocks(t, `<ul class="page_index">
		<li><span>March 6, 2020</span>
		<p>The Suns suspended their starting center for three games.</p></li>
	</ul>`)

	parsed := ParseSeason(context.Background(), blocks, 2020)
	require.Len(t, parsed, 1)
	require.Equal(t, TypeSuspension, parsed[0].Header.Type)
	require.Empty(t, parsed[0].Assets)
}

func TestParseDistinctHeaderIds(t *testing.T) {
	blocks := dayBlocks(t, `<ul class="page_index">
		<li><span>March 7, 2020</span>
		<p>The <a data-attr-to="BOS">Boston Celtics</a> signed <a href="/players/a/aguy01.html">A Guy</a>.</p>
		<p>The <a data-attr-to="NYK">New York Knicks</a> signed <a href="/players/b/bguy01.html">B Guy</a>.</p></li>
	</ul>`)

	parsed := ParseSeason(context.Background(), blocks, 2020)
	require.Len(t, parsed, 2)
	require.NotEqual(t, parsed[0].Header.ID, parsed[1].Header.ID)
	for _, transaction := range parsed {
		for _, asset := range transaction.Assets {
			require.Equal(t, transaction.Header.ID, asset.HeaderID)
		}
	}
}

func TestParseGuessedDateLabel(t *testing.T) {
	blocks := dayBlocks(t, `<ul class="page_index">
		<li><span>1976 NBA Expansion Draft</span>
		<p>The <a data-attr-to="DAL">Dallas Mavericks</a> drafted <a href="/players/e/expans01.html">Expansion Player</a>.</p></li>
	</ul>`)

	parsed := ParseSeason(context.Background(), blocks, 1976)
	require.Len(t, parsed, 1)
	require.Equal(t, time.Date(1976, time.January, 1, 0, 0, 0, 0, timezone.Location), parsed[0].Header.Date)
}

func TestParseCoachAndExecutiveLinks(t *testing.T) {
	blocks := dayBlocks(t, `<ul class="page_index">
		<li><span>May 1, 2020</span>
		<p>The <a data-attr-to="BKN">Brooklyn Nets</a> hired <a href="/coaches/c/coachjo01.html">Coach Jones</a>.</p>
		<p>The <a data-attr-to="BKN">Brooklyn Nets</a> hired <a href="/executives/g/gmguy01.html">GM Guy</a>.</p></li>
	</ul>`)

	parsed := ParseSeason(context.Background(), blocks, 2020)
	require.Len(t, parsed, 2)
	require.Equal(t, AssetCoach, parsed[0].Assets[0].AssetType)
	require.Equal(t, AssetExecutive, parsed[1].Assets[0].AssetType)
	for _, transaction := range parsed {
		require.Equal(t, TypeSigning, transaction.Header.Type)
		require.Equal(t, FreeAgent, transaction.Assets[0].Origin)
		require.Equal(t, "BKN", transaction.Assets[0].Destination)
	}
}
