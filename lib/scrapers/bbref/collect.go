package bbref

import (
	"context"
	"log/slog"
	"strings"

	"bbref-transactions/lib/htmlutil"

	"golang.org/x/net/html"
)

// teamMarker is a hyperlink that names the team on one side of an asset
// move. Its first attribute holds the three letter team code.
type teamMarker struct {
	team string
	pos  int
}

// assetNode is a node that carries an asset: either a hyperlink to a
// player/coach/executive page, or a text span mentioning draft picks or
// cash.
type assetNode struct {
	node *html.Node
	pos  int
	// first attribute value when the node is a hyperlink
	link   string
	isLink bool
	// lowercased rendered text
	text string
}

// textAssetPhrases mark a non-link node as carrying draft pick or cash
// mentions.
var textAssetPhrases = []string{
	"future draft pick",
	"round draft pick",
	" sold ",
	" cash",
}

// collectAssets walks the statement's descendants once, in document order,
// splitting them into origin markers, destination markers, and asset
// nodes. Each is tagged with its text start offset so the resolver can
// compare positions without re-walking the tree.
//
// A hyperlink whose first attribute is none of the recognized markers is
// logged and skipped; it does not abort the statement.
func collectAssets(ctx context.Context, statement *html.Node) (origins, destinations []teamMarker, assets []assetNode) {
	for _, pn := range htmlutil.Positions(statement) {
		if pn.Node.Type == html.ElementNode && pn.Node.Data == "a" {
			name, value, ok := htmlutil.FirstAttr(pn.Node)
			if !ok {
				slog.WarnContext(ctx, "skipping anchor without attributes")
				continue
			}
			switch strings.ToLower(name) {
			case "data-attr-from":
				origins = append(origins, teamMarker{team: value, pos: pn.Pos})
			case "data-attr-to":
				destinations = append(destinations, teamMarker{team: value, pos: pn.Pos})
			case "href":
				assets = append(assets, assetNode{
					node:   pn.Node,
					pos:    pn.Pos,
					link:   value,
					isLink: true,
					text:   strings.ToLower(htmlutil.GetText(pn.Node)),
				})
			default:
				slog.WarnContext(ctx, "skipping anchor with unexpected attribute", "attribute", name)
			}
			continue
		}

		text := strings.ToLower(htmlutil.GetText(pn.Node))
		for _, phrase := range textAssetPhrases {
			if strings.Contains(text, phrase) {
				assets = append(assets, assetNode{
					node: pn.Node,
					pos:  pn.Pos,
					text: text,
				})
				break
			}
		}
	}

	return origins, destinations, assets
}
