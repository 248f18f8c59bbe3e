package bbref

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"bbref-transactions/lib/textutil"

	"golang.org/x/net/html"
)

const draftPickPhrase = "draft pick"

var nonDigits = regexp.MustCompile(`\D+`)

// parseDraftPicks extracts every draft pick mentioned in a text asset
// node. The text splits into one segment per "draft pick" occurrence; in
// each segment a lone digit names the round and a four digit run names the
// year, with the year defaulting to "Future" when absent.
//
// A text node immediately followed by a hyperlink sibling emits nothing:
// the pick there is a standalone link and gets picked up as a link asset
// instead.
func parseDraftPicks(asset assetNode) []string {
	if followedByLink(asset.node) {
		return nil
	}

	var picks []string
	prev := 0
	for _, end := range draftPickBoundaries(asset.text) {
		segment := asset.text[prev:end]
		prev = end

		year := "Future"
		round := ""
		for _, run := range nonDigits.Split(segment, -1) {
			switch len(run) {
			case 1:
				if n, err := strconv.Atoi(run); err == nil {
					round = fmt.Sprintf(" %s Round", textutil.Ordinal(n))
				}
			case 4:
				if _, err := strconv.Atoi(run); err == nil {
					year = run
				}
			}
		}

		picks = append(picks, fmt.Sprintf("%s%s Draft Pick", year, round))
	}

	return picks
}

// draftPickBoundaries returns the offset just past each "draft pick"
// occurrence, marking the end of that pick's segment.
func draftPickBoundaries(text string) []int {
	var boundaries []int
	offset := 0
	for {
		idx := strings.Index(text[offset:], draftPickPhrase)
		if idx == -1 {
			return boundaries
		}
		offset += idx + len(draftPickPhrase)
		boundaries = append(boundaries, offset)
	}
}

func followedByLink(node *html.Node) bool {
	sibling := node.NextSibling
	if sibling == nil || len(sibling.Attr) == 0 {
		return false
	}
	return strings.ToLower(sibling.Attr[0].Key) == "href"
}
