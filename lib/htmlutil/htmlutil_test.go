package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseFragment(t *testing.T, fragment string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestPositions(t *testing.T) {
	doc := parseFragment(t, `<p><a href="/x">Alpha</a> went to <a href="/y">Beta</a>.</p>`)
	p := doc.Find("p").Nodes[0]

	positions := Positions(p)

	text := GetText(p)
	require.Equal(t, "Alpha went to Beta.", text)

	byText := map[string]int{}
	for _, pn := range positions {
		byText[strings.TrimSpace(GetText(pn.Node))] = pn.Pos
	}

	require.Equal(t, 0, byText["Alpha"])
	require.Less(t, byText["Alpha"], byText["went to"])
	require.Less(t, byText["went to"], byText["Beta"])

	// anchors and their inner text nodes share a start offset
	count := 0
	for _, pn := range positions {
		if strings.TrimSpace(GetText(pn.Node)) == "Beta" {
			count++
			require.Equal(t, len("Alpha went to "), pn.Pos)
		}
	}
	require.Equal(t, 2, count)
}

func TestFirstAttr(t *testing.T) {
	doc := parseFragment(t, `<p><a data-attr-from="MIA" href="/teams/MIA">Miami</a><b>none</b></p>`)

	name, value, ok := FirstAttr(doc.Find("a").Nodes[0])
	require.True(t, ok)
	require.Equal(t, "data-attr-from", name)
	require.Equal(t, "MIA", value)

	_, _, ok = FirstAttr(doc.Find("b").Nodes[0])
	require.False(t, ok)
}
