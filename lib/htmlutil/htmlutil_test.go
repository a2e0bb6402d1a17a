package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"  Tommy   Tuberville \n", "Tommy Tuberville"},
		{"plain", "plain"},
		{"a\u0000b", "ab"},
		{"", ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, CleanText(test.input))
	}
}

func parseFragment(t *testing.T, fragment string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestGetText(t *testing.T) {
	doc := parseFragment(t, `<div>hello <b>nested <i>world</i></b>!</div>`)
	div := doc.Find("div")
	require.Equal(t, 1, len(div.Nodes))
	require.Equal(t, "hello nested world!", GetText(div.Nodes[0]))
}

func TestFirstAnchor(t *testing.T) {
	doc := parseFragment(t, `<td><a href="/wiki/Katie_Britt"> Katie  <b>Britt</b> </a><a href="/other">x</a></td>`)
	anchor := FirstAnchor(doc.Find("td"))
	require.Equal(t, "Katie Britt", anchor.Name)
	require.Equal(t, "/wiki/Katie_Britt", anchor.Href)
}

func TestFirstAnchorMissing(t *testing.T) {
	doc := parseFragment(t, `<td>no links here</td>`)
	require.Equal(t, Anchor{}, FirstAnchor(doc.Find("td")))
}
