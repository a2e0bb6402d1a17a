package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CleanText strips non-printable characters, collapses runs of inner
// whitespace to a single space and trims the result.
func CleanText(s string) string {
	s = removeNonPrintable(s)
	s = innerWhitespace.ReplaceAllString(s, " ")
	return strings.Trim(s, " \t\n")
}

type Anchor struct {
	Name string
	Href string
}

// FirstAnchor returns the first <a> element found inside the selection,
// with its text cleaned. A selection without anchors yields a zero Anchor.
func FirstAnchor(sel *goquery.Selection) Anchor {
	link := sel.Find("a").First()
	if link.Length() == 0 {
		return Anchor{}
	}
	return Anchor{
		Name: CleanText(GetText(link.Nodes[0])),
		Href: link.AttrOr("href", ""),
	}
}
