package senate

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// bracketed citation numbers like " [15]", with optional whitespace
// inside and in front of the brackets
var citationNumbers = regexp.MustCompile(`\s*\[\s*\d+\s*\]`)

// footnoteIndex resolves #cite_note references against the references
// section of the page. Resolutions are memoized, so resolving the same id
// twice always yields the same text.
type footnoteIndex struct {
	doc      *goquery.Document
	resolved map[string]string
}

func newFootnoteIndex(doc *goquery.Document) *footnoteIndex {
	return &footnoteIndex{
		doc:      doc,
		resolved: map[string]string{},
	}
}

func (f *footnoteIndex) resolve(id string) string {
	if text, ok := f.resolved[id]; ok {
		return text
	}

	// matched by attribute comparison rather than a CSS id selector:
	// editor-named refs produce ids like "cite_note-:0-12" whose colon
	// would make an "#id" selector invalid
	text := ""
	f.doc.Find("li[id]").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		if item.AttrOr("id", "") != id {
			return true
		}
		// the list item holds a backlink span ("^ a b") before the
		// span with the actual note text
		ref := item.Find("span.reference-text").First()
		if ref.Length() > 0 {
			text = citationNumbers.ReplaceAllString(ref.Text(), "")
			text = strings.TrimSpace(text)
		}
		return false
	})

	f.resolved[id] = text
	return text
}
