package senate

import (
	"errors"
	"strings"

	"github.com/penguinistakc/datalab/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

var errNoRosterTable = errors.New("no sortable table with State and Senator header columns")

// findRosterTable picks the senators table out of the page's sortable
// tables by looking for the expected header columns, rather than trusting
// a positional index that breaks whenever an editor adds a table above it.
func findRosterTable(doc *goquery.Document) (*goquery.Selection, error) {
	var table *goquery.Selection
	doc.Find("table.sortable").EachWithBreak(func(_ int, t *goquery.Selection) bool {
		hasState := false
		hasSenator := false
		t.Find("tr").First().Find("th").Each(func(_ int, th *goquery.Selection) {
			header := htmlutil.CleanText(th.Text())
			if strings.Contains(header, "State") {
				hasState = true
			}
			if strings.Contains(header, "Senator") {
				hasSenator = true
			}
		})
		if hasState && hasSenator {
			table = t
			return false
		}
		return true
	})

	if table == nil {
		return nil, errNoRosterTable
	}
	return table, nil
}

// parseRoster walks the roster table in document order, carrying the state
// of the last explicit merge cell forward into rows that omit it. Rows
// without a <th> row header are continuations and are skipped; a row with a
// header but no established state yet is dropped.
func parseRoster(doc *goquery.Document) ([]Senator, error) {
	table, err := findRosterTable(doc)
	if err != nil {
		return nil, err
	}

	notes := newFootnoteIndex(doc)

	var roster []Senator
	currentState := ""

	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		// state cells span both of a state's senator rows
		stateCell := row.Find(`td[rowspan="2"]`).First()
		if stateCell.Length() > 0 {
			currentState = htmlutil.CleanText(stateCell.Text())
		}

		nameCell := row.Find("th").First()
		if nameCell.Length() == 0 || currentState == "" {
			return
		}

		name := htmlutil.CleanText(nameCell.Text())
		wikiPath := htmlutil.FirstAnchor(nameCell).Href

		// the party name is two td siblings over: the first is an
		// empty color swatch
		partyCell := nameCell.NextAllFiltered("td").Eq(1)

		note := ""
		partyCell.Find("sup").Each(func(_ int, sup *goquery.Selection) {
			href := sup.Find("a").First().AttrOr("href", "")
			if strings.HasPrefix(href, "#cite_note") {
				note = notes.resolve(strings.TrimPrefix(href, "#"))
			}
			// drop the marker so it doesn't bleed into the party text
			sup.Remove()
		})

		roster = append(roster, Senator{
			Name:     name,
			State:    currentState,
			Party:    htmlutil.CleanText(partyCell.Text()),
			Notes:    note,
			WikiPath: wikiPath,
		})
	})

	return roster, nil
}
