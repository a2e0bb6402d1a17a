package senate

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/penguinistakc/datalab/lib/htmlutil"
	"github.com/penguinistakc/datalab/lib/restyutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/senate")

const DefaultBaseUrl = "https://en.wikipedia.org"

const rosterPath = "/wiki/List_of_current_United_States_senators"

// Senator is one row of the roster table. Website starts out empty and is
// filled in once by the enrichment pass; State is carried forward from the
// last row that had an explicit merge cell.
type Senator struct {
	Name     string
	State    string
	Party    string
	Notes    string
	WikiPath string
	Website  string
}

type Client struct {
	http *resty.Client
}

type ClientOptions struct {
	// defaults to DefaultBaseUrl
	BaseUrl   string
	UserAgent string
}

func NewClient(opts ClientOptions) Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	return Client{
		http: restyutil.NewClient(baseUrl, opts.UserAgent),
	}
}

// Roster scrapes the list of current senators and fetches each senator's
// website through the enrichment pool. A failure fetching the listing page
// itself is fatal; everything downstream degrades per-row instead.
func (c Client) Roster(ctx context.Context) ([]Senator, error) {
	ctx, span := tracer.Start(ctx, "client:Roster")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get(rosterPath)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch roster page")
		return nil, err
	}
	if res.IsError() {
		err = fmt.Errorf("roster page returned %s", res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "roster page returned error status")
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, err
	}

	roster, err := parseRoster(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse roster table")
		return nil, err
	}
	span.SetAttributes(attribute.Int("senators", len(roster)))

	slog.InfoContext(ctx, "fetching website urls", "senators", len(roster))
	enrichWebsites(ctx, roster, c.fetchWebsite)

	return roster, nil
}

// fetchWebsite pulls a senator's own page and reads the website link out of
// the infobox sidebar.
func (c Client) fetchWebsite(ctx context.Context, wikiPath string) (string, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(wikiPath)
	if err != nil {
		return "", err
	}
	if res.IsError() {
		return "", fmt.Errorf("senator page returned %s", res.Status())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return "", err
	}

	website := ""
	doc.Find("table.infobox th").EachWithBreak(func(_ int, th *goquery.Selection) bool {
		if !strings.Contains(th.Text(), "Website") {
			return true
		}
		td := th.NextFiltered("td")
		if td.Length() == 0 {
			return true
		}
		website = htmlutil.FirstAnchor(td).Href
		return website == ""
	})

	return website, nil
}
