package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/penguinistakc/datalab/lib/restyutil"

	"github.com/go-resty/resty/v2"
)

const DefaultBaseUrl = "https://pokeapi.co/api/v2"

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

// Lookup fetches the pokemon with the given name and returns the decoded
// response object. Any failure, whether transport, status or decoding,
// collapses to nil; callers cannot tell "not found" apart from a network
// error, they only learn that no data is available.
func (c Client) Lookup(ctx context.Context, name string) map[string]any {
	endpoint := fmt.Sprintf("/pokemon/%s", strings.ToLower(name))

	res, err := c.http.R().
		SetContext(ctx).
		Get(endpoint)
	if err != nil {
		slog.WarnContext(ctx, "failed to fetch pokemon", "name", name, "err", err)
		return nil
	}
	if res.IsError() {
		slog.WarnContext(ctx, "pokemon lookup returned an error status", "name", name, "status", res.Status())
		return nil
	}

	var data map[string]any
	err = json.Unmarshal(res.Body(), &data)
	if err != nil {
		slog.WarnContext(ctx, "failed to decode pokemon response", "name", name, "err", err)
		return nil
	}
	return data
}
