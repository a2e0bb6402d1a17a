package restyutil

import (
	"log/slog"

	"github.com/go-resty/resty/v2"
)

// NewClient builds a resty client rooted at baseUrl that identifies itself
// with the given User-Agent on every request and logs request/response
// pairs at debug level.
func NewClient(baseUrl, userAgent string) *resty.Client {
	client := resty.New().
		SetBaseURL(baseUrl).
		SetHeader("User-Agent", userAgent)

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		slog.DebugContext(req.Context(), "start request", "method", req.Method, "url", req.URL)
		return nil
	})
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		slog.DebugContext(
			res.Request.Context(), "end request",
			"method", res.Request.Method,
			"url", res.Request.URL,
			"status", res.StatusCode(),
			"duration", res.Time().String(),
		)
		return nil
	})

	return client
}
