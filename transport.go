package redaxios

import (
	"context"
	"io"
	"net/http"
)

// CredentialsInclude is set on RequestInit when the resolved configuration
// asks for credentials to accompany the request.
const CredentialsInclude = "include"

// RequestInit is the wire-level request descriptor handed to a Fetch
// transport: everything the pipeline computed, nothing more.
type RequestInit struct {
	Method      string
	Body        io.Reader
	Headers     Headers
	Credentials string
}

// RawResponse is the transport's view of the exchange before normalization.
// The pipeline copies every field onto the Response it returns.
type RawResponse struct {
	Status     int
	StatusText string
	OK         bool
	Redirected bool
	URL        string
	Type       string
	Headers    Headers
	Body       io.ReadCloser
	BodyUsed   bool
}

// Fetch performs the actual network exchange. The pipeline is
// transport-agnostic: override per instance with WithFetch or per call via
// Config.Fetch. Cancellation is delegated entirely through ctx.
type Fetch func(ctx context.Context, url string, init *RequestInit) (*RawResponse, error)

// NewHTTPFetch adapts a *http.Client into a Fetch transport. A nil client
// uses http.DefaultClient. The Credentials field maps onto the client's
// cookie jar, so it is honored only when the client carries one.
func NewHTTPFetch(client *http.Client) Fetch {
	if client == nil {
		client = http.DefaultClient
	}
	return func(ctx context.Context, url string, init *RequestInit) (*RawResponse, error) {
		req, err := http.NewRequestWithContext(ctx, init.Method, url, init.Body)
		if err != nil {
			return nil, err
		}
		for name, value := range init.Headers {
			req.Header.Set(name, value)
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}

		headers := make(Headers, len(resp.Header))
		for name := range resp.Header {
			headers.Set(name, resp.Header.Get(name))
		}

		effectiveURL := url
		if resp.Request != nil && resp.Request.URL != nil {
			effectiveURL = resp.Request.URL.String()
		}

		return &RawResponse{
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			OK:         resp.StatusCode >= 200 && resp.StatusCode < 300,
			Redirected: effectiveURL != url,
			URL:        effectiveURL,
			Type:       "basic",
			Headers:    headers,
			Body:       resp.Body,
		}, nil
	}
}
