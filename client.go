package redaxios

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/AnLe2310/redaxios/internal/cookies"
)

// CookieSource supplies the ambient document.cookie-shaped string used for
// XSRF token extraction. Read-only; any error is recovered silently and the
// request proceeds without the token.
type CookieSource func() (string, error)

// Client is an HTTP request façade around a pluggable Fetch transport. Each
// call merges the instance defaults with the call-site configuration, builds
// the wire request and normalizes the raw result into a *Response. A Client
// is safe for concurrent use: in-flight calls copy configuration at start,
// so mutating Defaults mid-flight does not affect them.
type Client struct {
	defaults        *Config
	fetch           Fetch
	httpClient      *http.Client
	cookieSource    CookieSource
	logger          Logger
	debug           *DebugConfig
	metrics         *MetricsCollector
	validationError error
}

// New constructs a Client using the provided functional options. A best
// effort validation is performed; call IsValid / ValidationError for errors.
func New(options ...Option) *Client {
	client := &Client{
		defaults: &Config{},
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		debug: DefaultDebugConfig(),
	}

	for _, option := range options {
		option(client)
	}

	if client.fetch == nil {
		client.fetch = NewHTTPFetch(client.httpClient)
	}

	if err := client.ValidateConfiguration(); err != nil {
		client.validationError = err
	}

	return client
}

// Create spawns an independent child instance whose defaults are this
// instance's defaults merged with the supplied configuration. Transport,
// logger, metrics and cookie source carry over; the instances share no
// mutable state afterwards.
func (c *Client) Create(defaults *Config) *Client {
	child := &Client{
		defaults:     resolveConfig(c.defaults, defaults),
		fetch:        c.fetch,
		httpClient:   c.httpClient,
		cookieSource: c.cookieSource,
		logger:       c.logger,
		debug:        c.debug,
		metrics:      c.metrics,
	}
	if err := child.ValidateConfiguration(); err != nil {
		child.validationError = err
	}
	return child
}

// Defaults returns the mutable instance configuration used as the merge base
// for every call made through this instance.
func (c *Client) Defaults() *Config {
	return c.defaults
}

// SetDefaults replaces the instance configuration.
func (c *Client) SetDefaults(cfg *Config) {
	if cfg == nil {
		cfg = &Config{}
	}
	c.defaults = cfg
}

// Request performs a request against url with an optional per-call
// configuration. Method falls back to the configured one, then to GET.
func (c *Client) Request(ctx context.Context, url string, cfg *Config) (*Response, error) {
	return c.execute(ctx, url, cfg, "", nil)
}

// Do performs a request described entirely by cfg; the URL is taken from
// cfg.URL (empty string if absent).
func (c *Client) Do(ctx context.Context, cfg *Config) (*Response, error) {
	return c.execute(ctx, "", cfg, "", nil)
}

// Get performs an HTTP GET.
func (c *Client) Get(ctx context.Context, url string, cfg *Config) (*Response, error) {
	return c.execute(ctx, url, cfg, "get", nil)
}

// Delete performs an HTTP DELETE.
func (c *Client) Delete(ctx context.Context, url string, cfg *Config) (*Response, error) {
	return c.execute(ctx, url, cfg, "delete", nil)
}

// Head performs an HTTP HEAD.
func (c *Client) Head(ctx context.Context, url string, cfg *Config) (*Response, error) {
	return c.execute(ctx, url, cfg, "head", nil)
}

// Options performs an HTTP OPTIONS.
func (c *Client) Options(ctx context.Context, url string, cfg *Config) (*Response, error) {
	return c.execute(ctx, url, cfg, "options", nil)
}

// Post performs an HTTP POST with an explicit body.
func (c *Client) Post(ctx context.Context, url string, body any, cfg *Config) (*Response, error) {
	return c.execute(ctx, url, cfg, "post", body)
}

// Put performs an HTTP PUT with an explicit body.
func (c *Client) Put(ctx context.Context, url string, body any, cfg *Config) (*Response, error) {
	return c.execute(ctx, url, cfg, "put", body)
}

// Patch performs an HTTP PATCH with an explicit body.
func (c *Client) Patch(ctx context.Context, url string, body any, cfg *Config) (*Response, error) {
	return c.execute(ctx, url, cfg, "patch", body)
}

// GetJSON performs a GET and unmarshals the response body into v.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	resp, err := c.Get(ctx, url, nil)
	if err != nil {
		return err
	}
	return resp.JSON(v)
}

// PostJSON performs a POST with in as the JSON body and unmarshals the
// response into out when out is non-nil.
func (c *Client) PostJSON(ctx context.Context, url string, in, out any) error {
	resp, err := c.Post(ctx, url, in, nil)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return resp.JSON(out)
}

// execute is the request pipeline: resolve configuration, run the body
// transform chain, assemble headers and URL, invoke the transport and
// normalize the result. Exactly one *Response is produced per completed
// exchange; a failed status validation returns it alongside a *RequestError
// of type Status wrapping the same Response.
func (c *Client) execute(ctx context.Context, url string, cfg *Config, methodOverride string, body any) (*Response, error) {
	start := time.Now()

	resolved := resolveConfig(c.defaults, cfg)
	if url == "" {
		url = resolved.URL
	}

	method := methodOverride
	if method == "" {
		method = resolved.Method
	}
	if method == "" {
		method = "get"
	}
	method = strings.ToUpper(method)

	var requestID string
	if c.debug != nil && c.debug.Enabled && c.debug.RequestIDGen != nil {
		requestID = c.debug.RequestIDGen()
	}

	c.metrics.RecordRequestStart(method)
	defer c.metrics.RecordRequestEnd(method)

	data := resolved.Data
	if body != nil {
		data = body
	}

	if resolved.Headers == nil {
		resolved.Headers = make(Headers)
	}

	for _, transform := range resolved.TransformRequest {
		if transform == nil {
			continue
		}
		if out := transform(data, resolved.Headers); !emptyBody(out) {
			data = out
		}
	}

	// Internally computed headers; merged last with case folding so they
	// win over same-named caller headers.
	computed := make(Headers)

	if resolved.Auth != "" {
		computed.Set("authorization", resolved.Auth)
	}

	bodyReader, err := encodeBody(data, computed)
	if err != nil {
		c.metrics.RecordError(ErrorTypeEncode, method)
		return nil, &RequestError{
			Type:    ErrorTypeEncode,
			Message: "failed to encode request body",
			Cause:   err,
			Method:  method,
			URL:     url,
		}
	}

	if resolved.XSRFCookieName != "" && resolved.XSRFHeaderName != "" && c.cookieSource != nil {
		if cookieString, err := c.cookieSource(); err == nil {
			if token, ok := cookies.Value(cookieString, resolved.XSRFCookieName); ok {
				computed.Set(resolved.XSRFHeaderName, token)
			}
		}
	}

	if resolved.BaseURL != "" && !strings.Contains(url, "//") {
		url = resolved.BaseURL + "/" + strings.TrimPrefix(url, "/")
	}

	if resolved.Params != nil {
		serialize := resolved.ParamsSerializer
		if serialize == nil {
			serialize = defaultSerializeParams
		}
		separator := "?"
		if strings.Contains(url, "?") {
			separator = "&"
		}
		url += separator + serialize(resolved.Params)
	}

	headers := mergeHeaders(resolved.Headers, computed)

	credentials := ""
	if resolved.WithCredentials {
		credentials = CredentialsInclude
	}

	fetch := resolved.Fetch
	if fetch == nil {
		fetch = c.fetch
	}

	if c.debug != nil && c.debug.Enabled && c.debug.LogRequests && c.logger != nil {
		c.logger.Debug("Starting request", "requestID", requestID, "method", method, "url", url)
	}

	raw, err := fetch(ctx, url, &RequestInit{
		Method:      method,
		Body:        bodyReader,
		Headers:     headers,
		Credentials: credentials,
	})
	if err != nil {
		c.metrics.RecordError(ErrorTypeNetwork, method)

		if c.debug != nil && c.debug.Enabled && c.debug.LogResponses && c.logger != nil {
			c.logger.Debug("Request failed", "requestID", requestID, "error", err.Error())
		}

		return nil, &RequestError{
			Type:    ErrorTypeNetwork,
			Message: "network request failed",
			Cause:   err,
			Method:  method,
			URL:     url,
		}
	}

	responseType := resolved.ResponseType
	if responseType == "" {
		responseType = "text"
	}

	response := newResponse(raw, resolved, responseType)
	response.decodeBody()

	c.metrics.RecordRequest(method, raw.Status, time.Since(start))

	if responseType == "stream" {
		return response, nil
	}

	ok := raw.OK
	if resolved.ValidateStatus != nil {
		ok = resolved.ValidateStatus(raw.Status)
	}

	if c.debug != nil && c.debug.Enabled && c.debug.LogResponses && c.logger != nil {
		c.logger.Debug("Request settled", "requestID", requestID, "status", raw.Status, "ok", ok)
	}

	if !ok {
		c.metrics.RecordError(ErrorTypeStatus, method)
		return response, &RequestError{
			Type:     ErrorTypeStatus,
			Message:  "request failed status validation",
			Method:   method,
			URL:      url,
			Status:   raw.Status,
			Response: response,
		}
	}

	return response, nil
}

// IsValid reports whether configuration validation passed at construction.
func (c *Client) IsValid() bool {
	return c.validationError == nil
}

// ValidationError returns the configuration validation error, if any.
func (c *Client) ValidationError() error {
	return c.validationError
}
