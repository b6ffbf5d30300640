package redaxios

import (
	"fmt"
	"net/http"
	"time"
)

// Option represents a configuration option
type Option func(*Client)

// WithDefaults sets the instance default configuration.
func WithDefaults(cfg *Config) Option {
	return func(c *Client) {
		if cfg != nil {
			c.defaults = cfg
		}
	}
}

// WithBaseURL sets the base URL prepended to relative request URLs.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.defaults.BaseURL = baseURL
	}
}

// WithHeader adds a default header sent with every request. Per-call headers
// with the same name override it; internally computed headers always win.
func WithHeader(name, value string) Option {
	return func(c *Client) {
		if c.defaults.Headers == nil {
			c.defaults.Headers = make(Headers)
		}
		c.defaults.Headers.Set(name, value)
	}
}

// WithAuth sets the literal authorization header value for every request.
// No encoding scheme is imposed; supply the exact value, e.g. a pre-built
// Basic token.
func WithAuth(auth string) Option {
	return func(c *Client) {
		c.defaults.Auth = auth
	}
}

// WithValidateStatus sets the default success predicate for raw status codes.
func WithValidateStatus(fn ValidateStatus) Option {
	return func(c *Client) {
		c.defaults.ValidateStatus = fn
	}
}

// WithXSRF configures cookie-to-header XSRF token echoing.
func WithXSRF(cookieName, headerName string) Option {
	return func(c *Client) {
		c.defaults.XSRFCookieName = cookieName
		c.defaults.XSRFHeaderName = headerName
	}
}

// WithCookieSource sets the ambient cookie string supplier used for XSRF
// token extraction.
func WithCookieSource(source CookieSource) Option {
	return func(c *Client) {
		c.cookieSource = source
	}
}

// WithFetch sets a custom transport.
func WithFetch(fetch Fetch) Option {
	return func(c *Client) {
		c.fetch = fetch
	}
}

// WithHTTPClient sets a custom *http.Client for the default transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
		c.fetch = NewHTTPFetch(client)
	}
}

// WithTimeout sets the default transport's request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if c.httpClient != nil {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger sets a custom logger for debug output
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithSimpleLogger enables debug logging with a simple console logger
func WithSimpleLogger() Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.Enabled = true
		c.logger = NewSimpleLogger()
	}
}

// WithDebug enables debug logging with default configuration
func WithDebug() Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.Enabled = true
	}
}

// WithDebugConfig sets custom debug configuration
func WithDebugConfig(config *DebugConfig) Option {
	return func(c *Client) {
		c.debug = config
	}
}

// WithRequestIDGenerator sets a custom function for generating request IDs
func WithRequestIDGenerator(gen func() string) Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.RequestIDGen = gen
	}
}

// WithMetrics enables Prometheus metrics collection
func WithMetrics() Option {
	return func(c *Client) {
		c.metrics = NewMetricsCollector()
	}
}

// WithMetricsCollector sets a custom metrics collector
func WithMetricsCollector(collector *MetricsCollector) Option {
	return func(c *Client) {
		c.metrics = collector
	}
}

// ValidateConfiguration validates the client configuration and returns an
// error if invalid.
func (c *Client) ValidateConfiguration() error {
	var errs []string

	errs = append(errs, c.validateDefaults()...)
	errs = append(errs, c.validateDebugConfig()...)
	errs = append(errs, c.validateHTTPClientConfig()...)

	if len(errs) > 0 {
		return &RequestError{
			Type:    ErrorTypeValidation,
			Message: "configuration validation failed",
			Cause:   fmt.Errorf("validation errors: %v", errs),
		}
	}

	return nil
}

func (c *Client) validateDefaults() []string {
	var errs []string

	if c.defaults == nil {
		return []string{"defaults cannot be nil"}
	}

	switch c.defaults.ResponseType {
	case "", "text", "json", "stream":
	default:
		errs = append(errs, fmt.Sprintf("unknown responseType %q", c.defaults.ResponseType))
	}

	if (c.defaults.XSRFCookieName == "") != (c.defaults.XSRFHeaderName == "") {
		errs = append(errs, "xsrfCookieName and xsrfHeaderName must be set together")
	}

	for i, transform := range c.defaults.TransformRequest {
		if transform == nil {
			errs = append(errs, fmt.Sprintf("transformRequest[%d] cannot be nil", i))
		}
	}

	return errs
}

func (c *Client) validateDebugConfig() []string {
	var errs []string

	if c.debug != nil && c.debug.Enabled {
		if c.debug.RequestIDGen == nil {
			errs = append(errs, "debug RequestIDGen must be set when debug is enabled")
		}
		if c.logger == nil {
			errs = append(errs, "logger must be set when debug is enabled")
		}
	}

	return errs
}

func (c *Client) validateHTTPClientConfig() []string {
	var errs []string

	if c.httpClient == nil && c.fetch == nil {
		errs = append(errs, "transport cannot be nil")
	}
	if c.httpClient != nil && c.httpClient.Timeout < 0 {
		errs = append(errs, "timeout must be non-negative")
	}

	return errs
}
