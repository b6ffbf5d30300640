// Package redaxios is a small HTTP request façade: one call builds a single
// outbound request from a merged configuration, dispatches it through an
// injectable transport and normalizes the raw result into a uniform Response.
//
//   - Recursive configuration merging (instance defaults + per-call overrides)
//   - Case-insensitive header assembly with computed headers winning
//   - JSON body encoding with multipart / blob pass-through
//   - Base URL + query string composition
//   - XSRF token injection from an ambient cookie source
//   - Status validation that settles as (*Response, error) carrying the
//     same Response on failure
//   - Prometheus metrics and lightweight structured debug logging
//
// Design goals:
//   - Small surface area: functional options configure everything
//   - Stateless pipeline: concurrent calls through one Client are independent
//   - Transport agnostic: the network exchange is a pluggable Fetch function
//
// Typical usage:
//
//	client := redaxios.New(
//	    redaxios.WithBaseURL("https://api.example.com"),
//	    redaxios.WithHeader("Accept", "application/json"),
//	)
//	resp, err := client.Get(ctx, "/users/1", nil)
//	if err == nil {
//	    fmt.Println(resp.Get("name").String())
//	}
//
// A failed status check returns the Response together with a *RequestError of
// type Status wrapping that same Response; network and encoding failures
// return errors of type Network and Encode respectively. The library avoids
// opinionated logging: provide a Logger (e.g. via WithSimpleLogger) and
// enable debug flags selectively for insight without noise.
package redaxios
