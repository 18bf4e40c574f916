// Package api is the typed HTTP client of the dashboard backend. Every
// operation takes a context, sends one request and decodes one response;
// failures are reported as *Error carrying a fixed message that names the
// operation. There are no retries, timeouts or caching at this layer.
package api
