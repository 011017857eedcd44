// Package newsapi is a small client for the NewsAPI v1 endpoints used by
// instantnews: a reachability probe on the API root, the sources listing and
// the per-source articles listing.
//
// Every call is a single GET with no retries. Failures come back as errors:
// ErrUnreachable for transport problems, *StatusError for HTTP error
// statuses and *APIError for the API's own error envelope.
package newsapi

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	rootPath     = "/"
	sourcesPath  = "/v1/sources"
	articlesPath = "/v1/articles"
)

// ErrUnreachable is returned when the API host cannot be reached at all
// (dial, DNS, TLS handshake, reset or timeout). Callers detect it with
// errors.Is.
var ErrUnreachable = errors.New("newsapi: server unreachable")

// StatusError reports an HTTP error status (4xx or 5xx).
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("newsapi: %s for url: %s", e.Status, e.URL)
}

// APIError is the decoded {"status":"error"} envelope.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return "newsapi: " + e.Message
	}
	return fmt.Sprintf("newsapi: %s: %s", e.Code, e.Message)
}

// Client issues requests against a NewsAPI host.
type Client struct {
	rc  *resty.Client
	key string
	log *zap.Logger
}

// NewClient returns a Client for baseURL that authenticates article requests
// with apiKey. A zero timeout leaves requests unbounded. log may be nil.
func NewClient(baseURL, apiKey string, timeout time.Duration, log *zap.Logger) *Client {
	return newClient(resty.New().SetTimeout(timeout), baseURL, apiKey, log)
}

// NewClientFromHTTP returns a Client that sends requests through hc. This
// constructor is intended for tests that point the client at an
// httptest.Server.
func NewClientFromHTTP(hc *http.Client, baseURL, apiKey string, log *zap.Logger) *Client {
	return newClient(resty.NewWithClient(hc), baseURL, apiKey, log)
}

func newClient(rc *resty.Client, baseURL, apiKey string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Client{
		rc:  rc,
		key: apiKey,
		log: log,
	}
	rc.SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetLogger(log.Sugar())
	rc.OnAfterResponse(func(_ *resty.Client, r *resty.Response) error {
		c.log.Debug("newsapi request",
			zap.String("method", r.Request.Method),
			zap.String("url", c.redact(r.Request.URL)),
			zap.Int("status", r.StatusCode()),
			zap.Duration("elapsed", r.Time()),
		)
		return nil
	})
	return c
}

// Ping performs a GET of the API root. Any 2xx or 3xx answer is success.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.rc.R().SetContext(ctx).Get(rootPath)
	if err != nil {
		return c.requestError(rootPath, err)
	}
	if resp.IsError() {
		return c.statusError(resp)
	}
	return nil
}

// Sources lists the API's news sources. An empty category lists all of them;
// otherwise the listing is filtered server-side.
func (c *Client) Sources(ctx context.Context, category string) ([]Source, error) {
	params := map[string]string{}
	if category != "" {
		params["category"] = category
	}
	var out sourcesResponse
	if err := c.get(ctx, sourcesPath, params, &out); err != nil {
		return nil, err
	}
	return out.Sources, nil
}

// Articles lists the current articles of the source identified by code.
func (c *Client) Articles(ctx context.Context, code string) ([]Article, error) {
	params := map[string]string{
		"source": code,
		"apiKey": c.key,
	}
	var out articlesResponse
	if err := c.get(ctx, articlesPath, params, &out); err != nil {
		return nil, err
	}
	return out.Articles, nil
}

// get decodes the JSON body of path into out. The API error envelope takes
// precedence over the HTTP status so its message reaches the user.
func (c *Client) get(ctx context.Context, path string, params map[string]string, out apiResponse) error {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return c.requestError(path, err)
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		if resp.IsError() {
			return c.statusError(resp)
		}
		return fmt.Errorf("newsapi: decode %s: %w", path, err)
	}
	if apiErr := out.apiError(); apiErr != nil {
		return apiErr
	}
	if resp.IsError() {
		return c.statusError(resp)
	}
	return nil
}

func (c *Client) statusError(resp *resty.Response) *StatusError {
	return &StatusError{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		URL:        c.redact(resp.Request.URL),
	}
}

// requestError wraps a failed request. Connection-level failures wrap
// ErrUnreachable; everything else is returned with the key redacted.
func (c *Client) requestError(path string, err error) error {
	msg := c.redact(err.Error())
	c.log.Debug("newsapi request failed", zap.String("path", path), zap.String("error", msg))
	if isTransport(err) {
		return fmt.Errorf("%w: GET %s: %s", ErrUnreachable, path, msg)
	}
	return fmt.Errorf("newsapi: GET %s: %s", path, msg)
}

// redact removes the API key from s, which is usually a request URL or an
// error that embeds one.
func (c *Client) redact(s string) string {
	if c.key == "" {
		return s
	}
	return strings.ReplaceAll(s, c.key, "REDACTED")
}

func isTransport(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return true
	}
	var headerErr tls.RecordHeaderError
	if errors.As(err, &headerErr) {
		return true
	}
	var alertErr tls.AlertError
	if errors.As(err, &alertErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
