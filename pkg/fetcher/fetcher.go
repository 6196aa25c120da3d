// Package fetcher builds per-user HTTP clients that imitate a real browser:
// a rotated User-Agent, browser-like Accept headers, an isolated cookie
// jar, bounded redirects, and deliberately relaxed TLS verification for the
// range's self-signed certificates.
package fetcher

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"math/rand/v2"
	"net"
	"net/http"
	"net/http/cookiejar"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/blackridgelabs/rangewalker/internal/errx"
	"github.com/blackridgelabs/rangewalker/internal/useragent"
)

const (
	connectTimeout = 30 * time.Second
	totalTimeout   = 60 * time.Second
	maxRedirects   = 10

	acceptHeader         = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8"
	acceptLanguageHeader = "en-US,en;q=0.9"
	acceptEncodingHeader = "gzip, deflate, br"
)

// Client is a single virtual user's HTTP session: one cookie jar, one
// User-Agent, rebuilt wholesale on every site switch to imitate a fresh
// browser session.
type Client struct {
	http      *http.Client
	userAgent string
}

// RandomUserAgent picks uniformly from the User-Agent table.
func RandomUserAgent() string {
	return useragent.Table[rand.IntN(len(useragent.Table))]
}

// BuildClient constructs a new Client with an independent cookie jar and a
// freshly drawn User-Agent.
func BuildClient() (*Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, errx.Wrap(ErrBuildClient, err)
	}

	dialer := &net.Dialer{Timeout: connectTimeout}
	transport := &http.Transport{
		DialContext:     dialer.DialContext,
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // range uses self-signed certs; verification deliberately disabled
	}

	httpClient := &http.Client{
		Transport: transport,
		Jar:       jar,
		Timeout:   totalTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}

	return &Client{http: httpClient, userAgent: RandomUserAgent()}, nil
}

// Fetch issues a GET and returns the response body decoded as UTF-8 text.
// Status codes are not inspected: even an error page is handed to the link
// extractor unchanged.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errx.With(ErrFetch, " %q: %w", url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", acceptLanguageHeader)
	req.Header.Set("Accept-Encoding", acceptEncodingHeader)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errx.With(ErrFetch, " %q: %w", url, err)
	}
	defer resp.Body.Close()

	reader, err := decodedReader(resp)
	if err != nil {
		return "", errx.With(ErrReadBody, " %q: %w", url, err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", errx.With(ErrReadBody, " %q: %w", url, err)
	}
	return string(body), nil
}

// decodedReader unwraps the response body according to Content-Encoding.
// Because Fetch sets its own Accept-Encoding header, the standard
// transport's automatic gzip handling is disabled, so the encoding has to
// be undone here. Only gzip and raw deflate are decoded; any other
// encoding, including br, is returned as the undecoded body.
func decodedReader(resp *http.Response) (io.Reader, error) {
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		return gzip.NewReader(resp.Body)
	case "deflate":
		return flate.NewReader(resp.Body), nil
	default:
		return resp.Body, nil
	}
}

// UserAgent returns the client's current User-Agent, for status/logging.
func (c *Client) UserAgent() string { return c.userAgent }
