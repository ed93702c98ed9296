package fetch

import (
    "context"
    "fmt"
    "io"
    "net/http"
    "net/url"
    "strings"
    "time"

    "golang.org/x/net/html/charset"
)

// BrowserUserAgent mimics a desktop browser. Some business sites and the
// classification reference page refuse obviously non-browser agents.
const BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
    "AppleWebKit/537.36 (KHTML, like Gecko) " +
    "Chrome/125.0.0.0 Safari/537.36"

// DefaultTimeout bounds each request. There is no retry: a failure or
// timeout surfaces immediately to the caller.
const DefaultTimeout = 30 * time.Second

// Error reports a failed page retrieval. StatusCode is zero when the
// failure happened before a response arrived (network error, timeout).
type Error struct {
    URL        string
    StatusCode int
    Err        error
}

func (e *Error) Error() string {
    if e.StatusCode != 0 {
        return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
    }
    return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Client issues single-attempt GET requests with a fixed user agent and
// per-request timeout. The zero value uses BrowserUserAgent and
// DefaultTimeout.
type Client struct {
    HTTPClient *http.Client
    UserAgent  string
    Timeout    time.Duration
}

func (c *Client) httpClient() *http.Client {
    if c.HTTPClient != nil {
        return c.HTTPClient
    }
    return http.DefaultClient
}

// Get retrieves the URL and returns the response body decoded to UTF-8
// according to the response's declared charset. Non-2xx statuses and
// transport failures return a *Error.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
    timeout := c.Timeout
    if timeout <= 0 {
        timeout = DefaultTimeout
    }
    ctx, cancel := context.WithTimeout(ctx, timeout)
    defer cancel()

    req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
    if err != nil {
        return nil, &Error{URL: rawURL, Err: err}
    }
    if req.URL == nil || !isHTTPScheme(req.URL) {
        return nil, &Error{URL: rawURL, Err: fmt.Errorf("unsupported URL scheme %q", req.URL.Scheme)}
    }
    ua := c.UserAgent
    if ua == "" {
        ua = BrowserUserAgent
    }
    req.Header.Set("User-Agent", ua)

    resp, err := c.httpClient().Do(req)
    if err != nil {
        return nil, &Error{URL: rawURL, Err: err}
    }
    defer resp.Body.Close()

    if resp.StatusCode < 200 || resp.StatusCode > 299 {
        return nil, &Error{URL: rawURL, StatusCode: resp.StatusCode}
    }

    reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
    if err != nil {
        // Undecodable charset declarations fall back to the raw bytes.
        reader = resp.Body
    }
    body, err := io.ReadAll(reader)
    if err != nil {
        return nil, &Error{URL: rawURL, Err: fmt.Errorf("read body: %w", err)}
    }
    return body, nil
}

func isHTTPScheme(u *url.URL) bool {
    scheme := strings.ToLower(u.Scheme)
    return scheme == "http" || scheme == "https"
}
