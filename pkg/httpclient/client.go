package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var _ HTTPClient = (*httpClient)(nil)

type HTTPClient interface {
	Get(ctx context.Context, rawURL string, query url.Values, headers map[string]string) (*Response, error)
}

// Response is a fully read HTTP response. The body is closed before it is returned.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

type httpClient struct {
	Client *http.Client
}

func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &httpClient{Client: &http.Client{Timeout: timeout}}
}

// NewHTTPClientWith wraps an existing *http.Client, for callers that own transport settings.
func NewHTTPClientWith(client *http.Client) HTTPClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpClient{Client: client}
}

func (c *httpClient) Get(ctx context.Context, rawURL string, query url.Values, headers map[string]string) (*Response, error) {
	fullURL, err := buildURL(rawURL, query)
	if err != nil {
		return nil, fmt.Errorf("failed to build URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, headers)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
}

func (c *httpClient) setHeaders(req *http.Request, headers map[string]string) {
	if len(headers) == 0 {
		return
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
}

// buildURL merges query into any query string already present on rawURL.
func buildURL(rawURL string, query url.Values) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	q := u.Query()
	for key, values := range query {
		for _, value := range values {
			q.Add(key, value)
		}
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
