package signal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Article is one news search hit; only the description feeds the
// sentiment heuristic.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NewsLookup searches recent articles for a free-form query.
type NewsLookup interface {
	Everything(ctx context.Context, query string) ([]Article, error)
}

// NewsClient implements NewsLookup against the NewsAPI /v2/everything
// endpoint.
type NewsClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewNewsClient creates a news client with optional proxy support.
func NewNewsClient(baseURL, apiKey, proxyURL string) *NewsClient {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &NewsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout:   5 * time.Second,
			Transport: transport,
		},
	}
}

func (c *NewsClient) Everything(ctx context.Context, query string) ([]Article, error) {
	u := fmt.Sprintf("%s/v2/everything?q=%s&apiKey=%s",
		c.baseURL, url.QueryEscape(query), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("news read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news: status %d, body: %s", resp.StatusCode, string(body))
	}

	var nr struct {
		Articles []Article `json:"articles"`
	}
	if err := json.Unmarshal(body, &nr); err != nil {
		return nil, fmt.Errorf("news decode: %w", err)
	}
	return nr.Articles, nil
}
