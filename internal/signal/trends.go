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

// TrendsLookup queries an interest-over-time source for a keyword in a
// region and returns a 0-100 interest score.
type TrendsLookup interface {
	InterestOverTime(ctx context.Context, keyword, geo string) (float64, error)
}

// TrendsClient implements TrendsLookup against the Google Trends style
// interest-over-time endpoint.
type TrendsClient struct {
	baseURL string
	client  *http.Client
}

// NewTrendsClient creates a trends client with optional proxy support.
func NewTrendsClient(baseURL, proxyURL string) *TrendsClient {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &TrendsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   5 * time.Second,
			Transport: transport,
		},
	}
}

// trendsResponse is the interest-over-time payload. Only the first
// timeline value is used.
type trendsResponse struct {
	Default struct {
		TimelineData []struct {
			Value []float64 `json:"value"`
		} `json:"timelineData"`
	} `json:"default"`
}

func (c *TrendsClient) InterestOverTime(ctx context.Context, keyword, geo string) (float64, error) {
	u := fmt.Sprintf("%s/interestOverTime?keyword=%s&geo=%s",
		c.baseURL, url.QueryEscape(keyword), url.QueryEscape(geo))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("trends fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("trends read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("trends: status %d, body: %s", resp.StatusCode, string(body))
	}

	var tr trendsResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return 0, fmt.Errorf("trends decode: %w", err)
	}
	timeline := tr.Default.TimelineData
	if len(timeline) == 0 || len(timeline[0].Value) == 0 {
		return 0, fmt.Errorf("trends: empty timeline")
	}
	return timeline[0].Value[0], nil
}
