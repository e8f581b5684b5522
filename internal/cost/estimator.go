package cost

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"AdPulse/internal/model"
)

// approachMultipliers scales the base cost by messaging style.
// Unrecognized approaches silently fall back to 1.0.
var approachMultipliers = map[string]float64{
	"informative": 1.0,
	"persuasive":  1.1,
	"reminder":    0.9,
	"comparative": 1.2,
	"emotive":     1.3,
}

// Estimator maps an ad channel plus targeting parameters to a monetary
// cost. The ppc path performs one account-access check against the ads
// API; its outcome does not alter the price today, the call exists so
// broken credentials surface in the logs early.
type Estimator struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewEstimator creates an Estimator with optional proxy support.
func NewEstimator(baseURL, token, proxyURL string) *Estimator {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &Estimator{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client: &http.Client{
			Timeout:   5 * time.Second,
			Transport: transport,
		},
	}
}

// Estimate returns the cost for one ad placement. It never fails:
// unknown ad types and approaches get documented defaults.
func (e *Estimator) Estimate(ctx context.Context, adType, location string, subscribers int, approach string) float64 {
	baseCost := 1000.0

	switch adType {
	case model.AdTypeYoutube:
		switch {
		case subscribers < 10000:
			baseCost = 200
		case subscribers < 100000:
			baseCost = 800
		case subscribers < 1000000:
			baseCost = 5000
		default:
			baseCost = 20000
		}
	case model.AdTypeNewspaper:
		if strings.Contains(location, "India") {
			baseCost = 3000
		} else {
			baseCost = 5000
		}
	case model.AdTypePPC:
		if err := e.checkAdAccount(ctx); err != nil {
			log.Printf("[WARN] ads account check failed: %v", err)
		}
		baseCost = 2
	}

	multiplier, ok := approachMultipliers[approach]
	if !ok {
		multiplier = 1.0
	}
	return baseCost * multiplier
}

// checkAdAccount validates API access by listing accessible customers.
func (e *Estimator) checkAdAccount(ctx context.Context) error {
	u := e.baseURL + "/v17/customers:listAccessibleCustomers"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+e.token)

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("ads api: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ads api: status %d", resp.StatusCode)
	}
	return nil
}
