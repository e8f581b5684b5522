package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"AdPulse/internal/model"
)

// Predictor turns a feature snapshot into an ROI prediction. The model
// behind it is opaque; any implementation honoring the request/response
// contract may be substituted.
type Predictor interface {
	Predict(ctx context.Context, adCost float64, factors model.FeatureSnapshot, adApproach string) (*model.Prediction, error)
}

// HTTPPredictor calls the external ML service over HTTP.
type HTTPPredictor struct {
	baseURL string
	client  *http.Client
}

// NewHTTPPredictor creates a predictor client. The timeout bounds the
// whole model invocation, which may block on model loading.
func NewHTTPPredictor(baseURL string, timeout time.Duration, proxyURL string) *HTTPPredictor {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &HTTPPredictor{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// predictRequest is the wire payload of the prediction boundary.
type predictRequest struct {
	AdCost     float64               `json:"adCost"`
	Factors    model.FeatureSnapshot `json:"factors"`
	AdApproach string                `json:"adApproach"`
}

func (p *HTTPPredictor) Predict(ctx context.Context, adCost float64, factors model.FeatureSnapshot, adApproach string) (*model.Prediction, error) {
	payload, err := json.Marshal(predictRequest{AdCost: adCost, Factors: factors, AdApproach: adApproach})
	if err != nil {
		return nil, fmt.Errorf("marshal predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("predict read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("predict: status %d, body: %s", resp.StatusCode, string(body))
	}

	var pred model.Prediction
	if err := json.Unmarshal(body, &pred); err != nil {
		return nil, fmt.Errorf("predict decode: %w", err)
	}
	return &pred, nil
}

// MockPredictor returns controllable fixed predictions for development
// and testing.
type MockPredictor struct {
	Prediction *model.Prediction
	Err        error
	Calls      int
	LastCost   float64
}

func (m *MockPredictor) Predict(_ context.Context, adCost float64, _ model.FeatureSnapshot, _ string) (*model.Prediction, error) {
	m.Calls++
	m.LastCost = adCost
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Prediction, nil
}
