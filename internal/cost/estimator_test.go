package cost

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEstimate_YoutubeTiers(t *testing.T) {
	e := NewEstimator("http://unused", "", "")
	tests := []struct {
		subscribers int
		want        float64
	}{
		{0, 200},
		{9999, 200},
		{10000, 800},
		{99999, 800},
		{100000, 5000},
		{999999, 5000},
		{1000000, 20000},
		{5000000, 20000},
	}
	for _, tt := range tests {
		got := e.Estimate(context.Background(), "youtube", "US", tt.subscribers, "informative")
		if !almostEqual(got, tt.want) {
			t.Errorf("youtube %d subscribers: expected %.0f, got %.2f", tt.subscribers, tt.want, got)
		}
	}
}

func TestEstimate_NewspaperByLocation(t *testing.T) {
	e := NewEstimator("http://unused", "", "")
	if got := e.Estimate(context.Background(), "newspaper", "India-North", 0, "informative"); !almostEqual(got, 3000) {
		t.Errorf("newspaper in India: expected 3000, got %.2f", got)
	}
	if got := e.Estimate(context.Background(), "newspaper", "US", 0, "informative"); !almostEqual(got, 5000) {
		t.Errorf("newspaper in US: expected 5000, got %.2f", got)
	}
}

func TestEstimate_ApproachMultipliers(t *testing.T) {
	e := NewEstimator("http://unused", "", "")
	tests := []struct {
		approach string
		want     float64
	}{
		{"informative", 200},
		{"persuasive", 220},
		{"reminder", 180},
		{"comparative", 240},
		{"emotive", 260},
		{"unknown-style", 200}, // silent default 1.0
		{"", 200},
	}
	for _, tt := range tests {
		got := e.Estimate(context.Background(), "youtube", "US", 5000, tt.approach)
		if !almostEqual(got, tt.want) {
			t.Errorf("approach %q: expected %.0f, got %.2f", tt.approach, tt.want, got)
		}
	}
}

func TestEstimate_UnknownAdTypeDefaults(t *testing.T) {
	e := NewEstimator("http://unused", "", "")
	if got := e.Estimate(context.Background(), "radio", "US", 0, "persuasive"); !almostEqual(got, 1100) {
		t.Errorf("unknown ad type: expected 1000*1.1=1100, got %.2f", got)
	}
}

func TestEstimate_PPCIgnoresLookupOutcome(t *testing.T) {
	// Account check succeeds
	okSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v17/customers:listAccessibleCustomers" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer okSrv.Close()

	e := NewEstimator(okSrv.URL, "token", "")
	if got := e.Estimate(context.Background(), "ppc", "US", 0, "comparative"); !almostEqual(got, 2.4) {
		t.Errorf("ppc with valid account: expected 2*1.2=2.4, got %.2f", got)
	}

	// Account check fails: price is unchanged
	failSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer failSrv.Close()

	e2 := NewEstimator(failSrv.URL, "bad-token", "")
	if got := e2.Estimate(context.Background(), "ppc", "US", 0, "comparative"); !almostEqual(got, 2.4) {
		t.Errorf("ppc with broken account: expected 2*1.2=2.4, got %.2f", got)
	}
}
