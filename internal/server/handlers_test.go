package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"AdPulse/internal/model"
	"AdPulse/internal/recorder"
)

type stubCost struct{ cost float64 }

func (s *stubCost) Estimate(context.Context, string, string, int, string) float64 {
	return s.cost
}

type stubRunner struct {
	result *model.SimulationResult
	err    error
}

func (s *stubRunner) Run(context.Context, model.SimulationRequest) (*model.SimulationResult, error) {
	return s.result, s.err
}

type capturingRecorder struct {
	recorder.NoopRecorder
	records []*recorder.SimulationRecord
}

func (c *capturingRecorder) RecordSimulation(rec *recorder.SimulationRecord) error {
	c.records = append(c.records, rec)
	return nil
}

func newTestServer(run *stubRunner, cost *stubCost, rec recorder.Recorder) *Server {
	return New(run, cost, rec, 30*time.Second)
}

func postJSON(t *testing.T, srv *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestEstimateCost_RequiresTypeAndApproach(t *testing.T) {
	srv := newTestServer(&stubRunner{}, &stubCost{cost: 220}, recorder.NewNoopRecorder())

	w := postJSON(t, srv, "/estimate-cost", map[string]any{"adApproach": "persuasive"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing adType: expected 400, got %d", w.Code)
	}

	w = postJSON(t, srv, "/estimate-cost", map[string]any{"adType": "youtube"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing adApproach: expected 400, got %d", w.Code)
	}
}

func TestEstimateCost_ReturnsCost(t *testing.T) {
	srv := newTestServer(&stubRunner{}, &stubCost{cost: 220}, recorder.NewNoopRecorder())

	w := postJSON(t, srv, "/estimate-cost", map[string]any{
		"adType": "youtube", "adApproach": "persuasive", "subscribers": 5000, "location": "India",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Cost float64 `json:"cost"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Cost != 220 {
		t.Errorf("expected cost 220, got %.2f", resp.Cost)
	}
}

func validSimulateBody() map[string]any {
	return map[string]any{
		"productCategory": "hardware",
		"subcategory":     "electronics",
		"location":        "India",
		"competitors":     "A,B,C",
		"adType":          "youtube",
		"adApproach":      "persuasive",
		"subscribers":     5000,
	}
}

func sampleResult() *model.SimulationResult {
	return &model.SimulationResult{
		ROITrend: []model.ROIPoint{{Date: "Now", ROI: 0.4}, {Date: "Next Hour", ROI: 0.42}},
		Factors: model.FeatureSnapshot{
			CulturalTrend: 60, Population: 1_200_000, SearchTrends: 55, CompetitorCount: 3, PolicyImpact: 0.9,
		},
		FeatureImpact: map[string]float64{"ad_cost": 0.3},
		Analysis:      []string{"ROI is positive."},
		Suggestions:   []string{"Maintain current strategy."},
		AdCost:        220,
		Revenue:       3200,
	}
}

func TestSimulate_MissingFields(t *testing.T) {
	srv := newTestServer(&stubRunner{result: sampleResult()}, &stubCost{}, recorder.NewNoopRecorder())

	for _, field := range []string{"productCategory", "subcategory", "location", "competitors", "adType", "adApproach"} {
		body := validSimulateBody()
		delete(body, field)
		w := postJSON(t, srv, "/simulate", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("missing %s: expected 400, got %d", field, w.Code)
		}
	}
}

func TestSimulate_Success(t *testing.T) {
	rec := &capturingRecorder{}
	srv := newTestServer(&stubRunner{result: sampleResult()}, &stubCost{}, rec)

	w := postJSON(t, srv, "/simulate", validSimulateBody())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result model.SimulationResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(result.ROITrend) != 2 || result.ROITrend[0].ROI != 0.4 {
		t.Errorf("unexpected roiTrend: %+v", result.ROITrend)
	}
	if result.Factors.CompetitorCount != 3 {
		t.Errorf("unexpected factors: %+v", result.Factors)
	}

	if len(rec.records) != 1 {
		t.Fatalf("expected 1 persisted record, got %d", len(rec.records))
	}
	got := rec.records[0]
	if got.Product != "hardware" || got.ROI != 0.4 || got.Cost != 220 {
		t.Errorf("unexpected record: %+v", got)
	}
}

func TestSimulate_PredictionFailure(t *testing.T) {
	rec := &capturingRecorder{}
	srv := newTestServer(&stubRunner{err: fmt.Errorf("prediction: model unreachable")}, &stubCost{}, rec)

	w := postJSON(t, srv, "/simulate", validSimulateBody())
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error == "" {
		t.Error("expected a human-readable error message")
	}
	if len(rec.records) != 0 {
		t.Error("failed simulations must not be persisted")
	}
}
