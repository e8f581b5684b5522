package simulator

import (
	"context"
	"fmt"

	"AdPulse/internal/model"
	"AdPulse/internal/predictor"
	"AdPulse/internal/signal"
)

// CostEstimator resolves ad parameters into a monetary cost.
type CostEstimator interface {
	Estimate(ctx context.Context, adType, location string, subscribers int, approach string) float64
}

// Runner executes one full simulation cycle. Implemented by Simulator;
// polling sessions depend on this interface so tests can drive them
// with scripted results.
type Runner interface {
	Run(ctx context.Context, req model.SimulationRequest) (*model.SimulationResult, error)
}

// Simulator ties cost estimation, signal aggregation and ROI
// prediction into one request/response cycle.
type Simulator struct {
	Cost CostEstimator
	Agg  *signal.Aggregator
	Pred predictor.Predictor
}

// NewSimulator creates a Simulator.
func NewSimulator(cost CostEstimator, agg *signal.Aggregator, pred predictor.Predictor) *Simulator {
	return &Simulator{Cost: cost, Agg: agg, Pred: pred}
}

// Run executes one simulation cycle. Signal failures never surface
// here (the aggregator resolves them via fallbacks); a prediction
// failure does, as the result is meaningless without it.
func (s *Simulator) Run(ctx context.Context, req model.SimulationRequest) (*model.SimulationResult, error) {
	adCost := s.Cost.Estimate(ctx, req.AdType, req.Location, req.Subscribers, req.AdApproach)
	factors := s.Agg.Aggregate(ctx, req)

	pred, err := s.Pred.Predict(ctx, adCost, factors, req.AdApproach)
	if err != nil {
		return nil, fmt.Errorf("prediction: %w", err)
	}

	return &model.SimulationResult{
		// Linear-extrapolation placeholder, not a forecast.
		ROITrend: []model.ROIPoint{
			{Date: "Now", ROI: pred.ROI},
			{Date: "Next Hour", ROI: pred.ROI * 1.05},
		},
		Factors:       factors,
		FeatureImpact: pred.FeatureImpact,
		Analysis:      pred.Analysis,
		Suggestions:   pred.Suggestions,
		AdCost:        adCost,
		Revenue:       pred.Revenue,
	}, nil
}
