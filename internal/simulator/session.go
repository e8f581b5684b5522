package simulator

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"AdPulse/internal/model"
)

// Session re-runs a simulation on a fixed period for one connected
// client and emits an update whenever the feature snapshot changes
// meaningfully. One Session per connection; Stop on disconnect.
type Session struct {
	ID       string
	runner   Runner
	req      model.SimulationRequest
	interval time.Duration
	notify   func(model.Update)

	cancel   context.CancelFunc
	done     chan struct{}
	inFlight atomic.Bool
	last     model.FeatureSnapshot
}

// NewSession creates a polling session. notify is called from the
// session goroutine with each significant update.
func NewSession(runner Runner, req model.SimulationRequest, interval time.Duration, notify func(model.Update)) *Session {
	if req.Competitors == "" {
		req.Competitors = "Generic"
	}
	return &Session{
		ID:       uuid.NewString(),
		runner:   runner,
		req:      req,
		interval: interval,
		notify:   notify,
		done:     make(chan struct{}),
	}
}

// Start launches the polling loop. The loop stops as soon as Stop is
// called; a cycle already in flight finishes and its result is
// discarded.
func (s *Session) Start(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		log.Printf("[INFO] polling session %s started (every %v)", s.ID, s.interval)
		for {
			select {
			case <-ctx.Done():
				log.Printf("[INFO] polling session %s stopped", s.ID)
				return
			case <-ticker.C:
				s.tick(ctx)
			}
		}
	}()
}

// tick runs one cycle unless the previous one is still in flight.
// Skipping keeps a slow upstream from stacking concurrent external
// calls for a single client.
func (s *Session) tick(ctx context.Context) {
	if !s.inFlight.CompareAndSwap(false, true) {
		log.Printf("[WARN] polling session %s: previous cycle still running, skipping tick", s.ID)
		return
	}
	defer s.inFlight.Store(false)

	result, err := s.runner.Run(ctx, s.req)
	if err != nil {
		// A single failed cycle never kills the session.
		log.Printf("[ERROR] polling session %s: %v", s.ID, err)
		return
	}
	if ctx.Err() != nil {
		return // stopped mid-cycle, discard
	}

	if Significant(s.last, result.Factors) {
		s.last = result.Factors
		s.notify(model.Update{
			Type:    "update",
			Factors: result.Factors,
			ROI:     result.ROITrend[0].ROI,
		})
	}
}

// Stop cancels the session's timer. No further cycles are scheduled
// after it returns; the in-flight cycle, if any, completes silently.
func (s *Session) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Done is closed once the polling loop has exited.
func (s *Session) Done() <-chan struct{} {
	return s.done
}
