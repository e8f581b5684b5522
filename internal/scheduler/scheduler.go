package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"AdPulse/internal/cache"
	"AdPulse/internal/recorder"
)

// Scheduler runs background maintenance: sweeping expired cache
// entries (signal expiry itself is lazy, the sweep just reclaims
// memory) and a daily activity summary.
type Scheduler struct {
	Cron     *cron.Cron
	Memory   *cache.MemoryStore // nil when Redis handles expiry itself
	Recorder recorder.Recorder
}

// NewScheduler creates a Scheduler.
func NewScheduler(mem *cache.MemoryStore, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(),
		Memory:   mem,
		Recorder: rec,
	}
}

// RegisterAll registers the maintenance tasks.
func (s *Scheduler) RegisterAll() error {
	if s.Memory != nil {
		if _, err := s.Cron.AddFunc("@hourly", s.sweepCache); err != nil {
			return fmt.Errorf("register cache sweep: %w", err)
		}
	}
	if _, err := s.Cron.AddFunc("@daily", s.dailySummary); err != nil {
		return fmt.Errorf("register daily summary: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) sweepCache() {
	removed := s.Memory.Sweep()
	if removed > 0 {
		log.Printf("[INFO] cache sweep: removed %d expired entries", removed)
	}
}

func (s *Scheduler) dailySummary() {
	n, err := s.Recorder.CountSimulations()
	if err != nil {
		log.Printf("[ERROR] daily summary: %v", err)
		return
	}
	log.Printf("[INFO] daily summary: %d simulations recorded to date", n)
}
