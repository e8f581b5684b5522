package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"AdPulse/internal/recorder"
	"AdPulse/internal/simulator"
)

// Server exposes the simulation engine over HTTP and WebSocket.
type Server struct {
	sim      simulator.Runner
	cost     simulator.CostEstimator
	rec      recorder.Recorder
	hub      *Hub
	interval time.Duration
}

// New creates a Server. interval is the polling period for streaming
// sessions.
func New(sim simulator.Runner, cost simulator.CostEstimator, rec recorder.Recorder, interval time.Duration) *Server {
	return &Server{
		sim:      sim,
		cost:     cost,
		rec:      rec,
		hub:      NewHub(),
		interval: interval,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.POST("/estimate-cost", s.handleEstimateCost)
	r.POST("/simulate", s.handleSimulate)
	r.GET("/ws", s.handleWS)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
