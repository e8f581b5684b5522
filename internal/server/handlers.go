package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"AdPulse/internal/model"
	"AdPulse/internal/recorder"
)

func (s *Server) handleEstimateCost(c *gin.Context) {
	var req model.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := req.ValidateCost(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cost := s.cost.Estimate(c.Request.Context(), req.AdType, req.Location, req.Subscribers, req.AdApproach)
	c.JSON(http.StatusOK, gin.H{"cost": cost})
}

func (s *Server) handleSimulate(c *gin.Context) {
	var req model.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.sim.Run(c.Request.Context(), req)
	if err != nil {
		log.Printf("[ERROR] simulate: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Persistence is a hand-off; a storage hiccup must not fail the request.
	if err := s.rec.RecordSimulation(&recorder.SimulationRecord{
		Product:     req.ProductCategory,
		Subcategory: req.Subcategory,
		Location:    req.Location,
		AdType:      req.AdType,
		AdApproach:  req.AdApproach,
		ROI:         result.ROITrend[0].ROI,
		Revenue:     result.Revenue,
		Cost:        result.AdCost,
		Analysis:    result.Analysis,
		Suggestions: result.Suggestions,
	}); err != nil {
		log.Printf("[ERROR] record simulation: %v", err)
	}

	s.hub.Broadcast(model.Update{
		Type:    "update",
		Factors: result.Factors,
		ROI:     result.ROITrend[0].ROI,
	})

	c.JSON(http.StatusOK, result)
}
