// Package server provides the JSON API over the research pipeline.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler wires the research service into gin routes.
type Handler struct {
	Service *Service
}

// NewHandler creates a Handler for the service.
func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// RegisterRoutes attaches the API routes to the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/research", h.createRound)
		api.GET("/research", h.listRounds)
		api.GET("/research/:id", h.getRound)
		api.GET("/sources", h.listSources)
	}
}

type researchRequest struct {
	Question string `json:"question" binding:"required"`
}

// createRound runs one research round synchronously and returns the report.
func (h *Handler) createRound(c *gin.Context) {
	var req researchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	report, err := h.Service.Research(c.Request.Context(), req.Question)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) listRounds(c *gin.Context) {
	rounds := h.Service.History()
	c.JSON(http.StatusOK, gin.H{
		"count":  len(rounds),
		"rounds": rounds,
	})
}

func (h *Handler) getRound(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid round id"})
		return
	}

	round, ok := h.Service.Round(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "round not found"})
		return
	}

	c.JSON(http.StatusOK, round)
}

func (h *Handler) listSources(c *gin.Context) {
	results := h.Service.Sources()
	c.JSON(http.StatusOK, gin.H{
		"count":   len(results),
		"sources": results,
	})
}
