package handlers

import (
	"net/http"
	"strconv"

	"release-orchestrator-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MetricHandler handles HTTP requests for verification metric operations
type MetricHandler struct {
	metricService service.MetricServiceInterface
}

// NewMetricHandler creates a new metric handler
func NewMetricHandler(metricService service.MetricServiceInterface) *MetricHandler {
	return &MetricHandler{
		metricService: metricService,
	}
}

// IngestMetric handles POST /metrics
// @Summary Ingest a verification observation
// @Description Record one pass/fail observation for a deployment and environment pair. Pass-rate gates read these observations.
// @Tags metrics
// @Accept json
// @Produce json
// @Param observation body service.IngestMetricRequest true "Observation to record"
// @Success 202 "Observation recorded"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Deployment or environment not found"
// @Security BearerAuth
// @Router /metrics [post]
func (h *MetricHandler) IngestMetric(c *gin.Context) {
	var req service.IngestMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.metricService.Ingest(&req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusAccepted)
}

// GetMetricWindow handles GET /metrics/window
// @Summary Summarize a metric window
// @Description Get the pass rate of a metric over a trailing window for a deployment and environment pair
// @Tags metrics
// @Accept json
// @Produce json
// @Param deployment_id query string true "Deployment ID"
// @Param environment_id query string true "Environment ID"
// @Param metric_name query string true "Metric name"
// @Param window_seconds query int false "Trailing window in seconds" default(3600)
// @Success 200 {object} service.MetricWindowResponse "Window summary"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /metrics/window [get]
func (h *MetricHandler) GetMetricWindow(c *gin.Context) {
	deploymentID, ok := parseUUIDQuery(c, "deployment_id")
	if !ok {
		return
	}
	environmentID, ok := parseUUIDQuery(c, "environment_id")
	if !ok {
		return
	}

	metricName := c.Query("metric_name")
	if metricName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "metric_name query parameter is required"})
		return
	}

	windowSeconds, _ := strconv.Atoi(c.DefaultQuery("window_seconds", "3600"))

	resp, err := h.metricService.Window(deploymentID, environmentID, metricName, windowSeconds)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
