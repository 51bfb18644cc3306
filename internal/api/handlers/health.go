package handlers

import (
	"net/http"
	"time"

	"release-orchestrator-backend/internal/queue"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler serves the liveness, readiness and health endpoints
type HealthHandler struct {
	db       *gorm.DB
	jobQueue *queue.InProcess
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, jobQueue *queue.InProcess) *HealthHandler {
	return &HealthHandler{db: db, jobQueue: jobQueue}
}

// HealthResponse reports overall status per dependency
type HealthResponse struct {
	Status     string            `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Components map[string]string `json:"components"`
	QueueDepth int               `json:"queue_depth"`
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

func (h *HealthHandler) pingDatabase() error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Health returns the health status of the service
// @Summary Health check
// @Description Overall health including database connectivity and queue backlog
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Service is healthy"
// @Failure 503 {object} HealthResponse "Service is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:     "healthy",
		Timestamp:  time.Now(),
		Components: map[string]string{"database": "healthy"},
	}
	if h.jobQueue != nil {
		resp.QueueDepth = len(h.jobQueue.Messages())
	}

	code := http.StatusOK
	if err := h.pingDatabase(); err != nil {
		resp.Status = "unhealthy"
		resp.Components["database"] = "error: " + err.Error()
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, resp)
}

// Ready reports whether the service can take traffic
// @Summary Readiness check
// @Description Ready once the database answers a ping
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} map[string]interface{} "Service is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.pingDatabase(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"ready":     false,
			"timestamp": time.Now(),
			"reason":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ready":     true,
		"timestamp": time.Now(),
	})
}

// Live answers as long as the process is serving requests
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
