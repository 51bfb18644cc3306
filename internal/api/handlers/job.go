package handlers

import (
	"net/http"

	"release-orchestrator-backend/internal/database/models"
	"release-orchestrator-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// JobHandler handles HTTP requests for job operations
type JobHandler struct {
	jobService service.JobServiceInterface
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService service.JobServiceInterface) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// GetJob handles GET /jobs/:id
// @Summary Get a job
// @Description Get a job by its ID
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} service.JobResponse "Successfully retrieved job"
// @Failure 400 {object} ErrorResponse "Invalid job ID"
// @Failure 404 {object} ErrorResponse "Job not found"
// @Security BearerAuth
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.jobService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListJobsByStatus handles GET /jobs
// @Summary List jobs by status
// @Description Get jobs filtered by status with pagination support
// @Tags jobs
// @Accept json
// @Produce json
// @Param status query string true "Job status" Enums(pending, in_progress, completed, failed, cancelled, skipped)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.JobListResponse "Successfully retrieved jobs"
// @Failure 400 {object} ErrorResponse "Missing or invalid status"
// @Security BearerAuth
// @Router /jobs [get]
func (h *JobHandler) ListJobsByStatus(c *gin.Context) {
	status := models.JobStatus(c.Query("status"))
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status query parameter is required"})
		return
	}
	page, pageSize := parsePagination(c)

	resp, err := h.jobService.GetByStatus(status, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateJobStatus handles PATCH /jobs/:id/status
// @Summary Report a job's status
// @Description Record a job agent's status report. Pending jobs may start or finish; running jobs may finish; finished jobs accept only metadata refreshes of the same status. A terminal report wakes the dispatch sweeper.
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param status body service.UpdateJobStatusRequest true "Status report"
// @Success 200 {object} service.JobResponse "Status recorded"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Job not found"
// @Failure 409 {object} ErrorResponse "Illegal status transition"
// @Security BearerAuth
// @Router /jobs/{id}/status [patch]
func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.jobService.UpdateStatus(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetJobTrigger handles GET /jobs/:id/trigger
// @Summary Get the trigger behind a job
// @Description Get the release job trigger that produced a job
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} service.TriggerResponse "Successfully retrieved trigger"
// @Failure 400 {object} ErrorResponse "Invalid job ID"
// @Failure 404 {object} ErrorResponse "Job or trigger not found"
// @Security BearerAuth
// @Router /jobs/{id}/trigger [get]
func (h *JobHandler) GetJobTrigger(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	trigger, err := h.jobService.GetTrigger(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.ToTriggerResponse(trigger))
}
