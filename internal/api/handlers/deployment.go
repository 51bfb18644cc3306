package handlers

import (
	"net/http"

	"release-orchestrator-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DeploymentHandler handles HTTP requests for deployment operations
type DeploymentHandler struct {
	deploymentService service.DeploymentServiceInterface
}

// NewDeploymentHandler creates a new deployment handler
func NewDeploymentHandler(deploymentService service.DeploymentServiceInterface) *DeploymentHandler {
	return &DeploymentHandler{
		deploymentService: deploymentService,
	}
}

// CreateDeployment handles POST /deployments
// @Summary Create a deployment
// @Description Create a new deployment inside a system. The resource selector, if given, is validated and release targets are recomputed.
// @Tags deployments
// @Accept json
// @Produce json
// @Param deployment body service.CreateDeploymentRequest true "Deployment to create"
// @Success 201 {object} service.DeploymentResponse "Deployment created"
// @Failure 400 {object} ErrorResponse "Invalid request body or selector"
// @Failure 404 {object} ErrorResponse "System not found"
// @Failure 409 {object} ErrorResponse "Deployment with this slug already exists in the system"
// @Security BearerAuth
// @Router /deployments [post]
func (h *DeploymentHandler) CreateDeployment(c *gin.Context) {
	var req service.CreateDeploymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.deploymentService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetDeployment handles GET /deployments/:id
// @Summary Get a deployment
// @Description Get a deployment by its ID
// @Tags deployments
// @Accept json
// @Produce json
// @Param id path string true "Deployment ID"
// @Success 200 {object} service.DeploymentResponse "Successfully retrieved deployment"
// @Failure 400 {object} ErrorResponse "Invalid deployment ID"
// @Failure 404 {object} ErrorResponse "Deployment not found"
// @Security BearerAuth
// @Router /deployments/{id} [get]
func (h *DeploymentHandler) GetDeployment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.deploymentService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListDeploymentsBySystem handles GET /systems/:id/deployments
// @Summary List deployments in a system
// @Description Get all deployments belonging to a system with pagination support
// @Tags deployments
// @Accept json
// @Produce json
// @Param id path string true "System ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.DeploymentListResponse "Successfully retrieved deployments"
// @Failure 400 {object} ErrorResponse "Invalid system ID"
// @Security BearerAuth
// @Router /systems/{id}/deployments [get]
func (h *DeploymentHandler) ListDeploymentsBySystem(c *gin.Context) {
	systemID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	resp, err := h.deploymentService.GetBySystemID(systemID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateDeployment handles PUT /deployments/:id
// @Summary Update a deployment
// @Description Update a deployment. Changing the resource selector recomputes release targets.
// @Tags deployments
// @Accept json
// @Produce json
// @Param id path string true "Deployment ID"
// @Param deployment body service.UpdateDeploymentRequest true "Fields to update"
// @Success 200 {object} service.DeploymentResponse "Deployment updated"
// @Failure 400 {object} ErrorResponse "Invalid request or selector"
// @Failure 404 {object} ErrorResponse "Deployment not found"
// @Security BearerAuth
// @Router /deployments/{id} [put]
func (h *DeploymentHandler) UpdateDeployment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateDeploymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.deploymentService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteDeployment handles DELETE /deployments/:id
// @Summary Delete a deployment
// @Description Delete a deployment by its ID
// @Tags deployments
// @Accept json
// @Produce json
// @Param id path string true "Deployment ID"
// @Success 204 "Deployment deleted"
// @Failure 400 {object} ErrorResponse "Invalid deployment ID"
// @Failure 404 {object} ErrorResponse "Deployment not found"
// @Security BearerAuth
// @Router /deployments/{id} [delete]
func (h *DeploymentHandler) DeleteDeployment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.deploymentService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
