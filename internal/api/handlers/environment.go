package handlers

import (
	"net/http"

	"release-orchestrator-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EnvironmentHandler handles HTTP requests for environment operations,
// including channel bindings
type EnvironmentHandler struct {
	environmentService service.EnvironmentServiceInterface
}

// NewEnvironmentHandler creates a new environment handler
func NewEnvironmentHandler(environmentService service.EnvironmentServiceInterface) *EnvironmentHandler {
	return &EnvironmentHandler{
		environmentService: environmentService,
	}
}

// CreateEnvironment handles POST /environments
// @Summary Create an environment
// @Description Create a new environment inside a system. The resource selector, if given, is validated and release targets are recomputed.
// @Tags environments
// @Accept json
// @Produce json
// @Param environment body service.CreateEnvironmentRequest true "Environment to create"
// @Success 201 {object} service.EnvironmentResponse "Environment created"
// @Failure 400 {object} ErrorResponse "Invalid request body or selector"
// @Failure 404 {object} ErrorResponse "System not found"
// @Failure 409 {object} ErrorResponse "Environment with this name already exists in the system"
// @Security BearerAuth
// @Router /environments [post]
func (h *EnvironmentHandler) CreateEnvironment(c *gin.Context) {
	var req service.CreateEnvironmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.environmentService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetEnvironment handles GET /environments/:id
// @Summary Get an environment
// @Description Get an environment by its ID
// @Tags environments
// @Accept json
// @Produce json
// @Param id path string true "Environment ID"
// @Success 200 {object} service.EnvironmentResponse "Successfully retrieved environment"
// @Failure 400 {object} ErrorResponse "Invalid environment ID"
// @Failure 404 {object} ErrorResponse "Environment not found"
// @Security BearerAuth
// @Router /environments/{id} [get]
func (h *EnvironmentHandler) GetEnvironment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.environmentService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListEnvironmentsBySystem handles GET /systems/:id/environments
// @Summary List environments in a system
// @Description Get all environments belonging to a system with pagination support
// @Tags environments
// @Accept json
// @Produce json
// @Param id path string true "System ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.EnvironmentListResponse "Successfully retrieved environments"
// @Failure 400 {object} ErrorResponse "Invalid system ID"
// @Security BearerAuth
// @Router /systems/{id}/environments [get]
func (h *EnvironmentHandler) ListEnvironmentsBySystem(c *gin.Context) {
	systemID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	resp, err := h.environmentService.GetBySystemID(systemID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateEnvironment handles PUT /environments/:id
// @Summary Update an environment
// @Description Update an environment. Changing the resource selector recomputes release targets.
// @Tags environments
// @Accept json
// @Produce json
// @Param id path string true "Environment ID"
// @Param environment body service.UpdateEnvironmentRequest true "Fields to update"
// @Success 200 {object} service.EnvironmentResponse "Environment updated"
// @Failure 400 {object} ErrorResponse "Invalid request or selector"
// @Failure 404 {object} ErrorResponse "Environment not found"
// @Security BearerAuth
// @Router /environments/{id} [put]
func (h *EnvironmentHandler) UpdateEnvironment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateEnvironmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.environmentService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteEnvironment handles DELETE /environments/:id
// @Summary Delete an environment
// @Description Delete an environment by its ID
// @Tags environments
// @Accept json
// @Produce json
// @Param id path string true "Environment ID"
// @Success 204 "Environment deleted"
// @Failure 400 {object} ErrorResponse "Invalid environment ID"
// @Failure 404 {object} ErrorResponse "Environment not found"
// @Security BearerAuth
// @Router /environments/{id} [delete]
func (h *EnvironmentHandler) DeleteEnvironment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.environmentService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// BindChannel handles POST /environments/:id/channels
// @Summary Bind a version channel to an environment
// @Description Restrict which versions may deploy to this environment for one deployment by binding a channel
// @Tags environments
// @Accept json
// @Produce json
// @Param id path string true "Environment ID"
// @Param binding body service.BindChannelRequest true "Channel binding"
// @Success 201 {object} service.ChannelBindingResponse "Channel bound"
// @Failure 400 {object} ErrorResponse "Invalid request or channel does not belong to the deployment"
// @Failure 404 {object} ErrorResponse "Environment, deployment or channel not found"
// @Failure 409 {object} ErrorResponse "A binding already exists for this environment and deployment"
// @Security BearerAuth
// @Router /environments/{id}/channels [post]
func (h *EnvironmentHandler) BindChannel(c *gin.Context) {
	environmentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.BindChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.environmentService.BindChannel(environmentID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// UnbindChannel handles DELETE /environments/:id/channels/:deploymentId
// @Summary Unbind a version channel from an environment
// @Description Remove the channel binding for one environment and deployment pair
// @Tags environments
// @Accept json
// @Produce json
// @Param id path string true "Environment ID"
// @Param deploymentId path string true "Deployment ID"
// @Success 204 "Channel unbound"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Binding not found"
// @Security BearerAuth
// @Router /environments/{id}/channels/{deploymentId} [delete]
func (h *EnvironmentHandler) UnbindChannel(c *gin.Context) {
	environmentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	deploymentID, ok := parseUUIDParam(c, "deploymentId")
	if !ok {
		return
	}

	if err := h.environmentService.UnbindChannel(environmentID, deploymentID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
