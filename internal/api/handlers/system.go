package handlers

import (
	"net/http"

	"release-orchestrator-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SystemHandler handles HTTP requests for system operations
type SystemHandler struct {
	systemService service.SystemServiceInterface
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(systemService service.SystemServiceInterface) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// CreateSystem handles POST /systems
// @Summary Create a system
// @Description Create a new system inside a workspace
// @Tags systems
// @Accept json
// @Produce json
// @Param system body service.CreateSystemRequest true "System to create"
// @Success 201 {object} service.SystemResponse "System created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Failure 409 {object} ErrorResponse "System with this slug already exists in the workspace"
// @Security BearerAuth
// @Router /systems [post]
func (h *SystemHandler) CreateSystem(c *gin.Context) {
	var req service.CreateSystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.systemService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetSystem handles GET /systems/:id
// @Summary Get a system
// @Description Get a system by its ID
// @Tags systems
// @Accept json
// @Produce json
// @Param id path string true "System ID"
// @Success 200 {object} service.SystemResponse "Successfully retrieved system"
// @Failure 400 {object} ErrorResponse "Invalid system ID"
// @Failure 404 {object} ErrorResponse "System not found"
// @Security BearerAuth
// @Router /systems/{id} [get]
func (h *SystemHandler) GetSystem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.systemService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListSystemsByWorkspace handles GET /workspaces/:id/systems
// @Summary List systems in a workspace
// @Description Get all systems belonging to a workspace with pagination support
// @Tags systems
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.SystemListResponse "Successfully retrieved systems"
// @Failure 400 {object} ErrorResponse "Invalid workspace ID"
// @Security BearerAuth
// @Router /workspaces/{id}/systems [get]
func (h *SystemHandler) ListSystemsByWorkspace(c *gin.Context) {
	workspaceID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	resp, err := h.systemService.GetByWorkspaceID(workspaceID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateSystem handles PUT /systems/:id
// @Summary Update a system
// @Description Update a system's name and description
// @Tags systems
// @Accept json
// @Produce json
// @Param id path string true "System ID"
// @Param system body service.UpdateSystemRequest true "Fields to update"
// @Success 200 {object} service.SystemResponse "System updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "System not found"
// @Security BearerAuth
// @Router /systems/{id} [put]
func (h *SystemHandler) UpdateSystem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateSystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.systemService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteSystem handles DELETE /systems/:id
// @Summary Delete a system
// @Description Delete a system by its ID
// @Tags systems
// @Accept json
// @Produce json
// @Param id path string true "System ID"
// @Success 204 "System deleted"
// @Failure 400 {object} ErrorResponse "Invalid system ID"
// @Failure 404 {object} ErrorResponse "System not found"
// @Security BearerAuth
// @Router /systems/{id} [delete]
func (h *SystemHandler) DeleteSystem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.systemService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
