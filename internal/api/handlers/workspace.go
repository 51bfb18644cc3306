package handlers

import (
	"net/http"

	"release-orchestrator-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkspaceHandler handles HTTP requests for workspace operations
type WorkspaceHandler struct {
	workspaceService service.WorkspaceServiceInterface
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(workspaceService service.WorkspaceServiceInterface) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceService: workspaceService,
	}
}

// CreateWorkspace handles POST /workspaces
// @Summary Create a workspace
// @Description Create a new workspace with a unique slug
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace body service.CreateWorkspaceRequest true "Workspace to create"
// @Success 201 {object} service.WorkspaceResponse "Workspace created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Workspace with this slug already exists"
// @Security BearerAuth
// @Router /workspaces [post]
func (h *WorkspaceHandler) CreateWorkspace(c *gin.Context) {
	var req service.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.workspaceService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListWorkspaces handles GET /workspaces
// @Summary List workspaces
// @Description Get all workspaces with pagination support
// @Tags workspaces
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.WorkspaceListResponse "Successfully retrieved workspaces"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /workspaces [get]
func (h *WorkspaceHandler) ListWorkspaces(c *gin.Context) {
	page, pageSize := parsePagination(c)

	resp, err := h.workspaceService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetWorkspace handles GET /workspaces/:id
// @Summary Get a workspace
// @Description Get a workspace by its ID
// @Tags workspaces
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Success 200 {object} service.WorkspaceResponse "Successfully retrieved workspace"
// @Failure 400 {object} ErrorResponse "Invalid workspace ID"
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Security BearerAuth
// @Router /workspaces/{id} [get]
func (h *WorkspaceHandler) GetWorkspace(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.workspaceService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetWorkspaceBySlug handles GET /workspaces/slug/:slug
// @Summary Get a workspace by slug
// @Description Get a workspace by its URL-safe slug
// @Tags workspaces
// @Accept json
// @Produce json
// @Param slug path string true "Workspace slug"
// @Success 200 {object} service.WorkspaceResponse "Successfully retrieved workspace"
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Security BearerAuth
// @Router /workspaces/slug/{slug} [get]
func (h *WorkspaceHandler) GetWorkspaceBySlug(c *gin.Context) {
	slug := c.Param("slug")

	resp, err := h.workspaceService.GetBySlug(slug)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateWorkspace handles PUT /workspaces/:id
// @Summary Update a workspace
// @Description Update a workspace's name
// @Tags workspaces
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Param workspace body service.UpdateWorkspaceRequest true "Fields to update"
// @Success 200 {object} service.WorkspaceResponse "Workspace updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Security BearerAuth
// @Router /workspaces/{id} [put]
func (h *WorkspaceHandler) UpdateWorkspace(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.workspaceService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteWorkspace handles DELETE /workspaces/:id
// @Summary Delete a workspace
// @Description Delete a workspace by its ID
// @Tags workspaces
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Success 204 "Workspace deleted"
// @Failure 400 {object} ErrorResponse "Invalid workspace ID"
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Security BearerAuth
// @Router /workspaces/{id} [delete]
func (h *WorkspaceHandler) DeleteWorkspace(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.workspaceService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
