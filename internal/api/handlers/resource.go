package handlers

import (
	"net/http"

	"release-orchestrator-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ResourceHandler handles HTTP requests for resource operations
type ResourceHandler struct {
	resourceService service.ResourceServiceInterface
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(resourceService service.ResourceServiceInterface) *ResourceHandler {
	return &ResourceHandler{
		resourceService: resourceService,
	}
}

// UpsertResource handles PUT /resources
// @Summary Upsert a resource
// @Description Register or refresh a resource by its workspace-scoped identifier. Release targets for the workspace are recomputed.
// @Tags resources
// @Accept json
// @Produce json
// @Param resource body service.UpsertResourceRequest true "Resource to upsert"
// @Success 200 {object} service.ResourceResponse "Resource upserted"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Security BearerAuth
// @Router /resources [put]
func (h *ResourceHandler) UpsertResource(c *gin.Context) {
	var req service.UpsertResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.resourceService.Upsert(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetResource handles GET /resources/:id
// @Summary Get a resource
// @Description Get a resource by its ID
// @Tags resources
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} service.ResourceResponse "Successfully retrieved resource"
// @Failure 400 {object} ErrorResponse "Invalid resource ID"
// @Failure 404 {object} ErrorResponse "Resource not found"
// @Security BearerAuth
// @Router /resources/{id} [get]
func (h *ResourceHandler) GetResource(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.resourceService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListResourcesByWorkspace handles GET /workspaces/:id/resources
// @Summary List resources in a workspace
// @Description Get all resources belonging to a workspace with pagination support
// @Tags resources
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.ResourceListResponse "Successfully retrieved resources"
// @Failure 400 {object} ErrorResponse "Invalid workspace ID"
// @Security BearerAuth
// @Router /workspaces/{id}/resources [get]
func (h *ResourceHandler) ListResourcesByWorkspace(c *gin.Context) {
	workspaceID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	resp, err := h.resourceService.GetByWorkspaceID(workspaceID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteResource handles DELETE /resources/:id
// @Summary Delete a resource
// @Description Delete a resource and its release targets
// @Tags resources
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Success 204 "Resource deleted"
// @Failure 400 {object} ErrorResponse "Invalid resource ID"
// @Failure 404 {object} ErrorResponse "Resource not found"
// @Security BearerAuth
// @Router /resources/{id} [delete]
func (h *ResourceHandler) DeleteResource(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.resourceService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
