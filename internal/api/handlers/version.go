package handlers

import (
	"net/http"

	"release-orchestrator-backend/internal/auth"
	"release-orchestrator-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VersionHandler handles HTTP requests for deployment version operations
type VersionHandler struct {
	versionService service.VersionServiceInterface
}

// NewVersionHandler creates a new version handler
func NewVersionHandler(versionService service.VersionServiceInterface) *VersionHandler {
	return &VersionHandler{
		versionService: versionService,
	}
}

// UpsertVersion handles PUT /versions
// @Summary Upsert a deployment version
// @Description Report a version from a build pipeline. Re-reporting the same deployment and tag updates the existing row. A version arriving ready immediately fans out release job triggers.
// @Tags versions
// @Accept json
// @Produce json
// @Param version body service.UpsertVersionRequest true "Version to upsert"
// @Success 200 {object} service.VersionResponse "Version upserted"
// @Failure 400 {object} ErrorResponse "Invalid request body or status"
// @Failure 404 {object} ErrorResponse "Deployment not found"
// @Security BearerAuth
// @Router /versions [put]
func (h *VersionHandler) UpsertVersion(c *gin.Context) {
	var req service.UpsertVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	actorID, _ := auth.GetActorID(c)

	resp, err := h.versionService.Upsert(&req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SetVersionStatus handles PATCH /versions/:id/status
// @Summary Set a version's status
// @Description Transition a version between building, ready, failed and rejected. Only building versions may move; reaching ready fans out release job triggers.
// @Tags versions
// @Accept json
// @Produce json
// @Param id path string true "Version ID"
// @Param status body service.SetVersionStatusRequest true "New status"
// @Success 200 {object} service.VersionResponse "Status updated"
// @Failure 400 {object} ErrorResponse "Invalid status or transition"
// @Failure 404 {object} ErrorResponse "Version not found"
// @Security BearerAuth
// @Router /versions/{id}/status [patch]
func (h *VersionHandler) SetVersionStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.SetVersionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	actorID, _ := auth.GetActorID(c)

	resp, err := h.versionService.SetStatus(id, &req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetVersion handles GET /versions/:id
// @Summary Get a version
// @Description Get a deployment version by its ID
// @Tags versions
// @Accept json
// @Produce json
// @Param id path string true "Version ID"
// @Success 200 {object} service.VersionResponse "Successfully retrieved version"
// @Failure 400 {object} ErrorResponse "Invalid version ID"
// @Failure 404 {object} ErrorResponse "Version not found"
// @Security BearerAuth
// @Router /versions/{id} [get]
func (h *VersionHandler) GetVersion(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.versionService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListVersionsByDeployment handles GET /deployments/:id/versions
// @Summary List versions of a deployment
// @Description Get all versions reported for a deployment with pagination support
// @Tags versions
// @Accept json
// @Produce json
// @Param id path string true "Deployment ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.VersionListResponse "Successfully retrieved versions"
// @Failure 400 {object} ErrorResponse "Invalid deployment ID"
// @Security BearerAuth
// @Router /deployments/{id}/versions [get]
func (h *VersionHandler) ListVersionsByDeployment(c *gin.Context) {
	deploymentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	resp, err := h.versionService.GetByDeploymentID(deploymentID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
