package handlers

import (
	"net/http"

	"release-orchestrator-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ChannelHandler handles HTTP requests for version channel operations
type ChannelHandler struct {
	channelService service.ChannelServiceInterface
}

// NewChannelHandler creates a new channel handler
func NewChannelHandler(channelService service.ChannelServiceInterface) *ChannelHandler {
	return &ChannelHandler{
		channelService: channelService,
	}
}

// CreateChannel handles POST /channels
// @Summary Create a version channel
// @Description Create a named version filter for a deployment
// @Tags channels
// @Accept json
// @Produce json
// @Param channel body service.CreateChannelRequest true "Channel to create"
// @Success 201 {object} service.ChannelResponse "Channel created"
// @Failure 400 {object} ErrorResponse "Invalid request body or selector"
// @Failure 404 {object} ErrorResponse "Deployment not found"
// @Failure 409 {object} ErrorResponse "Channel with this name already exists for the deployment"
// @Security BearerAuth
// @Router /channels [post]
func (h *ChannelHandler) CreateChannel(c *gin.Context) {
	var req service.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.channelService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetChannel handles GET /channels/:id
// @Summary Get a version channel
// @Description Get a version channel by its ID
// @Tags channels
// @Accept json
// @Produce json
// @Param id path string true "Channel ID"
// @Success 200 {object} service.ChannelResponse "Successfully retrieved channel"
// @Failure 400 {object} ErrorResponse "Invalid channel ID"
// @Failure 404 {object} ErrorResponse "Channel not found"
// @Security BearerAuth
// @Router /channels/{id} [get]
func (h *ChannelHandler) GetChannel(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.channelService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListChannelsByDeployment handles GET /deployments/:id/channels
// @Summary List channels of a deployment
// @Description Get all version channels defined for a deployment
// @Tags channels
// @Accept json
// @Produce json
// @Param id path string true "Deployment ID"
// @Success 200 {array} service.ChannelResponse "Successfully retrieved channels"
// @Failure 400 {object} ErrorResponse "Invalid deployment ID"
// @Security BearerAuth
// @Router /deployments/{id}/channels [get]
func (h *ChannelHandler) ListChannelsByDeployment(c *gin.Context) {
	deploymentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.channelService.GetByDeploymentID(deploymentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateChannel handles PUT /channels/:id
// @Summary Update a version channel
// @Description Update a channel's description or version selector
// @Tags channels
// @Accept json
// @Produce json
// @Param id path string true "Channel ID"
// @Param channel body service.UpdateChannelRequest true "Fields to update"
// @Success 200 {object} service.ChannelResponse "Channel updated"
// @Failure 400 {object} ErrorResponse "Invalid request or selector"
// @Failure 404 {object} ErrorResponse "Channel not found"
// @Security BearerAuth
// @Router /channels/{id} [put]
func (h *ChannelHandler) UpdateChannel(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.channelService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteChannel handles DELETE /channels/:id
// @Summary Delete a version channel
// @Description Delete a channel. Channels still bound to an environment cannot be deleted.
// @Tags channels
// @Accept json
// @Produce json
// @Param id path string true "Channel ID"
// @Success 204 "Channel deleted"
// @Failure 400 {object} ErrorResponse "Invalid channel ID"
// @Failure 404 {object} ErrorResponse "Channel not found"
// @Failure 409 {object} ErrorResponse "Channel is bound to one or more environments"
// @Security BearerAuth
// @Router /channels/{id} [delete]
func (h *ChannelHandler) DeleteChannel(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.channelService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
