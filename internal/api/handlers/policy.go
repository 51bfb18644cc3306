package handlers

import (
	"net/http"

	"release-orchestrator-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PolicyHandler handles HTTP requests for policy operations
type PolicyHandler struct {
	policyService service.PolicyServiceInterface
}

// NewPolicyHandler creates a new policy handler
func NewPolicyHandler(policyService service.PolicyServiceInterface) *PolicyHandler {
	return &PolicyHandler{
		policyService: policyService,
	}
}

// CreatePolicy handles POST /policies
// @Summary Create a policy
// @Description Create a policy with its rules and targets. Rules are fixed at creation; to change gating, create a replacement policy.
// @Tags policies
// @Accept json
// @Produce json
// @Param policy body service.CreatePolicyRequest true "Policy to create"
// @Success 201 {object} service.PolicyResponse "Policy created"
// @Failure 400 {object} ErrorResponse "Invalid request body, rule or selector"
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Failure 409 {object} ErrorResponse "Policy with this name already exists in the workspace"
// @Security BearerAuth
// @Router /policies [post]
func (h *PolicyHandler) CreatePolicy(c *gin.Context) {
	var req service.CreatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	policy, err := h.policyService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service.ToPolicyResponse(policy))
}

// GetPolicy handles GET /policies/:id
// @Summary Get a policy
// @Description Get a policy by its ID
// @Tags policies
// @Accept json
// @Produce json
// @Param id path string true "Policy ID"
// @Success 200 {object} service.PolicyResponse "Successfully retrieved policy"
// @Failure 400 {object} ErrorResponse "Invalid policy ID"
// @Failure 404 {object} ErrorResponse "Policy not found"
// @Security BearerAuth
// @Router /policies/{id} [get]
func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	policy, err := h.policyService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.ToPolicyResponse(policy))
}

// ListPoliciesByWorkspace handles GET /workspaces/:id/policies
// @Summary List policies in a workspace
// @Description Get all policies belonging to a workspace with pagination support
// @Tags policies
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.PolicyListResponse "Successfully retrieved policies"
// @Failure 400 {object} ErrorResponse "Invalid workspace ID"
// @Security BearerAuth
// @Router /workspaces/{id}/policies [get]
func (h *PolicyHandler) ListPoliciesByWorkspace(c *gin.Context) {
	workspaceID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	policies, total, err := h.policyService.GetByWorkspaceID(workspaceID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := service.PolicyListResponse{
		Policies: make([]service.PolicyResponse, 0, len(policies)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range policies {
		resp.Policies = append(resp.Policies, service.ToPolicyResponse(&policies[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// UpdatePolicy handles PUT /policies/:id
// @Summary Update a policy
// @Description Update a policy's name, description, priority and enabled flag. Rules are immutable after creation.
// @Tags policies
// @Accept json
// @Produce json
// @Param id path string true "Policy ID"
// @Param policy body service.UpdatePolicyRequest true "Fields to update"
// @Success 200 {object} service.PolicyResponse "Policy updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Policy not found"
// @Security BearerAuth
// @Router /policies/{id} [put]
func (h *PolicyHandler) UpdatePolicy(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	policy, err := h.policyService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.ToPolicyResponse(policy))
}

// DeletePolicy handles DELETE /policies/:id
// @Summary Delete a policy
// @Description Delete a policy with its rules, targets and computed matches
// @Tags policies
// @Accept json
// @Produce json
// @Param id path string true "Policy ID"
// @Success 204 "Policy deleted"
// @Failure 400 {object} ErrorResponse "Invalid policy ID"
// @Failure 404 {object} ErrorResponse "Policy not found"
// @Security BearerAuth
// @Router /policies/{id} [delete]
func (h *PolicyHandler) DeletePolicy(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.policyService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddPolicyTarget handles POST /policies/:id/targets
// @Summary Add a policy target
// @Description Attach a selector pair to a policy and recompute its matches. A policy with no targets is global.
// @Tags policies
// @Accept json
// @Produce json
// @Param id path string true "Policy ID"
// @Param target body service.PolicyTargetRequest true "Target selectors"
// @Success 201 {object} models.PolicyTarget "Target added"
// @Failure 400 {object} ErrorResponse "Invalid request or selector"
// @Failure 404 {object} ErrorResponse "Policy not found"
// @Security BearerAuth
// @Router /policies/{id}/targets [post]
func (h *PolicyHandler) AddPolicyTarget(c *gin.Context) {
	policyID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.PolicyTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	target, err := h.policyService.AddTarget(policyID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, target)
}

// UpdatePolicyTarget handles PUT /policies/targets/:targetId
// @Summary Update a policy target
// @Description Replace a target's selectors and recompute the policy's matches
// @Tags policies
// @Accept json
// @Produce json
// @Param targetId path string true "Policy target ID"
// @Param target body service.PolicyTargetRequest true "Target selectors"
// @Success 200 {object} models.PolicyTarget "Target updated"
// @Failure 400 {object} ErrorResponse "Invalid request or selector"
// @Failure 404 {object} ErrorResponse "Policy target not found"
// @Security BearerAuth
// @Router /policies/targets/{targetId} [put]
func (h *PolicyHandler) UpdatePolicyTarget(c *gin.Context) {
	targetID, ok := parseUUIDParam(c, "targetId")
	if !ok {
		return
	}

	var req service.PolicyTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	target, err := h.policyService.UpdateTarget(targetID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, target)
}

// DeletePolicyTarget handles DELETE /policies/targets/:targetId
// @Summary Delete a policy target
// @Description Detach a target from its policy and recompute the matches
// @Tags policies
// @Accept json
// @Produce json
// @Param targetId path string true "Policy target ID"
// @Success 204 "Target deleted"
// @Failure 400 {object} ErrorResponse "Invalid target ID"
// @Failure 404 {object} ErrorResponse "Policy target not found"
// @Security BearerAuth
// @Router /policies/targets/{targetId} [delete]
func (h *PolicyHandler) DeletePolicyTarget(c *gin.Context) {
	targetID, ok := parseUUIDParam(c, "targetId")
	if !ok {
		return
	}

	if err := h.policyService.DeleteTarget(targetID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
