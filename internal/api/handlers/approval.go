package handlers

import (
	"net/http"

	"release-orchestrator-backend/internal/auth"
	apperrors "release-orchestrator-backend/internal/errors"
	"release-orchestrator-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ApprovalHandler handles HTTP requests for approval operations
type ApprovalHandler struct {
	approvalService service.ApprovalServiceInterface
}

// NewApprovalHandler creates a new approval handler
func NewApprovalHandler(approvalService service.ApprovalServiceInterface) *ApprovalHandler {
	return &ApprovalHandler{
		approvalService: approvalService,
	}
}

// AssignApprovers handles POST /approvals/assign
// @Summary Assign approvers
// @Description Pre-create pending approval rows for the named approvers on a policy and version pair. Re-assigning an existing approver is a no-op.
// @Tags approvals
// @Accept json
// @Produce json
// @Param assignment body service.AssignApproversRequest true "Approvers to assign"
// @Success 204 "Approvers assigned"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Policy or version not found"
// @Security BearerAuth
// @Router /approvals/assign [post]
func (h *ApprovalHandler) AssignApprovers(c *gin.Context) {
	var req service.AssignApproversRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.approvalService.Assign(&req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DecideApproval handles POST /approvals/decide
// @Summary Record an approval verdict
// @Description Record the authenticated actor's verdict on a policy and version pair. Each approver decides exactly once; the actor's role must satisfy the policy's approver roles.
// @Tags approvals
// @Accept json
// @Produce json
// @Param decision body service.DecideApprovalRequest true "Verdict"
// @Success 200 {object} service.ApprovalResponse "Verdict recorded"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Request carries no actor identity"
// @Failure 403 {object} ErrorResponse "Actor role does not qualify for this approval"
// @Failure 404 {object} ErrorResponse "Policy or version not found"
// @Failure 409 {object} ErrorResponse "Approval already decided"
// @Security BearerAuth
// @Router /approvals/decide [post]
func (h *ApprovalHandler) DecideApproval(c *gin.Context) {
	var req service.DecideApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	actorID, _ := auth.GetActorID(c)
	actorRole := c.GetString("actor_role")

	resp, err := h.approvalService.Decide(&req, actorID, actorRole)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListPendingApprovals handles GET /approvals/pending
// @Summary List pending approvals for the caller
// @Description Get the authenticated actor's pending approval rows with pagination support
// @Tags approvals
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.ApprovalListResponse "Successfully retrieved approvals"
// @Failure 401 {object} ErrorResponse "Request carries no actor identity"
// @Security BearerAuth
// @Router /approvals/pending [get]
func (h *ApprovalHandler) ListPendingApprovals(c *gin.Context) {
	actorID, ok := auth.GetActorID(c)
	if !ok || actorID == "" {
		respondError(c, apperrors.ErrMissingActor)
		return
	}
	page, pageSize := parsePagination(c)

	resp, err := h.approvalService.GetPendingForApprover(actorID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListApprovalsByVersion handles GET /versions/:id/approvals
// @Summary List approvals for a version
// @Description Get all approval rows recorded against a version
// @Tags approvals
// @Accept json
// @Produce json
// @Param id path string true "Version ID"
// @Success 200 {array} service.ApprovalResponse "Successfully retrieved approvals"
// @Failure 400 {object} ErrorResponse "Invalid version ID"
// @Security BearerAuth
// @Router /versions/{id}/approvals [get]
func (h *ApprovalHandler) ListApprovalsByVersion(c *gin.Context) {
	versionID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.approvalService.GetByVersionID(versionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
