package handlers

import (
	"net/http"

	"release-orchestrator-backend/internal/auth"
	"release-orchestrator-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TriggerHandler handles HTTP requests for release job trigger operations
type TriggerHandler struct {
	triggerService  service.TriggerServiceInterface
	dispatchService service.DispatchServiceInterface
}

// NewTriggerHandler creates a new trigger handler
func NewTriggerHandler(triggerService service.TriggerServiceInterface, dispatchService service.DispatchServiceInterface) *TriggerHandler {
	return &TriggerHandler{
		triggerService:  triggerService,
		dispatchService: dispatchService,
	}
}

// RedeployRequest asks for a version to be re-deployed to one release target
type RedeployRequest struct {
	ReleaseTargetID uuid.UUID `json:"release_target_id" binding:"required"`
	VersionID       uuid.UUID `json:"version_id" binding:"required"`
}

// EvaluationResponse reports how the gating rules judged a trigger
type EvaluationResponse struct {
	TriggerID uuid.UUID              `json:"trigger_id"`
	Allow     bool                   `json:"allow"`
	Decisions []service.RuleDecision `json:"decisions"`
}

// SweepResponse reports the outcome of a manual dispatch sweep
type SweepResponse struct {
	Dispatched int `json:"dispatched"`
}

// Redeploy handles POST /triggers/redeploy
// @Summary Redeploy a version
// @Description Re-create the trigger for a release target and version pair. If the trigger was already dispatched and its job has finished, the job link is cleared so the sweeper dispatches again; a live job blocks the redeploy.
// @Tags triggers
// @Accept json
// @Produce json
// @Param redeploy body RedeployRequest true "Target and version to redeploy"
// @Success 201 {object} service.TriggerResponse "Trigger ready for dispatch"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Release target or version not found"
// @Failure 409 {object} ErrorResponse "Version not eligible or job still running"
// @Security BearerAuth
// @Router /triggers/redeploy [post]
func (h *TriggerHandler) Redeploy(c *gin.Context) {
	var req RedeployRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	actorID, _ := auth.GetActorID(c)

	trigger, err := h.triggerService.Redeploy(req.ReleaseTargetID, req.VersionID, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service.ToTriggerResponse(trigger))
}

// GetTrigger handles GET /triggers/:id
// @Summary Get a trigger
// @Description Get a release job trigger by its ID
// @Tags triggers
// @Accept json
// @Produce json
// @Param id path string true "Trigger ID"
// @Success 200 {object} service.TriggerResponse "Successfully retrieved trigger"
// @Failure 400 {object} ErrorResponse "Invalid trigger ID"
// @Failure 404 {object} ErrorResponse "Trigger not found"
// @Security BearerAuth
// @Router /triggers/{id} [get]
func (h *TriggerHandler) GetTrigger(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	trigger, err := h.triggerService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.ToTriggerResponse(trigger))
}

// ExplainTrigger handles GET /triggers/:id/evaluation
// @Summary Explain a trigger's gating
// @Description Evaluate every matching policy rule against a trigger without dispatching, returning each rule's verdict
// @Tags triggers
// @Accept json
// @Produce json
// @Param id path string true "Trigger ID"
// @Success 200 {object} EvaluationResponse "Rule verdicts"
// @Failure 400 {object} ErrorResponse "Invalid trigger ID"
// @Failure 404 {object} ErrorResponse "Trigger not found"
// @Security BearerAuth
// @Router /triggers/{id}/evaluation [get]
func (h *TriggerHandler) ExplainTrigger(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	decisions, allow, err := h.dispatchService.Explain(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, EvaluationResponse{
		TriggerID: id,
		Allow:     allow,
		Decisions: decisions,
	})
}

// Sweep handles POST /dispatch/sweep
// @Summary Run a dispatch sweep
// @Description Evaluate all undispatched triggers once and dispatch those whose rules allow it. The background sweeper does this continuously; this endpoint forces an immediate pass.
// @Tags triggers
// @Accept json
// @Produce json
// @Success 200 {object} SweepResponse "Sweep completed"
// @Failure 500 {object} ErrorResponse "Sweep failed"
// @Security BearerAuth
// @Router /dispatch/sweep [post]
func (h *TriggerHandler) Sweep(c *gin.Context) {
	dispatched, err := h.dispatchService.SweepOnce()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SweepResponse{Dispatched: dispatched})
}
