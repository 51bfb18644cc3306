package service

import (
	"errors"
	"fmt"
	"time"

	"release-orchestrator-backend/internal/database/models"
	apperrors "release-orchestrator-backend/internal/errors"
	"release-orchestrator-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApprovalService records approver verdicts for (policy, version) pairs.
// Qualification against the policy's approver roles is enforced here, when
// the verdict is recorded, so the dispatch-time gate can count every stored
// verdict. A decision pokes the sweep: an arriving approval may unblock
// dispatch immediately.
type ApprovalService struct {
	repo        repository.ApprovalRepositoryInterface
	policyRepo  repository.PolicyRepositoryInterface
	versionRepo repository.DeploymentVersionRepositoryInterface
	sweeper     Poker
	validator   *validator.Validate
}

// NewApprovalService creates a new approval service
func NewApprovalService(
	repo repository.ApprovalRepositoryInterface,
	policyRepo repository.PolicyRepositoryInterface,
	versionRepo repository.DeploymentVersionRepositoryInterface,
	sweeper Poker,
	validator *validator.Validate,
) *ApprovalService {
	return &ApprovalService{
		repo:        repo,
		policyRepo:  policyRepo,
		versionRepo: versionRepo,
		sweeper:     sweeper,
		validator:   validator,
	}
}

// AssignApproversRequest pre-creates pending approval rows for named
// approvers, the "please review" path
type AssignApproversRequest struct {
	PolicyID    uuid.UUID `json:"policy_id" validate:"required"`
	VersionID   uuid.UUID `json:"version_id" validate:"required"`
	ApproverIDs []string  `json:"approver_ids" validate:"required,min=1,dive,required"`
}

// DecideApprovalRequest records one approver's verdict
type DecideApprovalRequest struct {
	PolicyID  uuid.UUID `json:"policy_id" validate:"required"`
	VersionID uuid.UUID `json:"version_id" validate:"required"`
	Approve   *bool     `json:"approve" validate:"required"`
	Reason    string    `json:"reason" validate:"max=255"`
}

// ApprovalResponse represents an approval in API responses
type ApprovalResponse struct {
	ID         uuid.UUID             `json:"id"`
	PolicyID   uuid.UUID             `json:"policy_id"`
	VersionID  uuid.UUID             `json:"version_id"`
	ApproverID string                `json:"approver_id"`
	Status     models.ApprovalStatus `json:"status"`
	Reason     string                `json:"reason,omitempty"`
	DecidedAt  *string               `json:"decided_at,omitempty"`
	CreatedAt  string                `json:"created_at"`
}

// ApprovalListResponse represents a paginated list of approvals
type ApprovalListResponse struct {
	Approvals []ApprovalResponse `json:"approvals"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Assign pre-creates pending approval rows. Re-assigning an approver who
// already has a row, pending or decided, is a no-op.
func (s *ApprovalService) Assign(req *AssignApproversRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if err := s.verifyPair(req.PolicyID, req.VersionID); err != nil {
		return err
	}

	rows := make([]models.Approval, 0, len(req.ApproverIDs))
	for _, approverID := range req.ApproverIDs {
		rows = append(rows, models.Approval{
			PolicyID:   req.PolicyID,
			VersionID:  req.VersionID,
			ApproverID: approverID,
			Status:     models.ApprovalStatusPending,
		})
	}
	if err := s.repo.CreatePending(rows); err != nil {
		return fmt.Errorf("failed to create pending approvals: %w", err)
	}
	return nil
}

// Decide records the actor's verdict for a (policy, version) pair. The actor
// must hold one of the policy's approver roles when the rule restricts them;
// a verdict, once recorded, cannot be changed.
func (s *ApprovalService) Decide(req *DecideApprovalRequest, actorID, actorRole string) (*ApprovalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if actorID == "" {
		return nil, apperrors.ErrMissingActor
	}

	policy, err := s.policyRepo.GetByID(req.PolicyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPolicyNotFound
		}
		return nil, fmt.Errorf("failed to get policy: %w", err)
	}
	if err := s.verifyPair(req.PolicyID, req.VersionID); err != nil {
		return nil, err
	}
	if !s.qualifies(policy, actorRole) {
		return nil, apperrors.ErrApproverNotQualified
	}

	// ensure the actor's row exists, then decide it exactly once
	err = s.repo.CreatePending([]models.Approval{{
		PolicyID:   req.PolicyID,
		VersionID:  req.VersionID,
		ApproverID: actorID,
		Status:     models.ApprovalStatusPending,
	}})
	if err != nil {
		return nil, fmt.Errorf("failed to create approval: %w", err)
	}

	approval, err := s.findApproverRow(req.PolicyID, req.VersionID, actorID)
	if err != nil {
		return nil, err
	}

	status := models.ApprovalStatusRejected
	if *req.Approve {
		status = models.ApprovalStatusApproved
	}
	if err := s.repo.Decide(approval.ID, status, req.Reason); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApprovalAlreadyDecided
		}
		return nil, fmt.Errorf("failed to decide approval: %w", err)
	}

	if s.sweeper != nil {
		s.sweeper.Poke()
	}

	approval, err = s.findApproverRow(req.PolicyID, req.VersionID, actorID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(approval), nil
}

// GetPendingForApprover lists an approver's open requests
func (s *ApprovalService) GetPendingForApprover(approverID string, page, pageSize int) (*ApprovalListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	approvals, total, err := s.repo.GetPendingByApprover(approverID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending approvals: %w", err)
	}

	responses := make([]ApprovalResponse, len(approvals))
	for i := range approvals {
		responses[i] = *s.toResponse(&approvals[i])
	}
	return &ApprovalListResponse{
		Approvals: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// GetByVersionID lists every approval row of a version across policies
func (s *ApprovalService) GetByVersionID(versionID uuid.UUID) ([]ApprovalResponse, error) {
	approvals, err := s.repo.GetByVersionID(versionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get approvals: %w", err)
	}
	responses := make([]ApprovalResponse, len(approvals))
	for i := range approvals {
		responses[i] = *s.toResponse(&approvals[i])
	}
	return responses, nil
}

func (s *ApprovalService) verifyPair(policyID, versionID uuid.UUID) error {
	if _, err := s.policyRepo.GetByID(policyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPolicyNotFound
		}
		return fmt.Errorf("failed to get policy: %w", err)
	}
	if _, err := s.versionRepo.GetByID(versionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrVersionNotFound
		}
		return fmt.Errorf("failed to get version: %w", err)
	}
	return nil
}

// qualifies checks the actor's role against every approval rule of the
// policy; a rule without role restrictions admits anyone
func (s *ApprovalService) qualifies(policy *models.Policy, actorRole string) bool {
	for i := range policy.Approvals {
		rule := &policy.Approvals[i]
		if !rule.Enabled {
			continue
		}
		roles, err := rule.RoleList()
		if err != nil || len(roles) == 0 {
			continue
		}
		found := false
		for _, r := range roles {
			if r == actorRole {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (s *ApprovalService) findApproverRow(policyID, versionID uuid.UUID, approverID string) (*models.Approval, error) {
	approvals, err := s.repo.GetByPolicyAndVersion(policyID, versionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get approvals: %w", err)
	}
	for i := range approvals {
		if approvals[i].ApproverID == approverID {
			return &approvals[i], nil
		}
	}
	return nil, apperrors.ErrApprovalNotFound
}

// toResponse converts an Approval model to API response
func (s *ApprovalService) toResponse(a *models.Approval) *ApprovalResponse {
	resp := &ApprovalResponse{
		ID:         a.ID,
		PolicyID:   a.PolicyID,
		VersionID:  a.VersionID,
		ApproverID: a.ApproverID,
		Status:     a.Status,
		Reason:     a.Reason,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
	if a.DecidedAt != nil {
		decided := a.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decided
	}
	return resp
}
