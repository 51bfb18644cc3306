package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"release-orchestrator-backend/internal/database/models"
	apperrors "release-orchestrator-backend/internal/errors"
	"release-orchestrator-backend/internal/repository"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PolicyService handles business logic for policies, their rules and their
// target selectors. Rules are fixed at creation; changing a policy's gating
// behavior means replacing the policy, which keeps historical decisions
// attributable to the rule set that made them.
type PolicyService struct {
	repo           repository.PolicyRepositoryInterface
	workspaceRepo  *repository.WorkspaceRepository
	deploymentRepo *repository.DeploymentRepository
	matcher        *PolicyMatcherService
	validator      *validator.Validate
}

// NewPolicyService creates a new policy service
func NewPolicyService(
	repo repository.PolicyRepositoryInterface,
	workspaceRepo *repository.WorkspaceRepository,
	deploymentRepo *repository.DeploymentRepository,
	matcher *PolicyMatcherService,
	validator *validator.Validate,
) *PolicyService {
	return &PolicyService{
		repo:           repo,
		workspaceRepo:  workspaceRepo,
		deploymentRepo: deploymentRepo,
		matcher:        matcher,
		validator:      validator,
	}
}

// PolicyTargetRequest scopes a policy by two selector axes; nil matches all
type PolicyTargetRequest struct {
	DeploymentSelector  json.RawMessage `json:"deployment_selector" swaggertype:"object"`
	EnvironmentSelector json.RawMessage `json:"environment_selector" swaggertype:"object"`
}

// DenyWindowRuleRequest represents a recurring weekly blackout
type DenyWindowRuleRequest struct {
	Name      string   `json:"name" validate:"max=100"`
	Timezone  string   `json:"timezone" validate:"required"`
	Days      []string `json:"days" validate:"required,min=1,dive,oneof=sunday monday tuesday wednesday thursday friday saturday"`
	StartTime string   `json:"start_time" validate:"required"`
	EndTime   string   `json:"end_time" validate:"required"`
}

// ApprovalRuleRequest represents a minimum approval count gate
type ApprovalRuleRequest struct {
	RequiredApprovals int      `json:"required_approvals" validate:"required,min=1"`
	ApproverRoles     []string `json:"approver_roles"`
	TimeoutSeconds    int      `json:"timeout_seconds" validate:"min=0"`
}

// ConcurrencyRuleRequest caps simultaneous jobs across the policy's scope
type ConcurrencyRuleRequest struct {
	Limit int `json:"limit" validate:"required,min=1"`
}

// RolloutStageRequest is one rollout stage
type RolloutStageRequest struct {
	Percentage  int `json:"percentage" validate:"required,min=1,max=100"`
	SoakSeconds int `json:"soak_seconds" validate:"min=0"`
}

// RolloutRuleRequest stages a version across its cohort
type RolloutRuleRequest struct {
	Stages   []RolloutStageRequest `json:"stages" validate:"required,min=1,dive"`
	FailFast bool                  `json:"fail_fast"`
}

// PassRateRuleRequest gates on an externally observed metric
type PassRateRuleRequest struct {
	MetricName    string  `json:"metric_name" validate:"required,min=1,max=100"`
	MinPassRate   float64 `json:"min_pass_rate" validate:"min=0,max=1"`
	WindowSeconds int     `json:"window_seconds" validate:"required,min=1"`
	MinSampleSize int     `json:"min_sample_size" validate:"required,min=1"`
}

// DependencyRuleRequest requires another deployment at a satisfying version
type DependencyRuleRequest struct {
	DependsOnDeploymentID uuid.UUID `json:"depends_on_deployment_id" validate:"required"`
	VersionConstraint     string    `json:"version_constraint" validate:"required"`
	TimeoutSeconds        int       `json:"timeout_seconds" validate:"min=0"`
}

// CreatePolicyRequest represents the request to create a policy with its
// rules and target selectors
type CreatePolicyRequest struct {
	WorkspaceID  uuid.UUID                `json:"workspace_id" validate:"required"`
	Name         string                   `json:"name" validate:"required,min=1,max=100"`
	Description  string                   `json:"description" validate:"max=255"`
	Priority     int                      `json:"priority"`
	Enabled      *bool                    `json:"enabled"`
	Targets      []PolicyTargetRequest    `json:"targets"`
	DenyWindows  []DenyWindowRuleRequest  `json:"deny_windows" validate:"dive"`
	Approvals    []ApprovalRuleRequest    `json:"approvals" validate:"dive"`
	Concurrency  []ConcurrencyRuleRequest `json:"concurrency" validate:"dive"`
	Rollouts     []RolloutRuleRequest     `json:"rollouts" validate:"dive"`
	PassRates    []PassRateRuleRequest    `json:"pass_rates" validate:"dive"`
	Dependencies []DependencyRuleRequest  `json:"dependencies" validate:"dive"`
}

// UpdatePolicyRequest represents the mutable policy row fields
type UpdatePolicyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=255"`
	Priority    int    `json:"priority"`
	Enabled     *bool  `json:"enabled"`
}

// PolicyResponse represents the response for policy operations
type PolicyResponse struct {
	ID          uuid.UUID      `json:"id"`
	WorkspaceID uuid.UUID      `json:"workspace_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Priority    int            `json:"priority"`
	Enabled     bool           `json:"enabled"`
	Global      bool           `json:"global"`
	RuleCounts  map[string]int `json:"rule_counts"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
}

// PolicyListResponse represents a paginated list of policies
type PolicyListResponse struct {
	Policies []PolicyResponse `json:"policies"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a policy with its rules and targets and materializes the
// target matches
func (s *PolicyService) Create(req *CreatePolicyRequest) (*models.Policy, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.validateRules(req); err != nil {
		return nil, err
	}

	if _, err := s.workspaceRepo.GetByID(req.WorkspaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to verify workspace: %w", err)
	}

	existing, err := s.repo.GetByName(req.WorkspaceID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing policy: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrPolicyExists
	}

	policy, err := s.buildPolicy(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(policy); err != nil {
		return nil, fmt.Errorf("failed to create policy: %w", err)
	}

	for i := range policy.Targets {
		if err := s.matcher.RecomputeForTarget(req.WorkspaceID, &policy.Targets[i]); err != nil {
			return nil, err
		}
	}

	return policy, nil
}

func (s *PolicyService) buildPolicy(req *CreatePolicyRequest) (*models.Policy, error) {
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	policy := &models.Policy{
		WorkspaceID: req.WorkspaceID,
		Name:        req.Name,
		Description: req.Description,
		Priority:    req.Priority,
		Enabled:     enabled,
	}

	for _, t := range req.Targets {
		if err := validateSelector(t.DeploymentSelector); err != nil {
			return nil, err
		}
		if err := validateSelector(t.EnvironmentSelector); err != nil {
			return nil, err
		}
		policy.Targets = append(policy.Targets, models.PolicyTarget{
			DeploymentSelector:  t.DeploymentSelector,
			EnvironmentSelector: t.EnvironmentSelector,
		})
	}

	for _, r := range req.DenyWindows {
		days, err := json.Marshal(r.Days)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal days: %w", err)
		}
		policy.DenyWindows = append(policy.DenyWindows, models.PolicyRuleDenyWindow{
			Name:      r.Name,
			Timezone:  r.Timezone,
			Days:      days,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Enabled:   true,
		})
	}

	for _, r := range req.Approvals {
		var roles json.RawMessage
		if len(r.ApproverRoles) > 0 {
			roles, _ = json.Marshal(r.ApproverRoles)
		}
		policy.Approvals = append(policy.Approvals, models.PolicyRuleApproval{
			RequiredApprovals: r.RequiredApprovals,
			ApproverRoles:     roles,
			TimeoutSeconds:    r.TimeoutSeconds,
			Enabled:           true,
		})
	}

	for _, r := range req.Concurrency {
		policy.Concurrency = append(policy.Concurrency, models.PolicyRuleConcurrency{
			Limit:   r.Limit,
			Enabled: true,
		})
	}

	for _, r := range req.Rollouts {
		stages := make([]models.RolloutStage, len(r.Stages))
		for i, st := range r.Stages {
			stages[i] = models.RolloutStage{Percentage: st.Percentage, SoakSeconds: st.SoakSeconds}
		}
		raw, err := json.Marshal(stages)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal stages: %w", err)
		}
		policy.Rollouts = append(policy.Rollouts, models.PolicyRuleRollout{
			Stages:   raw,
			FailFast: r.FailFast,
			Enabled:  true,
		})
	}

	for _, r := range req.PassRates {
		policy.PassRates = append(policy.PassRates, models.PolicyRulePassRate{
			MetricName:    r.MetricName,
			MinPassRate:   r.MinPassRate,
			WindowSeconds: r.WindowSeconds,
			MinSampleSize: r.MinSampleSize,
			Enabled:       true,
		})
	}

	for _, r := range req.Dependencies {
		policy.Dependencies = append(policy.Dependencies, models.PolicyRuleDependency{
			DependsOnDeploymentID: r.DependsOnDeploymentID,
			VersionConstraint:     r.VersionConstraint,
			TimeoutSeconds:        r.TimeoutSeconds,
			Enabled:               true,
		})
	}

	return policy, nil
}

// validateRules rejects rule configurations the evaluators would fail closed
// on, so misconfiguration surfaces at creation rather than as blanket denials
func (s *PolicyService) validateRules(req *CreatePolicyRequest) error {
	for _, w := range req.DenyWindows {
		if _, err := time.LoadLocation(w.Timezone); err != nil {
			return apperrors.NewValidationError("timezone", fmt.Sprintf("unknown timezone %q", w.Timezone))
		}
		for _, clock := range []string{w.StartTime, w.EndTime} {
			if _, err := time.Parse("15:04", clock); err != nil {
				return apperrors.NewValidationError("start_time", fmt.Sprintf("%q is not a HH:MM time", clock))
			}
		}
	}
	for _, d := range req.Dependencies {
		if _, err := semver.NewConstraint(d.VersionConstraint); err != nil {
			return apperrors.NewValidationError("version_constraint", fmt.Sprintf("invalid constraint %q", d.VersionConstraint))
		}
		if _, err := s.deploymentRepo.GetByID(d.DependsOnDeploymentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrDeploymentNotFound
			}
			return fmt.Errorf("failed to verify dependency deployment: %w", err)
		}
	}
	return nil
}

// GetByID retrieves a policy with its rules and targets
func (s *PolicyService) GetByID(id uuid.UUID) (*models.Policy, error) {
	policy, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPolicyNotFound
		}
		return nil, fmt.Errorf("failed to get policy: %w", err)
	}
	return policy, nil
}

// GetByWorkspaceID retrieves policies of a workspace with pagination
func (s *PolicyService) GetByWorkspaceID(workspaceID uuid.UUID, page, pageSize int) ([]models.Policy, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	policies, total, err := s.repo.GetByWorkspaceID(workspaceID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get policies: %w", err)
	}
	return policies, total, nil
}

// Update updates a policy's row fields. Rules and targets are managed through
// their own operations.
func (s *PolicyService) Update(id uuid.UUID, req *UpdatePolicyRequest) (*models.Policy, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	policy, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPolicyNotFound
		}
		return nil, fmt.Errorf("failed to get policy: %w", err)
	}

	policy.Name = req.Name
	policy.Description = req.Description
	policy.Priority = req.Priority
	if req.Enabled != nil {
		policy.Enabled = *req.Enabled
	}
	if err := s.repo.Update(policy); err != nil {
		return nil, fmt.Errorf("failed to update policy: %w", err)
	}
	return policy, nil
}

// Delete deletes a policy; rules, targets and computed matches cascade
func (s *PolicyService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPolicyNotFound
		}
		return fmt.Errorf("failed to get policy: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete policy: %w", err)
	}
	return nil
}

// AddTarget adds a target selector to a policy and materializes its matches.
// Adding the first target narrows a previously global policy.
func (s *PolicyService) AddTarget(policyID uuid.UUID, req *PolicyTargetRequest) (*models.PolicyTarget, error) {
	if err := validateSelector(req.DeploymentSelector); err != nil {
		return nil, err
	}
	if err := validateSelector(req.EnvironmentSelector); err != nil {
		return nil, err
	}

	policy, err := s.repo.GetByID(policyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPolicyNotFound
		}
		return nil, fmt.Errorf("failed to get policy: %w", err)
	}

	target := &models.PolicyTarget{
		PolicyID:            policy.ID,
		DeploymentSelector:  req.DeploymentSelector,
		EnvironmentSelector: req.EnvironmentSelector,
	}
	if err := s.repo.CreateTarget(target); err != nil {
		return nil, fmt.Errorf("failed to create policy target: %w", err)
	}

	if err := s.matcher.RecomputeForTarget(policy.WorkspaceID, target); err != nil {
		return nil, err
	}
	return target, nil
}

// UpdateTarget replaces a policy target's selectors and recomputes its matches
func (s *PolicyService) UpdateTarget(targetID uuid.UUID, req *PolicyTargetRequest) (*models.PolicyTarget, error) {
	if err := validateSelector(req.DeploymentSelector); err != nil {
		return nil, err
	}
	if err := validateSelector(req.EnvironmentSelector); err != nil {
		return nil, err
	}

	target, err := s.repo.GetTargetByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPolicyTargetNotFound
		}
		return nil, fmt.Errorf("failed to get policy target: %w", err)
	}

	policy, err := s.repo.GetByID(target.PolicyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get policy: %w", err)
	}

	target.DeploymentSelector = req.DeploymentSelector
	target.EnvironmentSelector = req.EnvironmentSelector
	if err := s.repo.UpdateTarget(target); err != nil {
		return nil, fmt.Errorf("failed to update policy target: %w", err)
	}

	if err := s.matcher.RecomputeForTarget(policy.WorkspaceID, target); err != nil {
		return nil, err
	}
	return target, nil
}

// DeleteTarget removes a policy target; removing the last one makes the
// policy global again
func (s *PolicyService) DeleteTarget(targetID uuid.UUID) error {
	if _, err := s.repo.GetTargetByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPolicyTargetNotFound
		}
		return fmt.Errorf("failed to get policy target: %w", err)
	}
	if err := s.repo.DeleteTarget(targetID); err != nil {
		return fmt.Errorf("failed to delete policy target: %w", err)
	}
	return nil
}

// ToPolicyResponse converts a policy model to its API summary shape
func ToPolicyResponse(p *models.Policy) PolicyResponse {
	return PolicyResponse{
		ID:          p.ID,
		WorkspaceID: p.WorkspaceID,
		Name:        p.Name,
		Description: p.Description,
		Priority:    p.Priority,
		Enabled:     p.Enabled,
		Global:      p.IsGlobal(),
		RuleCounts: map[string]int{
			"deny_windows": len(p.DenyWindows),
			"approvals":    len(p.Approvals),
			"concurrency":  len(p.Concurrency),
			"rollouts":     len(p.Rollouts),
			"pass_rates":   len(p.PassRates),
			"dependencies": len(p.Dependencies),
		},
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}
