package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Policy is a priority-ordered rule bundle scoped to a workspace. It matches
// release targets through its targets; a policy with no targets is global and
// applies to every release target in the workspace. Lower priority number means
// higher precedence.
type Policy struct {
	BaseModel
	WorkspaceID uuid.UUID `json:"workspace_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_policies_workspace_name" validate:"required"`
	Name        string    `json:"name" gorm:"size:100;not null;uniqueIndex:idx_policies_workspace_name" validate:"required,min=1,max=100"`
	Description string    `json:"description" gorm:"size:255" validate:"max=255"`
	Priority    int       `json:"priority" gorm:"not null;default:0"`
	Enabled     bool      `json:"enabled" gorm:"not null;default:true"`

	Workspace Workspace      `json:"workspace,omitempty" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`
	Targets   []PolicyTarget `json:"targets,omitempty" gorm:"foreignKey:PolicyID"`

	DenyWindows  []PolicyRuleDenyWindow  `json:"deny_windows,omitempty" gorm:"foreignKey:PolicyID"`
	Approvals    []PolicyRuleApproval    `json:"approval_rules,omitempty" gorm:"foreignKey:PolicyID"`
	Concurrency  []PolicyRuleConcurrency `json:"concurrency_rules,omitempty" gorm:"foreignKey:PolicyID"`
	Rollouts     []PolicyRuleRollout     `json:"rollout_rules,omitempty" gorm:"foreignKey:PolicyID"`
	PassRates    []PolicyRulePassRate    `json:"pass_rate_rules,omitempty" gorm:"foreignKey:PolicyID"`
	Dependencies []PolicyRuleDependency  `json:"dependency_rules,omitempty" gorm:"foreignKey:PolicyID"`
}

// TableName returns the table name for Policy
func (Policy) TableName() string {
	return "policies"
}

// IsGlobal reports whether the policy has no target selectors and therefore
// applies to every release target in its workspace
func (p *Policy) IsGlobal() bool {
	return len(p.Targets) == 0
}

// PolicyTarget scopes a policy to release targets whose deployment matches the
// deployment selector and whose environment matches the environment selector.
// A nil selector matches everything on that axis; the two axes always combine
// with AND.
type PolicyTarget struct {
	BaseModel
	PolicyID            uuid.UUID       `json:"policy_id" gorm:"type:uuid;not null;index" validate:"required"`
	DeploymentSelector  json.RawMessage `json:"deployment_selector" gorm:"type:jsonb"`
	EnvironmentSelector json.RawMessage `json:"environment_selector" gorm:"type:jsonb"`

	Policy Policy `json:"policy,omitempty" gorm:"foreignKey:PolicyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PolicyTarget
func (PolicyTarget) TableName() string {
	return "policy_targets"
}

// ComputedPolicyReleaseTarget is the materialized join between policy targets
// and release targets, maintained transactionally with selector edits so that
// dispatch-time lookups never evaluate selectors.
type ComputedPolicyReleaseTarget struct {
	PolicyID        uuid.UUID `json:"policy_id" gorm:"type:uuid;not null;index"`
	PolicyTargetID  uuid.UUID `json:"policy_target_id" gorm:"type:uuid;primaryKey"`
	ReleaseTargetID uuid.UUID `json:"release_target_id" gorm:"type:uuid;primaryKey;index"`

	PolicyTarget  PolicyTarget  `json:"policy_target,omitempty" gorm:"foreignKey:PolicyTargetID;constraint:OnDelete:CASCADE"`
	ReleaseTarget ReleaseTarget `json:"release_target,omitempty" gorm:"foreignKey:ReleaseTargetID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ComputedPolicyReleaseTarget
func (ComputedPolicyReleaseTarget) TableName() string {
	return "computed_policy_release_targets"
}
