package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// PolicyRuleDenyWindow blocks dispatch during a recurring weekly time range.
// Days are lowercase weekday names; start/end are "HH:MM" wall-clock times in
// the configured IANA timezone. Windows are blackouts, not permitted hours.
type PolicyRuleDenyWindow struct {
	BaseModel
	PolicyID  uuid.UUID       `json:"policy_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name      string          `json:"name" gorm:"size:100" validate:"max=100"`
	Timezone  string          `json:"timezone" gorm:"size:64;not null;default:'UTC'" validate:"required"`
	Days      json.RawMessage `json:"days" gorm:"type:jsonb;not null"`
	StartTime string          `json:"start_time" gorm:"size:5;not null" validate:"required"`
	EndTime   string          `json:"end_time" gorm:"size:5;not null" validate:"required"`
	Enabled   bool            `json:"enabled" gorm:"not null;default:true"`

	Policy Policy `json:"policy,omitempty" gorm:"foreignKey:PolicyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PolicyRuleDenyWindow
func (PolicyRuleDenyWindow) TableName() string {
	return "policy_rule_deny_windows"
}

// DayList decodes the jsonb days column into weekday names
func (w *PolicyRuleDenyWindow) DayList() ([]string, error) {
	if len(w.Days) == 0 {
		return nil, nil
	}
	var days []string
	if err := json.Unmarshal(w.Days, &days); err != nil {
		return nil, err
	}
	return days, nil
}

// PolicyRuleApproval requires a minimum number of human approvals before a
// version may dispatch into the policy's scope. ApproverRoles limits who
// qualifies; empty means any authenticated approver.
type PolicyRuleApproval struct {
	BaseModel
	PolicyID          uuid.UUID       `json:"policy_id" gorm:"type:uuid;not null;index" validate:"required"`
	RequiredApprovals int             `json:"required_approvals" gorm:"not null;default:1" validate:"min=1"`
	ApproverRoles     json.RawMessage `json:"approver_roles" gorm:"type:jsonb"`
	TimeoutSeconds    int             `json:"timeout_seconds" gorm:"not null;default:0"`
	Enabled           bool            `json:"enabled" gorm:"not null;default:true"`

	Policy Policy `json:"policy,omitempty" gorm:"foreignKey:PolicyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PolicyRuleApproval
func (PolicyRuleApproval) TableName() string {
	return "policy_rule_approvals"
}

// RoleList decodes the jsonb approver roles column
func (a *PolicyRuleApproval) RoleList() ([]string, error) {
	if len(a.ApproverRoles) == 0 {
		return nil, nil
	}
	var roles []string
	if err := json.Unmarshal(a.ApproverRoles, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// PolicyRuleConcurrency caps the number of simultaneously in-progress jobs
// across the policy's scope
type PolicyRuleConcurrency struct {
	BaseModel
	PolicyID uuid.UUID `json:"policy_id" gorm:"type:uuid;not null;index" validate:"required"`
	Limit    int       `json:"limit" gorm:"column:concurrency_limit;not null;default:1" validate:"min=1"`
	Enabled  bool      `json:"enabled" gorm:"not null;default:true"`

	Policy Policy `json:"policy,omitempty" gorm:"foreignKey:PolicyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PolicyRuleConcurrency
func (PolicyRuleConcurrency) TableName() string {
	return "policy_rule_concurrency"
}

// RolloutStage is one step of a gradual rollout: the cumulative percentage of
// targets allowed to proceed and the soak time before the next stage opens.
type RolloutStage struct {
	Percentage  int `json:"percentage"`
	SoakSeconds int `json:"soak_seconds"`
}

// PolicyRuleRollout stages a version across the matched release targets by
// percentage with inter-stage soak durations. With FailFast set, one failed job
// in the cohort denies every target that has not started yet.
type PolicyRuleRollout struct {
	BaseModel
	PolicyID uuid.UUID       `json:"policy_id" gorm:"type:uuid;not null;index" validate:"required"`
	Stages   json.RawMessage `json:"stages" gorm:"type:jsonb;not null"`
	FailFast bool            `json:"fail_fast" gorm:"not null;default:false"`
	Enabled  bool            `json:"enabled" gorm:"not null;default:true"`

	Policy Policy `json:"policy,omitempty" gorm:"foreignKey:PolicyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PolicyRuleRollout
func (PolicyRuleRollout) TableName() string {
	return "policy_rule_rollouts"
}

// StageList decodes the jsonb stages column
func (r *PolicyRuleRollout) StageList() ([]RolloutStage, error) {
	if len(r.Stages) == 0 {
		return nil, nil
	}
	var stages []RolloutStage
	if err := json.Unmarshal(r.Stages, &stages); err != nil {
		return nil, err
	}
	return stages, nil
}

// PolicyRulePassRate gates rollout progression on an external metric: the
// observed pass rate over a trailing window must meet the threshold, with at
// least MinSampleSize observations. Too few samples denies without failing.
type PolicyRulePassRate struct {
	BaseModel
	PolicyID      uuid.UUID `json:"policy_id" gorm:"type:uuid;not null;index" validate:"required"`
	MetricName    string    `json:"metric_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	MinPassRate   float64   `json:"min_pass_rate" gorm:"not null" validate:"min=0,max=1"`
	WindowSeconds int       `json:"window_seconds" gorm:"not null;default:3600" validate:"min=1"`
	MinSampleSize int       `json:"min_sample_size" gorm:"not null;default:1" validate:"min=1"`
	Enabled       bool      `json:"enabled" gorm:"not null;default:true"`

	Policy Policy `json:"policy,omitempty" gorm:"foreignKey:PolicyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PolicyRulePassRate
func (PolicyRulePassRate) TableName() string {
	return "policy_rule_pass_rates"
}

// PolicyRuleDependency requires another deployment to have a ready version
// satisfying a semver range in the same environment before dispatch may
// proceed. After the timeout the gate fails permanently.
type PolicyRuleDependency struct {
	BaseModel
	PolicyID              uuid.UUID `json:"policy_id" gorm:"type:uuid;not null;index" validate:"required"`
	DependsOnDeploymentID uuid.UUID `json:"depends_on_deployment_id" gorm:"type:uuid;not null" validate:"required"`
	VersionConstraint     string    `json:"version_constraint" gorm:"size:100;not null" validate:"required"`
	TimeoutSeconds        int       `json:"timeout_seconds" gorm:"not null;default:0"`
	Enabled               bool      `json:"enabled" gorm:"not null;default:true"`

	Policy              Policy     `json:"policy,omitempty" gorm:"foreignKey:PolicyID;constraint:OnDelete:CASCADE"`
	DependsOnDeployment Deployment `json:"depends_on_deployment,omitempty" gorm:"foreignKey:DependsOnDeploymentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PolicyRuleDependency
func (PolicyRuleDependency) TableName() string {
	return "policy_rule_dependencies"
}

// MetricObservation is one ingested data point for pass-rate gating, scoped to
// a deployment and environment
type MetricObservation struct {
	BaseModel
	DeploymentID  uuid.UUID `json:"deployment_id" gorm:"type:uuid;not null;index:idx_metric_obs_scope" validate:"required"`
	EnvironmentID uuid.UUID `json:"environment_id" gorm:"type:uuid;not null;index:idx_metric_obs_scope" validate:"required"`
	MetricName    string    `json:"metric_name" gorm:"size:100;not null;index:idx_metric_obs_scope" validate:"required"`
	Passed        bool      `json:"passed" gorm:"not null"`

	Deployment  Deployment  `json:"deployment,omitempty" gorm:"foreignKey:DeploymentID;constraint:OnDelete:CASCADE"`
	Environment Environment `json:"environment,omitempty" gorm:"foreignKey:EnvironmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MetricObservation
func (MetricObservation) TableName() string {
	return "metric_observations"
}
