package models

import "github.com/google/uuid"

// ReleaseTarget is the materialized (deployment, environment, resource) triple,
// the atomic unit a release is dispatched to. Targets are recomputed, not
// mutated, when any of the three selectors change.
type ReleaseTarget struct {
	BaseModel
	DeploymentID  uuid.UUID `json:"deployment_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_release_targets_triple" validate:"required"`
	EnvironmentID uuid.UUID `json:"environment_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_release_targets_triple" validate:"required"`
	ResourceID    uuid.UUID `json:"resource_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_release_targets_triple" validate:"required"`

	Deployment  Deployment  `json:"deployment,omitempty" gorm:"foreignKey:DeploymentID;constraint:OnDelete:CASCADE"`
	Environment Environment `json:"environment,omitempty" gorm:"foreignKey:EnvironmentID;constraint:OnDelete:CASCADE"`
	Resource    Resource    `json:"resource,omitempty" gorm:"foreignKey:ResourceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ReleaseTarget
func (ReleaseTarget) TableName() string {
	return "release_targets"
}
