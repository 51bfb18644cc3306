package models

import "github.com/google/uuid"

// ReleaseJobTrigger links a release target and a version to the job that
// carries the release, recording what caused it and who. At most one
// non-terminal job is live per release target; newer versions supersede and
// cancel older live triggers.
type ReleaseJobTrigger struct {
	BaseModel
	ReleaseTargetID uuid.UUID    `json:"release_target_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_triggers_target_version" validate:"required"`
	VersionID       uuid.UUID    `json:"version_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_triggers_target_version" validate:"required"`
	JobID           *uuid.UUID   `json:"job_id,omitempty" gorm:"type:uuid;index"`
	Cause           TriggerCause `json:"cause" gorm:"size:20;not null"`
	CausedByID      string       `json:"caused_by_id" gorm:"size:100;not null"`

	ReleaseTarget ReleaseTarget     `json:"release_target,omitempty" gorm:"foreignKey:ReleaseTargetID;constraint:OnDelete:CASCADE"`
	Version       DeploymentVersion `json:"version,omitempty" gorm:"foreignKey:VersionID;constraint:OnDelete:CASCADE"`
	Job           *Job              `json:"job,omitempty" gorm:"foreignKey:JobID"`
}

// TableName returns the table name for ReleaseJobTrigger
func (ReleaseJobTrigger) TableName() string {
	return "release_job_triggers"
}

// Dispatched reports whether a job has been created for this trigger
func (t *ReleaseJobTrigger) Dispatched() bool {
	return t.JobID != nil
}
