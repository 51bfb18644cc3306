package models

import (
	"time"

	"github.com/google/uuid"
)

// Approval is one approver's verdict for a (version, policy) pair. Rows are
// created pending when an approver is assigned or first acts, and decided
// exactly once; the unique key makes duplicate assignments no-ops.
type Approval struct {
	BaseModel
	PolicyID   uuid.UUID      `json:"policy_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_approvals_policy_version_approver" validate:"required"`
	VersionID  uuid.UUID      `json:"version_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_approvals_policy_version_approver" validate:"required"`
	ApproverID string         `json:"approver_id" gorm:"size:100;not null;uniqueIndex:idx_approvals_policy_version_approver" validate:"required"`
	Status     ApprovalStatus `json:"status" gorm:"size:20;not null;default:'pending'"`
	Reason     string         `json:"reason" gorm:"size:255" validate:"max=255"`
	DecidedAt  *time.Time     `json:"decided_at,omitempty"`

	Policy  Policy            `json:"policy,omitempty" gorm:"foreignKey:PolicyID;constraint:OnDelete:CASCADE"`
	Version DeploymentVersion `json:"version,omitempty" gorm:"foreignKey:VersionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Approval
func (Approval) TableName() string {
	return "approvals"
}
