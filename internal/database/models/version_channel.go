package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// DeploymentVersionChannel is a named version selector scoped to a deployment
// ("stable", "beta", ...). Environments bind channels to restrict which versions
// may flow into them.
type DeploymentVersionChannel struct {
	BaseModel
	DeploymentID    uuid.UUID       `json:"deployment_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_channels_deployment_name" validate:"required"`
	Name            string          `json:"name" gorm:"size:100;not null;uniqueIndex:idx_channels_deployment_name" validate:"required,min=1,max=100"`
	Description     string          `json:"description" gorm:"size:255" validate:"max=255"`
	VersionSelector json.RawMessage `json:"version_selector" gorm:"type:jsonb"`

	Deployment Deployment `json:"deployment,omitempty" gorm:"foreignKey:DeploymentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DeploymentVersionChannel
func (DeploymentVersionChannel) TableName() string {
	return "deployment_version_channels"
}
