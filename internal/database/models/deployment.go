package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Deployment is a named release pipeline within a system. Its resource selector
// decides which resources it targets; the job agent config describes how jobs
// for it execute (opaque to this service).
type Deployment struct {
	BaseModel
	SystemID         uuid.UUID       `json:"system_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_deployments_system_slug" validate:"required"`
	Name             string          `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Slug             string          `json:"slug" gorm:"size:100;not null;uniqueIndex:idx_deployments_system_slug" validate:"required,min=1,max=100"`
	Description      string          `json:"description" gorm:"size:255" validate:"max=255"`
	ResourceSelector json.RawMessage `json:"resource_selector" gorm:"type:jsonb"`
	Metadata         json.RawMessage `json:"metadata" gorm:"type:jsonb"`
	JobAgentConfig   json.RawMessage `json:"job_agent_config" gorm:"type:jsonb"`

	System   System              `json:"system,omitempty" gorm:"foreignKey:SystemID;constraint:OnDelete:CASCADE"`
	Versions []DeploymentVersion `json:"versions,omitempty" gorm:"foreignKey:DeploymentID"`
}

// TableName returns the table name for Deployment
func (Deployment) TableName() string {
	return "deployments"
}

// MetadataMap decodes the jsonb metadata column into a string map
func (d *Deployment) MetadataMap() (map[string]string, error) {
	if len(d.Metadata) == 0 {
		return map[string]string{}, nil
	}
	var m map[string]string
	if err := json.Unmarshal(d.Metadata, &m); err != nil {
		return nil, err
	}
	return m, nil
}
