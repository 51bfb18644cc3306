package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// DeploymentVersion is an immutable named/tagged build artifact for a deployment.
// Only versions in ready status are eligible to trigger dispatch. Re-ingestion of
// the same (deployment, tag) is an upsert, never a duplicate.
type DeploymentVersion struct {
	BaseModel
	DeploymentID uuid.UUID               `json:"deployment_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_versions_deployment_tag" validate:"required"`
	Name         string                  `json:"name" gorm:"size:255;not null" validate:"required,min=1,max=255"`
	Tag          string                  `json:"tag" gorm:"size:255;not null;uniqueIndex:idx_versions_deployment_tag" validate:"required,min=1,max=255"`
	Status       DeploymentVersionStatus `json:"status" gorm:"size:20;not null;default:'building'"`
	Message      string                  `json:"message" gorm:"size:255" validate:"max=255"`
	Config       json.RawMessage         `json:"config" gorm:"type:jsonb"`
	Metadata     json.RawMessage         `json:"metadata" gorm:"type:jsonb"`

	Deployment Deployment `json:"deployment,omitempty" gorm:"foreignKey:DeploymentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DeploymentVersion
func (DeploymentVersion) TableName() string {
	return "deployment_versions"
}

// MetadataMap decodes the jsonb metadata column into a string map
func (v *DeploymentVersion) MetadataMap() (map[string]string, error) {
	if len(v.Metadata) == 0 {
		return map[string]string{}, nil
	}
	var m map[string]string
	if err := json.Unmarshal(v.Metadata, &m); err != nil {
		return nil, err
	}
	return m, nil
}
