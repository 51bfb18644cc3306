package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Environment is a named deployment target grouping with its own resource selector.
// Per-deployment version channel bindings restrict which versions may flow into it.
type Environment struct {
	BaseModel
	SystemID         uuid.UUID       `json:"system_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_environments_system_name" validate:"required"`
	Name             string          `json:"name" gorm:"size:100;not null;uniqueIndex:idx_environments_system_name" validate:"required,min=1,max=100"`
	Description      string          `json:"description" gorm:"size:255" validate:"max=255"`
	ResourceSelector json.RawMessage `json:"resource_selector" gorm:"type:jsonb"`
	Metadata         json.RawMessage `json:"metadata" gorm:"type:jsonb"`

	System          System                      `json:"system,omitempty" gorm:"foreignKey:SystemID;constraint:OnDelete:CASCADE"`
	ChannelBindings []EnvironmentVersionChannel `json:"channel_bindings,omitempty" gorm:"foreignKey:EnvironmentID"`
}

// TableName returns the table name for Environment
func (Environment) TableName() string {
	return "environments"
}

// MetadataMap decodes the jsonb metadata column into a string map
func (e *Environment) MetadataMap() (map[string]string, error) {
	if len(e.Metadata) == 0 {
		return map[string]string{}, nil
	}
	var m map[string]string
	if err := json.Unmarshal(e.Metadata, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// EnvironmentVersionChannel binds a version channel to an environment for one
// deployment. At most one binding per (environment, deployment); absence means
// any ready version may flow in.
type EnvironmentVersionChannel struct {
	BaseModel
	EnvironmentID uuid.UUID `json:"environment_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_env_channel_env_deployment" validate:"required"`
	DeploymentID  uuid.UUID `json:"deployment_id" gorm:"type:uuid;not null;uniqueIndex:idx_env_channel_env_deployment" validate:"required"`
	ChannelID     uuid.UUID `json:"channel_id" gorm:"type:uuid;not null;index" validate:"required"`

	Environment Environment              `json:"environment,omitempty" gorm:"foreignKey:EnvironmentID;constraint:OnDelete:CASCADE"`
	Deployment  Deployment               `json:"deployment,omitempty" gorm:"foreignKey:DeploymentID;constraint:OnDelete:CASCADE"`
	Channel     DeploymentVersionChannel `json:"channel,omitempty" gorm:"foreignKey:ChannelID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for EnvironmentVersionChannel
func (EnvironmentVersionChannel) TableName() string {
	return "environment_version_channels"
}
