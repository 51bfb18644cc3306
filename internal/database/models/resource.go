package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resource represents a deployable target such as a cluster, VM or service instance.
// Resources are upserted by external providers keyed on (workspace_id, identifier)
// and soft-deleted when a provider stops reporting them.
type Resource struct {
	BaseModel
	WorkspaceID uuid.UUID       `json:"workspace_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_resources_workspace_identifier" validate:"required"`
	Identifier  string          `json:"identifier" gorm:"size:255;not null;uniqueIndex:idx_resources_workspace_identifier" validate:"required,min=1,max=255"`
	Name        string          `json:"name" gorm:"size:255;not null" validate:"required,min=1,max=255"`
	Kind        string          `json:"kind" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Version     string          `json:"version" gorm:"size:100;not null" validate:"required"`
	Metadata    json.RawMessage `json:"metadata" gorm:"type:jsonb"`
	DeletedAt   gorm.DeletedAt  `json:"deleted_at,omitempty" gorm:"index"`

	Workspace Workspace `json:"workspace,omitempty" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Resource
func (Resource) TableName() string {
	return "resources"
}

// MetadataMap decodes the jsonb metadata column into a string map.
// A nil column decodes to an empty map.
func (r *Resource) MetadataMap() (map[string]string, error) {
	if len(r.Metadata) == 0 {
		return map[string]string{}, nil
	}
	var m map[string]string
	if err := json.Unmarshal(r.Metadata, &m); err != nil {
		return nil, err
	}
	return m, nil
}
