package models

import "github.com/google/uuid"

// System groups deployments and environments for one application or service family
type System struct {
	BaseModel
	WorkspaceID uuid.UUID `json:"workspace_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_systems_workspace_slug" validate:"required"`
	Name        string    `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Slug        string    `json:"slug" gorm:"size:100;not null;uniqueIndex:idx_systems_workspace_slug" validate:"required,min=1,max=100"`
	Description string    `json:"description" gorm:"size:255" validate:"max=255"`

	Workspace    Workspace     `json:"workspace,omitempty" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`
	Deployments  []Deployment  `json:"deployments,omitempty" gorm:"foreignKey:SystemID"`
	Environments []Environment `json:"environments,omitempty" gorm:"foreignKey:SystemID"`
}

// TableName returns the table name for System
func (System) TableName() string {
	return "systems"
}
