package models

// Workspace is the top-level ownership boundary for resources and policies
type Workspace struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Slug string `json:"slug" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
}

// TableName returns the table name for Workspace
func (Workspace) TableName() string {
	return "workspaces"
}
