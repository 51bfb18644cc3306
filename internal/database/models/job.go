package models

import (
	"encoding/json"
	"time"
)

// Job is the execution record for a dispatched release. Execution itself is
// delegated to an external job agent which reports status back through the API.
type Job struct {
	BaseModel
	Status      JobStatus       `json:"status" gorm:"size:20;not null;default:'pending';index"`
	Reason      string          `json:"reason" gorm:"size:255" validate:"max=255"`
	ExternalID  string          `json:"external_id" gorm:"size:255"`
	Metadata    json.RawMessage `json:"metadata" gorm:"type:jsonb"`
	Links       json.RawMessage `json:"links" gorm:"type:jsonb"`
	StartedAt   *time.Time      `json:"started_at,omitempty"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

// TableName returns the table name for Job
func (Job) TableName() string {
	return "jobs"
}

// LinkMap decodes the jsonb links column into a label to URL map
func (j *Job) LinkMap() (map[string]string, error) {
	if len(j.Links) == 0 {
		return map[string]string{}, nil
	}
	var m map[string]string
	if err := json.Unmarshal(j.Links, &m); err != nil {
		return nil, err
	}
	return m, nil
}
