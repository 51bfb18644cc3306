package handlers_test

import (
	"time"

	"release-orchestrator-backend/internal/database/models"

	"github.com/google/uuid"
)

func sampleTrigger(targetID, versionID uuid.UUID) *models.ReleaseJobTrigger {
	return &models.ReleaseJobTrigger{
		BaseModel:       models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		ReleaseTargetID: targetID,
		VersionID:       versionID,
		Cause:           models.TriggerCauseRedeploy,
		CausedByID:      "alice",
	}
}
