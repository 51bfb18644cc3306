package rules

import (
	"fmt"
	"math"
	"time"

	"release-orchestrator-backend/internal/database/models"
)

// GradualRollout stages a version across its cohort of release targets by
// cumulative percentage. Stage N opens once the soak durations of all earlier
// stages have elapsed since the rollout started. With FailFast set, one failed
// job in the cohort permanently denies every target that has not started.
type GradualRollout struct {
	Stages   []models.RolloutStage
	FailFast bool
}

// RolloutState is the cohort state for the target under evaluation. Position
// is the target's deterministic rank in the cohort (orderd by release target
// id), CohortSize the total number of targets, StartedAt the rollout start
// (version ready time), and AnyFailed whether any cohort job has failed.
type RolloutState struct {
	Position   int
	CohortSize int
	StartedAt  time.Time
	AnyFailed  bool
}

// Evaluate decides whether this target's slot is open yet
func (r GradualRollout) Evaluate(now time.Time, state RolloutState) Result {
	if r.FailFast && state.AnyFailed {
		return Blocked("rollout halted: a job in this cohort failed")
	}
	if len(r.Stages) == 0 {
		return Allowed()
	}
	if state.CohortSize <= 0 {
		return Allowed()
	}

	opened := state.StartedAt
	for i, stage := range r.Stages {
		if now.Before(opened) {
			return DeniedUntil(fmt.Sprintf("rollout stage %d opens later", i+1), opened)
		}
		allowed := int(math.Ceil(float64(stage.Percentage) / 100 * float64(state.CohortSize)))
		if state.Position < allowed {
			return Allowed()
		}
		opened = opened.Add(time.Duration(stage.SoakSeconds) * time.Second)
	}

	// past the final stage everything is allowed once its soak has elapsed
	if now.Before(opened) {
		return DeniedUntil("waiting for final rollout stage", opened)
	}
	final := r.Stages[len(r.Stages)-1]
	if final.Percentage >= 100 {
		return Allowed()
	}
	allowed := int(math.Ceil(float64(final.Percentage) / 100 * float64(state.CohortSize)))
	return Denied(fmt.Sprintf("target position %d outside final rollout stage (%d of %d allowed)", state.Position, allowed, state.CohortSize))
}
