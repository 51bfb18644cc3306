package rules

import (
	"testing"
	"time"

	"release-orchestrator-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradualRolloutEvaluate(t *testing.T) {
	started := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	twoStage := GradualRollout{Stages: []models.RolloutStage{
		{Percentage: 50, SoakSeconds: 600},
		{Percentage: 100, SoakSeconds: 0},
	}}

	t.Run("no stages allows everything", func(t *testing.T) {
		r := GradualRollout{}
		res := r.Evaluate(started, RolloutState{Position: 7, CohortSize: 10, StartedAt: started})
		assert.True(t, res.Allow)
	})

	t.Run("first stage opens immediately for the leading slice", func(t *testing.T) {
		// ceil(50% of 4) = 2, so positions 0 and 1 go first
		for pos := 0; pos < 2; pos++ {
			res := twoStage.Evaluate(started, RolloutState{Position: pos, CohortSize: 4, StartedAt: started})
			assert.True(t, res.Allow, "position %d", pos)
		}
	})

	t.Run("later positions wait for the soak", func(t *testing.T) {
		res := twoStage.Evaluate(started, RolloutState{Position: 2, CohortSize: 4, StartedAt: started})
		assert.False(t, res.Allow)
		require.NotNil(t, res.RetryAt)
		assert.Equal(t, started.Add(600*time.Second), *res.RetryAt)
	})

	t.Run("second stage opens after the soak elapses", func(t *testing.T) {
		later := started.Add(600 * time.Second)
		res := twoStage.Evaluate(later, RolloutState{Position: 3, CohortSize: 4, StartedAt: started})
		assert.True(t, res.Allow)
	})

	t.Run("percentage rounds up", func(t *testing.T) {
		r := GradualRollout{Stages: []models.RolloutStage{{Percentage: 10, SoakSeconds: 0}}}
		// ceil(10% of 3) = 1
		assert.True(t, r.Evaluate(started, RolloutState{Position: 0, CohortSize: 3, StartedAt: started}).Allow)
		assert.False(t, r.Evaluate(started, RolloutState{Position: 1, CohortSize: 3, StartedAt: started}).Allow)
	})

	t.Run("final stage below 100 caps the cohort", func(t *testing.T) {
		r := GradualRollout{Stages: []models.RolloutStage{{Percentage: 50, SoakSeconds: 0}}}
		res := r.Evaluate(started.Add(time.Hour), RolloutState{Position: 3, CohortSize: 4, StartedAt: started})
		assert.False(t, res.Allow)
		assert.Nil(t, res.RetryAt)
		assert.Contains(t, res.Reason, "final rollout stage")
	})

	t.Run("fail fast blocks unstarted targets after a cohort failure", func(t *testing.T) {
		r := GradualRollout{Stages: twoStage.Stages, FailFast: true}
		res := r.Evaluate(started, RolloutState{Position: 0, CohortSize: 4, StartedAt: started, AnyFailed: true})
		assert.False(t, res.Allow)
		assert.True(t, res.Permanent)
	})

	t.Run("without fail fast a cohort failure does not halt", func(t *testing.T) {
		res := twoStage.Evaluate(started, RolloutState{Position: 0, CohortSize: 4, StartedAt: started, AnyFailed: true})
		assert.True(t, res.Allow)
	})

	t.Run("empty cohort allows", func(t *testing.T) {
		res := twoStage.Evaluate(started, RolloutState{Position: 0, CohortSize: 0, StartedAt: started})
		assert.True(t, res.Allow)
	})
}
