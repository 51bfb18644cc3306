package rules

import (
	"testing"
	"time"

	"release-orchestrator-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func approval(approver string, status models.ApprovalStatus) models.Approval {
	return models.Approval{ApproverID: approver, Status: status}
}

func TestApprovalGateEvaluate(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	openedAt := now.Add(-time.Hour)

	t.Run("enough approvals allows", func(t *testing.T) {
		g := ApprovalGate{RequiredApprovals: 2}
		res := g.Evaluate(now, []models.Approval{
			approval("alice", models.ApprovalStatusApproved),
			approval("bob", models.ApprovalStatusApproved),
		}, openedAt, nil)
		assert.True(t, res.Allow)
	})

	t.Run("too few approvals denies with count", func(t *testing.T) {
		g := ApprovalGate{RequiredApprovals: 2}
		res := g.Evaluate(now, []models.Approval{
			approval("alice", models.ApprovalStatusApproved),
			approval("bob", models.ApprovalStatusPending),
		}, openedAt, nil)
		assert.False(t, res.Allow)
		assert.False(t, res.Permanent)
		assert.Contains(t, res.Reason, "1 of 2")
	})

	t.Run("any rejection blocks permanently", func(t *testing.T) {
		g := ApprovalGate{RequiredApprovals: 1}
		res := g.Evaluate(now, []models.Approval{
			approval("alice", models.ApprovalStatusApproved),
			{ApproverID: "bob", Status: models.ApprovalStatusRejected, Reason: "broken migration"},
		}, openedAt, nil)
		assert.False(t, res.Allow)
		assert.True(t, res.Permanent)
		assert.Contains(t, res.Reason, "bob")
		assert.Contains(t, res.Reason, "broken migration")
	})

	t.Run("role restriction ignores unqualified verdicts", func(t *testing.T) {
		g := ApprovalGate{RequiredApprovals: 1, ApproverRoles: []string{"operator"}}
		roleOf := func(id string) string {
			if id == "alice" {
				return "operator"
			}
			return "viewer"
		}

		// viewer approval does not count
		res := g.Evaluate(now, []models.Approval{approval("bob", models.ApprovalStatusApproved)}, openedAt, roleOf)
		assert.False(t, res.Allow)

		// viewer rejection does not block either
		res = g.Evaluate(now, []models.Approval{approval("bob", models.ApprovalStatusRejected)}, openedAt, roleOf)
		assert.False(t, res.Allow)
		assert.False(t, res.Permanent)

		// operator approval counts
		res = g.Evaluate(now, []models.Approval{approval("alice", models.ApprovalStatusApproved)}, openedAt, roleOf)
		assert.True(t, res.Allow)
	})

	t.Run("role restriction with nil resolver counts nobody", func(t *testing.T) {
		g := ApprovalGate{RequiredApprovals: 1, ApproverRoles: []string{"operator"}}
		res := g.Evaluate(now, []models.Approval{approval("alice", models.ApprovalStatusApproved)}, openedAt, nil)
		assert.False(t, res.Allow)
	})

	t.Run("timeout blocks permanently once elapsed", func(t *testing.T) {
		g := ApprovalGate{RequiredApprovals: 1, Timeout: 30 * time.Minute}
		res := g.Evaluate(now, nil, openedAt, nil)
		assert.False(t, res.Allow)
		assert.True(t, res.Permanent)
		assert.Contains(t, res.Reason, "timed out")
	})

	t.Run("before the timeout the gate still waits", func(t *testing.T) {
		g := ApprovalGate{RequiredApprovals: 1, Timeout: 2 * time.Hour}
		res := g.Evaluate(now, nil, openedAt, nil)
		assert.False(t, res.Allow)
		assert.False(t, res.Permanent)
	})

	t.Run("approvals already satisfied ignore the timeout", func(t *testing.T) {
		g := ApprovalGate{RequiredApprovals: 1, Timeout: time.Minute}
		res := g.Evaluate(now, []models.Approval{approval("alice", models.ApprovalStatusApproved)}, openedAt, nil)
		assert.True(t, res.Allow)
	})
}
