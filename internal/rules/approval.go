package rules

import (
	"fmt"
	"time"

	"release-orchestrator-backend/internal/database/models"
)

// ApprovalGate requires a minimum number of approvals from qualifying
// approvers before a version may dispatch. Any rejection by a qualifying
// approver blocks the version permanently; waiting cannot lift it.
type ApprovalGate struct {
	RequiredApprovals int
	// ApproverRoles limits whose verdicts count; empty means every approver
	// qualifies. Roles are resolved by the caller via RoleOf.
	ApproverRoles []string
	// Timeout, when positive, permanently fails the gate once the version has
	// been pending longer than this.
	Timeout time.Duration
}

// Evaluate counts verdicts among qualifying approvers. openedAt is when the
// gate started waiting (the version creation time); roleOf resolves an
// approver id to a role and may be nil when no role restriction is set.
func (g ApprovalGate) Evaluate(now time.Time, approvals []models.Approval, openedAt time.Time, roleOf func(approverID string) string) Result {
	approved := 0
	for i := range approvals {
		a := &approvals[i]
		if !g.qualifies(a.ApproverID, roleOf) {
			continue
		}
		switch a.Status {
		case models.ApprovalStatusRejected:
			return Blocked(fmt.Sprintf("rejected by %s: %s", a.ApproverID, a.Reason))
		case models.ApprovalStatusApproved:
			approved++
		}
	}
	if approved >= g.RequiredApprovals {
		return Allowed()
	}
	if g.Timeout > 0 {
		deadline := openedAt.Add(g.Timeout)
		if !now.Before(deadline) {
			return Blocked(fmt.Sprintf("approval gate timed out after %s", g.Timeout))
		}
	}
	return Denied(fmt.Sprintf("%d of %d required approvals", approved, g.RequiredApprovals))
}

func (g ApprovalGate) qualifies(approverID string, roleOf func(string) string) bool {
	if len(g.ApproverRoles) == 0 {
		return true
	}
	if roleOf == nil {
		return false
	}
	role := roleOf(approverID)
	for _, allowed := range g.ApproverRoles {
		if role == allowed {
			return true
		}
	}
	return false
}
