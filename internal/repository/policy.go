package repository

import (
	"release-orchestrator-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PolicyRepository handles database operations for policies, their targets,
// rules and the materialized policy/release-target match join
type PolicyRepository struct {
	db *gorm.DB
}

// NewPolicyRepository creates a new policy repository
func NewPolicyRepository(db *gorm.DB) *PolicyRepository {
	return &PolicyRepository{db: db}
}

// Create creates a policy together with its targets and rules in one transaction
func (r *PolicyRepository) Create(policy *models.Policy) error {
	return r.db.Create(policy).Error
}

// GetByID retrieves a policy with targets and all rule rows preloaded
func (r *PolicyRepository) GetByID(id uuid.UUID) (*models.Policy, error) {
	var policy models.Policy
	err := r.preloaded().First(&policy, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

// GetByName retrieves a policy by its workspace-scoped name
func (r *PolicyRepository) GetByName(workspaceID uuid.UUID, name string) (*models.Policy, error) {
	var policy models.Policy
	err := r.preloaded().First(&policy, "workspace_id = ? AND name = ?", workspaceID, name).Error
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

// GetByWorkspaceID retrieves all policies of a workspace with pagination,
// ordered by precedence
func (r *PolicyRepository) GetByWorkspaceID(workspaceID uuid.UUID, limit, offset int) ([]models.Policy, int64, error) {
	var policies []models.Policy
	var total int64

	if err := r.db.Model(&models.Policy{}).Where("workspace_id = ?", workspaceID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.preloaded().
		Where("workspace_id = ?", workspaceID).
		Order("priority ASC, id ASC").
		Limit(limit).Offset(offset).
		Find(&policies).Error
	if err != nil {
		return nil, 0, err
	}

	return policies, total, nil
}

// GetMatched retrieves the enabled policies governing a release target:
// global policies of the workspace plus those matched through the
// materialized join, ordered by priority ascending with id as the
// deterministic tiebreaker.
func (r *PolicyRepository) GetMatched(workspaceID, releaseTargetID uuid.UUID) ([]models.Policy, error) {
	var policies []models.Policy
	err := r.preloaded().
		Where("policies.workspace_id = ? AND policies.enabled = ?", workspaceID, true).
		Where(`NOT EXISTS (SELECT 1 FROM policy_targets pt WHERE pt.policy_id = policies.id)
			OR policies.id IN (
				SELECT cprt.policy_id FROM computed_policy_release_targets cprt
				WHERE cprt.release_target_id = ?
			)`, releaseTargetID).
		Order("policies.priority ASC, policies.id ASC").
		Find(&policies).Error
	if err != nil {
		return nil, err
	}
	return policies, nil
}

func (r *PolicyRepository) preloaded() *gorm.DB {
	return r.db.
		Preload("Targets").
		Preload("DenyWindows").
		Preload("Approvals").
		Preload("Concurrency").
		Preload("Rollouts").
		Preload("PassRates").
		Preload("Dependencies")
}

// Update updates a policy row (not its associations)
func (r *PolicyRepository) Update(policy *models.Policy) error {
	return r.db.Omit("Targets", "DenyWindows", "Approvals", "Concurrency", "Rollouts", "PassRates", "Dependencies").
		Save(policy).Error
}

// Delete deletes a policy; targets, rules and computed matches cascade
func (r *PolicyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Policy{}, "id = ?", id).Error
}

// CreateTarget adds a target selector to a policy
func (r *PolicyRepository) CreateTarget(target *models.PolicyTarget) error {
	return r.db.Create(target).Error
}

// GetTargetByID retrieves a policy target by ID
func (r *PolicyRepository) GetTargetByID(id uuid.UUID) (*models.PolicyTarget, error) {
	var target models.PolicyTarget
	err := r.db.First(&target, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &target, nil
}

// UpdateTarget updates a policy target
func (r *PolicyRepository) UpdateTarget(target *models.PolicyTarget) error {
	return r.db.Save(target).Error
}

// DeleteTarget deletes a policy target; its computed matches cascade
func (r *PolicyRepository) DeleteTarget(id uuid.UUID) error {
	return r.db.Delete(&models.PolicyTarget{}, "id = ?", id).Error
}

// ReplaceComputedForTarget atomically rebuilds the materialized matches of one
// policy target. Run inside the same transaction as the selector edit so
// dispatch never sees stale matches.
func (r *PolicyRepository) ReplaceComputedForTarget(policyTarget *models.PolicyTarget, releaseTargetIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return replaceComputedForTarget(tx, policyTarget, releaseTargetIDs)
	})
}

func replaceComputedForTarget(tx *gorm.DB, policyTarget *models.PolicyTarget, releaseTargetIDs []uuid.UUID) error {
	if err := tx.Delete(&models.ComputedPolicyReleaseTarget{}, "policy_target_id = ?", policyTarget.ID).Error; err != nil {
		return err
	}
	if len(releaseTargetIDs) == 0 {
		return nil
	}
	rows := make([]models.ComputedPolicyReleaseTarget, 0, len(releaseTargetIDs))
	for _, rtID := range releaseTargetIDs {
		rows = append(rows, models.ComputedPolicyReleaseTarget{
			PolicyID:        policyTarget.PolicyID,
			PolicyTargetID:  policyTarget.ID,
			ReleaseTargetID: rtID,
		})
	}
	return tx.Create(&rows).Error
}

// WithTransaction exposes a transaction boundary so the matcher service can
// recompute several targets atomically with a selector change
func (r *PolicyRepository) WithTransaction(fn func(txRepo *PolicyRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewPolicyRepository(tx))
	})
}

// ReplaceComputedForTargetTx is the transaction-local variant of
// ReplaceComputedForTarget for use inside WithTransaction
func (r *PolicyRepository) ReplaceComputedForTargetTx(policyTarget *models.PolicyTarget, releaseTargetIDs []uuid.UUID) error {
	return replaceComputedForTarget(r.db, policyTarget, releaseTargetIDs)
}

// GetComputedTargetIDs retrieves the release target ids currently matched by
// a policy, for scoping concurrency counts
func (r *PolicyRepository) GetComputedTargetIDs(policyID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.ComputedPolicyReleaseTarget{}).
		Where("policy_id = ?", policyID).
		Distinct().
		Pluck("release_target_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// GetTargetsByWorkspaceID retrieves every policy target of a workspace's
// policies, for full recomputes after release targets change
func (r *PolicyRepository) GetTargetsByWorkspaceID(workspaceID uuid.UUID) ([]models.PolicyTarget, error) {
	var targets []models.PolicyTarget
	err := r.db.
		Joins("JOIN policies ON policies.id = policy_targets.policy_id").
		Where("policies.workspace_id = ?", workspaceID).
		Find(&targets).Error
	if err != nil {
		return nil, err
	}
	return targets, nil
}
