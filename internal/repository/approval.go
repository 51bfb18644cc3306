package repository

import (
	"time"

	"release-orchestrator-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ApprovalRepository handles database operations for approvals
type ApprovalRepository struct {
	db *gorm.DB
}

// NewApprovalRepository creates a new approval repository
func NewApprovalRepository(db *gorm.DB) *ApprovalRepository {
	return &ApprovalRepository{db: db}
}

// CreatePending inserts pending approval rows, ignoring rows that already
// exist for the same (policy, version, approver). Idempotent so trigger
// creation can always pre-create the full required set.
func (r *ApprovalRepository) CreatePending(approvals []models.Approval) error {
	if len(approvals) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "policy_id"}, {Name: "version_id"}, {Name: "approver_id"}},
		DoNothing: true,
	}).Create(&approvals).Error
}

// GetByID retrieves an approval by ID
func (r *ApprovalRepository) GetByID(id uuid.UUID) (*models.Approval, error) {
	var approval models.Approval
	err := r.db.First(&approval, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &approval, nil
}

// GetByPolicyAndVersion retrieves all approval rows for a (policy, version) pair
func (r *ApprovalRepository) GetByPolicyAndVersion(policyID, versionID uuid.UUID) ([]models.Approval, error) {
	var approvals []models.Approval
	err := r.db.Where("policy_id = ? AND version_id = ?", policyID, versionID).Find(&approvals).Error
	if err != nil {
		return nil, err
	}
	return approvals, nil
}

// GetByVersionID retrieves all approval rows for a version across policies
func (r *ApprovalRepository) GetByVersionID(versionID uuid.UUID) ([]models.Approval, error) {
	var approvals []models.Approval
	err := r.db.Where("version_id = ?", versionID).Order("created_at ASC").Find(&approvals).Error
	if err != nil {
		return nil, err
	}
	return approvals, nil
}

// GetPendingByApprover retrieves an approver's open approvals
func (r *ApprovalRepository) GetPendingByApprover(approverID string, limit, offset int) ([]models.Approval, int64, error) {
	var approvals []models.Approval
	var total int64

	query := r.db.Model(&models.Approval{}).
		Where("approver_id = ? AND status = ?", approverID, models.ApprovalStatusPending)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at ASC").Limit(limit).Offset(offset).Find(&approvals).Error
	if err != nil {
		return nil, 0, err
	}

	return approvals, total, nil
}

// Decide records a verdict on a pending approval. Returns
// gorm.ErrRecordNotFound when the row is absent or already decided, so a
// double decision never overwrites the first verdict.
func (r *ApprovalRepository) Decide(id uuid.UUID, status models.ApprovalStatus, reason string) error {
	now := time.Now()
	result := r.db.Model(&models.Approval{}).
		Where("id = ? AND status = ?", id, models.ApprovalStatusPending).
		Updates(map[string]interface{}{"status": status, "reason": reason, "decided_at": &now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
