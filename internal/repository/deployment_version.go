package repository

import (
	"release-orchestrator-backend/internal/database/models"
	"release-orchestrator-backend/internal/selector"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeploymentVersionRepository handles database operations for deployment versions
type DeploymentVersionRepository struct {
	db *gorm.DB
}

// NewDeploymentVersionRepository creates a new deployment version repository
func NewDeploymentVersionRepository(db *gorm.DB) *DeploymentVersionRepository {
	return &DeploymentVersionRepository{db: db}
}

// Upsert inserts or updates a version keyed on (deployment_id, tag).
// Re-ingestion of the same tag updates the existing row instead of conflicting.
func (r *DeploymentVersionRepository) Upsert(version *models.DeploymentVersion) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "deployment_id"}, {Name: "tag"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "status", "message", "config", "metadata", "updated_at",
		}),
	}).Create(version).Error
}

// GetByID retrieves a version by ID
func (r *DeploymentVersionRepository) GetByID(id uuid.UUID) (*models.DeploymentVersion, error) {
	var version models.DeploymentVersion
	err := r.db.First(&version, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}

// GetByTag retrieves a version by its deployment-scoped tag
func (r *DeploymentVersionRepository) GetByTag(deploymentID uuid.UUID, tag string) (*models.DeploymentVersion, error) {
	var version models.DeploymentVersion
	err := r.db.First(&version, "deployment_id = ? AND tag = ?", deploymentID, tag).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}

// GetByDeploymentID retrieves all versions of a deployment with pagination,
// newest first
func (r *DeploymentVersionRepository) GetByDeploymentID(deploymentID uuid.UUID, limit, offset int) ([]models.DeploymentVersion, int64, error) {
	var versions []models.DeploymentVersion
	var total int64

	query := r.db.Model(&models.DeploymentVersion{}).Where("deployment_id = ?", deploymentID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&versions).Error
	if err != nil {
		return nil, 0, err
	}

	return versions, total, nil
}

// SetStatus updates a version's status
func (r *DeploymentVersionRepository) SetStatus(id uuid.UUID, status models.DeploymentVersionStatus, message string) error {
	return r.db.Model(&models.DeploymentVersion{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "message": message}).Error
}

// GetReadyMatching retrieves the deployment's ready versions satisfying the
// channel selector, evaluated as a SQL predicate. A nil condition returns all
// ready versions.
func (r *DeploymentVersionRepository) GetReadyMatching(deploymentID uuid.UUID, cond *selector.Condition) ([]models.DeploymentVersion, error) {
	expr, args := selector.ToSQL(cond, selector.VersionColumns)

	var versions []models.DeploymentVersion
	err := r.db.
		Where("deployment_id = ? AND status = ?", deploymentID, models.VersionStatusReady).
		Where(expr, args...).
		Order("created_at DESC").
		Find(&versions).Error
	if err != nil {
		return nil, err
	}
	return versions, nil
}

// GetReadyTags returns the tags of a deployment's ready versions, newest first
func (r *DeploymentVersionRepository) GetReadyTags(deploymentID uuid.UUID) ([]string, error) {
	var tags []string
	err := r.db.Model(&models.DeploymentVersion{}).
		Where("deployment_id = ? AND status = ?", deploymentID, models.VersionStatusReady).
		Order("created_at DESC").
		Pluck("tag", &tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// Delete deletes a version
func (r *DeploymentVersionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.DeploymentVersion{}, "id = ?", id).Error
}
