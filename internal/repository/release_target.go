package repository

import (
	"release-orchestrator-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReleaseTargetRepository handles database operations for release targets
type ReleaseTargetRepository struct {
	db *gorm.DB
}

// NewReleaseTargetRepository creates a new release target repository
func NewReleaseTargetRepository(db *gorm.DB) *ReleaseTargetRepository {
	return &ReleaseTargetRepository{db: db}
}

// GetByID retrieves a release target with its triple preloaded
func (r *ReleaseTargetRepository) GetByID(id uuid.UUID) (*models.ReleaseTarget, error) {
	var target models.ReleaseTarget
	err := r.db.
		Preload("Deployment").
		Preload("Environment").
		Preload("Resource").
		First(&target, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &target, nil
}

// GetByDeploymentID retrieves all release targets of a deployment
func (r *ReleaseTargetRepository) GetByDeploymentID(deploymentID uuid.UUID) ([]models.ReleaseTarget, error) {
	var targets []models.ReleaseTarget
	err := r.db.Where("deployment_id = ?", deploymentID).Order("id ASC").Find(&targets).Error
	if err != nil {
		return nil, err
	}
	return targets, nil
}

// GetByEnvironmentID retrieves all release targets of an environment
func (r *ReleaseTargetRepository) GetByEnvironmentID(environmentID uuid.UUID) ([]models.ReleaseTarget, error) {
	var targets []models.ReleaseTarget
	err := r.db.Where("environment_id = ?", environmentID).Order("id ASC").Find(&targets).Error
	if err != nil {
		return nil, err
	}
	return targets, nil
}

// GetByWorkspaceID retrieves all release targets across a workspace with
// their deployment, environment and resource preloaded
func (r *ReleaseTargetRepository) GetByWorkspaceID(workspaceID uuid.UUID) ([]models.ReleaseTarget, error) {
	var targets []models.ReleaseTarget
	err := r.db.
		Preload("Deployment").
		Preload("Environment").
		Preload("Resource").
		Joins("JOIN resources ON resources.id = release_targets.resource_id").
		Where("resources.workspace_id = ?", workspaceID).
		Order("release_targets.id ASC").
		Find(&targets).Error
	if err != nil {
		return nil, err
	}
	return targets, nil
}

// SyncForDeployment replaces the deployment's release targets with the desired
// set in one transaction. Existing rows in the desired set are kept (their ids
// are stable); stale rows go away, missing rows are inserted.
func (r *ReleaseTargetRepository) SyncForDeployment(deploymentID uuid.UUID, desired []models.ReleaseTarget) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return syncTargets(tx, tx.Where("deployment_id = ?", deploymentID), desired)
	})
}

// SyncForEnvironment replaces the environment's release targets with the
// desired set in one transaction.
func (r *ReleaseTargetRepository) SyncForEnvironment(environmentID uuid.UUID, desired []models.ReleaseTarget) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return syncTargets(tx, tx.Where("environment_id = ?", environmentID), desired)
	})
}

func syncTargets(tx *gorm.DB, scope *gorm.DB, desired []models.ReleaseTarget) error {
	if len(desired) == 0 {
		return scope.Delete(&models.ReleaseTarget{}).Error
	}

	triples := make([][]interface{}, 0, len(desired))
	for i := range desired {
		t := &desired[i]
		triples = append(triples, []interface{}{t.DeploymentID, t.EnvironmentID, t.ResourceID})
	}

	err := scope.
		Where("(deployment_id, environment_id, resource_id) NOT IN ?", triples).
		Delete(&models.ReleaseTarget{}).Error
	if err != nil {
		return err
	}

	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "deployment_id"}, {Name: "environment_id"}, {Name: "resource_id"}},
		DoNothing: true,
	}).Create(&desired).Error
}

// DeleteByResourceID removes all release targets of a resource
func (r *ReleaseTargetRepository) DeleteByResourceID(resourceID uuid.UUID) error {
	return r.db.Delete(&models.ReleaseTarget{}, "resource_id = ?", resourceID).Error
}
