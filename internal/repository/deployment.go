package repository

import (
	"release-orchestrator-backend/internal/database/models"
	"release-orchestrator-backend/internal/selector"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeploymentRepository handles database operations for deployments
type DeploymentRepository struct {
	db *gorm.DB
}

// NewDeploymentRepository creates a new deployment repository
func NewDeploymentRepository(db *gorm.DB) *DeploymentRepository {
	return &DeploymentRepository{db: db}
}

// Create creates a new deployment
func (r *DeploymentRepository) Create(deployment *models.Deployment) error {
	return r.db.Create(deployment).Error
}

// GetByID retrieves a deployment by ID
func (r *DeploymentRepository) GetByID(id uuid.UUID) (*models.Deployment, error) {
	var deployment models.Deployment
	err := r.db.First(&deployment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &deployment, nil
}

// GetBySlug retrieves a deployment by its system-scoped slug
func (r *DeploymentRepository) GetBySlug(systemID uuid.UUID, slug string) (*models.Deployment, error) {
	var deployment models.Deployment
	err := r.db.First(&deployment, "system_id = ? AND slug = ?", systemID, slug).Error
	if err != nil {
		return nil, err
	}
	return &deployment, nil
}

// GetBySystemID retrieves all deployments of a system with pagination
func (r *DeploymentRepository) GetBySystemID(systemID uuid.UUID, limit, offset int) ([]models.Deployment, int64, error) {
	var deployments []models.Deployment
	var total int64

	query := r.db.Model(&models.Deployment{}).Where("system_id = ?", systemID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("slug ASC").Find(&deployments).Error
	if err != nil {
		return nil, 0, err
	}

	return deployments, total, nil
}

// GetByWorkspaceID retrieves all deployments across a workspace's systems
func (r *DeploymentRepository) GetByWorkspaceID(workspaceID uuid.UUID) ([]models.Deployment, error) {
	var deployments []models.Deployment
	err := r.db.
		Joins("JOIN systems ON systems.id = deployments.system_id").
		Where("systems.workspace_id = ?", workspaceID).
		Find(&deployments).Error
	if err != nil {
		return nil, err
	}
	return deployments, nil
}

// GetMatching retrieves the workspace's deployments satisfying the selector
// condition, evaluated as a SQL predicate.
func (r *DeploymentRepository) GetMatching(workspaceID uuid.UUID, cond *selector.Condition) ([]models.Deployment, error) {
	expr, args := selector.ToSQL(cond, deploymentColumnsQualified)

	var deployments []models.Deployment
	err := r.db.
		Joins("JOIN systems ON systems.id = deployments.system_id").
		Where("systems.workspace_id = ?", workspaceID).
		Where(expr, args...).
		Find(&deployments).Error
	if err != nil {
		return nil, err
	}
	return deployments, nil
}

// deploymentColumnsQualified qualifies the column names because GetMatching
// joins against systems
var deploymentColumnsQualified = selector.ColumnMap{
	Name:      "deployments.name",
	Metadata:  "deployments.metadata",
	CreatedAt: "deployments.created_at",
}

// Update updates a deployment
func (r *DeploymentRepository) Update(deployment *models.Deployment) error {
	return r.db.Save(deployment).Error
}

// Delete deletes a deployment
func (r *DeploymentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Deployment{}, "id = ?", id).Error
}
