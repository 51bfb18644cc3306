package repository

import (
	"release-orchestrator-backend/internal/database/models"
	"release-orchestrator-backend/internal/selector"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnvironmentRepository handles database operations for environments and their
// version channel bindings
type EnvironmentRepository struct {
	db *gorm.DB
}

// NewEnvironmentRepository creates a new environment repository
func NewEnvironmentRepository(db *gorm.DB) *EnvironmentRepository {
	return &EnvironmentRepository{db: db}
}

// Create creates a new environment
func (r *EnvironmentRepository) Create(environment *models.Environment) error {
	return r.db.Create(environment).Error
}

// GetByID retrieves an environment by ID
func (r *EnvironmentRepository) GetByID(id uuid.UUID) (*models.Environment, error) {
	var environment models.Environment
	err := r.db.First(&environment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &environment, nil
}

// GetBySystemID retrieves all environments of a system with pagination
func (r *EnvironmentRepository) GetBySystemID(systemID uuid.UUID, limit, offset int) ([]models.Environment, int64, error) {
	var environments []models.Environment
	var total int64

	query := r.db.Model(&models.Environment{}).Where("system_id = ?", systemID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("name ASC").Find(&environments).Error
	if err != nil {
		return nil, 0, err
	}

	return environments, total, nil
}

// GetByWorkspaceID retrieves all environments across a workspace's systems
func (r *EnvironmentRepository) GetByWorkspaceID(workspaceID uuid.UUID) ([]models.Environment, error) {
	var environments []models.Environment
	err := r.db.
		Joins("JOIN systems ON systems.id = environments.system_id").
		Where("systems.workspace_id = ?", workspaceID).
		Find(&environments).Error
	if err != nil {
		return nil, err
	}
	return environments, nil
}

// GetMatching retrieves the workspace's environments satisfying the selector
// condition, evaluated as a SQL predicate.
func (r *EnvironmentRepository) GetMatching(workspaceID uuid.UUID, cond *selector.Condition) ([]models.Environment, error) {
	expr, args := selector.ToSQL(cond, environmentColumnsQualified)

	var environments []models.Environment
	err := r.db.
		Joins("JOIN systems ON systems.id = environments.system_id").
		Where("systems.workspace_id = ?", workspaceID).
		Where(expr, args...).
		Find(&environments).Error
	if err != nil {
		return nil, err
	}
	return environments, nil
}

var environmentColumnsQualified = selector.ColumnMap{
	Name:      "environments.name",
	Metadata:  "environments.metadata",
	CreatedAt: "environments.created_at",
}

// Update updates an environment
func (r *EnvironmentRepository) Update(environment *models.Environment) error {
	return r.db.Save(environment).Error
}

// Delete deletes an environment
func (r *EnvironmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Environment{}, "id = ?", id).Error
}

// CreateChannelBinding binds a version channel to an environment for one deployment
func (r *EnvironmentRepository) CreateChannelBinding(binding *models.EnvironmentVersionChannel) error {
	return r.db.Create(binding).Error
}

// GetChannelBinding retrieves the channel binding for an environment and deployment
func (r *EnvironmentRepository) GetChannelBinding(environmentID, deploymentID uuid.UUID) (*models.EnvironmentVersionChannel, error) {
	var binding models.EnvironmentVersionChannel
	err := r.db.
		Preload("Channel").
		First(&binding, "environment_id = ? AND deployment_id = ?", environmentID, deploymentID).Error
	if err != nil {
		return nil, err
	}
	return &binding, nil
}

// DeleteChannelBinding removes an environment's channel binding
func (r *EnvironmentRepository) DeleteChannelBinding(id uuid.UUID) error {
	return r.db.Delete(&models.EnvironmentVersionChannel{}, "id = ?", id).Error
}

// CountBindingsForChannel counts how many environments bind the given channel
func (r *EnvironmentRepository) CountBindingsForChannel(channelID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.EnvironmentVersionChannel{}).Where("channel_id = ?", channelID).Count(&count).Error
	return count, err
}
