package repository

import (
	"release-orchestrator-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VersionChannelRepository handles database operations for deployment version channels
type VersionChannelRepository struct {
	db *gorm.DB
}

// NewVersionChannelRepository creates a new version channel repository
func NewVersionChannelRepository(db *gorm.DB) *VersionChannelRepository {
	return &VersionChannelRepository{db: db}
}

// Create creates a new version channel
func (r *VersionChannelRepository) Create(channel *models.DeploymentVersionChannel) error {
	return r.db.Create(channel).Error
}

// GetByID retrieves a version channel by ID
func (r *VersionChannelRepository) GetByID(id uuid.UUID) (*models.DeploymentVersionChannel, error) {
	var channel models.DeploymentVersionChannel
	err := r.db.First(&channel, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

// GetByName retrieves a channel by its deployment-scoped name
func (r *VersionChannelRepository) GetByName(deploymentID uuid.UUID, name string) (*models.DeploymentVersionChannel, error) {
	var channel models.DeploymentVersionChannel
	err := r.db.First(&channel, "deployment_id = ? AND name = ?", deploymentID, name).Error
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

// GetByDeploymentID retrieves all channels of a deployment
func (r *VersionChannelRepository) GetByDeploymentID(deploymentID uuid.UUID) ([]models.DeploymentVersionChannel, error) {
	var channels []models.DeploymentVersionChannel
	err := r.db.Where("deployment_id = ?", deploymentID).Order("name ASC").Find(&channels).Error
	if err != nil {
		return nil, err
	}
	return channels, nil
}

// Update updates a version channel
func (r *VersionChannelRepository) Update(channel *models.DeploymentVersionChannel) error {
	return r.db.Save(channel).Error
}

// Delete deletes a version channel
func (r *VersionChannelRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.DeploymentVersionChannel{}, "id = ?", id).Error
}
