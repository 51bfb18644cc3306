package repository

import (
	"release-orchestrator-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SystemRepository handles database operations for systems
type SystemRepository struct {
	db *gorm.DB
}

// NewSystemRepository creates a new system repository
func NewSystemRepository(db *gorm.DB) *SystemRepository {
	return &SystemRepository{db: db}
}

// Create creates a new system
func (r *SystemRepository) Create(system *models.System) error {
	return r.db.Create(system).Error
}

// GetByID retrieves a system by ID
func (r *SystemRepository) GetByID(id uuid.UUID) (*models.System, error) {
	var system models.System
	err := r.db.First(&system, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &system, nil
}

// GetBySlug retrieves a system by its workspace-scoped slug
func (r *SystemRepository) GetBySlug(workspaceID uuid.UUID, slug string) (*models.System, error) {
	var system models.System
	err := r.db.First(&system, "workspace_id = ? AND slug = ?", workspaceID, slug).Error
	if err != nil {
		return nil, err
	}
	return &system, nil
}

// GetByWorkspaceID retrieves all systems of a workspace with pagination
func (r *SystemRepository) GetByWorkspaceID(workspaceID uuid.UUID, limit, offset int) ([]models.System, int64, error) {
	var systems []models.System
	var total int64

	query := r.db.Model(&models.System{}).Where("workspace_id = ?", workspaceID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("slug ASC").Find(&systems).Error
	if err != nil {
		return nil, 0, err
	}

	return systems, total, nil
}

// GetWithDeploymentsAndEnvironments retrieves a system with its deployments and environments
func (r *SystemRepository) GetWithDeploymentsAndEnvironments(id uuid.UUID) (*models.System, error) {
	var system models.System
	err := r.db.
		Preload("Deployments").
		Preload("Environments").
		First(&system, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &system, nil
}

// Update updates a system
func (r *SystemRepository) Update(system *models.System) error {
	return r.db.Save(system).Error
}

// Delete deletes a system
func (r *SystemRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.System{}, "id = ?", id).Error
}
