package repository

import (
	"release-orchestrator-backend/internal/database/models"
	"release-orchestrator-backend/internal/selector"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ResourceRepository handles database operations for resources
type ResourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// Upsert inserts or updates a resource keyed on (workspace_id, identifier).
// Providers re-report resources; re-ingestion must never conflict.
func (r *ResourceRepository) Upsert(resource *models.Resource) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "workspace_id"}, {Name: "identifier"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "kind", "version", "metadata", "updated_at", "deleted_at",
		}),
	}).Create(resource).Error
}

// GetByID retrieves a resource by ID
func (r *ResourceRepository) GetByID(id uuid.UUID) (*models.Resource, error) {
	var resource models.Resource
	err := r.db.First(&resource, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// GetByIdentifier retrieves a resource by its workspace-scoped identifier
func (r *ResourceRepository) GetByIdentifier(workspaceID uuid.UUID, identifier string) (*models.Resource, error) {
	var resource models.Resource
	err := r.db.First(&resource, "workspace_id = ? AND identifier = ?", workspaceID, identifier).Error
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// GetByWorkspaceID retrieves all resources of a workspace with pagination
func (r *ResourceRepository) GetByWorkspaceID(workspaceID uuid.UUID, limit, offset int) ([]models.Resource, int64, error) {
	var resources []models.Resource
	var total int64

	query := r.db.Model(&models.Resource{}).Where("workspace_id = ?", workspaceID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("identifier ASC").Find(&resources).Error
	if err != nil {
		return nil, 0, err
	}

	return resources, total, nil
}

// GetMatching retrieves the workspace's resources satisfying the selector
// condition, evaluated as a SQL predicate rather than in application memory.
func (r *ResourceRepository) GetMatching(workspaceID uuid.UUID, cond *selector.Condition) ([]models.Resource, error) {
	expr, args := selector.ToSQL(cond, selector.ResourceColumns)

	var resources []models.Resource
	err := r.db.
		Where("workspace_id = ?", workspaceID).
		Where(expr, args...).
		Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

// Delete soft-deletes a resource
func (r *ResourceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Resource{}, "id = ?", id).Error
}
