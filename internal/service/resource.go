package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"release-orchestrator-backend/internal/database/models"
	apperrors "release-orchestrator-backend/internal/errors"
	"release-orchestrator-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResourceService handles the provider-facing resource inventory. Resources
// are upserted keyed on (workspace, identifier); every inventory change
// recomputes the workspace's release targets.
type ResourceService struct {
	repo          *repository.ResourceRepository
	workspaceRepo *repository.WorkspaceRepository
	targetRepo    repository.ReleaseTargetRepositoryInterface
	targetSync    *TargetSyncService
	validator     *validator.Validate
}

// NewResourceService creates a new resource service
func NewResourceService(
	repo *repository.ResourceRepository,
	workspaceRepo *repository.WorkspaceRepository,
	targetRepo repository.ReleaseTargetRepositoryInterface,
	targetSync *TargetSyncService,
	validator *validator.Validate,
) *ResourceService {
	return &ResourceService{
		repo:          repo,
		workspaceRepo: workspaceRepo,
		targetRepo:    targetRepo,
		targetSync:    targetSync,
		validator:     validator,
	}
}

// UpsertResourceRequest represents one resource reported by a provider
type UpsertResourceRequest struct {
	WorkspaceID uuid.UUID       `json:"workspace_id" validate:"required"`
	Identifier  string          `json:"identifier" validate:"required,min=1,max=255"`
	Name        string          `json:"name" validate:"required,min=1,max=255"`
	Kind        string          `json:"kind" validate:"required,min=1,max=100"`
	Version     string          `json:"version" validate:"required"`
	Metadata    json.RawMessage `json:"metadata" swaggertype:"object"`
}

// ResourceResponse represents the response for resource operations
type ResourceResponse struct {
	ID          uuid.UUID       `json:"id"`
	WorkspaceID uuid.UUID       `json:"workspace_id"`
	Identifier  string          `json:"identifier"`
	Name        string          `json:"name"`
	Kind        string          `json:"kind"`
	Version     string          `json:"version"`
	Metadata    json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// ResourceListResponse represents a paginated list of resources
type ResourceListResponse struct {
	Resources []ResourceResponse `json:"resources"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Upsert creates or refreshes a resource and recomputes the workspace's
// release targets. Re-reporting an identifier updates the row in place.
func (s *ResourceService) Upsert(req *UpsertResourceRequest) (*ResourceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.workspaceRepo.GetByID(req.WorkspaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to verify workspace: %w", err)
	}

	resource := &models.Resource{
		WorkspaceID: req.WorkspaceID,
		Identifier:  req.Identifier,
		Name:        req.Name,
		Kind:        req.Kind,
		Version:     req.Version,
		Metadata:    req.Metadata,
	}
	if err := s.repo.Upsert(resource); err != nil {
		return nil, fmt.Errorf("failed to upsert resource: %w", err)
	}

	if err := s.targetSync.RecomputeForWorkspace(req.WorkspaceID); err != nil {
		return nil, fmt.Errorf("failed to recompute release targets: %w", err)
	}

	return s.toResponse(resource), nil
}

// GetByID retrieves a resource by ID
func (s *ResourceService) GetByID(id uuid.UUID) (*ResourceResponse, error) {
	resource, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}
	return s.toResponse(resource), nil
}

// GetByWorkspaceID retrieves resources of a workspace with pagination
func (s *ResourceService) GetByWorkspaceID(workspaceID uuid.UUID, page, pageSize int) (*ResourceListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	resources, total, err := s.repo.GetByWorkspaceID(workspaceID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get resources: %w", err)
	}

	responses := make([]ResourceResponse, len(resources))
	for i, r := range resources {
		responses[i] = *s.toResponse(&r)
	}

	return &ResourceListResponse{
		Resources: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Delete soft-deletes a resource and removes its release targets. Live jobs
// on those targets are left to the agent; their triggers go away with the
// targets.
func (s *ResourceService) Delete(id uuid.UUID) error {
	resource, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("failed to get resource: %w", err)
	}

	if err := s.targetRepo.DeleteByResourceID(resource.ID); err != nil {
		return fmt.Errorf("failed to delete release targets: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}
	return nil
}

// toResponse converts a Resource model to API response
func (s *ResourceService) toResponse(r *models.Resource) *ResourceResponse {
	return &ResourceResponse{
		ID:          r.ID,
		WorkspaceID: r.WorkspaceID,
		Identifier:  r.Identifier,
		Name:        r.Name,
		Kind:        r.Kind,
		Version:     r.Version,
		Metadata:    r.Metadata,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}
