package service

import (
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

// SystemService handles business logic for systems
type SystemService struct {
	repo          *repository.SystemRepository
	workspaceRepo *repository.WorkspaceRepository
	validator     *validator.Validate
}

// NewSystemService creates a new system service
func NewSystemService(repo *repository.SystemRepository, workspaceRepo *repository.WorkspaceRepository, validator *validator.Validate) *SystemService {
	return &SystemService{
		repo:          repo,
		workspaceRepo: workspaceRepo,
		validator:     validator,
	}
}

// CreateSystemRequest represents the request to create a system
type CreateSystemRequest struct {
	WorkspaceID uuid.UUID `json:"workspace_id" validate:"required"`
	Name        string    `json:"name" validate:"required,min=1,max=100"`
	Slug        string    `json:"slug" validate:"required,min=1,max=100"`
	Description string    `json:"description" validate:"max=255"`
}

// UpdateSystemRequest represents the request to update a system
type UpdateSystemRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=255"`
}

// SystemResponse represents the response for system operations
type SystemResponse struct {
	ID          uuid.UUID `json:"id"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// SystemListResponse represents a paginated list of systems
type SystemListResponse struct {
	Systems  []SystemResponse `json:"systems"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new system
func (s *SystemService) Create(req *CreateSystemRequest) (*SystemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.workspaceRepo.GetByID(req.WorkspaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to verify workspace: %w", err)
	}

	existing, err := s.repo.GetBySlug(req.WorkspaceID, req.Slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing system: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrSystemExists
	}

	system := &models.System{
		WorkspaceID: req.WorkspaceID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if err := s.repo.Create(system); err != nil {
		return nil, fmt.Errorf("failed to create system: %w", err)
	}

	return s.toResponse(system), nil
}

// GetByID retrieves a system by ID
func (s *SystemService) GetByID(id uuid.UUID) (*SystemResponse, error) {
	system, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSystemNotFound
		}
		return nil, fmt.Errorf("failed to get system: %w", err)
	}
	return s.toResponse(system), nil
}

// GetByWorkspaceID retrieves systems of a workspace with pagination
func (s *SystemService) GetByWorkspaceID(workspaceID uuid.UUID, page, pageSize int) (*SystemListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	systems, total, err := s.repo.GetByWorkspaceID(workspaceID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get systems: %w", err)
	}

	responses := make([]SystemResponse, len(systems))
	for i, sys := range systems {
		responses[i] = *s.toResponse(&sys)
	}

	return &SystemListResponse{
		Systems:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a system's mutable fields
func (s *SystemService) Update(id uuid.UUID, req *UpdateSystemRequest) (*SystemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	system, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSystemNotFound
		}
		return nil, fmt.Errorf("failed to get system: %w", err)
	}

	system.Name = req.Name
	system.Description = req.Description
	if err := s.repo.Update(system); err != nil {
		return nil, fmt.Errorf("failed to update system: %w", err)
	}

	return s.toResponse(system), nil
}

// Delete deletes a system; its deployments and environments cascade
func (s *SystemService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSystemNotFound
		}
		return fmt.Errorf("failed to get system: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete system: %w", err)
	}
	return nil
}

// toResponse converts a System model to API response
func (s *SystemService) toResponse(sys *models.System) *SystemResponse {
	return &SystemResponse{
		ID:          sys.ID,
		WorkspaceID: sys.WorkspaceID,
		Name:        sys.Name,
		Slug:        sys.Slug,
		Description: sys.Description,
		CreatedAt:   sys.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   sys.UpdatedAt.Format(time.RFC3339),
	}
}
