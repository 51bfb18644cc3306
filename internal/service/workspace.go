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

// WorkspaceService handles business logic for workspaces
type WorkspaceService struct {
	repo      *repository.WorkspaceRepository
	validator *validator.Validate
}

// NewWorkspaceService creates a new workspace service
func NewWorkspaceService(repo *repository.WorkspaceRepository, validator *validator.Validate) *WorkspaceService {
	return &WorkspaceService{repo: repo, validator: validator}
}

// CreateWorkspaceRequest represents the request to create a workspace
type CreateWorkspaceRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Slug string `json:"slug" validate:"required,min=1,max=100"`
}

// UpdateWorkspaceRequest represents the request to update a workspace
type UpdateWorkspaceRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// WorkspaceResponse represents the response for workspace operations
type WorkspaceResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// WorkspaceListResponse represents a paginated list of workspaces
type WorkspaceListResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// Create creates a new workspace
func (s *WorkspaceService) Create(req *CreateWorkspaceRequest) (*WorkspaceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetBySlug(req.Slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing workspace: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrWorkspaceExists
	}

	workspace := &models.Workspace{
		Name: req.Name,
		Slug: req.Slug,
	}
	if err := s.repo.Create(workspace); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	return s.toResponse(workspace), nil
}

// GetByID retrieves a workspace by ID
func (s *WorkspaceService) GetByID(id uuid.UUID) (*WorkspaceResponse, error) {
	workspace, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	return s.toResponse(workspace), nil
}

// GetBySlug retrieves a workspace by slug
func (s *WorkspaceService) GetBySlug(slug string) (*WorkspaceResponse, error) {
	workspace, err := s.repo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	return s.toResponse(workspace), nil
}

// GetAll retrieves workspaces with pagination
func (s *WorkspaceService) GetAll(page, pageSize int) (*WorkspaceListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	workspaces, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspaces: %w", err)
	}

	responses := make([]WorkspaceResponse, len(workspaces))
	for i, w := range workspaces {
		responses[i] = *s.toResponse(&w)
	}

	return &WorkspaceListResponse{
		Workspaces: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// Update updates a workspace's mutable fields
func (s *WorkspaceService) Update(id uuid.UUID, req *UpdateWorkspaceRequest) (*WorkspaceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	workspace, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	workspace.Name = req.Name
	if err := s.repo.Update(workspace); err != nil {
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}

	return s.toResponse(workspace), nil
}

// Delete deletes a workspace and everything it owns
func (s *WorkspaceService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWorkspaceNotFound
		}
		return fmt.Errorf("failed to get workspace: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}
	return nil
}

// toResponse converts a Workspace model to API response
func (s *WorkspaceService) toResponse(w *models.Workspace) *WorkspaceResponse {
	return &WorkspaceResponse{
		ID:        w.ID,
		Name:      w.Name,
		Slug:      w.Slug,
		CreatedAt: w.CreatedAt.Format(time.RFC3339),
		UpdatedAt: w.UpdatedAt.Format(time.RFC3339),
	}
}
