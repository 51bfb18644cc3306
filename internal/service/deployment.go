package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"release-orchestrator-backend/internal/database/models"
	apperrors "release-orchestrator-backend/internal/errors"
	"release-orchestrator-backend/internal/repository"
	"release-orchestrator-backend/internal/selector"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeploymentService handles business logic for deployments
type DeploymentService struct {
	repo       *repository.DeploymentRepository
	systemRepo *repository.SystemRepository
	targetSync *TargetSyncService
	validator  *validator.Validate
}

// NewDeploymentService creates a new deployment service
func NewDeploymentService(repo *repository.DeploymentRepository, systemRepo *repository.SystemRepository, targetSync *TargetSyncService, validator *validator.Validate) *DeploymentService {
	return &DeploymentService{
		repo:       repo,
		systemRepo: systemRepo,
		targetSync: targetSync,
		validator:  validator,
	}
}

// CreateDeploymentRequest represents the request to create a deployment
type CreateDeploymentRequest struct {
	SystemID         uuid.UUID       `json:"system_id" validate:"required"`
	Name             string          `json:"name" validate:"required,min=1,max=100"`
	Slug             string          `json:"slug" validate:"required,min=1,max=100"`
	Description      string          `json:"description" validate:"max=255"`
	ResourceSelector json.RawMessage `json:"resource_selector" swaggertype:"object"`
	Metadata         json.RawMessage `json:"metadata" swaggertype:"object"`
	JobAgentConfig   json.RawMessage `json:"job_agent_config" swaggertype:"object"`
}

// UpdateDeploymentRequest represents the request to update a deployment
type UpdateDeploymentRequest struct {
	Name             string          `json:"name" validate:"required,min=1,max=100"`
	Description      string          `json:"description" validate:"max=255"`
	ResourceSelector json.RawMessage `json:"resource_selector" swaggertype:"object"`
	Metadata         json.RawMessage `json:"metadata" swaggertype:"object"`
	JobAgentConfig   json.RawMessage `json:"job_agent_config" swaggertype:"object"`
}

// DeploymentResponse represents the response for deployment operations
type DeploymentResponse struct {
	ID               uuid.UUID       `json:"id"`
	SystemID         uuid.UUID       `json:"system_id"`
	Name             string          `json:"name"`
	Slug             string          `json:"slug"`
	Description      string          `json:"description"`
	ResourceSelector json.RawMessage `json:"resource_selector,omitempty" swaggertype:"object"`
	Metadata         json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
	JobAgentConfig   json.RawMessage `json:"job_agent_config,omitempty" swaggertype:"object"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
}

// DeploymentListResponse represents a paginated list of deployments
type DeploymentListResponse struct {
	Deployments []DeploymentResponse `json:"deployments"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// Create creates a new deployment and materializes its release targets
func (s *DeploymentService) Create(req *CreateDeploymentRequest) (*DeploymentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateSelector(req.ResourceSelector); err != nil {
		return nil, err
	}

	if _, err := s.systemRepo.GetByID(req.SystemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSystemNotFound
		}
		return nil, fmt.Errorf("failed to verify system: %w", err)
	}

	existing, err := s.repo.GetBySlug(req.SystemID, req.Slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing deployment: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDeploymentExists
	}

	deployment := &models.Deployment{
		SystemID:         req.SystemID,
		Name:             req.Name,
		Slug:             req.Slug,
		Description:      req.Description,
		ResourceSelector: req.ResourceSelector,
		Metadata:         req.Metadata,
		JobAgentConfig:   req.JobAgentConfig,
	}
	if err := s.repo.Create(deployment); err != nil {
		return nil, fmt.Errorf("failed to create deployment: %w", err)
	}

	if err := s.targetSync.RecomputeForDeployment(deployment); err != nil {
		return nil, fmt.Errorf("failed to compute release targets: %w", err)
	}

	return s.toResponse(deployment), nil
}

// GetByID retrieves a deployment by ID
func (s *DeploymentService) GetByID(id uuid.UUID) (*DeploymentResponse, error) {
	deployment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDeploymentNotFound
		}
		return nil, fmt.Errorf("failed to get deployment: %w", err)
	}
	return s.toResponse(deployment), nil
}

// GetBySystemID retrieves deployments of a system with pagination
func (s *DeploymentService) GetBySystemID(systemID uuid.UUID, page, pageSize int) (*DeploymentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	deployments, total, err := s.repo.GetBySystemID(systemID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get deployments: %w", err)
	}

	responses := make([]DeploymentResponse, len(deployments))
	for i, d := range deployments {
		responses[i] = *s.toResponse(&d)
	}

	return &DeploymentListResponse{
		Deployments: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Update updates a deployment. A resource selector change recomputes the
// deployment's release targets before the call returns.
func (s *DeploymentService) Update(id uuid.UUID, req *UpdateDeploymentRequest) (*DeploymentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateSelector(req.ResourceSelector); err != nil {
		return nil, err
	}

	deployment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDeploymentNotFound
		}
		return nil, fmt.Errorf("failed to get deployment: %w", err)
	}

	selectorChanged := !bytes.Equal(deployment.ResourceSelector, req.ResourceSelector)

	deployment.Name = req.Name
	deployment.Description = req.Description
	deployment.ResourceSelector = req.ResourceSelector
	deployment.Metadata = req.Metadata
	deployment.JobAgentConfig = req.JobAgentConfig
	if err := s.repo.Update(deployment); err != nil {
		return nil, fmt.Errorf("failed to update deployment: %w", err)
	}

	if selectorChanged {
		if err := s.targetSync.RecomputeForDeployment(deployment); err != nil {
			return nil, fmt.Errorf("failed to recompute release targets: %w", err)
		}
	}

	return s.toResponse(deployment), nil
}

// Delete deletes a deployment; versions, targets and triggers cascade
func (s *DeploymentService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDeploymentNotFound
		}
		return fmt.Errorf("failed to get deployment: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete deployment: %w", err)
	}
	return nil
}

// toResponse converts a Deployment model to API response
func (s *DeploymentService) toResponse(d *models.Deployment) *DeploymentResponse {
	return &DeploymentResponse{
		ID:               d.ID,
		SystemID:         d.SystemID,
		Name:             d.Name,
		Slug:             d.Slug,
		Description:      d.Description,
		ResourceSelector: d.ResourceSelector,
		Metadata:         d.Metadata,
		JobAgentConfig:   d.JobAgentConfig,
		CreatedAt:        d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        d.UpdatedAt.Format(time.RFC3339),
	}
}

// validateSelector rejects malformed selector json up front so it never
// reaches the evaluators
func validateSelector(raw json.RawMessage) error {
	cond, err := selector.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidSelector, err)
	}
	if cond == nil {
		return nil
	}
	if err := cond.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidSelector, err)
	}
	return nil
}
