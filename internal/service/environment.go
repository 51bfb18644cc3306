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

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnvironmentService handles business logic for environments and their
// version channel bindings
type EnvironmentService struct {
	repo        repository.EnvironmentRepositoryInterface
	systemRepo  *repository.SystemRepository
	channelRepo *repository.VersionChannelRepository
	targetSync  *TargetSyncService
	validator   *validator.Validate
}

// NewEnvironmentService creates a new environment service
func NewEnvironmentService(
	repo repository.EnvironmentRepositoryInterface,
	systemRepo *repository.SystemRepository,
	channelRepo *repository.VersionChannelRepository,
	targetSync *TargetSyncService,
	validator *validator.Validate,
) *EnvironmentService {
	return &EnvironmentService{
		repo:        repo,
		systemRepo:  systemRepo,
		channelRepo: channelRepo,
		targetSync:  targetSync,
		validator:   validator,
	}
}

// CreateEnvironmentRequest represents the request to create an environment
type CreateEnvironmentRequest struct {
	SystemID         uuid.UUID       `json:"system_id" validate:"required"`
	Name             string          `json:"name" validate:"required,min=1,max=100"`
	Description      string          `json:"description" validate:"max=255"`
	ResourceSelector json.RawMessage `json:"resource_selector" swaggertype:"object"`
	Metadata         json.RawMessage `json:"metadata" swaggertype:"object"`
}

// UpdateEnvironmentRequest represents the request to update an environment
type UpdateEnvironmentRequest struct {
	Name             string          `json:"name" validate:"required,min=1,max=100"`
	Description      string          `json:"description" validate:"max=255"`
	ResourceSelector json.RawMessage `json:"resource_selector" swaggertype:"object"`
	Metadata         json.RawMessage `json:"metadata" swaggertype:"object"`
}

// BindChannelRequest represents the request to bind a version channel to an
// environment for one deployment
type BindChannelRequest struct {
	DeploymentID uuid.UUID `json:"deployment_id" validate:"required"`
	ChannelID    uuid.UUID `json:"channel_id" validate:"required"`
}

// EnvironmentResponse represents the response for environment operations
type EnvironmentResponse struct {
	ID               uuid.UUID       `json:"id"`
	SystemID         uuid.UUID       `json:"system_id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	ResourceSelector json.RawMessage `json:"resource_selector,omitempty" swaggertype:"object"`
	Metadata         json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
}

// ChannelBindingResponse represents a channel binding in API responses
type ChannelBindingResponse struct {
	ID            uuid.UUID `json:"id"`
	EnvironmentID uuid.UUID `json:"environment_id"`
	DeploymentID  uuid.UUID `json:"deployment_id"`
	ChannelID     uuid.UUID `json:"channel_id"`
	CreatedAt     string    `json:"created_at"`
}

// EnvironmentListResponse represents a paginated list of environments
type EnvironmentListResponse struct {
	Environments []EnvironmentResponse `json:"environments"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}

// Create creates a new environment and materializes its release targets
func (s *EnvironmentService) Create(req *CreateEnvironmentRequest) (*EnvironmentResponse, error) {
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

	environment := &models.Environment{
		SystemID:         req.SystemID,
		Name:             req.Name,
		Description:      req.Description,
		ResourceSelector: req.ResourceSelector,
		Metadata:         req.Metadata,
	}
	if err := s.repo.Create(environment); err != nil {
		return nil, fmt.Errorf("failed to create environment: %w", err)
	}

	if err := s.targetSync.RecomputeForEnvironment(environment); err != nil {
		return nil, fmt.Errorf("failed to compute release targets: %w", err)
	}

	return s.toResponse(environment), nil
}

// GetByID retrieves an environment by ID
func (s *EnvironmentService) GetByID(id uuid.UUID) (*EnvironmentResponse, error) {
	environment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEnvironmentNotFound
		}
		return nil, fmt.Errorf("failed to get environment: %w", err)
	}
	return s.toResponse(environment), nil
}

// GetBySystemID retrieves environments of a system with pagination
func (s *EnvironmentService) GetBySystemID(systemID uuid.UUID, page, pageSize int) (*EnvironmentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	environments, total, err := s.repo.GetBySystemID(systemID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get environments: %w", err)
	}

	responses := make([]EnvironmentResponse, len(environments))
	for i, e := range environments {
		responses[i] = *s.toResponse(&e)
	}

	return &EnvironmentListResponse{
		Environments: responses,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

// Update updates an environment. A resource selector change recomputes the
// environment's release targets before the call returns.
func (s *EnvironmentService) Update(id uuid.UUID, req *UpdateEnvironmentRequest) (*EnvironmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateSelector(req.ResourceSelector); err != nil {
		return nil, err
	}

	environment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEnvironmentNotFound
		}
		return nil, fmt.Errorf("failed to get environment: %w", err)
	}

	selectorChanged := !bytes.Equal(environment.ResourceSelector, req.ResourceSelector)

	environment.Name = req.Name
	environment.Description = req.Description
	environment.ResourceSelector = req.ResourceSelector
	environment.Metadata = req.Metadata
	if err := s.repo.Update(environment); err != nil {
		return nil, fmt.Errorf("failed to update environment: %w", err)
	}

	if selectorChanged {
		if err := s.targetSync.RecomputeForEnvironment(environment); err != nil {
			return nil, fmt.Errorf("failed to recompute release targets: %w", err)
		}
	}

	return s.toResponse(environment), nil
}

// Delete deletes an environment; bindings, targets and triggers cascade
func (s *EnvironmentService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEnvironmentNotFound
		}
		return fmt.Errorf("failed to get environment: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete environment: %w", err)
	}
	return nil
}

// BindChannel binds a version channel to the environment for one deployment.
// The channel must belong to that deployment; one binding per (environment,
// deployment) pair.
func (s *EnvironmentService) BindChannel(environmentID uuid.UUID, req *BindChannelRequest) (*ChannelBindingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(environmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEnvironmentNotFound
		}
		return nil, fmt.Errorf("failed to get environment: %w", err)
	}

	channel, err := s.channelRepo.GetByID(req.ChannelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChannelNotFound
		}
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}
	if channel.DeploymentID != req.DeploymentID {
		return nil, apperrors.NewValidationError("channel_id", "channel does not belong to the deployment")
	}

	existing, err := s.repo.GetChannelBinding(environmentID, req.DeploymentID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing binding: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrChannelBindingExists
	}

	binding := &models.EnvironmentVersionChannel{
		EnvironmentID: environmentID,
		DeploymentID:  req.DeploymentID,
		ChannelID:     req.ChannelID,
	}
	if err := s.repo.CreateChannelBinding(binding); err != nil {
		return nil, fmt.Errorf("failed to create channel binding: %w", err)
	}

	return &ChannelBindingResponse{
		ID:            binding.ID,
		EnvironmentID: binding.EnvironmentID,
		DeploymentID:  binding.DeploymentID,
		ChannelID:     binding.ChannelID,
		CreatedAt:     binding.CreatedAt.Format(time.RFC3339),
	}, nil
}

// UnbindChannel removes the environment's channel binding for a deployment
func (s *EnvironmentService) UnbindChannel(environmentID, deploymentID uuid.UUID) error {
	binding, err := s.repo.GetChannelBinding(environmentID, deploymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrChannelBindingNotFound
		}
		return fmt.Errorf("failed to get channel binding: %w", err)
	}
	if err := s.repo.DeleteChannelBinding(binding.ID); err != nil {
		return fmt.Errorf("failed to delete channel binding: %w", err)
	}
	return nil
}

// toResponse converts an Environment model to API response
func (s *EnvironmentService) toResponse(e *models.Environment) *EnvironmentResponse {
	return &EnvironmentResponse{
		ID:               e.ID,
		SystemID:         e.SystemID,
		Name:             e.Name,
		Description:      e.Description,
		ResourceSelector: e.ResourceSelector,
		Metadata:         e.Metadata,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        e.UpdatedAt.Format(time.RFC3339),
	}
}
