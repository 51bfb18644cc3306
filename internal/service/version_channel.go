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

// ChannelService handles business logic for version channels
type ChannelService struct {
	repo            *repository.VersionChannelRepository
	deploymentRepo  *repository.DeploymentRepository
	environmentRepo repository.EnvironmentRepositoryInterface
	validator       *validator.Validate
}

// NewChannelService creates a new version channel service
func NewChannelService(
	repo *repository.VersionChannelRepository,
	deploymentRepo *repository.DeploymentRepository,
	environmentRepo repository.EnvironmentRepositoryInterface,
	validator *validator.Validate,
) *ChannelService {
	return &ChannelService{
		repo:            repo,
		deploymentRepo:  deploymentRepo,
		environmentRepo: environmentRepo,
		validator:       validator,
	}
}

// CreateChannelRequest represents the request to create a version channel
type CreateChannelRequest struct {
	DeploymentID    uuid.UUID       `json:"deployment_id" validate:"required"`
	Name            string          `json:"name" validate:"required,min=1,max=100"`
	Description     string          `json:"description" validate:"max=255"`
	VersionSelector json.RawMessage `json:"version_selector" swaggertype:"object"`
}

// UpdateChannelRequest represents the request to update a version channel
type UpdateChannelRequest struct {
	Description     string          `json:"description" validate:"max=255"`
	VersionSelector json.RawMessage `json:"version_selector" swaggertype:"object"`
}

// ChannelResponse represents the response for channel operations
type ChannelResponse struct {
	ID              uuid.UUID       `json:"id"`
	DeploymentID    uuid.UUID       `json:"deployment_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	VersionSelector json.RawMessage `json:"version_selector,omitempty" swaggertype:"object"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

// Create creates a new version channel
func (s *ChannelService) Create(req *CreateChannelRequest) (*ChannelResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateSelector(req.VersionSelector); err != nil {
		return nil, err
	}

	if _, err := s.deploymentRepo.GetByID(req.DeploymentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDeploymentNotFound
		}
		return nil, fmt.Errorf("failed to verify deployment: %w", err)
	}

	existing, err := s.repo.GetByName(req.DeploymentID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing channel: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrChannelExists
	}

	channel := &models.DeploymentVersionChannel{
		DeploymentID:    req.DeploymentID,
		Name:            req.Name,
		Description:     req.Description,
		VersionSelector: req.VersionSelector,
	}
	if err := s.repo.Create(channel); err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	return s.toResponse(channel), nil
}

// GetByID retrieves a channel by ID
func (s *ChannelService) GetByID(id uuid.UUID) (*ChannelResponse, error) {
	channel, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChannelNotFound
		}
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}
	return s.toResponse(channel), nil
}

// GetByDeploymentID retrieves the deployment's channels
func (s *ChannelService) GetByDeploymentID(deploymentID uuid.UUID) ([]ChannelResponse, error) {
	channels, err := s.repo.GetByDeploymentID(deploymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get channels: %w", err)
	}

	responses := make([]ChannelResponse, len(channels))
	for i, c := range channels {
		responses[i] = *s.toResponse(&c)
	}
	return responses, nil
}

// Update updates a channel's description and version selector. Selector
// changes take effect on the next dispatch evaluation; already dispatched
// jobs are unaffected.
func (s *ChannelService) Update(id uuid.UUID, req *UpdateChannelRequest) (*ChannelResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateSelector(req.VersionSelector); err != nil {
		return nil, err
	}

	channel, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChannelNotFound
		}
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	channel.Description = req.Description
	channel.VersionSelector = req.VersionSelector
	if err := s.repo.Update(channel); err != nil {
		return nil, fmt.Errorf("failed to update channel: %w", err)
	}

	return s.toResponse(channel), nil
}

// Delete deletes a channel. A channel still bound to an environment cannot
// be deleted; unbind it first.
func (s *ChannelService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrChannelNotFound
		}
		return fmt.Errorf("failed to get channel: %w", err)
	}

	bindings, err := s.environmentRepo.CountBindingsForChannel(id)
	if err != nil {
		return fmt.Errorf("failed to count channel bindings: %w", err)
	}
	if bindings > 0 {
		return apperrors.ErrChannelInUse
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete channel: %w", err)
	}
	return nil
}

// toResponse converts a channel model to API response
func (s *ChannelService) toResponse(c *models.DeploymentVersionChannel) *ChannelResponse {
	return &ChannelResponse{
		ID:              c.ID,
		DeploymentID:    c.DeploymentID,
		Name:            c.Name,
		Description:     c.Description,
		VersionSelector: c.VersionSelector,
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       c.UpdatedAt.Format(time.RFC3339),
	}
}
