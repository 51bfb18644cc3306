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

// Poker lets services request an immediate dispatch sweep without depending
// on the sweeper itself
type Poker interface {
	Poke()
}

// VersionService handles deployment version ingestion and lifecycle. A
// version reaching ready status fans out release job triggers across the
// deployment's targets and pokes the dispatch sweep.
type VersionService struct {
	repo           repository.DeploymentVersionRepositoryInterface
	deploymentRepo *repository.DeploymentRepository
	triggers       *TriggerService
	sweeper        Poker
	validator      *validator.Validate
}

// NewVersionService creates a new version service
func NewVersionService(
	repo repository.DeploymentVersionRepositoryInterface,
	deploymentRepo *repository.DeploymentRepository,
	triggers *TriggerService,
	sweeper Poker,
	validator *validator.Validate,
) *VersionService {
	return &VersionService{
		repo:           repo,
		deploymentRepo: deploymentRepo,
		triggers:       triggers,
		sweeper:        sweeper,
		validator:      validator,
	}
}

// UpsertVersionRequest represents a version reported by a build pipeline
type UpsertVersionRequest struct {
	DeploymentID uuid.UUID                      `json:"deployment_id" validate:"required"`
	Name         string                         `json:"name" validate:"required,min=1,max=255"`
	Tag          string                         `json:"tag" validate:"required,min=1,max=255"`
	Status       models.DeploymentVersionStatus `json:"status,omitempty"`
	Message      string                         `json:"message" validate:"max=255"`
	Config       json.RawMessage                `json:"config" swaggertype:"object"`
	Metadata     json.RawMessage                `json:"metadata" swaggertype:"object"`
}

// SetVersionStatusRequest represents a version status transition
type SetVersionStatusRequest struct {
	Status  models.DeploymentVersionStatus `json:"status" validate:"required"`
	Message string                         `json:"message" validate:"max=255"`
}

// VersionResponse represents the response for version operations
type VersionResponse struct {
	ID           uuid.UUID                      `json:"id"`
	DeploymentID uuid.UUID                      `json:"deployment_id"`
	Name         string                         `json:"name"`
	Tag          string                         `json:"tag"`
	Status       models.DeploymentVersionStatus `json:"status"`
	Message      string                         `json:"message,omitempty"`
	Config       json.RawMessage                `json:"config,omitempty" swaggertype:"object"`
	Metadata     json.RawMessage                `json:"metadata,omitempty" swaggertype:"object"`
	CreatedAt    string                         `json:"created_at"`
	UpdatedAt    string                         `json:"updated_at"`
}

// VersionListResponse represents a paginated list of versions
type VersionListResponse struct {
	Versions []VersionResponse `json:"versions"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Upsert ingests a version. Re-reporting the same (deployment, tag) updates
// the row; a version arriving already ready goes straight through the
// trigger fan-out.
func (s *VersionService) Upsert(req *UpsertVersionRequest, actorID string) (*VersionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := req.Status
	if status == "" {
		status = models.VersionStatusBuilding
	}
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	if _, err := s.deploymentRepo.GetByID(req.DeploymentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDeploymentNotFound
		}
		return nil, fmt.Errorf("failed to verify deployment: %w", err)
	}

	version := &models.DeploymentVersion{
		DeploymentID: req.DeploymentID,
		Name:         req.Name,
		Tag:          req.Tag,
		Status:       status,
		Message:      req.Message,
		Config:       req.Config,
		Metadata:     req.Metadata,
	}
	if err := s.repo.Upsert(version); err != nil {
		return nil, fmt.Errorf("failed to upsert version: %w", err)
	}

	if version.Status == models.VersionStatusReady {
		if err := s.fanOut(version, actorID); err != nil {
			return nil, err
		}
	}

	return s.toResponse(version), nil
}

// SetStatus transitions a version. Only building versions may move; ready and
// failed are terminal. Reaching ready fans out triggers.
func (s *VersionService) SetStatus(id uuid.UUID, req *SetVersionStatusRequest, actorID string) (*VersionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	version, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVersionNotFound
		}
		return nil, fmt.Errorf("failed to get version: %w", err)
	}

	if version.Status == req.Status {
		return s.toResponse(version), nil
	}
	if version.Status != models.VersionStatusBuilding {
		return nil, apperrors.ErrInvalidStatus
	}

	if err := s.repo.SetStatus(id, req.Status, req.Message); err != nil {
		return nil, fmt.Errorf("failed to set version status: %w", err)
	}
	version.Status = req.Status
	version.Message = req.Message

	if version.Status == models.VersionStatusReady {
		if err := s.fanOut(version, actorID); err != nil {
			return nil, err
		}
	}

	return s.toResponse(version), nil
}

// fanOut creates triggers for the ready version and pokes the sweep
func (s *VersionService) fanOut(version *models.DeploymentVersion, actorID string) error {
	if _, err := s.triggers.CreateForReadyVersion(version, actorID); err != nil {
		return fmt.Errorf("failed to create triggers: %w", err)
	}
	if s.sweeper != nil {
		s.sweeper.Poke()
	}
	return nil
}

// GetByID retrieves a version by ID
func (s *VersionService) GetByID(id uuid.UUID) (*VersionResponse, error) {
	version, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVersionNotFound
		}
		return nil, fmt.Errorf("failed to get version: %w", err)
	}
	return s.toResponse(version), nil
}

// GetByDeploymentID retrieves versions of a deployment with pagination
func (s *VersionService) GetByDeploymentID(deploymentID uuid.UUID, page, pageSize int) (*VersionListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	versions, total, err := s.repo.GetByDeploymentID(deploymentID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get versions: %w", err)
	}

	responses := make([]VersionResponse, len(versions))
	for i, v := range versions {
		responses[i] = *s.toResponse(&v)
	}

	return &VersionListResponse{
		Versions: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// toResponse converts a DeploymentVersion model to API response
func (s *VersionService) toResponse(v *models.DeploymentVersion) *VersionResponse {
	return &VersionResponse{
		ID:           v.ID,
		DeploymentID: v.DeploymentID,
		Name:         v.Name,
		Tag:          v.Tag,
		Status:       v.Status,
		Message:      v.Message,
		Config:       v.Config,
		Metadata:     v.Metadata,
		CreatedAt:    v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    v.UpdatedAt.Format(time.RFC3339),
	}
}
