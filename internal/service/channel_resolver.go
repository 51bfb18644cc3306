package service

import (
	"errors"
	"fmt"

	"release-orchestrator-backend/internal/database/models"
	apperrors "release-orchestrator-backend/internal/errors"
	"release-orchestrator-backend/internal/repository"
	"release-orchestrator-backend/internal/selector"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChannelResolverService answers which versions may flow into an environment.
// An environment restricts a deployment's versions by binding one of the
// deployment's version channels; without a binding every ready version is
// eligible.
type ChannelResolverService struct {
	environmentRepo repository.EnvironmentRepositoryInterface
	channelRepo     *repository.VersionChannelRepository
	versionRepo     repository.DeploymentVersionRepositoryInterface
}

// NewChannelResolverService creates a new channel resolver service
func NewChannelResolverService(
	environmentRepo repository.EnvironmentRepositoryInterface,
	channelRepo *repository.VersionChannelRepository,
	versionRepo repository.DeploymentVersionRepositoryInterface,
) *ChannelResolverService {
	return &ChannelResolverService{
		environmentRepo: environmentRepo,
		channelRepo:     channelRepo,
		versionRepo:     versionRepo,
	}
}

// EligibleVersions returns the ready versions of the deployment allowed into
// the environment, newest first
func (s *ChannelResolverService) EligibleVersions(environmentID, deploymentID uuid.UUID) ([]models.DeploymentVersion, error) {
	cond, err := s.boundSelector(environmentID, deploymentID)
	if err != nil {
		return nil, err
	}
	versions, err := s.versionRepo.GetReadyMatching(deploymentID, cond)
	if err != nil {
		return nil, fmt.Errorf("failed to get eligible versions: %w", err)
	}
	return versions, nil
}

// IsVersionEligible reports whether one version may flow into the environment.
// Versions not in ready status are never eligible.
func (s *ChannelResolverService) IsVersionEligible(environmentID uuid.UUID, version *models.DeploymentVersion) (bool, error) {
	if version.Status != models.VersionStatusReady {
		return false, nil
	}
	cond, err := s.boundSelector(environmentID, version.DeploymentID)
	if err != nil {
		return false, err
	}
	return selector.Matches(cond, selector.FromVersion(version)), nil
}

// boundSelector resolves the environment's channel binding for the deployment
// to a version selector condition. No binding means no restriction.
func (s *ChannelResolverService) boundSelector(environmentID, deploymentID uuid.UUID) (*selector.Condition, error) {
	binding, err := s.environmentRepo.GetChannelBinding(environmentID, deploymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get channel binding: %w", err)
	}

	channel, err := s.channelRepo.GetByID(binding.ChannelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChannelNotFound
		}
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	cond, err := selector.Parse(channel.VersionSelector)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidSelector, err)
	}
	return cond, nil
}
