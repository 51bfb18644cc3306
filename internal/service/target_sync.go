package service

import (
	"fmt"

	"release-orchestrator-backend/internal/database/models"
	apperrors "release-orchestrator-backend/internal/errors"
	"release-orchestrator-backend/internal/repository"
	"release-orchestrator-backend/internal/selector"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TargetSyncService materializes release targets, the (deployment,
// environment, resource) triples, from the deployment and environment
// resource selectors. Targets are recomputed whenever a selector or the
// resource inventory changes, never mutated in place.
type TargetSyncService struct {
	deploymentRepo  *repository.DeploymentRepository
	environmentRepo repository.EnvironmentRepositoryInterface
	resourceRepo    *repository.ResourceRepository
	systemRepo      *repository.SystemRepository
	targetRepo      repository.ReleaseTargetRepositoryInterface
	matcher         *PolicyMatcherService
}

// NewTargetSyncService creates a new target sync service
func NewTargetSyncService(
	deploymentRepo *repository.DeploymentRepository,
	environmentRepo repository.EnvironmentRepositoryInterface,
	resourceRepo *repository.ResourceRepository,
	systemRepo *repository.SystemRepository,
	targetRepo repository.ReleaseTargetRepositoryInterface,
	matcher *PolicyMatcherService,
) *TargetSyncService {
	return &TargetSyncService{
		deploymentRepo:  deploymentRepo,
		environmentRepo: environmentRepo,
		resourceRepo:    resourceRepo,
		systemRepo:      systemRepo,
		targetRepo:      targetRepo,
		matcher:         matcher,
	}
}

// RecomputeForDeployment rebuilds the deployment's release targets. A resource
// becomes a target when it satisfies both the deployment's resource selector
// and the environment's, for every environment of the deployment's system.
// A nil selector matches every resource on its axis.
func (s *TargetSyncService) RecomputeForDeployment(deployment *models.Deployment) error {
	system, err := s.systemRepo.GetByID(deployment.SystemID)
	if err != nil {
		return fmt.Errorf("failed to load system: %w", err)
	}

	depCond, err := selector.Parse(deployment.ResourceSelector)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidSelector, err)
	}

	resources, err := s.resourceRepo.GetMatching(system.WorkspaceID, depCond)
	if err != nil {
		return fmt.Errorf("failed to match resources: %w", err)
	}

	environments, err := s.environmentRepo.GetByWorkspaceID(system.WorkspaceID)
	if err != nil {
		return fmt.Errorf("failed to load environments: %w", err)
	}

	desired := make([]models.ReleaseTarget, 0)
	for i := range environments {
		env := &environments[i]
		if env.SystemID != deployment.SystemID {
			continue
		}
		envCond, err := selector.Parse(env.ResourceSelector)
		if err != nil {
			logrus.WithField("environment_id", env.ID).WithError(err).Warn("skipping environment with invalid resource selector")
			continue
		}
		for j := range resources {
			if !selector.Matches(envCond, selector.FromResource(&resources[j])) {
				continue
			}
			desired = append(desired, models.ReleaseTarget{
				DeploymentID:  deployment.ID,
				EnvironmentID: env.ID,
				ResourceID:    resources[j].ID,
			})
		}
	}

	if err := s.targetRepo.SyncForDeployment(deployment.ID, desired); err != nil {
		return fmt.Errorf("failed to sync release targets: %w", err)
	}

	return s.matcher.RecomputeForWorkspace(system.WorkspaceID)
}

// RecomputeForEnvironment rebuilds the environment's release targets across
// every deployment of its system
func (s *TargetSyncService) RecomputeForEnvironment(environment *models.Environment) error {
	system, err := s.systemRepo.GetByID(environment.SystemID)
	if err != nil {
		return fmt.Errorf("failed to load system: %w", err)
	}

	envCond, err := selector.Parse(environment.ResourceSelector)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidSelector, err)
	}

	resources, err := s.resourceRepo.GetMatching(system.WorkspaceID, envCond)
	if err != nil {
		return fmt.Errorf("failed to match resources: %w", err)
	}

	deployments, _, err := s.deploymentRepo.GetBySystemID(environment.SystemID, 1000, 0)
	if err != nil {
		return fmt.Errorf("failed to load deployments: %w", err)
	}

	desired := make([]models.ReleaseTarget, 0)
	for i := range deployments {
		dep := &deployments[i]
		depCond, err := selector.Parse(dep.ResourceSelector)
		if err != nil {
			logrus.WithField("deployment_id", dep.ID).WithError(err).Warn("skipping deployment with invalid resource selector")
			continue
		}
		for j := range resources {
			if !selector.Matches(depCond, selector.FromResource(&resources[j])) {
				continue
			}
			desired = append(desired, models.ReleaseTarget{
				DeploymentID:  dep.ID,
				EnvironmentID: environment.ID,
				ResourceID:    resources[j].ID,
			})
		}
	}

	if err := s.targetRepo.SyncForEnvironment(environment.ID, desired); err != nil {
		return fmt.Errorf("failed to sync release targets: %w", err)
	}

	return s.matcher.RecomputeForWorkspace(system.WorkspaceID)
}

// RecomputeForWorkspace rebuilds release targets for every deployment in the
// workspace, the path taken when the resource inventory changes
func (s *TargetSyncService) RecomputeForWorkspace(workspaceID uuid.UUID) error {
	deployments, err := s.deploymentRepo.GetByWorkspaceID(workspaceID)
	if err != nil {
		return fmt.Errorf("failed to load deployments: %w", err)
	}
	for i := range deployments {
		if err := s.recomputeDeploymentTargets(&deployments[i], workspaceID); err != nil {
			return err
		}
	}
	return s.matcher.RecomputeForWorkspace(workspaceID)
}

// recomputeDeploymentTargets is RecomputeForDeployment without the trailing
// policy match recompute, so workspace-wide recomputes run it once
func (s *TargetSyncService) recomputeDeploymentTargets(deployment *models.Deployment, workspaceID uuid.UUID) error {
	depCond, err := selector.Parse(deployment.ResourceSelector)
	if err != nil {
		logrus.WithField("deployment_id", deployment.ID).WithError(err).Warn("skipping deployment with invalid resource selector")
		return nil
	}

	resources, err := s.resourceRepo.GetMatching(workspaceID, depCond)
	if err != nil {
		return fmt.Errorf("failed to match resources: %w", err)
	}

	environments, err := s.environmentRepo.GetByWorkspaceID(workspaceID)
	if err != nil {
		return fmt.Errorf("failed to load environments: %w", err)
	}

	desired := make([]models.ReleaseTarget, 0)
	for i := range environments {
		env := &environments[i]
		if env.SystemID != deployment.SystemID {
			continue
		}
		envCond, err := selector.Parse(env.ResourceSelector)
		if err != nil {
			continue
		}
		for j := range resources {
			if !selector.Matches(envCond, selector.FromResource(&resources[j])) {
				continue
			}
			desired = append(desired, models.ReleaseTarget{
				DeploymentID:  deployment.ID,
				EnvironmentID: env.ID,
				ResourceID:    resources[j].ID,
			})
		}
	}

	return s.targetRepo.SyncForDeployment(deployment.ID, desired)
}
