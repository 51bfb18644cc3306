package service

import (
	"fmt"

	"release-orchestrator-backend/internal/database/models"
	"release-orchestrator-backend/internal/repository"
	"release-orchestrator-backend/internal/selector"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PolicyMatcherService maintains the materialized matches between policy
// targets and release targets. Matches are recomputed whenever either side
// changes, so policy lookups on the dispatch path never evaluate selectors.
type PolicyMatcherService struct {
	policyRepo repository.PolicyRepositoryInterface
	targetRepo repository.ReleaseTargetRepositoryInterface
}

// NewPolicyMatcherService creates a new policy matcher service
func NewPolicyMatcherService(policyRepo repository.PolicyRepositoryInterface, targetRepo repository.ReleaseTargetRepositoryInterface) *PolicyMatcherService {
	return &PolicyMatcherService{policyRepo: policyRepo, targetRepo: targetRepo}
}

// MatchedPolicies returns the policies applying to a release target in
// priority order: lower priority number first, id as the tiebreaker. Global
// policies, those with no target selectors, always apply.
func (s *PolicyMatcherService) MatchedPolicies(workspaceID, releaseTargetID uuid.UUID) ([]models.Policy, error) {
	policies, err := s.policyRepo.GetMatched(workspaceID, releaseTargetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get matched policies: %w", err)
	}
	return policies, nil
}

// RecomputeForTarget rebuilds the materialized matches of one policy target
// against the workspace's current release targets
func (s *PolicyMatcherService) RecomputeForTarget(workspaceID uuid.UUID, policyTarget *models.PolicyTarget) error {
	releaseTargets, err := s.targetRepo.GetByWorkspaceID(workspaceID)
	if err != nil {
		return fmt.Errorf("failed to load release targets: %w", err)
	}

	matched, err := matchReleaseTargets(policyTarget, releaseTargets)
	if err != nil {
		return err
	}

	if err := s.policyRepo.ReplaceComputedForTarget(policyTarget, matched); err != nil {
		return fmt.Errorf("failed to replace computed matches: %w", err)
	}
	return nil
}

// RecomputeForWorkspace rebuilds the materialized matches of every policy
// target in the workspace, the path taken after release targets change
func (s *PolicyMatcherService) RecomputeForWorkspace(workspaceID uuid.UUID) error {
	policyTargets, err := s.policyRepo.GetTargetsByWorkspaceID(workspaceID)
	if err != nil {
		return fmt.Errorf("failed to load policy targets: %w", err)
	}
	if len(policyTargets) == 0 {
		return nil
	}

	releaseTargets, err := s.targetRepo.GetByWorkspaceID(workspaceID)
	if err != nil {
		return fmt.Errorf("failed to load release targets: %w", err)
	}

	for i := range policyTargets {
		pt := &policyTargets[i]
		matched, err := matchReleaseTargets(pt, releaseTargets)
		if err != nil {
			logrus.WithField("policy_target_id", pt.ID).WithError(err).Warn("skipping policy target with invalid selector")
			continue
		}
		if err := s.policyRepo.ReplaceComputedForTarget(pt, matched); err != nil {
			return fmt.Errorf("failed to replace computed matches: %w", err)
		}
	}
	return nil
}

// matchReleaseTargets evaluates a policy target's two selector axes against
// release targets. A nil selector matches everything on its axis; the axes
// combine with AND.
func matchReleaseTargets(policyTarget *models.PolicyTarget, releaseTargets []models.ReleaseTarget) ([]uuid.UUID, error) {
	depCond, err := selector.Parse(policyTarget.DeploymentSelector)
	if err != nil {
		return nil, fmt.Errorf("invalid deployment selector: %w", err)
	}
	envCond, err := selector.Parse(policyTarget.EnvironmentSelector)
	if err != nil {
		return nil, fmt.Errorf("invalid environment selector: %w", err)
	}

	matched := make([]uuid.UUID, 0)
	for i := range releaseTargets {
		rt := &releaseTargets[i]
		if !selector.Matches(depCond, selector.FromDeployment(&rt.Deployment)) {
			continue
		}
		if !selector.Matches(envCond, selector.FromEnvironment(&rt.Environment)) {
			continue
		}
		matched = append(matched, rt.ID)
	}
	return matched, nil
}
