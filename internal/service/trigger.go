package service

import (
	"errors"
	"fmt"
	"time"

	"release-orchestrator-backend/internal/database/models"
	apperrors "release-orchestrator-backend/internal/errors"
	"release-orchestrator-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TriggerService creates release job triggers, the pending intents linking a
// release target to a candidate version. Creation is idempotent per
// (release target, version); dispatch is a separate, policy-gated step.
type TriggerService struct {
	triggerRepo repository.ReleaseJobTriggerRepositoryInterface
	targetRepo  repository.ReleaseTargetRepositoryInterface
	versionRepo repository.DeploymentVersionRepositoryInterface
	resolver    *ChannelResolverService
}

// NewTriggerService creates a new trigger service
func NewTriggerService(
	triggerRepo repository.ReleaseJobTriggerRepositoryInterface,
	targetRepo repository.ReleaseTargetRepositoryInterface,
	versionRepo repository.DeploymentVersionRepositoryInterface,
	resolver *ChannelResolverService,
) *TriggerService {
	return &TriggerService{
		triggerRepo: triggerRepo,
		targetRepo:  targetRepo,
		versionRepo: versionRepo,
		resolver:    resolver,
	}
}

// TriggerFilter narrows the (target, version) pairs a builder will insert
type TriggerFilter func(target *models.ReleaseTarget, version *models.DeploymentVersion) bool

// TriggerBuilder accumulates the inputs of one trigger creation pass. Build
// order does not matter; Insert validates and runs the pipeline.
type TriggerBuilder struct {
	svc      *TriggerService
	cause    models.TriggerCause
	causedBy string
	versions []models.DeploymentVersion
	targets  []models.ReleaseTarget
	filters  []TriggerFilter
}

// NewReleaseJobTriggers starts a trigger creation pass for the given cause
func (s *TriggerService) NewReleaseJobTriggers(cause models.TriggerCause) *TriggerBuilder {
	return &TriggerBuilder{svc: s, cause: cause, causedBy: "system"}
}

// CausedBy records the actor responsible for this pass
func (b *TriggerBuilder) CausedBy(actorID string) *TriggerBuilder {
	if actorID != "" {
		b.causedBy = actorID
	}
	return b
}

// Versions sets the candidate versions
func (b *TriggerBuilder) Versions(versions ...models.DeploymentVersion) *TriggerBuilder {
	b.versions = append(b.versions, versions...)
	return b
}

// Targets sets the release targets to consider. When never called, Insert
// uses every target of each version's deployment.
func (b *TriggerBuilder) Targets(targets ...models.ReleaseTarget) *TriggerBuilder {
	b.targets = append(b.targets, targets...)
	return b
}

// Filter adds a predicate applied to every (target, version) pair
func (b *TriggerBuilder) Filter(f TriggerFilter) *TriggerBuilder {
	b.filters = append(b.filters, f)
	return b
}

// Insert creates the trigger rows. Pairs whose version is not eligible for the
// target's environment are skipped; pairs that already have a trigger are
// kept as-is. Returns the surviving rows, pre-existing ones included.
func (b *TriggerBuilder) Insert() ([]models.ReleaseJobTrigger, error) {
	if !b.cause.IsValid() {
		return nil, apperrors.ErrInvalidCause
	}

	var rows []models.ReleaseJobTrigger
	for i := range b.versions {
		version := &b.versions[i]
		if version.Status != models.VersionStatusReady {
			return nil, apperrors.ErrVersionNotReady
		}

		targets := b.targets
		if targets == nil {
			var err error
			targets, err = b.svc.targetRepo.GetByDeploymentID(version.DeploymentID)
			if err != nil {
				return nil, fmt.Errorf("failed to load release targets: %w", err)
			}
		}

		for j := range targets {
			target := &targets[j]
			if target.DeploymentID != version.DeploymentID {
				continue
			}
			eligible, err := b.svc.resolver.IsVersionEligible(target.EnvironmentID, version)
			if err != nil {
				return nil, err
			}
			if !eligible {
				continue
			}
			if !b.passesFilters(target, version) {
				continue
			}
			rows = append(rows, models.ReleaseJobTrigger{
				ReleaseTargetID: target.ID,
				VersionID:       version.ID,
				Cause:           b.cause,
				CausedByID:      b.causedBy,
			})
		}
	}

	created, err := b.svc.triggerRepo.InsertWithApprovals(rows, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to insert triggers: %w", err)
	}
	return created, nil
}

func (b *TriggerBuilder) passesFilters(target *models.ReleaseTarget, version *models.DeploymentVersion) bool {
	for _, f := range b.filters {
		if !f(target, version) {
			return false
		}
	}
	return true
}

// CreateForReadyVersion creates triggers across the version's release targets,
// the path taken when a version transitions to ready
func (s *TriggerService) CreateForReadyVersion(version *models.DeploymentVersion, actorID string) ([]models.ReleaseJobTrigger, error) {
	return s.NewReleaseJobTriggers(models.TriggerCauseNewVersion).
		CausedBy(actorID).
		Versions(*version).
		Insert()
}

// Redeploy re-queues a (release target, version) pair for dispatch. When the
// pair's trigger already ran to a terminal job, the job is detached so the
// sweep dispatches it again; a live job is left alone and reported as a
// conflict.
func (s *TriggerService) Redeploy(releaseTargetID, versionID uuid.UUID, actorID string) (*models.ReleaseJobTrigger, error) {
	target, err := s.targetRepo.GetByID(releaseTargetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReleaseTargetNotFound
		}
		return nil, fmt.Errorf("failed to get release target: %w", err)
	}

	version, err := s.versionRepo.GetByID(versionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVersionNotFound
		}
		return nil, fmt.Errorf("failed to get version: %w", err)
	}

	created, err := s.NewReleaseJobTriggers(models.TriggerCauseRedeploy).
		CausedBy(actorID).
		Versions(*version).
		Targets(*target).
		Insert()
	if err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, apperrors.ErrVersionNotReady
	}

	trigger := &created[0]
	if trigger.Dispatched() {
		if err := s.triggerRepo.ClearJob(trigger.ID); err != nil {
			if errors.Is(err, gorm.ErrInvalidData) {
				return nil, apperrors.ErrTriggerAlreadyDispatched
			}
			return nil, fmt.Errorf("failed to reset trigger: %w", err)
		}
		trigger.JobID = nil
	}
	return trigger, nil
}

// GetByID retrieves a trigger with its associations
func (s *TriggerService) GetByID(id uuid.UUID) (*models.ReleaseJobTrigger, error) {
	trigger, err := s.triggerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTriggerNotFound
		}
		return nil, fmt.Errorf("failed to get trigger: %w", err)
	}
	return trigger, nil
}

// TriggerResponse represents a trigger in API responses
type TriggerResponse struct {
	ID              uuid.UUID           `json:"id"`
	ReleaseTargetID uuid.UUID           `json:"release_target_id"`
	VersionID       uuid.UUID           `json:"version_id"`
	JobID           *uuid.UUID          `json:"job_id,omitempty"`
	Cause           models.TriggerCause `json:"cause"`
	CausedByID      string              `json:"caused_by_id"`
	CreatedAt       string              `json:"created_at"`
}

// ToTriggerResponse converts a trigger model to API response
func ToTriggerResponse(t *models.ReleaseJobTrigger) TriggerResponse {
	return TriggerResponse{
		ID:              t.ID,
		ReleaseTargetID: t.ReleaseTargetID,
		VersionID:       t.VersionID,
		JobID:           t.JobID,
		Cause:           t.Cause,
		CausedByID:      t.CausedByID,
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
	}
}
