package repository

import (
	"time"

	"release-orchestrator-backend/internal/database/models"
	"release-orchestrator-backend/internal/selector"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PolicyRepositoryInterface defines the interface for policy repository operations
type PolicyRepositoryInterface interface {
	Create(policy *models.Policy) error
	GetByID(id uuid.UUID) (*models.Policy, error)
	GetByName(workspaceID uuid.UUID, name string) (*models.Policy, error)
	GetByWorkspaceID(workspaceID uuid.UUID, limit, offset int) ([]models.Policy, int64, error)
	GetMatched(workspaceID, releaseTargetID uuid.UUID) ([]models.Policy, error)
	Update(policy *models.Policy) error
	Delete(id uuid.UUID) error
	CreateTarget(target *models.PolicyTarget) error
	GetTargetByID(id uuid.UUID) (*models.PolicyTarget, error)
	UpdateTarget(target *models.PolicyTarget) error
	DeleteTarget(id uuid.UUID) error
	ReplaceComputedForTarget(policyTarget *models.PolicyTarget, releaseTargetIDs []uuid.UUID) error
	GetComputedTargetIDs(policyID uuid.UUID) ([]uuid.UUID, error)
	GetTargetsByWorkspaceID(workspaceID uuid.UUID) ([]models.PolicyTarget, error)
}

// ReleaseTargetRepositoryInterface defines the interface for release target repository operations
type ReleaseTargetRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.ReleaseTarget, error)
	GetByDeploymentID(deploymentID uuid.UUID) ([]models.ReleaseTarget, error)
	GetByEnvironmentID(environmentID uuid.UUID) ([]models.ReleaseTarget, error)
	GetByWorkspaceID(workspaceID uuid.UUID) ([]models.ReleaseTarget, error)
	SyncForDeployment(deploymentID uuid.UUID, desired []models.ReleaseTarget) error
	SyncForEnvironment(environmentID uuid.UUID, desired []models.ReleaseTarget) error
	DeleteByResourceID(resourceID uuid.UUID) error
}

// ReleaseJobTriggerRepositoryInterface defines the interface for trigger repository operations
type ReleaseJobTriggerRepositoryInterface interface {
	InsertWithApprovals(triggers []models.ReleaseJobTrigger, approvals []models.Approval) ([]models.ReleaseJobTrigger, error)
	GetByID(id uuid.UUID) (*models.ReleaseJobTrigger, error)
	GetUndispatched() ([]models.ReleaseJobTrigger, error)
	GetStalePending(before time.Time) ([]models.ReleaseJobTrigger, error)
	GetCohort(versionID uuid.UUID) ([]models.ReleaseJobTrigger, error)
	CohortHasFailure(versionID uuid.UUID) (bool, error)
	CountActiveJobs(releaseTargetIDs []uuid.UUID) (int, error)
	GetLiveByTarget(releaseTargetID uuid.UUID) ([]models.ReleaseJobTrigger, error)
	Dispatch(trigger *models.ReleaseJobTrigger, job *models.Job) (*models.Job, error)
	CancelSupersededForTrigger(trigger *models.ReleaseJobTrigger) error
	ClearJob(id uuid.UUID) error
	Delete(id uuid.UUID) error
}

// DeploymentVersionRepositoryInterface defines the interface for version repository operations
type DeploymentVersionRepositoryInterface interface {
	Upsert(version *models.DeploymentVersion) error
	GetByID(id uuid.UUID) (*models.DeploymentVersion, error)
	GetByTag(deploymentID uuid.UUID, tag string) (*models.DeploymentVersion, error)
	GetByDeploymentID(deploymentID uuid.UUID, limit, offset int) ([]models.DeploymentVersion, int64, error)
	SetStatus(id uuid.UUID, status models.DeploymentVersionStatus, message string) error
	GetReadyMatching(deploymentID uuid.UUID, cond *selector.Condition) ([]models.DeploymentVersion, error)
	GetReadyTags(deploymentID uuid.UUID) ([]string, error)
	Delete(id uuid.UUID) error
}

// EnvironmentRepositoryInterface defines the interface for environment repository operations
type EnvironmentRepositoryInterface interface {
	Create(environment *models.Environment) error
	GetByID(id uuid.UUID) (*models.Environment, error)
	GetBySystemID(systemID uuid.UUID, limit, offset int) ([]models.Environment, int64, error)
	GetByWorkspaceID(workspaceID uuid.UUID) ([]models.Environment, error)
	GetMatching(workspaceID uuid.UUID, cond *selector.Condition) ([]models.Environment, error)
	Update(environment *models.Environment) error
	Delete(id uuid.UUID) error
	CreateChannelBinding(binding *models.EnvironmentVersionChannel) error
	GetChannelBinding(environmentID, deploymentID uuid.UUID) (*models.EnvironmentVersionChannel, error)
	DeleteChannelBinding(id uuid.UUID) error
	CountBindingsForChannel(channelID uuid.UUID) (int64, error)
}

// ApprovalRepositoryInterface defines the interface for approval repository operations
type ApprovalRepositoryInterface interface {
	CreatePending(approvals []models.Approval) error
	GetByID(id uuid.UUID) (*models.Approval, error)
	GetByPolicyAndVersion(policyID, versionID uuid.UUID) ([]models.Approval, error)
	GetByVersionID(versionID uuid.UUID) ([]models.Approval, error)
	GetPendingByApprover(approverID string, limit, offset int) ([]models.Approval, int64, error)
	Decide(id uuid.UUID, status models.ApprovalStatus, reason string) error
}

// MetricRepositoryInterface defines the interface for metric repository operations
type MetricRepositoryInterface interface {
	Create(observation *models.MetricObservation) error
	CountWindow(deploymentID, environmentID uuid.UUID, metricName string, since time.Time) (total int, passed int, err error)
}

// JobRepositoryInterface defines the interface for job repository operations
type JobRepositoryInterface interface {
	Create(job *models.Job) error
	GetByID(id uuid.UUID) (*models.Job, error)
	GetByStatus(status models.JobStatus, limit, offset int) ([]models.Job, int64, error)
	Update(job *models.Job) error
	GetTriggerForJob(jobID uuid.UUID) (*models.ReleaseJobTrigger, error)
}
