package service

import (
	"release-orchestrator-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// WorkspaceServiceInterface defines the interface for workspace service
type WorkspaceServiceInterface interface {
	Create(req *CreateWorkspaceRequest) (*WorkspaceResponse, error)
	GetByID(id uuid.UUID) (*WorkspaceResponse, error)
	GetBySlug(slug string) (*WorkspaceResponse, error)
	GetAll(page, pageSize int) (*WorkspaceListResponse, error)
	Update(id uuid.UUID, req *UpdateWorkspaceRequest) (*WorkspaceResponse, error)
	Delete(id uuid.UUID) error
}

// SystemServiceInterface defines the interface for system service
type SystemServiceInterface interface {
	Create(req *CreateSystemRequest) (*SystemResponse, error)
	GetByID(id uuid.UUID) (*SystemResponse, error)
	GetByWorkspaceID(workspaceID uuid.UUID, page, pageSize int) (*SystemListResponse, error)
	Update(id uuid.UUID, req *UpdateSystemRequest) (*SystemResponse, error)
	Delete(id uuid.UUID) error
}

// DeploymentServiceInterface defines the interface for deployment service
type DeploymentServiceInterface interface {
	Create(req *CreateDeploymentRequest) (*DeploymentResponse, error)
	GetByID(id uuid.UUID) (*DeploymentResponse, error)
	GetBySystemID(systemID uuid.UUID, page, pageSize int) (*DeploymentListResponse, error)
	Update(id uuid.UUID, req *UpdateDeploymentRequest) (*DeploymentResponse, error)
	Delete(id uuid.UUID) error
}

// EnvironmentServiceInterface defines the interface for environment service
type EnvironmentServiceInterface interface {
	Create(req *CreateEnvironmentRequest) (*EnvironmentResponse, error)
	GetByID(id uuid.UUID) (*EnvironmentResponse, error)
	GetBySystemID(systemID uuid.UUID, page, pageSize int) (*EnvironmentListResponse, error)
	Update(id uuid.UUID, req *UpdateEnvironmentRequest) (*EnvironmentResponse, error)
	Delete(id uuid.UUID) error
	BindChannel(environmentID uuid.UUID, req *BindChannelRequest) (*ChannelBindingResponse, error)
	UnbindChannel(environmentID, deploymentID uuid.UUID) error
}

// ResourceServiceInterface defines the interface for resource service
type ResourceServiceInterface interface {
	Upsert(req *UpsertResourceRequest) (*ResourceResponse, error)
	GetByID(id uuid.UUID) (*ResourceResponse, error)
	GetByWorkspaceID(workspaceID uuid.UUID, page, pageSize int) (*ResourceListResponse, error)
	Delete(id uuid.UUID) error
}

// VersionServiceInterface defines the interface for version service
type VersionServiceInterface interface {
	Upsert(req *UpsertVersionRequest, actorID string) (*VersionResponse, error)
	SetStatus(id uuid.UUID, req *SetVersionStatusRequest, actorID string) (*VersionResponse, error)
	GetByID(id uuid.UUID) (*VersionResponse, error)
	GetByDeploymentID(deploymentID uuid.UUID, page, pageSize int) (*VersionListResponse, error)
}

// ChannelServiceInterface defines the interface for version channel service
type ChannelServiceInterface interface {
	Create(req *CreateChannelRequest) (*ChannelResponse, error)
	GetByID(id uuid.UUID) (*ChannelResponse, error)
	GetByDeploymentID(deploymentID uuid.UUID) ([]ChannelResponse, error)
	Update(id uuid.UUID, req *UpdateChannelRequest) (*ChannelResponse, error)
	Delete(id uuid.UUID) error
}

// PolicyServiceInterface defines the interface for policy service
type PolicyServiceInterface interface {
	Create(req *CreatePolicyRequest) (*models.Policy, error)
	GetByID(id uuid.UUID) (*models.Policy, error)
	GetByWorkspaceID(workspaceID uuid.UUID, page, pageSize int) ([]models.Policy, int64, error)
	Update(id uuid.UUID, req *UpdatePolicyRequest) (*models.Policy, error)
	Delete(id uuid.UUID) error
	AddTarget(policyID uuid.UUID, req *PolicyTargetRequest) (*models.PolicyTarget, error)
	UpdateTarget(targetID uuid.UUID, req *PolicyTargetRequest) (*models.PolicyTarget, error)
	DeleteTarget(targetID uuid.UUID) error
}

// ApprovalServiceInterface defines the interface for approval service
type ApprovalServiceInterface interface {
	Assign(req *AssignApproversRequest) error
	Decide(req *DecideApprovalRequest, actorID, actorRole string) (*ApprovalResponse, error)
	GetPendingForApprover(approverID string, page, pageSize int) (*ApprovalListResponse, error)
	GetByVersionID(versionID uuid.UUID) ([]ApprovalResponse, error)
}

// TriggerServiceInterface defines the handler-facing trigger operations
type TriggerServiceInterface interface {
	Redeploy(releaseTargetID, versionID uuid.UUID, actorID string) (*models.ReleaseJobTrigger, error)
	GetByID(id uuid.UUID) (*models.ReleaseJobTrigger, error)
}

// DispatchServiceInterface defines the handler-facing dispatch operations
type DispatchServiceInterface interface {
	Explain(triggerID uuid.UUID) ([]RuleDecision, bool, error)
	SweepOnce() (int, error)
}

// JobServiceInterface defines the interface for job service
type JobServiceInterface interface {
	GetByID(id uuid.UUID) (*JobResponse, error)
	GetByStatus(status models.JobStatus, page, pageSize int) (*JobListResponse, error)
	UpdateStatus(id uuid.UUID, req *UpdateJobStatusRequest) (*JobResponse, error)
	GetTrigger(jobID uuid.UUID) (*models.ReleaseJobTrigger, error)
}

// MetricServiceInterface defines the interface for metric service
type MetricServiceInterface interface {
	Ingest(req *IngestMetricRequest) error
	Window(deploymentID, environmentID uuid.UUID, metricName string, windowSeconds int) (*MetricWindowResponse, error)
}

// compile-time interface checks
var (
	_ WorkspaceServiceInterface   = (*WorkspaceService)(nil)
	_ SystemServiceInterface      = (*SystemService)(nil)
	_ DeploymentServiceInterface  = (*DeploymentService)(nil)
	_ EnvironmentServiceInterface = (*EnvironmentService)(nil)
	_ ResourceServiceInterface    = (*ResourceService)(nil)
	_ VersionServiceInterface     = (*VersionService)(nil)
	_ ChannelServiceInterface     = (*ChannelService)(nil)
	_ PolicyServiceInterface      = (*PolicyService)(nil)
	_ ApprovalServiceInterface    = (*ApprovalService)(nil)
	_ TriggerServiceInterface     = (*TriggerService)(nil)
	_ DispatchServiceInterface    = (*DispatchService)(nil)
	_ JobServiceInterface         = (*JobService)(nil)
	_ MetricServiceInterface      = (*MetricService)(nil)
)
