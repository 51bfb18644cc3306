package testutils

import (
	"encoding/json"
	"time"

	"release-orchestrator-backend/internal/database/models"

	"github.com/google/uuid"
)

// WorkspaceFactory provides methods to create test Workspace data
type WorkspaceFactory struct{}

// NewWorkspaceFactory creates a new WorkspaceFactory
func NewWorkspaceFactory() *WorkspaceFactory {
	return &WorkspaceFactory{}
}

// Create creates a test Workspace with default values
func (f *WorkspaceFactory) Create() *models.Workspace {
	id := uuid.New()
	// Unique name and slug per instance to avoid unique index collisions
	suffix := id.String()[:8]
	return &models.Workspace{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Test Workspace " + suffix,
		Slug: "test-workspace-" + suffix,
	}
}

// WithSlug sets a custom slug for the workspace
func (f *WorkspaceFactory) WithSlug(slug string) *models.Workspace {
	ws := f.Create()
	ws.Name = slug
	ws.Slug = slug
	return ws
}

// SystemFactory provides methods to create test System data
type SystemFactory struct{}

// NewSystemFactory creates a new SystemFactory
func NewSystemFactory() *SystemFactory {
	return &SystemFactory{}
}

// Create creates a test System with default values
func (f *SystemFactory) Create() *models.System {
	id := uuid.New()
	suffix := id.String()[:8]
	return &models.System{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		WorkspaceID: uuid.New(),
		Name:        "Test System " + suffix,
		Slug:        "test-system-" + suffix,
		Description: "A test system",
	}
}

// WithWorkspace sets the workspace ID for the system
func (f *SystemFactory) WithWorkspace(workspaceID uuid.UUID) *models.System {
	sys := f.Create()
	sys.WorkspaceID = workspaceID
	return sys
}

// WithSlug sets a custom slug for the system
func (f *SystemFactory) WithSlug(slug string) *models.System {
	sys := f.Create()
	sys.Name = slug
	sys.Slug = slug
	return sys
}

// DeploymentFactory provides methods to create test Deployment data
type DeploymentFactory struct{}

// NewDeploymentFactory creates a new DeploymentFactory
func NewDeploymentFactory() *DeploymentFactory {
	return &DeploymentFactory{}
}

// Create creates a test Deployment with default values
func (f *DeploymentFactory) Create() *models.Deployment {
	id := uuid.New()
	suffix := id.String()[:8]
	return &models.Deployment{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SystemID:         uuid.New(),
		Name:             "Test Deployment " + suffix,
		Slug:             "test-deployment-" + suffix,
		Description:      "A test deployment",
		ResourceSelector: nil,
		Metadata:         nil,
		JobAgentConfig:   json.RawMessage(`{"type":"test-agent"}`),
	}
}

// WithSystem sets the system ID for the deployment
func (f *DeploymentFactory) WithSystem(systemID uuid.UUID) *models.Deployment {
	dep := f.Create()
	dep.SystemID = systemID
	return dep
}

// WithResourceSelector sets the resource selector JSON for the deployment
func (f *DeploymentFactory) WithResourceSelector(selector json.RawMessage) *models.Deployment {
	dep := f.Create()
	dep.ResourceSelector = selector
	return dep
}

// EnvironmentFactory provides methods to create test Environment data
type EnvironmentFactory struct{}

// NewEnvironmentFactory creates a new EnvironmentFactory
func NewEnvironmentFactory() *EnvironmentFactory {
	return &EnvironmentFactory{}
}

// Create creates a test Environment with default values
func (f *EnvironmentFactory) Create() *models.Environment {
	id := uuid.New()
	suffix := id.String()[:8]
	return &models.Environment{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SystemID:         uuid.New(),
		Name:             "test-env-" + suffix,
		Description:      "A test environment",
		ResourceSelector: nil,
		Metadata:         nil,
	}
}

// WithSystem sets the system ID for the environment
func (f *EnvironmentFactory) WithSystem(systemID uuid.UUID) *models.Environment {
	env := f.Create()
	env.SystemID = systemID
	return env
}

// WithResourceSelector sets the resource selector JSON for the environment
func (f *EnvironmentFactory) WithResourceSelector(selector json.RawMessage) *models.Environment {
	env := f.Create()
	env.ResourceSelector = selector
	return env
}

// ResourceFactory provides methods to create test Resource data
type ResourceFactory struct{}

// NewResourceFactory creates a new ResourceFactory
func NewResourceFactory() *ResourceFactory {
	return &ResourceFactory{}
}

// Create creates a test Resource with default values
func (f *ResourceFactory) Create() *models.Resource {
	id := uuid.New()
	suffix := id.String()[:8]
	return &models.Resource{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		WorkspaceID: uuid.New(),
		Identifier:  "test-resource-" + suffix,
		Name:        "Test Resource " + suffix,
		Kind:        "cluster",
		Version:     "v1",
		Metadata:    json.RawMessage(`{"region":"us-east-1"}`),
	}
}

// WithWorkspace sets the workspace ID for the resource
func (f *ResourceFactory) WithWorkspace(workspaceID uuid.UUID) *models.Resource {
	res := f.Create()
	res.WorkspaceID = workspaceID
	return res
}

// WithMetadata sets the metadata JSON for the resource
func (f *ResourceFactory) WithMetadata(metadata json.RawMessage) *models.Resource {
	res := f.Create()
	res.Metadata = metadata
	return res
}

// WithKind sets a custom kind for the resource
func (f *ResourceFactory) WithKind(kind string) *models.Resource {
	res := f.Create()
	res.Kind = kind
	return res
}

// VersionFactory provides methods to create test DeploymentVersion data
type VersionFactory struct{}

// NewVersionFactory creates a new VersionFactory
func NewVersionFactory() *VersionFactory {
	return &VersionFactory{}
}

// Create creates a test DeploymentVersion with default values
func (f *VersionFactory) Create() *models.DeploymentVersion {
	id := uuid.New()
	suffix := id.String()[:8]
	return &models.DeploymentVersion{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		DeploymentID: uuid.New(),
		Name:         "1.0.0-" + suffix,
		Tag:          "1.0.0-" + suffix,
		Status:       models.VersionStatusReady,
		Metadata:     nil,
	}
}

// WithDeployment sets the deployment ID for the version
func (f *VersionFactory) WithDeployment(deploymentID uuid.UUID) *models.DeploymentVersion {
	v := f.Create()
	v.DeploymentID = deploymentID
	return v
}

// WithTag sets a custom tag for the version
func (f *VersionFactory) WithTag(tag string) *models.DeploymentVersion {
	v := f.Create()
	v.Name = tag
	v.Tag = tag
	return v
}

// WithStatus sets a custom status for the version
func (f *VersionFactory) WithStatus(status models.DeploymentVersionStatus) *models.DeploymentVersion {
	v := f.Create()
	v.Status = status
	return v
}

// ChannelFactory provides methods to create test DeploymentVersionChannel data
type ChannelFactory struct{}

// NewChannelFactory creates a new ChannelFactory
func NewChannelFactory() *ChannelFactory {
	return &ChannelFactory{}
}

// Create creates a test DeploymentVersionChannel with default values
func (f *ChannelFactory) Create() *models.DeploymentVersionChannel {
	id := uuid.New()
	suffix := id.String()[:8]
	return &models.DeploymentVersionChannel{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		DeploymentID:    uuid.New(),
		Name:            "channel-" + suffix,
		Description:     "A test channel",
		VersionSelector: nil,
	}
}

// WithDeployment sets the deployment ID for the channel
func (f *ChannelFactory) WithDeployment(deploymentID uuid.UUID) *models.DeploymentVersionChannel {
	ch := f.Create()
	ch.DeploymentID = deploymentID
	return ch
}

// WithVersionSelector sets the version selector JSON for the channel
func (f *ChannelFactory) WithVersionSelector(selector json.RawMessage) *models.DeploymentVersionChannel {
	ch := f.Create()
	ch.VersionSelector = selector
	return ch
}

// ReleaseTargetFactory provides methods to create test ReleaseTarget data
type ReleaseTargetFactory struct{}

// NewReleaseTargetFactory creates a new ReleaseTargetFactory
func NewReleaseTargetFactory() *ReleaseTargetFactory {
	return &ReleaseTargetFactory{}
}

// Create creates a test ReleaseTarget with default values
func (f *ReleaseTargetFactory) Create() *models.ReleaseTarget {
	return &models.ReleaseTarget{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		DeploymentID:  uuid.New(),
		EnvironmentID: uuid.New(),
		ResourceID:    uuid.New(),
	}
}

// WithTriple sets the full (deployment, environment, resource) key
func (f *ReleaseTargetFactory) WithTriple(deploymentID, environmentID, resourceID uuid.UUID) *models.ReleaseTarget {
	rt := f.Create()
	rt.DeploymentID = deploymentID
	rt.EnvironmentID = environmentID
	rt.ResourceID = resourceID
	return rt
}

// PolicyFactory provides methods to create test Policy data
type PolicyFactory struct{}

// NewPolicyFactory creates a new PolicyFactory
func NewPolicyFactory() *PolicyFactory {
	return &PolicyFactory{}
}

// Create creates a test Policy with default values
func (f *PolicyFactory) Create() *models.Policy {
	id := uuid.New()
	suffix := id.String()[:8]
	return &models.Policy{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		WorkspaceID: uuid.New(),
		Name:        "test-policy-" + suffix,
		Description: "A test policy",
		Priority:    0,
		Enabled:     true,
	}
}

// WithWorkspace sets the workspace ID for the policy
func (f *PolicyFactory) WithWorkspace(workspaceID uuid.UUID) *models.Policy {
	p := f.Create()
	p.WorkspaceID = workspaceID
	return p
}

// WithPriority sets a custom priority for the policy
func (f *PolicyFactory) WithPriority(priority int) *models.Policy {
	p := f.Create()
	p.Priority = priority
	return p
}

// TriggerFactory provides methods to create test ReleaseJobTrigger data
type TriggerFactory struct{}

// NewTriggerFactory creates a new TriggerFactory
func NewTriggerFactory() *TriggerFactory {
	return &TriggerFactory{}
}

// Create creates a test ReleaseJobTrigger with default values
func (f *TriggerFactory) Create() *models.ReleaseJobTrigger {
	return &models.ReleaseJobTrigger{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ReleaseTargetID: uuid.New(),
		VersionID:       uuid.New(),
		JobID:           nil,
		Cause:           models.TriggerCauseNewVersion,
		CausedByID:      "system",
	}
}

// WithTarget sets the release target ID for the trigger
func (f *TriggerFactory) WithTarget(releaseTargetID uuid.UUID) *models.ReleaseJobTrigger {
	t := f.Create()
	t.ReleaseTargetID = releaseTargetID
	return t
}

// WithVersion sets the version ID for the trigger
func (f *TriggerFactory) WithVersion(versionID uuid.UUID) *models.ReleaseJobTrigger {
	t := f.Create()
	t.VersionID = versionID
	return t
}

// WithCause sets a custom cause for the trigger
func (f *TriggerFactory) WithCause(cause models.TriggerCause) *models.ReleaseJobTrigger {
	t := f.Create()
	t.Cause = cause
	return t
}

// JobFactory provides methods to create test Job data
type JobFactory struct{}

// NewJobFactory creates a new JobFactory
func NewJobFactory() *JobFactory {
	return &JobFactory{}
}

// Create creates a test Job with default values
func (f *JobFactory) Create() *models.Job {
	return &models.Job{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Status: models.JobStatusPending,
	}
}

// WithStatus sets a custom status for the job
func (f *JobFactory) WithStatus(status models.JobStatus) *models.Job {
	j := f.Create()
	j.Status = status
	return j
}

// ApprovalFactory provides methods to create test Approval data
type ApprovalFactory struct{}

// NewApprovalFactory creates a new ApprovalFactory
func NewApprovalFactory() *ApprovalFactory {
	return &ApprovalFactory{}
}

// Create creates a test Approval with default values
func (f *ApprovalFactory) Create() *models.Approval {
	id := uuid.New()
	return &models.Approval{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PolicyID:   uuid.New(),
		VersionID:  uuid.New(),
		ApproverID: "approver-" + id.String()[:8],
		Status:     models.ApprovalStatusPending,
	}
}

// WithPolicyAndVersion sets the policy and version IDs for the approval
func (f *ApprovalFactory) WithPolicyAndVersion(policyID, versionID uuid.UUID) *models.Approval {
	a := f.Create()
	a.PolicyID = policyID
	a.VersionID = versionID
	return a
}

// WithApprover sets a custom approver ID for the approval
func (f *ApprovalFactory) WithApprover(approverID string) *models.Approval {
	a := f.Create()
	a.ApproverID = approverID
	return a
}

// MetricFactory provides methods to create test MetricObservation data
type MetricFactory struct{}

// NewMetricFactory creates a new MetricFactory
func NewMetricFactory() *MetricFactory {
	return &MetricFactory{}
}

// Create creates a test MetricObservation with default values
func (f *MetricFactory) Create() *models.MetricObservation {
	return &models.MetricObservation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		DeploymentID:  uuid.New(),
		EnvironmentID: uuid.New(),
		MetricName:    "smoke-test",
		Passed:        true,
	}
}

// WithScope sets the deployment and environment IDs for the observation
func (f *MetricFactory) WithScope(deploymentID, environmentID uuid.UUID) *models.MetricObservation {
	m := f.Create()
	m.DeploymentID = deploymentID
	m.EnvironmentID = environmentID
	return m
}

// WithOutcome sets whether the observation passed
func (f *MetricFactory) WithOutcome(passed bool) *models.MetricObservation {
	m := f.Create()
	m.Passed = passed
	return m
}

// FactorySet provides access to all factories
type FactorySet struct {
	Workspace     *WorkspaceFactory
	System        *SystemFactory
	Deployment    *DeploymentFactory
	Environment   *EnvironmentFactory
	Resource      *ResourceFactory
	Version       *VersionFactory
	Channel       *ChannelFactory
	ReleaseTarget *ReleaseTargetFactory
	Policy        *PolicyFactory
	Trigger       *TriggerFactory
	Job           *JobFactory
	Approval      *ApprovalFactory
	Metric        *MetricFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Workspace:     NewWorkspaceFactory(),
		System:        NewSystemFactory(),
		Deployment:    NewDeploymentFactory(),
		Environment:   NewEnvironmentFactory(),
		Resource:      NewResourceFactory(),
		Version:       NewVersionFactory(),
		Channel:       NewChannelFactory(),
		ReleaseTarget: NewReleaseTargetFactory(),
		Policy:        NewPolicyFactory(),
		Trigger:       NewTriggerFactory(),
		Job:           NewJobFactory(),
		Approval:      NewApprovalFactory(),
		Metric:        NewMetricFactory(),
	}
}

// CreateReleaseTopology creates a workspace with a system, a deployment, an
// environment and a resource, plus the release target joining them. The caller
// is responsible for persisting the returned models in dependency order.
func (fs *FactorySet) CreateReleaseTopology() (*models.Workspace, *models.System, *models.Deployment, *models.Environment, *models.Resource, *models.ReleaseTarget) {
	ws := fs.Workspace.Create()

	sys := fs.System.WithWorkspace(ws.ID)
	dep := fs.Deployment.WithSystem(sys.ID)
	env := fs.Environment.WithSystem(sys.ID)
	res := fs.Resource.WithWorkspace(ws.ID)

	rt := fs.ReleaseTarget.WithTriple(dep.ID, env.ID, res.ID)

	return ws, sys, dep, env, res, rt
}
