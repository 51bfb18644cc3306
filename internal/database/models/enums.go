package models

// DeploymentVersionStatus defines the lifecycle states of a deployment version
type DeploymentVersionStatus string

const (
	VersionStatusBuilding DeploymentVersionStatus = "building"
	VersionStatusReady    DeploymentVersionStatus = "ready"
	VersionStatusFailed   DeploymentVersionStatus = "failed"
)

// IsValid checks if the DeploymentVersionStatus is valid
func (s DeploymentVersionStatus) IsValid() bool {
	switch s {
	case VersionStatusBuilding, VersionStatusReady, VersionStatusFailed:
		return true
	}
	return false
}

// JobStatus defines the lifecycle states of a job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// IsValid checks if the JobStatus is valid
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusPending, JobStatusInProgress, JobStatusCompleted, JobStatusFailed, JobStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status is a final state
func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusFailed, JobStatusCancelled:
		return true
	}
	return false
}

// ApprovalStatus defines the states of a policy approval
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// IsValid checks if the ApprovalStatus is valid
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	}
	return false
}

// TriggerCause defines what caused a release job trigger to be created
type TriggerCause string

const (
	TriggerCauseNewVersion TriggerCause = "new_version"
	TriggerCauseNewRelease TriggerCause = "new_release"
	TriggerCauseManual     TriggerCause = "manual"
	TriggerCauseRedeploy   TriggerCause = "redeploy"
)

// IsValid checks if the TriggerCause is valid
func (c TriggerCause) IsValid() bool {
	switch c {
	case TriggerCauseNewVersion, TriggerCauseNewRelease, TriggerCauseManual, TriggerCauseRedeploy:
		return true
	}
	return false
}
