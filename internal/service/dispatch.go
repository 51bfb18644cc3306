package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"release-orchestrator-backend/internal/database/models"
	apperrors "release-orchestrator-backend/internal/errors"
	"release-orchestrator-backend/internal/queue"
	"release-orchestrator-backend/internal/repository"
	"release-orchestrator-backend/internal/rules"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RuleDecision is the outcome of one rule for one trigger, kept for
// diagnostics and the evaluation endpoint
type RuleDecision struct {
	PolicyID   uuid.UUID  `json:"policy_id"`
	PolicyName string     `json:"policy_name"`
	Rule       string     `json:"rule"`
	Allow      bool       `json:"allow"`
	Reason     string     `json:"reason,omitempty"`
	RetryAt    *time.Time `json:"retry_at,omitempty"`
	Permanent  bool       `json:"permanent,omitempty"`
}

func decision(policy *models.Policy, rule string, res rules.Result) RuleDecision {
	return RuleDecision{
		PolicyID:   policy.ID,
		PolicyName: policy.Name,
		Rule:       rule,
		Allow:      res.Allow,
		Reason:     res.Reason,
		RetryAt:    res.RetryAt,
		Permanent:  res.Permanent,
	}
}

// DispatchService evaluates every matched policy rule against a trigger and,
// when all of them allow, creates the job and hands it to the queue. The
// same evaluation runs from the periodic sweep and from the evaluation
// endpoint, so a denial is always explainable.
type DispatchService struct {
	triggerRepo    repository.ReleaseJobTriggerRepositoryInterface
	policyRepo     repository.PolicyRepositoryInterface
	matcher        *PolicyMatcherService
	targetRepo     repository.ReleaseTargetRepositoryInterface
	versionRepo    repository.DeploymentVersionRepositoryInterface
	approvalRepo   repository.ApprovalRepositoryInterface
	metricRepo     repository.MetricRepositoryInterface
	deploymentRepo *repository.DeploymentRepository
	enqueuer       queue.Enqueuer
	queueChannel   string
}

// redeliverGrace is how long a job may sit pending before the sweep
// re-enqueues it. Long enough for an agent to pick the message up, short
// enough that a dropped handoff is retried on the next sweep or two.
const redeliverGrace = time.Minute

// NewDispatchService creates a new dispatch service
func NewDispatchService(
	triggerRepo repository.ReleaseJobTriggerRepositoryInterface,
	policyRepo repository.PolicyRepositoryInterface,
	matcher *PolicyMatcherService,
	targetRepo repository.ReleaseTargetRepositoryInterface,
	versionRepo repository.DeploymentVersionRepositoryInterface,
	approvalRepo repository.ApprovalRepositoryInterface,
	metricRepo repository.MetricRepositoryInterface,
	deploymentRepo *repository.DeploymentRepository,
	enqueuer queue.Enqueuer,
	queueChannel string,
) *DispatchService {
	return &DispatchService{
		triggerRepo:    triggerRepo,
		policyRepo:     policyRepo,
		matcher:        matcher,
		targetRepo:     targetRepo,
		versionRepo:    versionRepo,
		approvalRepo:   approvalRepo,
		metricRepo:     metricRepo,
		deploymentRepo: deploymentRepo,
		enqueuer:       enqueuer,
		queueChannel:   queueChannel,
	}
}

// EvaluateTrigger runs every enabled rule of every matched policy. The
// returned decisions cover all rules, passing ones included; allow is true
// only when no rule denied. The trigger must carry its release target (with
// resource) and version preloaded.
func (s *DispatchService) EvaluateTrigger(trigger *models.ReleaseJobTrigger) ([]RuleDecision, bool, error) {
	now := time.Now()
	workspaceID := trigger.ReleaseTarget.Resource.WorkspaceID

	policies, err := s.matcher.MatchedPolicies(workspaceID, trigger.ReleaseTargetID)
	if err != nil {
		return nil, false, err
	}

	decisions := make([]RuleDecision, 0)
	allow := true
	for i := range policies {
		policy := &policies[i]
		ds, err := s.evaluatePolicy(now, policy, trigger, workspaceID)
		if err != nil {
			return nil, false, err
		}
		for _, d := range ds {
			if !d.Allow {
				allow = false
			}
		}
		decisions = append(decisions, ds...)
	}
	return decisions, allow, nil
}

func (s *DispatchService) evaluatePolicy(now time.Time, policy *models.Policy, trigger *models.ReleaseJobTrigger, workspaceID uuid.UUID) ([]RuleDecision, error) {
	var decisions []RuleDecision

	for i := range policy.DenyWindows {
		rule := &policy.DenyWindows[i]
		if !rule.Enabled {
			continue
		}
		days, err := rule.DayList()
		if err != nil {
			return nil, fmt.Errorf("failed to decode deny window days: %w", err)
		}
		res := rules.DenyWindow{
			Name:      rule.Name,
			Timezone:  rule.Timezone,
			Days:      days,
			StartTime: rule.StartTime,
			EndTime:   rule.EndTime,
		}.Evaluate(now)
		decisions = append(decisions, decision(policy, "deny_window", res))
	}

	for i := range policy.Approvals {
		rule := &policy.Approvals[i]
		if !rule.Enabled {
			continue
		}
		approvals, err := s.approvalRepo.GetByPolicyAndVersion(policy.ID, trigger.VersionID)
		if err != nil {
			return nil, fmt.Errorf("failed to load approvals: %w", err)
		}
		// approver qualification is enforced when the verdict is recorded,
		// so every stored verdict counts here
		res := rules.ApprovalGate{
			RequiredApprovals: rule.RequiredApprovals,
			Timeout:           time.Duration(rule.TimeoutSeconds) * time.Second,
		}.Evaluate(now, approvals, trigger.Version.CreatedAt, nil)
		decisions = append(decisions, decision(policy, "approval", res))
	}

	for i := range policy.Concurrency {
		rule := &policy.Concurrency[i]
		if !rule.Enabled {
			continue
		}
		scope, err := s.concurrencyScope(policy, workspaceID)
		if err != nil {
			return nil, err
		}
		active, err := s.triggerRepo.CountActiveJobs(scope)
		if err != nil {
			return nil, fmt.Errorf("failed to count active jobs: %w", err)
		}
		res := rules.ConcurrencyLimit{Limit: rule.Limit}.Evaluate(active)
		decisions = append(decisions, decision(policy, "concurrency", res))
	}

	for i := range policy.Rollouts {
		rule := &policy.Rollouts[i]
		if !rule.Enabled {
			continue
		}
		stages, err := rule.StageList()
		if err != nil {
			return nil, fmt.Errorf("failed to decode rollout stages: %w", err)
		}
		state, err := s.rolloutState(trigger)
		if err != nil {
			return nil, err
		}
		res := rules.GradualRollout{Stages: stages, FailFast: rule.FailFast}.Evaluate(now, state)
		decisions = append(decisions, decision(policy, "rollout", res))
	}

	for i := range policy.PassRates {
		rule := &policy.PassRates[i]
		if !rule.Enabled {
			continue
		}
		since := now.Add(-time.Duration(rule.WindowSeconds) * time.Second)
		total, passed, err := s.metricRepo.CountWindow(trigger.ReleaseTarget.DeploymentID, trigger.ReleaseTarget.EnvironmentID, rule.MetricName, since)
		if err != nil {
			return nil, fmt.Errorf("failed to count metric window: %w", err)
		}
		res := rules.PassRateGate{
			MetricName:    rule.MetricName,
			MinPassRate:   rule.MinPassRate,
			MinSampleSize: rule.MinSampleSize,
		}.Evaluate(total, passed)
		decisions = append(decisions, decision(policy, "pass_rate", res))
	}

	for i := range policy.Dependencies {
		rule := &policy.Dependencies[i]
		if !rule.Enabled {
			continue
		}
		readyTags, err := s.versionRepo.GetReadyTags(rule.DependsOnDeploymentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load dependency tags: %w", err)
		}
		name := rule.DependsOnDeploymentID.String()
		if dep, err := s.deploymentRepo.GetByID(rule.DependsOnDeploymentID); err == nil {
			name = dep.Name
		}
		res := rules.ReleaseDependency{
			DependencyName:    name,
			VersionConstraint: rule.VersionConstraint,
			Timeout:           time.Duration(rule.TimeoutSeconds) * time.Second,
		}.Evaluate(now, readyTags, trigger.Version.CreatedAt)
		decisions = append(decisions, decision(policy, "dependency", res))
	}

	return decisions, nil
}

// concurrencyScope resolves the release target ids a policy's concurrency
// limit counts over: the whole workspace for global policies, the
// materialized matches otherwise
func (s *DispatchService) concurrencyScope(policy *models.Policy, workspaceID uuid.UUID) ([]uuid.UUID, error) {
	if policy.IsGlobal() {
		targets, err := s.targetRepo.GetByWorkspaceID(workspaceID)
		if err != nil {
			return nil, fmt.Errorf("failed to load workspace release targets: %w", err)
		}
		ids := make([]uuid.UUID, len(targets))
		for i := range targets {
			ids[i] = targets[i].ID
		}
		return ids, nil
	}
	ids, err := s.policyRepo.GetComputedTargetIDs(policy.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy scope: %w", err)
	}
	return ids, nil
}

// rolloutState computes the trigger's position in its version cohort. The
// cohort is ordered by release target id, making positions deterministic, and
// the rollout clock starts at the cohort's earliest trigger.
func (s *DispatchService) rolloutState(trigger *models.ReleaseJobTrigger) (rules.RolloutState, error) {
	cohort, err := s.triggerRepo.GetCohort(trigger.VersionID)
	if err != nil {
		return rules.RolloutState{}, fmt.Errorf("failed to load cohort: %w", err)
	}

	position := 0
	startedAt := trigger.CreatedAt
	for i := range cohort {
		if cohort[i].ReleaseTargetID == trigger.ReleaseTargetID {
			position = i
		}
		if cohort[i].CreatedAt.Before(startedAt) {
			startedAt = cohort[i].CreatedAt
		}
	}

	anyFailed, err := s.triggerRepo.CohortHasFailure(trigger.VersionID)
	if err != nil {
		return rules.RolloutState{}, fmt.Errorf("failed to check cohort failures: %w", err)
	}

	return rules.RolloutState{
		Position:   position,
		CohortSize: len(cohort),
		StartedAt:  startedAt,
		AnyFailed:  anyFailed,
	}, nil
}

// jobPayload is the queue message body handed to job agents
type jobPayload struct {
	JobID           uuid.UUID       `json:"job_id"`
	TriggerID       uuid.UUID       `json:"trigger_id"`
	ReleaseTargetID uuid.UUID       `json:"release_target_id"`
	VersionID       uuid.UUID       `json:"version_id"`
	VersionTag      string          `json:"version_tag"`
	JobAgentConfig  json.RawMessage `json:"job_agent_config,omitempty"`
}

// DispatchTrigger evaluates one trigger and, when every rule allows, creates
// its job, cancels superseded live jobs for the same target and enqueues the
// work. Returns the job when dispatched, nil when some rule denied.
func (s *DispatchService) DispatchTrigger(trigger *models.ReleaseJobTrigger) (*models.Job, []RuleDecision, error) {
	if trigger.Dispatched() {
		return nil, nil, apperrors.ErrTriggerAlreadyDispatched
	}

	decisions, allow, err := s.EvaluateTrigger(trigger)
	if err != nil {
		return nil, nil, err
	}
	if !allow {
		return nil, decisions, nil
	}

	job := &models.Job{
		Status:   models.JobStatusPending,
		Metadata: trigger.ReleaseTarget.Deployment.JobAgentConfig,
	}
	job, err = s.triggerRepo.Dispatch(trigger, job)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// another dispatcher won the race for this trigger
			return nil, decisions, nil
		}
		return nil, nil, fmt.Errorf("failed to dispatch trigger: %w", err)
	}

	if err := s.enqueueJob(trigger, job); err != nil {
		// the job row exists and stays pending; redeliverStale re-enqueues
		// it once it is older than the grace period
		logrus.WithField("job_id", job.ID).WithError(err).Warn("failed to enqueue dispatched job")
	}

	return job, decisions, nil
}

// enqueueJob marshals the job payload and hands it to the queue
func (s *DispatchService) enqueueJob(trigger *models.ReleaseJobTrigger, job *models.Job) error {
	payload, err := json.Marshal(jobPayload{
		JobID:           job.ID,
		TriggerID:       trigger.ID,
		ReleaseTargetID: trigger.ReleaseTargetID,
		VersionID:       trigger.VersionID,
		VersionTag:      trigger.Version.Tag,
		JobAgentConfig:  trigger.ReleaseTarget.Deployment.JobAgentConfig,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal job payload: %w", err)
	}
	return s.enqueuer.Enqueue(s.queueChannel, job.ID, payload)
}

// redeliverStale re-enqueues every job that is still pending past the grace
// period. A dropped or lost queue handoff is repaired here; duplicates are
// harmless because delivery is at-least-once and consumers are idempotent.
func (s *DispatchService) redeliverStale() int {
	triggers, err := s.triggerRepo.GetStalePending(time.Now().Add(-redeliverGrace))
	if err != nil {
		logrus.WithError(err).Error("failed to load stale pending jobs")
		return 0
	}

	redelivered := 0
	for i := range triggers {
		trigger := &triggers[i]
		if trigger.Job == nil {
			continue
		}
		if err := s.enqueueJob(trigger, trigger.Job); err != nil {
			logrus.WithField("job_id", trigger.Job.ID).WithError(err).Warn("failed to re-enqueue stale job")
			continue
		}
		redelivered++
	}
	if redelivered > 0 {
		logrus.WithField("count", redelivered).Info("re-enqueued stale pending jobs")
	}
	return redelivered
}

// SweepOnce evaluates every undispatched trigger with a ready version and
// dispatches the ones whose rules all allow, then re-enqueues jobs stuck in
// pending. Returns how many triggers were dispatched.
func (s *DispatchService) SweepOnce() (int, error) {
	s.redeliverStale()

	triggers, err := s.triggerRepo.GetUndispatched()
	if err != nil {
		return 0, fmt.Errorf("failed to load undispatched triggers: %w", err)
	}

	dispatched := 0
	for i := range triggers {
		trigger := &triggers[i]
		job, decisions, err := s.DispatchTrigger(trigger)
		if err != nil {
			if errors.Is(err, apperrors.ErrTriggerAlreadyDispatched) {
				continue
			}
			logrus.WithField("trigger_id", trigger.ID).WithError(err).Error("trigger evaluation failed")
			continue
		}
		if job != nil {
			dispatched++
			continue
		}
		for _, d := range decisions {
			if !d.Allow {
				logrus.WithFields(logrus.Fields{
					"trigger_id": trigger.ID,
					"policy":     d.PolicyName,
					"rule":       d.Rule,
				}).Debug(d.Reason)
			}
		}
	}
	return dispatched, nil
}

// Explain evaluates a trigger without dispatching, for the evaluation endpoint
func (s *DispatchService) Explain(triggerID uuid.UUID) ([]RuleDecision, bool, error) {
	trigger, err := s.triggerRepo.GetByID(triggerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperrors.ErrTriggerNotFound
		}
		return nil, false, fmt.Errorf("failed to get trigger: %w", err)
	}
	return s.EvaluateTrigger(trigger)
}
