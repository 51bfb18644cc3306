package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"release-orchestrator-backend/internal/database/models"
	apperrors "release-orchestrator-backend/internal/errors"
	"release-orchestrator-backend/internal/mocks"
	"release-orchestrator-backend/internal/queue"
	"release-orchestrator-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type DispatchServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockTriggerRepo  *mocks.MockReleaseJobTriggerRepositoryInterface
	mockPolicyRepo   *mocks.MockPolicyRepositoryInterface
	mockTargetRepo   *mocks.MockReleaseTargetRepositoryInterface
	mockVersionRepo  *mocks.MockDeploymentVersionRepositoryInterface
	mockApprovalRepo *mocks.MockApprovalRepositoryInterface
	mockMetricRepo   *mocks.MockMetricRepositoryInterface
	queue            *queue.InProcess
	dispatchService  *service.DispatchService
}

func (suite *DispatchServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTriggerRepo = mocks.NewMockReleaseJobTriggerRepositoryInterface(suite.ctrl)
	suite.mockPolicyRepo = mocks.NewMockPolicyRepositoryInterface(suite.ctrl)
	suite.mockTargetRepo = mocks.NewMockReleaseTargetRepositoryInterface(suite.ctrl)
	suite.mockVersionRepo = mocks.NewMockDeploymentVersionRepositoryInterface(suite.ctrl)
	suite.mockApprovalRepo = mocks.NewMockApprovalRepositoryInterface(suite.ctrl)
	suite.mockMetricRepo = mocks.NewMockMetricRepositoryInterface(suite.ctrl)
	suite.queue = queue.NewInProcess(8)
	suite.dispatchService = service.NewDispatchService(
		suite.mockTriggerRepo,
		suite.mockPolicyRepo,
		service.NewPolicyMatcherService(suite.mockPolicyRepo, suite.mockTargetRepo),
		suite.mockTargetRepo,
		suite.mockVersionRepo,
		suite.mockApprovalRepo,
		suite.mockMetricRepo,
		nil,
		suite.queue,
		"jobs",
	)
}

func (suite *DispatchServiceTestSuite) TearDownTest() {
	suite.queue.Close()
	suite.ctrl.Finish()
}

// newTrigger builds an undispatched trigger with the associations the
// evaluator reads preloaded
func (suite *DispatchServiceTestSuite) newTrigger() *models.ReleaseJobTrigger {
	workspaceID := uuid.New()
	deploymentID := uuid.New()
	environmentID := uuid.New()
	version := models.DeploymentVersion{
		BaseModel:    models.BaseModel{ID: uuid.New(), CreatedAt: time.Now().Add(-time.Minute)},
		DeploymentID: deploymentID,
		Name:         "1.2.0",
		Tag:          "1.2.0",
		Status:       models.VersionStatusReady,
	}
	return &models.ReleaseJobTrigger{
		BaseModel:       models.BaseModel{ID: uuid.New(), CreatedAt: time.Now().Add(-time.Minute)},
		ReleaseTargetID: uuid.New(),
		VersionID:       version.ID,
		Cause:           models.TriggerCauseNewVersion,
		CausedByID:      "system",
		Version:         version,
		ReleaseTarget: models.ReleaseTarget{
			BaseModel:     models.BaseModel{ID: uuid.New()},
			DeploymentID:  deploymentID,
			EnvironmentID: environmentID,
			Deployment: models.Deployment{
				BaseModel:      models.BaseModel{ID: deploymentID},
				Name:           "api-server",
				JobAgentConfig: json.RawMessage(`{"type":"test-agent"}`),
			},
			Resource: models.Resource{
				BaseModel:   models.BaseModel{ID: uuid.New()},
				WorkspaceID: workspaceID,
			},
		},
	}
}

func approvalPolicy(workspaceID uuid.UUID, required int) models.Policy {
	return models.Policy{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		WorkspaceID: workspaceID,
		Name:        "require-review",
		Enabled:     true,
		Approvals: []models.PolicyRuleApproval{{
			BaseModel:         models.BaseModel{ID: uuid.New()},
			RequiredApprovals: required,
			Enabled:           true,
		}},
	}
}

func (suite *DispatchServiceTestSuite) TestEvaluateTrigger_NoPolicies_Allows() {
	trigger := suite.newTrigger()
	workspaceID := trigger.ReleaseTarget.Resource.WorkspaceID
	suite.mockPolicyRepo.EXPECT().GetMatched(workspaceID, trigger.ReleaseTargetID).Return([]models.Policy{}, nil)

	decisions, allow, err := suite.dispatchService.EvaluateTrigger(trigger)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), allow)
	assert.Empty(suite.T(), decisions)
}

func (suite *DispatchServiceTestSuite) TestEvaluateTrigger_ApprovalPending_Denies() {
	trigger := suite.newTrigger()
	workspaceID := trigger.ReleaseTarget.Resource.WorkspaceID
	policy := approvalPolicy(workspaceID, 1)

	suite.mockPolicyRepo.EXPECT().GetMatched(workspaceID, trigger.ReleaseTargetID).Return([]models.Policy{policy}, nil)
	suite.mockApprovalRepo.EXPECT().GetByPolicyAndVersion(policy.ID, trigger.VersionID).Return([]models.Approval{}, nil)

	decisions, allow, err := suite.dispatchService.EvaluateTrigger(trigger)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), allow)
	assert.Len(suite.T(), decisions, 1)
	assert.Equal(suite.T(), "approval", decisions[0].Rule)
	assert.Equal(suite.T(), policy.Name, decisions[0].PolicyName)
	assert.False(suite.T(), decisions[0].Allow)
	assert.Contains(suite.T(), decisions[0].Reason, "0 of 1")
}

func (suite *DispatchServiceTestSuite) TestEvaluateTrigger_ApprovalSatisfied_Allows() {
	trigger := suite.newTrigger()
	workspaceID := trigger.ReleaseTarget.Resource.WorkspaceID
	policy := approvalPolicy(workspaceID, 1)

	suite.mockPolicyRepo.EXPECT().GetMatched(workspaceID, trigger.ReleaseTargetID).Return([]models.Policy{policy}, nil)
	suite.mockApprovalRepo.EXPECT().GetByPolicyAndVersion(policy.ID, trigger.VersionID).Return([]models.Approval{
		{ApproverID: "alice", Status: models.ApprovalStatusApproved},
	}, nil)

	decisions, allow, err := suite.dispatchService.EvaluateTrigger(trigger)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), allow)
	assert.Len(suite.T(), decisions, 1)
	assert.True(suite.T(), decisions[0].Allow)
}

func (suite *DispatchServiceTestSuite) TestEvaluateTrigger_DisabledRule_Skipped() {
	trigger := suite.newTrigger()
	workspaceID := trigger.ReleaseTarget.Resource.WorkspaceID
	policy := approvalPolicy(workspaceID, 1)
	policy.Approvals[0].Enabled = false

	suite.mockPolicyRepo.EXPECT().GetMatched(workspaceID, trigger.ReleaseTargetID).Return([]models.Policy{policy}, nil)

	decisions, allow, err := suite.dispatchService.EvaluateTrigger(trigger)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), allow)
	assert.Empty(suite.T(), decisions)
}

func (suite *DispatchServiceTestSuite) TestEvaluateTrigger_ConcurrencyGlobalPolicy_CountsWorkspaceTargets() {
	trigger := suite.newTrigger()
	workspaceID := trigger.ReleaseTarget.Resource.WorkspaceID
	policy := models.Policy{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		WorkspaceID: workspaceID,
		Name:        "serialize-everything",
		Enabled:     true,
		Concurrency: []models.PolicyRuleConcurrency{{Limit: 1, Enabled: true}},
	}
	otherTarget := models.ReleaseTarget{BaseModel: models.BaseModel{ID: uuid.New()}}

	suite.mockPolicyRepo.EXPECT().GetMatched(workspaceID, trigger.ReleaseTargetID).Return([]models.Policy{policy}, nil)
	suite.mockTargetRepo.EXPECT().GetByWorkspaceID(workspaceID).Return([]models.ReleaseTarget{trigger.ReleaseTarget, otherTarget}, nil)
	suite.mockTriggerRepo.EXPECT().CountActiveJobs([]uuid.UUID{trigger.ReleaseTarget.ID, otherTarget.ID}).Return(1, nil)

	decisions, allow, err := suite.dispatchService.EvaluateTrigger(trigger)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), allow)
	assert.Len(suite.T(), decisions, 1)
	assert.Equal(suite.T(), "concurrency", decisions[0].Rule)
	assert.Contains(suite.T(), decisions[0].Reason, "1 of 1")
}

func (suite *DispatchServiceTestSuite) TestEvaluateTrigger_ConcurrencyScopedPolicy_CountsComputedTargets() {
	trigger := suite.newTrigger()
	workspaceID := trigger.ReleaseTarget.Resource.WorkspaceID
	policy := models.Policy{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		WorkspaceID: workspaceID,
		Name:        "serialize-prod",
		Enabled:     true,
		Targets:     []models.PolicyTarget{{BaseModel: models.BaseModel{ID: uuid.New()}}},
		Concurrency: []models.PolicyRuleConcurrency{{Limit: 2, Enabled: true}},
	}
	scope := []uuid.UUID{trigger.ReleaseTargetID}

	suite.mockPolicyRepo.EXPECT().GetMatched(workspaceID, trigger.ReleaseTargetID).Return([]models.Policy{policy}, nil)
	suite.mockPolicyRepo.EXPECT().GetComputedTargetIDs(policy.ID).Return(scope, nil)
	suite.mockTriggerRepo.EXPECT().CountActiveJobs(scope).Return(1, nil)

	decisions, allow, err := suite.dispatchService.EvaluateTrigger(trigger)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), allow)
	assert.Len(suite.T(), decisions, 1)
	assert.True(suite.T(), decisions[0].Allow)
}

func (suite *DispatchServiceTestSuite) TestEvaluateTrigger_RolloutSingleStage_Allows() {
	trigger := suite.newTrigger()
	workspaceID := trigger.ReleaseTarget.Resource.WorkspaceID
	policy := models.Policy{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		WorkspaceID: workspaceID,
		Name:        "rollout",
		Enabled:     true,
		Rollouts: []models.PolicyRuleRollout{{
			Stages:  json.RawMessage(`[{"percentage":100,"soak_seconds":0}]`),
			Enabled: true,
		}},
	}

	suite.mockPolicyRepo.EXPECT().GetMatched(workspaceID, trigger.ReleaseTargetID).Return([]models.Policy{policy}, nil)
	suite.mockTriggerRepo.EXPECT().GetCohort(trigger.VersionID).Return([]models.ReleaseJobTrigger{*trigger}, nil)
	suite.mockTriggerRepo.EXPECT().CohortHasFailure(trigger.VersionID).Return(false, nil)

	decisions, allow, err := suite.dispatchService.EvaluateTrigger(trigger)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), allow)
	assert.Len(suite.T(), decisions, 1)
	assert.Equal(suite.T(), "rollout", decisions[0].Rule)
}

func (suite *DispatchServiceTestSuite) TestEvaluateTrigger_PassRateBelowThreshold_Denies() {
	trigger := suite.newTrigger()
	workspaceID := trigger.ReleaseTarget.Resource.WorkspaceID
	policy := models.Policy{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		WorkspaceID: workspaceID,
		Name:        "healthy-only",
		Enabled:     true,
		PassRates: []models.PolicyRulePassRate{{
			MetricName:    "smoke-test",
			MinPassRate:   0.9,
			WindowSeconds: 3600,
			MinSampleSize: 5,
			Enabled:       true,
		}},
	}

	suite.mockPolicyRepo.EXPECT().GetMatched(workspaceID, trigger.ReleaseTargetID).Return([]models.Policy{policy}, nil)
	suite.mockMetricRepo.EXPECT().
		CountWindow(trigger.ReleaseTarget.DeploymentID, trigger.ReleaseTarget.EnvironmentID, "smoke-test", gomock.Any()).
		Return(10, 7, nil)

	decisions, allow, err := suite.dispatchService.EvaluateTrigger(trigger)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), allow)
	assert.Len(suite.T(), decisions, 1)
	assert.Equal(suite.T(), "pass_rate", decisions[0].Rule)
	assert.Contains(suite.T(), decisions[0].Reason, "smoke-test")
}

func (suite *DispatchServiceTestSuite) TestDispatchTrigger_Allowed_CreatesJobAndEnqueues() {
	trigger := suite.newTrigger()
	workspaceID := trigger.ReleaseTarget.Resource.WorkspaceID
	jobID := uuid.New()

	suite.mockPolicyRepo.EXPECT().GetMatched(workspaceID, trigger.ReleaseTargetID).Return([]models.Policy{}, nil)
	suite.mockTriggerRepo.EXPECT().Dispatch(trigger, gomock.Any()).DoAndReturn(
		func(t *models.ReleaseJobTrigger, job *models.Job) (*models.Job, error) {
			assert.Equal(suite.T(), models.JobStatusPending, job.Status)
			job.ID = jobID
			return job, nil
		})

	job, decisions, err := suite.dispatchService.DispatchTrigger(trigger)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), job)
	assert.Equal(suite.T(), jobID, job.ID)
	assert.Empty(suite.T(), decisions)

	select {
	case msg := <-suite.queue.Messages():
		assert.Equal(suite.T(), "jobs", msg.Channel)
		assert.Equal(suite.T(), jobID, msg.JobID)
		var payload map[string]any
		assert.NoError(suite.T(), json.Unmarshal(msg.Payload, &payload))
		assert.Equal(suite.T(), trigger.Version.Tag, payload["version_tag"])
		assert.Equal(suite.T(), trigger.ID.String(), payload["trigger_id"])
	default:
		suite.T().Fatal("expected a queued message")
	}
}

func (suite *DispatchServiceTestSuite) TestDispatchTrigger_Denied_NoJob() {
	trigger := suite.newTrigger()
	workspaceID := trigger.ReleaseTarget.Resource.WorkspaceID
	policy := approvalPolicy(workspaceID, 2)

	suite.mockPolicyRepo.EXPECT().GetMatched(workspaceID, trigger.ReleaseTargetID).Return([]models.Policy{policy}, nil)
	suite.mockApprovalRepo.EXPECT().GetByPolicyAndVersion(policy.ID, trigger.VersionID).Return([]models.Approval{}, nil)

	job, decisions, err := suite.dispatchService.DispatchTrigger(trigger)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), job)
	assert.Len(suite.T(), decisions, 1)
	assert.False(suite.T(), decisions[0].Allow)
}

func (suite *DispatchServiceTestSuite) TestDispatchTrigger_AlreadyDispatched_Error() {
	trigger := suite.newTrigger()
	jobID := uuid.New()
	trigger.JobID = &jobID

	job, decisions, err := suite.dispatchService.DispatchTrigger(trigger)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTriggerAlreadyDispatched)
	assert.Nil(suite.T(), job)
	assert.Nil(suite.T(), decisions)
}

func (suite *DispatchServiceTestSuite) TestDispatchTrigger_RaceLost_NoError() {
	trigger := suite.newTrigger()
	workspaceID := trigger.ReleaseTarget.Resource.WorkspaceID

	suite.mockPolicyRepo.EXPECT().GetMatched(workspaceID, trigger.ReleaseTargetID).Return([]models.Policy{}, nil)
	suite.mockTriggerRepo.EXPECT().Dispatch(trigger, gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

	job, _, err := suite.dispatchService.DispatchTrigger(trigger)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), job)
}

func (suite *DispatchServiceTestSuite) TestSweepOnce_DispatchesAllowedOnly() {
	allowed := suite.newTrigger()
	denied := suite.newTrigger()
	deniedPolicy := approvalPolicy(denied.ReleaseTarget.Resource.WorkspaceID, 1)

	suite.mockTriggerRepo.EXPECT().GetStalePending(gomock.Any()).Return([]models.ReleaseJobTrigger{}, nil)
	suite.mockTriggerRepo.EXPECT().GetUndispatched().Return([]models.ReleaseJobTrigger{*allowed, *denied}, nil)
	suite.mockPolicyRepo.EXPECT().
		GetMatched(allowed.ReleaseTarget.Resource.WorkspaceID, allowed.ReleaseTargetID).
		Return([]models.Policy{}, nil)
	suite.mockTriggerRepo.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(t *models.ReleaseJobTrigger, job *models.Job) (*models.Job, error) {
			job.ID = uuid.New()
			return job, nil
		})
	suite.mockPolicyRepo.EXPECT().
		GetMatched(denied.ReleaseTarget.Resource.WorkspaceID, denied.ReleaseTargetID).
		Return([]models.Policy{deniedPolicy}, nil)
	suite.mockApprovalRepo.EXPECT().GetByPolicyAndVersion(deniedPolicy.ID, denied.VersionID).Return([]models.Approval{}, nil)

	dispatched, err := suite.dispatchService.SweepOnce()

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, dispatched)
}

func (suite *DispatchServiceTestSuite) TestSweepOnce_RedeliversJobDroppedByFullQueue() {
	fullQueue := queue.NewInProcess(1)
	defer fullQueue.Close()
	assert.NoError(suite.T(), fullQueue.Enqueue("jobs", uuid.New(), nil)) // fill the only slot

	dispatch := service.NewDispatchService(
		suite.mockTriggerRepo,
		suite.mockPolicyRepo,
		service.NewPolicyMatcherService(suite.mockPolicyRepo, suite.mockTargetRepo),
		suite.mockTargetRepo,
		suite.mockVersionRepo,
		suite.mockApprovalRepo,
		suite.mockMetricRepo,
		nil,
		fullQueue,
		"jobs",
	)

	trigger := suite.newTrigger()
	jobID := uuid.New()
	suite.mockPolicyRepo.EXPECT().
		GetMatched(trigger.ReleaseTarget.Resource.WorkspaceID, trigger.ReleaseTargetID).
		Return([]models.Policy{}, nil)
	suite.mockTriggerRepo.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(t *models.ReleaseJobTrigger, job *models.Job) (*models.Job, error) {
			job.ID = jobID
			return job, nil
		})

	job, _, err := dispatch.DispatchTrigger(trigger)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), job)

	// the payload was dropped: only the filler message is on the queue
	filler := <-fullQueue.Messages()
	assert.NotEqual(suite.T(), jobID, filler.JobID)
	select {
	case msg := <-fullQueue.Messages():
		suite.T().Fatalf("unexpected message for job %s", msg.JobID)
	default:
	}

	// the next sweep finds the stale pending job and re-enqueues it
	stale := *trigger
	stale.JobID = &jobID
	stale.Job = &models.Job{
		BaseModel: models.BaseModel{ID: jobID, CreatedAt: time.Now().Add(-5 * time.Minute)},
		Status:    models.JobStatusPending,
	}
	suite.mockTriggerRepo.EXPECT().GetStalePending(gomock.Any()).DoAndReturn(
		func(before time.Time) ([]models.ReleaseJobTrigger, error) {
			assert.True(suite.T(), before.Before(time.Now()))
			return []models.ReleaseJobTrigger{stale}, nil
		})
	suite.mockTriggerRepo.EXPECT().GetUndispatched().Return([]models.ReleaseJobTrigger{}, nil)

	dispatched, err := dispatch.SweepOnce()
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, dispatched)

	select {
	case msg := <-fullQueue.Messages():
		assert.Equal(suite.T(), jobID, msg.JobID)
		assert.Equal(suite.T(), "jobs", msg.Channel)

		var payload map[string]interface{}
		assert.NoError(suite.T(), json.Unmarshal(msg.Payload, &payload))
		assert.Equal(suite.T(), trigger.ID.String(), payload["trigger_id"])
		assert.Equal(suite.T(), "1.2.0", payload["version_tag"])
	default:
		suite.T().Fatal("expected the stale job to be re-enqueued")
	}
}

func (suite *DispatchServiceTestSuite) TestExplain_TriggerNotFound() {
	triggerID := uuid.New()
	suite.mockTriggerRepo.EXPECT().GetByID(triggerID).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := suite.dispatchService.Explain(triggerID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTriggerNotFound)
}

func (suite *DispatchServiceTestSuite) TestExplain_EvaluatesWithoutDispatching() {
	trigger := suite.newTrigger()
	workspaceID := trigger.ReleaseTarget.Resource.WorkspaceID

	suite.mockTriggerRepo.EXPECT().GetByID(trigger.ID).Return(trigger, nil)
	suite.mockPolicyRepo.EXPECT().GetMatched(workspaceID, trigger.ReleaseTargetID).Return([]models.Policy{}, nil)

	decisions, allow, err := suite.dispatchService.Explain(trigger.ID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), allow)
	assert.Empty(suite.T(), decisions)
}

func (suite *DispatchServiceTestSuite) TestSweeper_PokeTriggersImmediatePass() {
	suite.mockTriggerRepo.EXPECT().GetStalePending(gomock.Any()).Return([]models.ReleaseJobTrigger{}, nil).MinTimes(1)
	suite.mockTriggerRepo.EXPECT().GetUndispatched().Return([]models.ReleaseJobTrigger{}, nil).MinTimes(1)

	sweeper := service.NewSweeper(suite.dispatchService, time.Hour)
	sweeper.Poke()
	sweeper.Poke() // a second poke while one is pending must not block

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	sweeper.Run(ctx)
}

func TestDispatchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DispatchServiceTestSuite))
}
