//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"release-orchestrator-backend/internal/database/models"
	"release-orchestrator-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ReleaseJobTriggerRepositoryTestSuite tests the ReleaseJobTriggerRepository
type ReleaseJobTriggerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ReleaseJobTriggerRepository
	factories     *testutils.FactorySet
	topo          *topology
}

func (suite *ReleaseJobTriggerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewReleaseJobTriggerRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *ReleaseJobTriggerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ReleaseJobTriggerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.topo = createTopology(suite.baseTestSuite)
}

func (suite *ReleaseJobTriggerRepositoryTestSuite) newTrigger(v *models.DeploymentVersion) models.ReleaseJobTrigger {
	return models.ReleaseJobTrigger{
		ReleaseTargetID: suite.topo.Target.ID,
		VersionID:       v.ID,
		Cause:           models.TriggerCauseNewVersion,
		CausedByID:      "system",
	}
}

func (suite *ReleaseJobTriggerRepositoryTestSuite) TestInsertWithApprovalsIsIdempotent() {
	v := suite.topo.createReadyVersion(suite.baseTestSuite, "1.0.0")
	triggers := []models.ReleaseJobTrigger{suite.newTrigger(v)}

	created, err := suite.repo.InsertWithApprovals(triggers, nil)
	suite.NoError(err)
	suite.Len(created, 1)

	// second run with a fresh slice must not duplicate
	again, err := suite.repo.InsertWithApprovals([]models.ReleaseJobTrigger{suite.newTrigger(v)}, nil)
	suite.NoError(err)
	suite.Len(again, 1)
	suite.Equal(created[0].ID, again[0].ID)
}

func (suite *ReleaseJobTriggerRepositoryTestSuite) TestInsertWithApprovalsCreatesPendingRows() {
	v := suite.topo.createReadyVersion(suite.baseTestSuite, "1.0.0")
	policy := suite.factories.Policy.WithWorkspace(suite.topo.Workspace.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(policy).Error)

	approvals := []models.Approval{
		{PolicyID: policy.ID, VersionID: v.ID, ApproverID: "alice", Status: models.ApprovalStatusPending},
	}
	_, err := suite.repo.InsertWithApprovals([]models.ReleaseJobTrigger{suite.newTrigger(v)}, approvals)
	suite.NoError(err)

	var stored []models.Approval
	suite.NoError(suite.baseTestSuite.DB.Where("version_id = ?", v.ID).Find(&stored).Error)
	suite.Len(stored, 1)
	suite.Equal(models.ApprovalStatusPending, stored[0].Status)
}

func (suite *ReleaseJobTriggerRepositoryTestSuite) TestDispatchCreatesJobAndLinksTrigger() {
	v := suite.topo.createReadyVersion(suite.baseTestSuite, "1.0.0")
	created, err := suite.repo.InsertWithApprovals([]models.ReleaseJobTrigger{suite.newTrigger(v)}, nil)
	suite.Require().NoError(err)

	job := &models.Job{Status: models.JobStatusPending}
	dispatched, err := suite.repo.Dispatch(&created[0], job)
	suite.NoError(err)
	suite.NotNil(dispatched)

	retrieved, err := suite.repo.GetByID(created[0].ID)
	suite.NoError(err)
	suite.Require().NotNil(retrieved.JobID)
	suite.Equal(dispatched.ID, *retrieved.JobID)
	suite.True(retrieved.Dispatched())
}

func (suite *ReleaseJobTriggerRepositoryTestSuite) TestDispatchTwiceFails() {
	v := suite.topo.createReadyVersion(suite.baseTestSuite, "1.0.0")
	created, err := suite.repo.InsertWithApprovals([]models.ReleaseJobTrigger{suite.newTrigger(v)}, nil)
	suite.Require().NoError(err)

	_, err = suite.repo.Dispatch(&created[0], &models.Job{Status: models.JobStatusPending})
	suite.NoError(err)

	_, err = suite.repo.Dispatch(&created[0], &models.Job{Status: models.JobStatusPending})
	suite.Equal(gorm.ErrRecordNotFound, err)
}

func (suite *ReleaseJobTriggerRepositoryTestSuite) TestDispatchCancelsSupersededOlderVersion() {
	old := suite.topo.createReadyVersion(suite.baseTestSuite, "1.0.0")
	// make the newer version's created_at strictly later
	time.Sleep(10 * time.Millisecond)
	newer := suite.topo.createReadyVersion(suite.baseTestSuite, "2.0.0")

	oldTriggers, err := suite.repo.InsertWithApprovals([]models.ReleaseJobTrigger{suite.newTrigger(old)}, nil)
	suite.Require().NoError(err)
	oldJob, err := suite.repo.Dispatch(&oldTriggers[0], &models.Job{Status: models.JobStatusInProgress})
	suite.Require().NoError(err)

	newTriggers, err := suite.repo.InsertWithApprovals([]models.ReleaseJobTrigger{suite.newTrigger(newer)}, nil)
	suite.Require().NoError(err)
	_, err = suite.repo.Dispatch(&newTriggers[0], &models.Job{Status: models.JobStatusPending})
	suite.NoError(err)

	var cancelled models.Job
	suite.NoError(suite.baseTestSuite.DB.First(&cancelled, "id = ?", oldJob.ID).Error)
	suite.Equal(models.JobStatusCancelled, cancelled.Status)
	suite.Equal("superseded by a newer version", cancelled.Reason)
	suite.NotNil(cancelled.CompletedAt)
}

func (suite *ReleaseJobTriggerRepositoryTestSuite) TestDispatchDoesNotCancelNewerVersion() {
	newer := suite.topo.createReadyVersion(suite.baseTestSuite, "2.0.0")
	time.Sleep(10 * time.Millisecond)
	old := suite.topo.createReadyVersion(suite.baseTestSuite, "1.0.0")

	newTriggers, err := suite.repo.InsertWithApprovals([]models.ReleaseJobTrigger{suite.newTrigger(newer)}, nil)
	suite.Require().NoError(err)
	newJob, err := suite.repo.Dispatch(&newTriggers[0], &models.Job{Status: models.JobStatusInProgress})
	suite.Require().NoError(err)

	// dispatching the older version must not cancel the newer job
	oldTriggers, err := suite.repo.InsertWithApprovals([]models.ReleaseJobTrigger{suite.newTrigger(old)}, nil)
	suite.Require().NoError(err)
	_, err = suite.repo.Dispatch(&oldTriggers[0], &models.Job{Status: models.JobStatusPending})
	suite.NoError(err)

	var kept models.Job
	suite.NoError(suite.baseTestSuite.DB.First(&kept, "id = ?", newJob.ID).Error)
	suite.Equal(models.JobStatusInProgress, kept.Status)
}

func (suite *ReleaseJobTriggerRepositoryTestSuite) TestGetUndispatched() {
	ready := suite.topo.createReadyVersion(suite.baseTestSuite, "1.0.0")

	building := suite.factories.Version.WithDeployment(suite.topo.Deployment.ID)
	building.Status = models.VersionStatusBuilding
	suite.Require().NoError(suite.baseTestSuite.DB.Create(building).Error)

	_, err := suite.repo.InsertWithApprovals([]models.ReleaseJobTrigger{
		suite.newTrigger(ready),
		suite.newTrigger(building),
	}, nil)
	suite.Require().NoError(err)

	undispatched, err := suite.repo.GetUndispatched()
	suite.NoError(err)
	suite.Len(undispatched, 1)
	suite.Equal(ready.ID, undispatched[0].VersionID)
}

func (suite *ReleaseJobTriggerRepositoryTestSuite) TestGetStalePendingFindsUndeliveredJobs() {
	v := suite.topo.createReadyVersion(suite.baseTestSuite, "1.0.0")
	created, err := suite.repo.InsertWithApprovals([]models.ReleaseJobTrigger{suite.newTrigger(v)}, nil)
	suite.Require().NoError(err)

	job := &models.Job{Status: models.JobStatusPending}
	_, err = suite.repo.Dispatch(&created[0], job)
	suite.Require().NoError(err)

	// a cutoff before the job's creation excludes it
	stale, err := suite.repo.GetStalePending(time.Now().Add(-time.Minute))
	suite.NoError(err)
	suite.Len(stale, 0)

	// a cutoff after the job's creation includes it with payload associations
	stale, err = suite.repo.GetStalePending(time.Now().Add(time.Minute))
	suite.NoError(err)
	suite.Require().Len(stale, 1)
	suite.Equal(created[0].ID, stale[0].ID)
	suite.Require().NotNil(stale[0].Job)
	suite.Equal(models.JobStatusPending, stale[0].Job.Status)
	suite.Equal("1.0.0", stale[0].Version.Tag)
	suite.NotEmpty(stale[0].ReleaseTarget.Deployment.ID)

	// a job past pending is no longer stale
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Job{}).
		Where("id = ?", stale[0].Job.ID).
		Update("status", models.JobStatusInProgress).Error)
	stale, err = suite.repo.GetStalePending(time.Now().Add(time.Minute))
	suite.NoError(err)
	suite.Len(stale, 0)
}

func (suite *ReleaseJobTriggerRepositoryTestSuite) TestCountActiveJobs() {
	v := suite.topo.createReadyVersion(suite.baseTestSuite, "1.0.0")
	created, err := suite.repo.InsertWithApprovals([]models.ReleaseJobTrigger{suite.newTrigger(v)}, nil)
	suite.Require().NoError(err)

	count, err := suite.repo.CountActiveJobs([]uuid.UUID{suite.topo.Target.ID})
	suite.NoError(err)
	suite.Equal(0, count)

	_, err = suite.repo.Dispatch(&created[0], &models.Job{Status: models.JobStatusInProgress})
	suite.Require().NoError(err)

	count, err = suite.repo.CountActiveJobs([]uuid.UUID{suite.topo.Target.ID})
	suite.NoError(err)
	suite.Equal(1, count)
}

func (suite *ReleaseJobTriggerRepositoryTestSuite) TestCohortHasFailure() {
	v := suite.topo.createReadyVersion(suite.baseTestSuite, "1.0.0")
	created, err := suite.repo.InsertWithApprovals([]models.ReleaseJobTrigger{suite.newTrigger(v)}, nil)
	suite.Require().NoError(err)

	failed, err := suite.repo.CohortHasFailure(v.ID)
	suite.NoError(err)
	suite.False(failed)

	_, err = suite.repo.Dispatch(&created[0], &models.Job{Status: models.JobStatusFailed})
	suite.Require().NoError(err)

	failed, err = suite.repo.CohortHasFailure(v.ID)
	suite.NoError(err)
	suite.True(failed)
}

func (suite *ReleaseJobTriggerRepositoryTestSuite) TestClearJob() {
	v := suite.topo.createReadyVersion(suite.baseTestSuite, "1.0.0")
	created, err := suite.repo.InsertWithApprovals([]models.ReleaseJobTrigger{suite.newTrigger(v)}, nil)
	suite.Require().NoError(err)

	job, err := suite.repo.Dispatch(&created[0], &models.Job{Status: models.JobStatusInProgress})
	suite.Require().NoError(err)

	// a live job cannot be detached
	suite.Error(suite.repo.ClearJob(created[0].ID))

	suite.Require().NoError(suite.baseTestSuite.DB.Model(&models.Job{}).
		Where("id = ?", job.ID).Update("status", models.JobStatusCompleted).Error)

	suite.NoError(suite.repo.ClearJob(created[0].ID))

	retrieved, err := suite.repo.GetByID(created[0].ID)
	suite.NoError(err)
	suite.Nil(retrieved.JobID)
}

func TestReleaseJobTriggerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ReleaseJobTriggerRepositoryTestSuite))
}
