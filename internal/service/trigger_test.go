package service_test

import (
	"testing"

	"release-orchestrator-backend/internal/database/models"
	apperrors "release-orchestrator-backend/internal/errors"
	"release-orchestrator-backend/internal/mocks"
	"release-orchestrator-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type TriggerServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTriggerRepo *mocks.MockReleaseJobTriggerRepositoryInterface
	mockTargetRepo  *mocks.MockReleaseTargetRepositoryInterface
	mockVersionRepo *mocks.MockDeploymentVersionRepositoryInterface
	mockEnvRepo     *mocks.MockEnvironmentRepositoryInterface
	triggerService  *service.TriggerService
}

func (suite *TriggerServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTriggerRepo = mocks.NewMockReleaseJobTriggerRepositoryInterface(suite.ctrl)
	suite.mockTargetRepo = mocks.NewMockReleaseTargetRepositoryInterface(suite.ctrl)
	suite.mockVersionRepo = mocks.NewMockDeploymentVersionRepositoryInterface(suite.ctrl)
	suite.mockEnvRepo = mocks.NewMockEnvironmentRepositoryInterface(suite.ctrl)
	resolver := service.NewChannelResolverService(suite.mockEnvRepo, nil, suite.mockVersionRepo)
	suite.triggerService = service.NewTriggerService(
		suite.mockTriggerRepo,
		suite.mockTargetRepo,
		suite.mockVersionRepo,
		resolver,
	)
}

func (suite *TriggerServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TriggerServiceTestSuite) readyVersion(deploymentID uuid.UUID) models.DeploymentVersion {
	return models.DeploymentVersion{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		DeploymentID: deploymentID,
		Name:         "2.0.0",
		Tag:          "2.0.0",
		Status:       models.VersionStatusReady,
	}
}

func (suite *TriggerServiceTestSuite) target(deploymentID uuid.UUID) models.ReleaseTarget {
	return models.ReleaseTarget{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		DeploymentID:  deploymentID,
		EnvironmentID: uuid.New(),
		ResourceID:    uuid.New(),
	}
}

// expectNoChannelBinding makes every environment lookup report no binding, so
// all ready versions are eligible
func (suite *TriggerServiceTestSuite) expectNoChannelBinding() {
	suite.mockEnvRepo.EXPECT().
		GetChannelBinding(gomock.Any(), gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound).
		AnyTimes()
}

func (suite *TriggerServiceTestSuite) TestInsert_InvalidCause_Error() {
	_, err := suite.triggerService.NewReleaseJobTriggers(models.TriggerCause("nonsense")).Insert()

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCause)
}

func (suite *TriggerServiceTestSuite) TestInsert_VersionNotReady_Error() {
	version := suite.readyVersion(uuid.New())
	version.Status = models.VersionStatusBuilding

	_, err := suite.triggerService.NewReleaseJobTriggers(models.TriggerCauseNewVersion).
		Versions(version).
		Insert()

	assert.ErrorIs(suite.T(), err, apperrors.ErrVersionNotReady)
}

func (suite *TriggerServiceTestSuite) TestCreateForReadyVersion_FansOutAcrossTargets() {
	deploymentID := uuid.New()
	version := suite.readyVersion(deploymentID)
	targetA := suite.target(deploymentID)
	targetB := suite.target(deploymentID)

	suite.expectNoChannelBinding()
	suite.mockTargetRepo.EXPECT().GetByDeploymentID(deploymentID).Return([]models.ReleaseTarget{targetA, targetB}, nil)
	suite.mockTriggerRepo.EXPECT().InsertWithApprovals(gomock.Any(), nil).DoAndReturn(
		func(rows []models.ReleaseJobTrigger, _ []models.Approval) ([]models.ReleaseJobTrigger, error) {
			assert.Len(suite.T(), rows, 2)
			assert.Equal(suite.T(), targetA.ID, rows[0].ReleaseTargetID)
			assert.Equal(suite.T(), version.ID, rows[0].VersionID)
			assert.Equal(suite.T(), models.TriggerCauseNewVersion, rows[0].Cause)
			assert.Equal(suite.T(), "alice", rows[0].CausedByID)
			return rows, nil
		})

	created, err := suite.triggerService.CreateForReadyVersion(&version, "alice")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), created, 2)
}

func (suite *TriggerServiceTestSuite) TestCreateForReadyVersion_DefaultsActorToSystem() {
	deploymentID := uuid.New()
	version := suite.readyVersion(deploymentID)
	target := suite.target(deploymentID)

	suite.expectNoChannelBinding()
	suite.mockTargetRepo.EXPECT().GetByDeploymentID(deploymentID).Return([]models.ReleaseTarget{target}, nil)
	suite.mockTriggerRepo.EXPECT().InsertWithApprovals(gomock.Any(), nil).DoAndReturn(
		func(rows []models.ReleaseJobTrigger, _ []models.Approval) ([]models.ReleaseJobTrigger, error) {
			assert.Equal(suite.T(), "system", rows[0].CausedByID)
			return rows, nil
		})

	_, err := suite.triggerService.CreateForReadyVersion(&version, "")

	assert.NoError(suite.T(), err)
}

func (suite *TriggerServiceTestSuite) TestInsert_FilterNarrowsPairs() {
	deploymentID := uuid.New()
	version := suite.readyVersion(deploymentID)
	targetA := suite.target(deploymentID)
	targetB := suite.target(deploymentID)

	suite.expectNoChannelBinding()
	suite.mockTriggerRepo.EXPECT().InsertWithApprovals(gomock.Any(), nil).DoAndReturn(
		func(rows []models.ReleaseJobTrigger, _ []models.Approval) ([]models.ReleaseJobTrigger, error) {
			assert.Len(suite.T(), rows, 1)
			assert.Equal(suite.T(), targetB.ID, rows[0].ReleaseTargetID)
			return rows, nil
		})

	created, err := suite.triggerService.NewReleaseJobTriggers(models.TriggerCauseNewVersion).
		Versions(version).
		Targets(targetA, targetB).
		Filter(func(t *models.ReleaseTarget, _ *models.DeploymentVersion) bool {
			return t.ID == targetB.ID
		}).
		Insert()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), created, 1)
}

func (suite *TriggerServiceTestSuite) TestInsert_SkipsTargetsOfOtherDeployments() {
	deploymentID := uuid.New()
	version := suite.readyVersion(deploymentID)
	foreign := suite.target(uuid.New())
	own := suite.target(deploymentID)

	suite.expectNoChannelBinding()
	suite.mockTriggerRepo.EXPECT().InsertWithApprovals(gomock.Any(), nil).DoAndReturn(
		func(rows []models.ReleaseJobTrigger, _ []models.Approval) ([]models.ReleaseJobTrigger, error) {
			assert.Len(suite.T(), rows, 1)
			assert.Equal(suite.T(), own.ID, rows[0].ReleaseTargetID)
			return rows, nil
		})

	_, err := suite.triggerService.NewReleaseJobTriggers(models.TriggerCauseNewVersion).
		Versions(version).
		Targets(foreign, own).
		Insert()

	assert.NoError(suite.T(), err)
}

func (suite *TriggerServiceTestSuite) TestRedeploy_ReleaseTargetNotFound() {
	targetID := uuid.New()
	suite.mockTargetRepo.EXPECT().GetByID(targetID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.triggerService.Redeploy(targetID, uuid.New(), "alice")

	assert.ErrorIs(suite.T(), err, apperrors.ErrReleaseTargetNotFound)
}

func (suite *TriggerServiceTestSuite) TestRedeploy_VersionNotFound() {
	target := suite.target(uuid.New())
	versionID := uuid.New()
	suite.mockTargetRepo.EXPECT().GetByID(target.ID).Return(&target, nil)
	suite.mockVersionRepo.EXPECT().GetByID(versionID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.triggerService.Redeploy(target.ID, versionID, "alice")

	assert.ErrorIs(suite.T(), err, apperrors.ErrVersionNotFound)
}

func (suite *TriggerServiceTestSuite) TestRedeploy_UndispatchedTrigger_ReturnedAsIs() {
	deploymentID := uuid.New()
	version := suite.readyVersion(deploymentID)
	target := suite.target(deploymentID)

	suite.expectNoChannelBinding()
	suite.mockTargetRepo.EXPECT().GetByID(target.ID).Return(&target, nil)
	suite.mockVersionRepo.EXPECT().GetByID(version.ID).Return(&version, nil)
	suite.mockTriggerRepo.EXPECT().InsertWithApprovals(gomock.Any(), nil).DoAndReturn(
		func(rows []models.ReleaseJobTrigger, _ []models.Approval) ([]models.ReleaseJobTrigger, error) {
			rows[0].ID = uuid.New()
			assert.Equal(suite.T(), models.TriggerCauseRedeploy, rows[0].Cause)
			return rows, nil
		})

	trigger, err := suite.triggerService.Redeploy(target.ID, version.ID, "alice")

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), trigger)
	assert.Nil(suite.T(), trigger.JobID)
}

func (suite *TriggerServiceTestSuite) TestRedeploy_TerminalJob_Detached() {
	deploymentID := uuid.New()
	version := suite.readyVersion(deploymentID)
	target := suite.target(deploymentID)
	triggerID := uuid.New()
	jobID := uuid.New()

	suite.expectNoChannelBinding()
	suite.mockTargetRepo.EXPECT().GetByID(target.ID).Return(&target, nil)
	suite.mockVersionRepo.EXPECT().GetByID(version.ID).Return(&version, nil)
	suite.mockTriggerRepo.EXPECT().InsertWithApprovals(gomock.Any(), nil).DoAndReturn(
		func(rows []models.ReleaseJobTrigger, _ []models.Approval) ([]models.ReleaseJobTrigger, error) {
			rows[0].ID = triggerID
			rows[0].JobID = &jobID
			return rows, nil
		})
	suite.mockTriggerRepo.EXPECT().ClearJob(triggerID).Return(nil)

	trigger, err := suite.triggerService.Redeploy(target.ID, version.ID, "alice")

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), trigger.JobID)
}

func (suite *TriggerServiceTestSuite) TestRedeploy_LiveJob_Conflict() {
	deploymentID := uuid.New()
	version := suite.readyVersion(deploymentID)
	target := suite.target(deploymentID)
	triggerID := uuid.New()
	jobID := uuid.New()

	suite.expectNoChannelBinding()
	suite.mockTargetRepo.EXPECT().GetByID(target.ID).Return(&target, nil)
	suite.mockVersionRepo.EXPECT().GetByID(version.ID).Return(&version, nil)
	suite.mockTriggerRepo.EXPECT().InsertWithApprovals(gomock.Any(), nil).DoAndReturn(
		func(rows []models.ReleaseJobTrigger, _ []models.Approval) ([]models.ReleaseJobTrigger, error) {
			rows[0].ID = triggerID
			rows[0].JobID = &jobID
			return rows, nil
		})
	suite.mockTriggerRepo.EXPECT().ClearJob(triggerID).Return(gorm.ErrInvalidData)

	_, err := suite.triggerService.Redeploy(target.ID, version.ID, "alice")

	assert.ErrorIs(suite.T(), err, apperrors.ErrTriggerAlreadyDispatched)
}

func (suite *TriggerServiceTestSuite) TestRedeploy_TargetBelongsToOtherDeployment_Error() {
	version := suite.readyVersion(uuid.New())
	target := suite.target(uuid.New())

	suite.mockTargetRepo.EXPECT().GetByID(target.ID).Return(&target, nil)
	suite.mockVersionRepo.EXPECT().GetByID(version.ID).Return(&version, nil)
	suite.mockTriggerRepo.EXPECT().InsertWithApprovals(gomock.Any(), nil).Return([]models.ReleaseJobTrigger{}, nil)

	_, err := suite.triggerService.Redeploy(target.ID, version.ID, "alice")

	assert.ErrorIs(suite.T(), err, apperrors.ErrVersionNotReady)
}

func (suite *TriggerServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockTriggerRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.triggerService.GetByID(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTriggerNotFound)
}

func TestTriggerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TriggerServiceTestSuite))
}
