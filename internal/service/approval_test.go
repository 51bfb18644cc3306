package service_test

import (
	"encoding/json"
	"testing"
	"time"

	"release-orchestrator-backend/internal/database/models"
	apperrors "release-orchestrator-backend/internal/errors"
	"release-orchestrator-backend/internal/mocks"
	"release-orchestrator-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakePoker struct {
	pokes int
}

func (p *fakePoker) Poke() {
	p.pokes++
}

type ApprovalServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockApprovalRepo *mocks.MockApprovalRepositoryInterface
	mockPolicyRepo   *mocks.MockPolicyRepositoryInterface
	mockVersionRepo  *mocks.MockDeploymentVersionRepositoryInterface
	poker            *fakePoker
	approvalService  *service.ApprovalService
}

func (suite *ApprovalServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockApprovalRepo = mocks.NewMockApprovalRepositoryInterface(suite.ctrl)
	suite.mockPolicyRepo = mocks.NewMockPolicyRepositoryInterface(suite.ctrl)
	suite.mockVersionRepo = mocks.NewMockDeploymentVersionRepositoryInterface(suite.ctrl)
	suite.poker = &fakePoker{}
	suite.approvalService = service.NewApprovalService(
		suite.mockApprovalRepo,
		suite.mockPolicyRepo,
		suite.mockVersionRepo,
		suite.poker,
		validator.New(),
	)
}

func (suite *ApprovalServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func boolPtr(b bool) *bool {
	return &b
}

func openPolicy(id uuid.UUID) *models.Policy {
	return &models.Policy{
		BaseModel: models.BaseModel{ID: id},
		Name:      "release-gate",
		Enabled:   true,
		Approvals: []models.PolicyRuleApproval{{RequiredApprovals: 1, Enabled: true}},
	}
}

func restrictedPolicy(id uuid.UUID, roles ...string) *models.Policy {
	encoded, _ := json.Marshal(roles)
	return &models.Policy{
		BaseModel: models.BaseModel{ID: id},
		Name:      "release-gate",
		Enabled:   true,
		Approvals: []models.PolicyRuleApproval{{
			RequiredApprovals: 1,
			ApproverRoles:     encoded,
			Enabled:           true,
		}},
	}
}

func (suite *ApprovalServiceTestSuite) TestAssign_ValidationFails() {
	err := suite.approvalService.Assign(&service.AssignApproversRequest{
		PolicyID:  uuid.New(),
		VersionID: uuid.New(),
	})

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *ApprovalServiceTestSuite) TestAssign_PolicyNotFound() {
	policyID := uuid.New()
	suite.mockPolicyRepo.EXPECT().GetByID(policyID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.approvalService.Assign(&service.AssignApproversRequest{
		PolicyID:    policyID,
		VersionID:   uuid.New(),
		ApproverIDs: []string{"alice"},
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrPolicyNotFound)
}

func (suite *ApprovalServiceTestSuite) TestAssign_CreatesPendingRows() {
	policyID := uuid.New()
	versionID := uuid.New()
	suite.mockPolicyRepo.EXPECT().GetByID(policyID).Return(openPolicy(policyID), nil)
	suite.mockVersionRepo.EXPECT().GetByID(versionID).Return(&models.DeploymentVersion{}, nil)
	suite.mockApprovalRepo.EXPECT().CreatePending(gomock.Any()).DoAndReturn(
		func(rows []models.Approval) error {
			assert.Len(suite.T(), rows, 2)
			assert.Equal(suite.T(), "alice", rows[0].ApproverID)
			assert.Equal(suite.T(), models.ApprovalStatusPending, rows[0].Status)
			assert.Equal(suite.T(), "bob", rows[1].ApproverID)
			return nil
		})

	err := suite.approvalService.Assign(&service.AssignApproversRequest{
		PolicyID:    policyID,
		VersionID:   versionID,
		ApproverIDs: []string{"alice", "bob"},
	})

	assert.NoError(suite.T(), err)
}

func (suite *ApprovalServiceTestSuite) TestDecide_MissingActor() {
	_, err := suite.approvalService.Decide(&service.DecideApprovalRequest{
		PolicyID:  uuid.New(),
		VersionID: uuid.New(),
		Approve:   boolPtr(true),
	}, "", "")

	assert.ErrorIs(suite.T(), err, apperrors.ErrMissingActor)
}

func (suite *ApprovalServiceTestSuite) TestDecide_ApproverNotQualified() {
	policyID := uuid.New()
	versionID := uuid.New()
	suite.mockPolicyRepo.EXPECT().GetByID(policyID).Return(restrictedPolicy(policyID, "release-manager"), nil).Times(2)
	suite.mockVersionRepo.EXPECT().GetByID(versionID).Return(&models.DeploymentVersion{}, nil)

	_, err := suite.approvalService.Decide(&service.DecideApprovalRequest{
		PolicyID:  policyID,
		VersionID: versionID,
		Approve:   boolPtr(true),
	}, "alice", "viewer")

	assert.ErrorIs(suite.T(), err, apperrors.ErrApproverNotQualified)
}

func (suite *ApprovalServiceTestSuite) TestDecide_Approve_RecordsVerdictAndPokes() {
	policyID := uuid.New()
	versionID := uuid.New()
	approvalID := uuid.New()
	decidedAt := time.Now()

	pending := models.Approval{
		BaseModel:  models.BaseModel{ID: approvalID, CreatedAt: decidedAt.Add(-time.Minute)},
		PolicyID:   policyID,
		VersionID:  versionID,
		ApproverID: "alice",
		Status:     models.ApprovalStatusPending,
	}
	decided := pending
	decided.Status = models.ApprovalStatusApproved
	decided.Reason = "looks good"
	decided.DecidedAt = &decidedAt

	suite.mockPolicyRepo.EXPECT().GetByID(policyID).Return(openPolicy(policyID), nil).Times(2)
	suite.mockVersionRepo.EXPECT().GetByID(versionID).Return(&models.DeploymentVersion{}, nil)
	suite.mockApprovalRepo.EXPECT().CreatePending(gomock.Any()).Return(nil)
	suite.mockApprovalRepo.EXPECT().GetByPolicyAndVersion(policyID, versionID).Return([]models.Approval{pending}, nil)
	suite.mockApprovalRepo.EXPECT().Decide(approvalID, models.ApprovalStatusApproved, "looks good").Return(nil)
	suite.mockApprovalRepo.EXPECT().GetByPolicyAndVersion(policyID, versionID).Return([]models.Approval{decided}, nil)

	resp, err := suite.approvalService.Decide(&service.DecideApprovalRequest{
		PolicyID:  policyID,
		VersionID: versionID,
		Approve:   boolPtr(true),
		Reason:    "looks good",
	}, "alice", "operator")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ApprovalStatusApproved, resp.Status)
	assert.Equal(suite.T(), "alice", resp.ApproverID)
	assert.NotNil(suite.T(), resp.DecidedAt)
	assert.Equal(suite.T(), 1, suite.poker.pokes)
}

func (suite *ApprovalServiceTestSuite) TestDecide_Reject_RecordsRejection() {
	policyID := uuid.New()
	versionID := uuid.New()
	approvalID := uuid.New()

	pending := models.Approval{
		BaseModel:  models.BaseModel{ID: approvalID},
		PolicyID:   policyID,
		VersionID:  versionID,
		ApproverID: "bob",
		Status:     models.ApprovalStatusPending,
	}
	rejected := pending
	rejected.Status = models.ApprovalStatusRejected

	suite.mockPolicyRepo.EXPECT().GetByID(policyID).Return(openPolicy(policyID), nil).Times(2)
	suite.mockVersionRepo.EXPECT().GetByID(versionID).Return(&models.DeploymentVersion{}, nil)
	suite.mockApprovalRepo.EXPECT().CreatePending(gomock.Any()).Return(nil)
	suite.mockApprovalRepo.EXPECT().GetByPolicyAndVersion(policyID, versionID).Return([]models.Approval{pending}, nil)
	suite.mockApprovalRepo.EXPECT().Decide(approvalID, models.ApprovalStatusRejected, "too risky").Return(nil)
	suite.mockApprovalRepo.EXPECT().GetByPolicyAndVersion(policyID, versionID).Return([]models.Approval{rejected}, nil)

	resp, err := suite.approvalService.Decide(&service.DecideApprovalRequest{
		PolicyID:  policyID,
		VersionID: versionID,
		Approve:   boolPtr(false),
		Reason:    "too risky",
	}, "bob", "operator")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ApprovalStatusRejected, resp.Status)
}

func (suite *ApprovalServiceTestSuite) TestDecide_AlreadyDecided_Conflict() {
	policyID := uuid.New()
	versionID := uuid.New()
	approvalID := uuid.New()

	already := models.Approval{
		BaseModel:  models.BaseModel{ID: approvalID},
		PolicyID:   policyID,
		VersionID:  versionID,
		ApproverID: "alice",
		Status:     models.ApprovalStatusApproved,
	}

	suite.mockPolicyRepo.EXPECT().GetByID(policyID).Return(openPolicy(policyID), nil).Times(2)
	suite.mockVersionRepo.EXPECT().GetByID(versionID).Return(&models.DeploymentVersion{}, nil)
	suite.mockApprovalRepo.EXPECT().CreatePending(gomock.Any()).Return(nil)
	suite.mockApprovalRepo.EXPECT().GetByPolicyAndVersion(policyID, versionID).Return([]models.Approval{already}, nil)
	suite.mockApprovalRepo.EXPECT().Decide(approvalID, models.ApprovalStatusRejected, "").Return(gorm.ErrRecordNotFound)

	_, err := suite.approvalService.Decide(&service.DecideApprovalRequest{
		PolicyID:  policyID,
		VersionID: versionID,
		Approve:   boolPtr(false),
	}, "alice", "operator")

	assert.ErrorIs(suite.T(), err, apperrors.ErrApprovalAlreadyDecided)
	assert.Equal(suite.T(), 0, suite.poker.pokes)
}

func (suite *ApprovalServiceTestSuite) TestGetPendingForApprover_NormalizesPagination() {
	suite.mockApprovalRepo.EXPECT().GetPendingByApprover("alice", 20, 0).Return([]models.Approval{}, int64(0), nil)

	resp, err := suite.approvalService.GetPendingForApprover("alice", 0, 500)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), 20, resp.PageSize)
}

func (suite *ApprovalServiceTestSuite) TestGetByVersionID_MapsRows() {
	versionID := uuid.New()
	suite.mockApprovalRepo.EXPECT().GetByVersionID(versionID).Return([]models.Approval{
		{ApproverID: "alice", Status: models.ApprovalStatusApproved},
		{ApproverID: "bob", Status: models.ApprovalStatusPending},
	}, nil)

	resp, err := suite.approvalService.GetByVersionID(versionID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "alice", resp[0].ApproverID)
	assert.Equal(suite.T(), models.ApprovalStatusPending, resp[1].Status)
}

func TestApprovalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalServiceTestSuite))
}
