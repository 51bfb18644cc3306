package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"release-orchestrator-backend/internal/api/handlers"
	"release-orchestrator-backend/internal/database/models"
	apperrors "release-orchestrator-backend/internal/errors"
	"release-orchestrator-backend/internal/mocks"
	"release-orchestrator-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PolicyHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockPolicySvc *mocks.MockPolicyServiceInterface
	handler       *handlers.PolicyHandler
	router        *gin.Engine
}

func (suite *PolicyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPolicySvc = mocks.NewMockPolicyServiceInterface(suite.ctrl)
	suite.handler = handlers.NewPolicyHandler(suite.mockPolicySvc)

	suite.router = gin.New()
	suite.router.POST("/policies", suite.handler.CreatePolicy)
	suite.router.GET("/policies/:id", suite.handler.GetPolicy)
	suite.router.PUT("/policies/:id", suite.handler.UpdatePolicy)
	suite.router.DELETE("/policies/:id", suite.handler.DeletePolicy)
	suite.router.GET("/workspaces/:id/policies", suite.handler.ListPoliciesByWorkspace)
	suite.router.POST("/policies/:id/targets", suite.handler.AddPolicyTarget)
	suite.router.PUT("/policies/targets/:targetId", suite.handler.UpdatePolicyTarget)
	suite.router.DELETE("/policies/targets/:targetId", suite.handler.DeletePolicyTarget)
}

func (suite *PolicyHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func samplePolicy(workspaceID uuid.UUID) *models.Policy {
	return &models.Policy{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		WorkspaceID: workspaceID,
		Name:        "prod-gate",
		Priority:    10,
		Enabled:     true,
		Approvals:   []models.PolicyRuleApproval{{RequiredApprovals: 2, Enabled: true}},
	}
}

func (suite *PolicyHandlerTestSuite) TestCreatePolicy_Success() {
	workspaceID := uuid.New()
	policy := samplePolicy(workspaceID)
	suite.mockPolicySvc.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(req *service.CreatePolicyRequest) (*models.Policy, error) {
			assert.Equal(suite.T(), workspaceID, req.WorkspaceID)
			assert.Equal(suite.T(), "prod-gate", req.Name)
			assert.Len(suite.T(), req.Approvals, 1)
			return policy, nil
		})

	body, _ := json.Marshal(service.CreatePolicyRequest{
		WorkspaceID: workspaceID,
		Name:        "prod-gate",
		Priority:    10,
		Approvals:   []service.ApprovalRuleRequest{{RequiredApprovals: 2}},
	})
	req := httptest.NewRequest(http.MethodPost, "/policies", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.PolicyResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "prod-gate", got.Name)
	assert.True(suite.T(), got.Global)
	assert.Equal(suite.T(), 1, got.RuleCounts["approvals"])
}

func (suite *PolicyHandlerTestSuite) TestCreatePolicy_DuplicateName_Conflict() {
	suite.mockPolicySvc.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrPolicyExists)

	body, _ := json.Marshal(service.CreatePolicyRequest{WorkspaceID: uuid.New(), Name: "prod-gate"})
	req := httptest.NewRequest(http.MethodPost, "/policies", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *PolicyHandlerTestSuite) TestGetPolicy_NotFound() {
	id := uuid.New()
	suite.mockPolicySvc.EXPECT().GetByID(id).Return(nil, apperrors.ErrPolicyNotFound)

	req := httptest.NewRequest(http.MethodGet, "/policies/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *PolicyHandlerTestSuite) TestListPoliciesByWorkspace_Paginates() {
	workspaceID := uuid.New()
	policies := []models.Policy{*samplePolicy(workspaceID)}
	suite.mockPolicySvc.EXPECT().GetByWorkspaceID(workspaceID, 2, 10).Return(policies, int64(11), nil)

	req := httptest.NewRequest(http.MethodGet,
		"/workspaces/"+workspaceID.String()+"/policies?page=2&page_size=10", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.PolicyListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(11), got.Total)
	assert.Equal(suite.T(), 2, got.Page)
	assert.Len(suite.T(), got.Policies, 1)
}

func (suite *PolicyHandlerTestSuite) TestUpdatePolicy_Success() {
	id := uuid.New()
	updated := samplePolicy(uuid.New())
	updated.ID = id
	updated.Name = "prod-gate-v2"
	suite.mockPolicySvc.EXPECT().Update(id, gomock.Any()).DoAndReturn(
		func(_ uuid.UUID, req *service.UpdatePolicyRequest) (*models.Policy, error) {
			assert.Equal(suite.T(), "prod-gate-v2", req.Name)
			return updated, nil
		})

	body, _ := json.Marshal(service.UpdatePolicyRequest{Name: "prod-gate-v2"})
	req := httptest.NewRequest(http.MethodPut, "/policies/"+id.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.PolicyResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "prod-gate-v2", got.Name)
}

func (suite *PolicyHandlerTestSuite) TestDeletePolicy_Success() {
	id := uuid.New()
	suite.mockPolicySvc.EXPECT().Delete(id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/policies/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *PolicyHandlerTestSuite) TestAddPolicyTarget_Success() {
	policyID := uuid.New()
	target := &models.PolicyTarget{
		BaseModel:          models.BaseModel{ID: uuid.New()},
		PolicyID:           policyID,
		DeploymentSelector: json.RawMessage(`{"type":"name","operator":"equals","value":"api-server"}`),
	}
	suite.mockPolicySvc.EXPECT().AddTarget(policyID, gomock.Any()).Return(target, nil)

	body, _ := json.Marshal(service.PolicyTargetRequest{
		DeploymentSelector: json.RawMessage(`{"type":"name","operator":"equals","value":"api-server"}`),
	})
	req := httptest.NewRequest(http.MethodPost, "/policies/"+policyID.String()+"/targets", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *PolicyHandlerTestSuite) TestAddPolicyTarget_InvalidSelector_BadRequest() {
	policyID := uuid.New()
	suite.mockPolicySvc.EXPECT().AddTarget(policyID, gomock.Any()).Return(nil, apperrors.ErrInvalidSelector)

	body, _ := json.Marshal(service.PolicyTargetRequest{
		DeploymentSelector: json.RawMessage(`{"operator":"equals"}`),
	})
	req := httptest.NewRequest(http.MethodPost, "/policies/"+policyID.String()+"/targets", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *PolicyHandlerTestSuite) TestUpdatePolicyTarget_NotFound() {
	targetID := uuid.New()
	suite.mockPolicySvc.EXPECT().UpdateTarget(targetID, gomock.Any()).
		Return(nil, apperrors.ErrPolicyTargetNotFound)

	body, _ := json.Marshal(service.PolicyTargetRequest{})
	req := httptest.NewRequest(http.MethodPut, "/policies/targets/"+targetID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *PolicyHandlerTestSuite) TestDeletePolicyTarget_Success() {
	targetID := uuid.New()
	suite.mockPolicySvc.EXPECT().DeleteTarget(targetID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/policies/targets/"+targetID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func TestPolicyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PolicyHandlerTestSuite))
}
