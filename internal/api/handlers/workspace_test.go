package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"release-orchestrator-backend/internal/api/handlers"
	apperrors "release-orchestrator-backend/internal/errors"
	"release-orchestrator-backend/internal/mocks"
	"release-orchestrator-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WorkspaceHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockWorkspaceSvc *mocks.MockWorkspaceServiceInterface
	handler          *handlers.WorkspaceHandler
	router           *gin.Engine
}

func (suite *WorkspaceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockWorkspaceSvc = mocks.NewMockWorkspaceServiceInterface(suite.ctrl)
	suite.handler = handlers.NewWorkspaceHandler(suite.mockWorkspaceSvc)

	suite.router = gin.New()
	suite.router.POST("/workspaces", suite.handler.CreateWorkspace)
	suite.router.GET("/workspaces", suite.handler.ListWorkspaces)
	suite.router.GET("/workspaces/:id", suite.handler.GetWorkspace)
	suite.router.GET("/workspaces/slug/:slug", suite.handler.GetWorkspaceBySlug)
	suite.router.PUT("/workspaces/:id", suite.handler.UpdateWorkspace)
	suite.router.DELETE("/workspaces/:id", suite.handler.DeleteWorkspace)
}

func (suite *WorkspaceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkspaceHandlerTestSuite) TestCreateWorkspace_Success() {
	resp := &service.WorkspaceResponse{
		ID:   uuid.New(),
		Name: "Platform Team",
		Slug: "platform-team",
	}
	suite.mockWorkspaceSvc.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(req *service.CreateWorkspaceRequest) (*service.WorkspaceResponse, error) {
			assert.Equal(suite.T(), "Platform Team", req.Name)
			assert.Equal(suite.T(), "platform-team", req.Slug)
			return resp, nil
		})

	body, _ := json.Marshal(service.CreateWorkspaceRequest{Name: "Platform Team", Slug: "platform-team"})
	req := httptest.NewRequest(http.MethodPost, "/workspaces", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.WorkspaceResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "platform-team", got.Slug)
}

func (suite *WorkspaceHandlerTestSuite) TestCreateWorkspace_DuplicateSlug_Conflict() {
	suite.mockWorkspaceSvc.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrWorkspaceExists)

	body, _ := json.Marshal(service.CreateWorkspaceRequest{Name: "Platform Team", Slug: "platform-team"})
	req := httptest.NewRequest(http.MethodPost, "/workspaces", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *WorkspaceHandlerTestSuite) TestListWorkspaces_DefaultPagination() {
	suite.mockWorkspaceSvc.EXPECT().GetAll(1, 50).Return(&service.WorkspaceListResponse{
		Workspaces: []service.WorkspaceResponse{{Slug: "platform-team"}},
		Total:      1,
		Page:       1,
		PageSize:   50,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/workspaces", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.WorkspaceListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(1), got.Total)
}

func (suite *WorkspaceHandlerTestSuite) TestGetWorkspace_NotFound() {
	id := uuid.New()
	suite.mockWorkspaceSvc.EXPECT().GetByID(id).Return(nil, apperrors.ErrWorkspaceNotFound)

	req := httptest.NewRequest(http.MethodGet, "/workspaces/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *WorkspaceHandlerTestSuite) TestGetWorkspaceBySlug_Success() {
	suite.mockWorkspaceSvc.EXPECT().GetBySlug("platform-team").Return(&service.WorkspaceResponse{
		ID:   uuid.New(),
		Slug: "platform-team",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/workspaces/slug/platform-team", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *WorkspaceHandlerTestSuite) TestUpdateWorkspace_Success() {
	id := uuid.New()
	suite.mockWorkspaceSvc.EXPECT().Update(id, gomock.Any()).DoAndReturn(
		func(_ uuid.UUID, req *service.UpdateWorkspaceRequest) (*service.WorkspaceResponse, error) {
			assert.Equal(suite.T(), "Renamed", req.Name)
			return &service.WorkspaceResponse{ID: id, Name: "Renamed"}, nil
		})

	body, _ := json.Marshal(service.UpdateWorkspaceRequest{Name: "Renamed"})
	req := httptest.NewRequest(http.MethodPut, "/workspaces/"+id.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *WorkspaceHandlerTestSuite) TestDeleteWorkspace_InvalidID() {
	req := httptest.NewRequest(http.MethodDelete, "/workspaces/not-a-uuid", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestWorkspaceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkspaceHandlerTestSuite))
}
