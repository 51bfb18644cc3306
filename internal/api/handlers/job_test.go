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

type JobHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockJobSvc *mocks.MockJobServiceInterface
	handler    *handlers.JobHandler
	router     *gin.Engine
}

func (suite *JobHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockJobSvc = mocks.NewMockJobServiceInterface(suite.ctrl)
	suite.handler = handlers.NewJobHandler(suite.mockJobSvc)

	suite.router = gin.New()
	suite.router.GET("/jobs", suite.handler.ListJobsByStatus)
	suite.router.GET("/jobs/:id", suite.handler.GetJob)
	suite.router.PATCH("/jobs/:id/status", suite.handler.UpdateJobStatus)
	suite.router.GET("/jobs/:id/trigger", suite.handler.GetJobTrigger)
}

func (suite *JobHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *JobHandlerTestSuite) TestGetJob_Success() {
	id := uuid.New()
	suite.mockJobSvc.EXPECT().GetByID(id).Return(&service.JobResponse{
		ID:     id,
		Status: models.JobStatusInProgress,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/jobs/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.JobResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), id, got.ID)
	assert.Equal(suite.T(), models.JobStatusInProgress, got.Status)
}

func (suite *JobHandlerTestSuite) TestGetJob_NotFound() {
	id := uuid.New()
	suite.mockJobSvc.EXPECT().GetByID(id).Return(nil, apperrors.ErrJobNotFound)

	req := httptest.NewRequest(http.MethodGet, "/jobs/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *JobHandlerTestSuite) TestListJobsByStatus_MissingStatus() {
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *JobHandlerTestSuite) TestListJobsByStatus_Success() {
	suite.mockJobSvc.EXPECT().GetByStatus(models.JobStatusPending, 1, 50).Return(&service.JobListResponse{
		Jobs:     []service.JobResponse{{Status: models.JobStatusPending}},
		Total:    1,
		Page:     1,
		PageSize: 50,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/jobs?status=pending", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.JobListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(1), got.Total)
}

func (suite *JobHandlerTestSuite) TestUpdateJobStatus_Success() {
	id := uuid.New()
	suite.mockJobSvc.EXPECT().UpdateStatus(id, gomock.Any()).DoAndReturn(
		func(_ uuid.UUID, req *service.UpdateJobStatusRequest) (*service.JobResponse, error) {
			assert.Equal(suite.T(), models.JobStatusCompleted, req.Status)
			assert.Equal(suite.T(), "build-99", req.ExternalID)
			return &service.JobResponse{ID: id, Status: models.JobStatusCompleted}, nil
		})

	body, _ := json.Marshal(service.UpdateJobStatusRequest{
		Status:     models.JobStatusCompleted,
		ExternalID: "build-99",
	})
	req := httptest.NewRequest(http.MethodPatch, "/jobs/"+id.String()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *JobHandlerTestSuite) TestUpdateJobStatus_IllegalTransition_Conflict() {
	id := uuid.New()
	suite.mockJobSvc.EXPECT().UpdateStatus(id, gomock.Any()).Return(nil, apperrors.ErrJobStatusTransition)

	body, _ := json.Marshal(service.UpdateJobStatusRequest{Status: models.JobStatusInProgress})
	req := httptest.NewRequest(http.MethodPatch, "/jobs/"+id.String()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *JobHandlerTestSuite) TestGetJobTrigger_Success() {
	id := uuid.New()
	trigger := sampleTrigger(uuid.New(), uuid.New())
	suite.mockJobSvc.EXPECT().GetTrigger(id).Return(trigger, nil)

	req := httptest.NewRequest(http.MethodGet, "/jobs/"+id.String()+"/trigger", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.TriggerResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), trigger.ID, got.ID)
}

func TestJobHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(JobHandlerTestSuite))
}
