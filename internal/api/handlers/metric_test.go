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

type MetricHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockMetricSvc *mocks.MockMetricServiceInterface
	handler       *handlers.MetricHandler
	router        *gin.Engine
}

func (suite *MetricHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMetricSvc = mocks.NewMockMetricServiceInterface(suite.ctrl)
	suite.handler = handlers.NewMetricHandler(suite.mockMetricSvc)

	suite.router = gin.New()
	suite.router.POST("/metrics", suite.handler.IngestMetric)
	suite.router.GET("/metrics/window", suite.handler.GetMetricWindow)
}

func (suite *MetricHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MetricHandlerTestSuite) TestIngestMetric_Accepted() {
	passed := true
	suite.mockMetricSvc.EXPECT().Ingest(gomock.Any()).DoAndReturn(
		func(req *service.IngestMetricRequest) error {
			assert.Equal(suite.T(), "smoke-test", req.MetricName)
			assert.True(suite.T(), *req.Passed)
			return nil
		})

	body, _ := json.Marshal(service.IngestMetricRequest{
		DeploymentID:  uuid.New(),
		EnvironmentID: uuid.New(),
		MetricName:    "smoke-test",
		Passed:        &passed,
	})
	req := httptest.NewRequest(http.MethodPost, "/metrics", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusAccepted, w.Code)
}

func (suite *MetricHandlerTestSuite) TestIngestMetric_DeploymentNotFound() {
	passed := false
	suite.mockMetricSvc.EXPECT().Ingest(gomock.Any()).Return(apperrors.ErrDeploymentNotFound)

	body, _ := json.Marshal(service.IngestMetricRequest{
		DeploymentID:  uuid.New(),
		EnvironmentID: uuid.New(),
		MetricName:    "smoke-test",
		Passed:        &passed,
	})
	req := httptest.NewRequest(http.MethodPost, "/metrics", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *MetricHandlerTestSuite) TestGetMetricWindow_Success() {
	deploymentID := uuid.New()
	environmentID := uuid.New()
	suite.mockMetricSvc.EXPECT().Window(deploymentID, environmentID, "smoke-test", 1800).Return(&service.MetricWindowResponse{
		MetricName: "smoke-test",
		Total:      10,
		Passed:     9,
		PassRate:   0.9,
	}, nil)

	url := "/metrics/window?deployment_id=" + deploymentID.String() +
		"&environment_id=" + environmentID.String() +
		"&metric_name=smoke-test&window_seconds=1800"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.MetricWindowResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), 10, got.Total)
	assert.InDelta(suite.T(), 0.9, got.PassRate, 0.0001)
}

func (suite *MetricHandlerTestSuite) TestGetMetricWindow_MissingMetricName() {
	deploymentID := uuid.New()
	environmentID := uuid.New()

	url := "/metrics/window?deployment_id=" + deploymentID.String() +
		"&environment_id=" + environmentID.String()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *MetricHandlerTestSuite) TestGetMetricWindow_InvalidDeploymentID() {
	req := httptest.NewRequest(http.MethodGet, "/metrics/window?deployment_id=abc", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestMetricHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MetricHandlerTestSuite))
}
