//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"release-orchestrator-backend/internal/database/models"
	"release-orchestrator-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// MetricRepositoryTestSuite tests the MetricRepository
type MetricRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MetricRepository
	topo          *topology
}

func (suite *MetricRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMetricRepository(suite.baseTestSuite.DB)
}

func (suite *MetricRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *MetricRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.topo = createTopology(suite.baseTestSuite)
}

func (suite *MetricRepositoryTestSuite) observe(name string, passed bool) {
	obs := &models.MetricObservation{
		DeploymentID:  suite.topo.Deployment.ID,
		EnvironmentID: suite.topo.Environment.ID,
		MetricName:    name,
		Passed:        passed,
	}
	suite.Require().NoError(suite.repo.Create(obs))
}

func (suite *MetricRepositoryTestSuite) TestCountWindow() {
	suite.observe("smoke-test", true)
	suite.observe("smoke-test", true)
	suite.observe("smoke-test", false)
	suite.observe("other-metric", true)

	since := time.Now().Add(-time.Hour)
	total, passed, err := suite.repo.CountWindow(suite.topo.Deployment.ID, suite.topo.Environment.ID, "smoke-test", since)
	suite.NoError(err)
	suite.Equal(3, total)
	suite.Equal(2, passed)
}

func (suite *MetricRepositoryTestSuite) TestCountWindowExcludesOlderObservations() {
	suite.observe("smoke-test", true)

	total, passed, err := suite.repo.CountWindow(suite.topo.Deployment.ID, suite.topo.Environment.ID, "smoke-test", time.Now().Add(time.Hour))
	suite.NoError(err)
	suite.Equal(0, total)
	suite.Equal(0, passed)
}

func (suite *MetricRepositoryTestSuite) TestCountWindowScopesByEnvironment() {
	suite.observe("smoke-test", true)

	env2 := testutils.NewEnvironmentFactory().WithSystem(suite.topo.System.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(env2).Error)

	total, _, err := suite.repo.CountWindow(suite.topo.Deployment.ID, env2.ID, "smoke-test", time.Now().Add(-time.Hour))
	suite.NoError(err)
	suite.Equal(0, total)
}

func TestMetricRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MetricRepositoryTestSuite))
}
