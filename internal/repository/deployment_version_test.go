//go:build integration
// +build integration

package repository

import (
	"testing"

	"release-orchestrator-backend/internal/database/models"
	"release-orchestrator-backend/internal/selector"
	"release-orchestrator-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// DeploymentVersionRepositoryTestSuite tests the DeploymentVersionRepository
type DeploymentVersionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *DeploymentVersionRepository
	factories     *testutils.FactorySet
	topo          *topology
}

func (suite *DeploymentVersionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewDeploymentVersionRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *DeploymentVersionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *DeploymentVersionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.topo = createTopology(suite.baseTestSuite)
}

func (suite *DeploymentVersionRepositoryTestSuite) TestUpsertSameTagUpdates() {
	v := suite.factories.Version.WithDeployment(suite.topo.Deployment.ID)
	v.Status = models.VersionStatusBuilding
	suite.NoError(suite.repo.Upsert(v))

	again := suite.factories.Version.WithDeployment(suite.topo.Deployment.ID)
	again.Tag = v.Tag
	again.Name = v.Name
	again.Status = models.VersionStatusReady
	suite.NoError(suite.repo.Upsert(again))

	retrieved, err := suite.repo.GetByTag(suite.topo.Deployment.ID, v.Tag)
	suite.NoError(err)
	suite.Equal(v.ID, retrieved.ID)
	suite.Equal(models.VersionStatusReady, retrieved.Status)

	var count int64
	suite.baseTestSuite.DB.Model(&models.DeploymentVersion{}).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *DeploymentVersionRepositoryTestSuite) TestSetStatus() {
	v := suite.topo.createReadyVersion(suite.baseTestSuite, "1.0.0")

	suite.NoError(suite.repo.SetStatus(v.ID, models.VersionStatusFailed, "build broke"))

	retrieved, err := suite.repo.GetByID(v.ID)
	suite.NoError(err)
	suite.Equal(models.VersionStatusFailed, retrieved.Status)
	suite.Equal("build broke", retrieved.Message)
}

func (suite *DeploymentVersionRepositoryTestSuite) TestGetReadyMatching() {
	ready := suite.topo.createReadyVersion(suite.baseTestSuite, "2.0.0")
	suite.topo.createReadyVersion(suite.baseTestSuite, "beta-3.0.0")

	building := suite.factories.Version.WithDeployment(suite.topo.Deployment.ID)
	building.Tag = "2.1.0"
	building.Status = models.VersionStatusBuilding
	suite.Require().NoError(suite.baseTestSuite.DB.Create(building).Error)

	cond := &selector.Condition{Type: selector.TypeTag, Operator: selector.OpStartsWith, Value: "2."}
	versions, err := suite.repo.GetReadyMatching(suite.topo.Deployment.ID, cond)
	suite.NoError(err)
	suite.Len(versions, 1)
	suite.Equal(ready.ID, versions[0].ID)
}

func (suite *DeploymentVersionRepositoryTestSuite) TestGetReadyMatchingNilSelector() {
	suite.topo.createReadyVersion(suite.baseTestSuite, "1.0.0")
	suite.topo.createReadyVersion(suite.baseTestSuite, "1.1.0")

	versions, err := suite.repo.GetReadyMatching(suite.topo.Deployment.ID, nil)
	suite.NoError(err)
	suite.Len(versions, 2)
}

func (suite *DeploymentVersionRepositoryTestSuite) TestGetReadyTags() {
	suite.topo.createReadyVersion(suite.baseTestSuite, "1.0.0")
	suite.topo.createReadyVersion(suite.baseTestSuite, "1.1.0")

	failed := suite.factories.Version.WithDeployment(suite.topo.Deployment.ID)
	failed.Tag = "1.2.0"
	failed.Status = models.VersionStatusFailed
	suite.Require().NoError(suite.baseTestSuite.DB.Create(failed).Error)

	tags, err := suite.repo.GetReadyTags(suite.topo.Deployment.ID)
	suite.NoError(err)
	suite.ElementsMatch([]string{"1.0.0", "1.1.0"}, tags)
}

func (suite *DeploymentVersionRepositoryTestSuite) TestGetByDeploymentIDNewestFirst() {
	suite.topo.createReadyVersion(suite.baseTestSuite, "1.0.0")
	suite.topo.createReadyVersion(suite.baseTestSuite, "1.1.0")

	versions, total, err := suite.repo.GetByDeploymentID(suite.topo.Deployment.ID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(versions, 2)
	suite.False(versions[0].CreatedAt.Before(versions[1].CreatedAt))
}

func TestDeploymentVersionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DeploymentVersionRepositoryTestSuite))
}
