//go:build integration
// +build integration

package repository

import (
	"testing"

	"release-orchestrator-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// WorkspaceRepositoryTestSuite tests the WorkspaceRepository
type WorkspaceRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *WorkspaceRepository
	factories     *testutils.FactorySet
}

func (suite *WorkspaceRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewWorkspaceRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *WorkspaceRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *WorkspaceRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *WorkspaceRepositoryTestSuite) TestCreateAndGetByID() {
	ws := suite.factories.Workspace.Create()

	suite.NoError(suite.repo.Create(ws))

	retrieved, err := suite.repo.GetByID(ws.ID)
	suite.NoError(err)
	suite.Equal(ws.ID, retrieved.ID)
	suite.Equal(ws.Slug, retrieved.Slug)
}

func (suite *WorkspaceRepositoryTestSuite) TestGetByIDNotFound() {
	ws, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(ws)
}

func (suite *WorkspaceRepositoryTestSuite) TestGetBySlug() {
	ws := suite.factories.Workspace.WithSlug("platform")
	suite.NoError(suite.repo.Create(ws))

	retrieved, err := suite.repo.GetBySlug("platform")
	suite.NoError(err)
	suite.Equal(ws.ID, retrieved.ID)

	_, err = suite.repo.GetBySlug("missing")
	suite.Equal(gorm.ErrRecordNotFound, err)
}

func (suite *WorkspaceRepositoryTestSuite) TestDuplicateSlugRejected() {
	suite.NoError(suite.repo.Create(suite.factories.Workspace.WithSlug("dup")))

	err := suite.repo.Create(suite.factories.Workspace.WithSlug("dup"))
	suite.Error(err)
}

func (suite *WorkspaceRepositoryTestSuite) TestGetAllWithPagination() {
	for i := 0; i < 5; i++ {
		suite.NoError(suite.repo.Create(suite.factories.Workspace.Create()))
	}

	items, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(items, 2)

	items, total, err = suite.repo.GetAll(10, 4)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(items, 1)
}

func (suite *WorkspaceRepositoryTestSuite) TestUpdate() {
	ws := suite.factories.Workspace.Create()
	suite.NoError(suite.repo.Create(ws))

	ws.Name = "Renamed"
	suite.NoError(suite.repo.Update(ws))

	retrieved, err := suite.repo.GetByID(ws.ID)
	suite.NoError(err)
	suite.Equal("Renamed", retrieved.Name)
}

func (suite *WorkspaceRepositoryTestSuite) TestDelete() {
	ws := suite.factories.Workspace.Create()
	suite.NoError(suite.repo.Create(ws))

	suite.NoError(suite.repo.Delete(ws.ID))

	_, err := suite.repo.GetByID(ws.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

func TestWorkspaceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WorkspaceRepositoryTestSuite))
}
