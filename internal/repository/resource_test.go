//go:build integration
// +build integration

package repository

import (
	"encoding/json"
	"testing"

	"release-orchestrator-backend/internal/database/models"
	"release-orchestrator-backend/internal/selector"
	"release-orchestrator-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ResourceRepositoryTestSuite tests the ResourceRepository
type ResourceRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ResourceRepository
	factories     *testutils.FactorySet
	workspace     *models.Workspace
}

func (suite *ResourceRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewResourceRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *ResourceRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ResourceRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.workspace = suite.factories.Workspace.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.workspace).Error)
}

func (suite *ResourceRepositoryTestSuite) TestUpsertInsertsThenUpdates() {
	res := suite.factories.Resource.WithWorkspace(suite.workspace.ID)
	suite.NoError(suite.repo.Upsert(res))

	// re-ingest the same identifier with new attributes
	again := suite.factories.Resource.WithWorkspace(suite.workspace.ID)
	again.Identifier = res.Identifier
	again.Name = "renamed"
	again.Kind = "vm"
	suite.NoError(suite.repo.Upsert(again))

	retrieved, err := suite.repo.GetByIdentifier(suite.workspace.ID, res.Identifier)
	suite.NoError(err)
	suite.Equal(res.ID, retrieved.ID)
	suite.Equal("renamed", retrieved.Name)
	suite.Equal("vm", retrieved.Kind)

	var count int64
	suite.baseTestSuite.DB.Model(&models.Resource{}).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *ResourceRepositoryTestSuite) TestUpsertRevivesSoftDeleted() {
	res := suite.factories.Resource.WithWorkspace(suite.workspace.ID)
	suite.NoError(suite.repo.Upsert(res))
	suite.NoError(suite.repo.Delete(res.ID))

	_, err := suite.repo.GetByID(res.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	// the provider reports it again
	again := suite.factories.Resource.WithWorkspace(suite.workspace.ID)
	again.Identifier = res.Identifier
	suite.NoError(suite.repo.Upsert(again))

	retrieved, err := suite.repo.GetByID(res.ID)
	suite.NoError(err)
	suite.Equal(res.Identifier, retrieved.Identifier)
}

func (suite *ResourceRepositoryTestSuite) TestGetByWorkspaceID() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Upsert(suite.factories.Resource.WithWorkspace(suite.workspace.ID)))
	}
	other := suite.factories.Workspace.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(other).Error)
	suite.NoError(suite.repo.Upsert(suite.factories.Resource.WithWorkspace(other.ID)))

	items, total, err := suite.repo.GetByWorkspaceID(suite.workspace.ID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(items, 3)
}

func (suite *ResourceRepositoryTestSuite) TestGetMatching() {
	prod := suite.factories.Resource.WithWorkspace(suite.workspace.ID)
	prod.Metadata = json.RawMessage(`{"tier":"prod"}`)
	suite.NoError(suite.repo.Upsert(prod))

	staging := suite.factories.Resource.WithWorkspace(suite.workspace.ID)
	staging.Metadata = json.RawMessage(`{"tier":"staging"}`)
	suite.NoError(suite.repo.Upsert(staging))

	bare := suite.factories.Resource.WithWorkspace(suite.workspace.ID)
	bare.Metadata = nil
	suite.NoError(suite.repo.Upsert(bare))

	cond := &selector.Condition{Type: selector.TypeMetadata, Operator: selector.OpEquals, Key: "tier", Value: "prod"}
	matched, err := suite.repo.GetMatching(suite.workspace.ID, cond)
	suite.NoError(err)
	suite.Len(matched, 1)
	suite.Equal(prod.ID, matched[0].ID)
}

func (suite *ResourceRepositoryTestSuite) TestGetMatchingNilSelectorMatchesAll() {
	for i := 0; i < 2; i++ {
		suite.NoError(suite.repo.Upsert(suite.factories.Resource.WithWorkspace(suite.workspace.ID)))
	}

	matched, err := suite.repo.GetMatching(suite.workspace.ID, nil)
	suite.NoError(err)
	suite.Len(matched, 2)
}

func (suite *ResourceRepositoryTestSuite) TestGetMatchingAbsentMetadataKey() {
	bare := suite.factories.Resource.WithWorkspace(suite.workspace.ID)
	bare.Metadata = nil
	suite.NoError(suite.repo.Upsert(bare))

	// absent key satisfies only negated operators
	neq := &selector.Condition{Type: selector.TypeMetadata, Operator: selector.OpNotEquals, Key: "tier", Value: "prod"}
	matched, err := suite.repo.GetMatching(suite.workspace.ID, neq)
	suite.NoError(err)
	suite.Len(matched, 1)

	eq := &selector.Condition{Type: selector.TypeMetadata, Operator: selector.OpEquals, Key: "tier", Value: "prod"}
	matched, err = suite.repo.GetMatching(suite.workspace.ID, eq)
	suite.NoError(err)
	suite.Empty(matched)
}

func TestResourceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ResourceRepositoryTestSuite))
}
