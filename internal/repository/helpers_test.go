//go:build integration
// +build integration

package repository

import (
	"release-orchestrator-backend/internal/database/models"
	"release-orchestrator-backend/internal/testutils"
)

// topology is a fully persisted release topology for repository tests
type topology struct {
	Workspace   *models.Workspace
	System      *models.System
	Deployment  *models.Deployment
	Environment *models.Environment
	Resource    *models.Resource
	Target      *models.ReleaseTarget
}

// createTopology persists a workspace, system, deployment, environment,
// resource and the release target joining them, in dependency order.
func createTopology(s *testutils.BaseTestSuite) *topology {
	factories := testutils.NewFactorySet()
	ws, sys, dep, env, res, rt := factories.CreateReleaseTopology()

	s.Require().NoError(s.DB.Create(ws).Error)
	s.Require().NoError(s.DB.Create(sys).Error)
	s.Require().NoError(s.DB.Create(dep).Error)
	s.Require().NoError(s.DB.Create(env).Error)
	s.Require().NoError(s.DB.Create(res).Error)
	s.Require().NoError(s.DB.Create(rt).Error)

	return &topology{
		Workspace:   ws,
		System:      sys,
		Deployment:  dep,
		Environment: env,
		Resource:    res,
		Target:      rt,
	}
}

// createReadyVersion persists a ready version for the topology's deployment
func (tp *topology) createReadyVersion(s *testutils.BaseTestSuite, tag string) *models.DeploymentVersion {
	v := testutils.NewVersionFactory().WithDeployment(tp.Deployment.ID)
	v.Name = tag
	v.Tag = tag
	s.Require().NoError(s.DB.Create(v).Error)
	return v
}
