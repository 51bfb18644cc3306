package auth

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Permission names used across the API surface
const (
	PermPolicyCreate     = "policy.create"
	PermPolicyUpdate     = "policy.update"
	PermPolicyDelete     = "policy.delete"
	PermChannelCreate    = "channel.create"
	PermChannelUpdate    = "channel.update"
	PermChannelDelete    = "channel.delete"
	PermEnvironmentWrite = "environment.write"
	PermDeploymentWrite  = "deployment.write"
	PermSystemWrite      = "system.write"
	PermWorkspaceWrite   = "workspace.write"
	PermResourceIngest   = "resource.ingest"
	PermVersionIngest    = "version.ingest"
	PermApprovalDecide   = "approval.decide"
	PermReleaseDispatch  = "release.dispatch"
	PermJobReport        = "job.report"
	PermMetricIngest     = "metric.ingest"
)

// RoleMap maps role names to granted permissions. "*" grants everything.
type RoleMap struct {
	Roles map[string][]string `yaml:"roles"`
}

// LoadRoleMap reads the role to permission mapping from a yaml file
func LoadRoleMap(path string) (*RoleMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read role map: %w", err)
	}
	var rm RoleMap
	if err := yaml.Unmarshal(data, &rm); err != nil {
		return nil, fmt.Errorf("parse role map: %w", err)
	}
	return &rm, nil
}

// DefaultRoleMap is used when no role map file is configured
func DefaultRoleMap() *RoleMap {
	return &RoleMap{Roles: map[string][]string{
		"admin":    {"*"},
		"operator": {PermReleaseDispatch, PermApprovalDecide, PermEnvironmentWrite, PermDeploymentWrite, PermChannelCreate, PermChannelUpdate, PermChannelDelete},
		"agent":    {PermResourceIngest, PermVersionIngest, PermJobReport, PermMetricIngest},
		"viewer":   {},
	}}
}

// Grants reports whether the role includes the permission
func (rm *RoleMap) Grants(role, permission string) bool {
	perms, ok := rm.Roles[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == "*" || p == permission {
			return true
		}
	}
	return false
}
