package rules

import (
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/sirupsen/logrus"
)

// ReleaseDependency requires another deployment to have a ready version
// satisfying a semver range before this one may proceed. Once the timeout has
// elapsed without a satisfying version the gate fails permanently; that is
// reported, not retried.
type ReleaseDependency struct {
	DependencyName    string
	VersionConstraint string
	// Timeout of zero means wait indefinitely.
	Timeout time.Duration
}

// Evaluate checks the dependency's ready version tags against the constraint.
// openedAt is when the gate started waiting. Tags that do not parse as semver
// are skipped rather than failing the evaluation.
func (d ReleaseDependency) Evaluate(now time.Time, readyTags []string, openedAt time.Time) Result {
	constraint, err := semver.NewConstraint(d.VersionConstraint)
	if err != nil {
		logrus.WithField("constraint", d.VersionConstraint).WithError(err).Warn("invalid dependency version constraint, denying")
		return Denied(fmt.Sprintf("invalid version constraint %q on dependency %q", d.VersionConstraint, d.DependencyName))
	}

	for _, tag := range readyTags {
		v, err := semver.NewVersion(tag)
		if err != nil {
			continue
		}
		if constraint.Check(v) {
			return Allowed()
		}
	}

	if d.Timeout > 0 {
		deadline := openedAt.Add(d.Timeout)
		if !now.Before(deadline) {
			return Blocked(fmt.Sprintf("dependency %q did not satisfy %q within %s", d.DependencyName, d.VersionConstraint, d.Timeout))
		}
		return DeniedUntil(fmt.Sprintf("waiting for dependency %q to satisfy %q", d.DependencyName, d.VersionConstraint), deadline)
	}
	return Denied(fmt.Sprintf("waiting for dependency %q to satisfy %q", d.DependencyName, d.VersionConstraint))
}
