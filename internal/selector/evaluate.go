package selector

import (
	"regexp"
	"strings"
	"time"

	"release-orchestrator-backend/internal/database/models"

	"github.com/sirupsen/logrus"
)

// Record is the flattened view of a candidate entity the evaluator runs
// against. Use the From* constructors rather than filling it by hand.
type Record struct {
	Name      string
	Kind      string
	Tag       string
	Metadata  map[string]string
	CreatedAt time.Time
}

// FromResource builds the evaluation view of a resource
func FromResource(r *models.Resource) Record {
	meta, err := r.MetadataMap()
	if err != nil {
		logrus.WithField("resource_id", r.ID).WithError(err).Warn("unreadable resource metadata, evaluating with empty map")
		meta = map[string]string{}
	}
	return Record{Name: r.Name, Kind: r.Kind, Metadata: meta, CreatedAt: r.CreatedAt}
}

// FromDeployment builds the evaluation view of a deployment
func FromDeployment(d *models.Deployment) Record {
	meta, err := d.MetadataMap()
	if err != nil {
		logrus.WithField("deployment_id", d.ID).WithError(err).Warn("unreadable deployment metadata, evaluating with empty map")
		meta = map[string]string{}
	}
	return Record{Name: d.Name, Metadata: meta, CreatedAt: d.CreatedAt}
}

// FromEnvironment builds the evaluation view of an environment
func FromEnvironment(e *models.Environment) Record {
	meta, err := e.MetadataMap()
	if err != nil {
		logrus.WithField("environment_id", e.ID).WithError(err).Warn("unreadable environment metadata, evaluating with empty map")
		meta = map[string]string{}
	}
	return Record{Name: e.Name, Metadata: meta, CreatedAt: e.CreatedAt}
}

// FromVersion builds the evaluation view of a deployment version
func FromVersion(v *models.DeploymentVersion) Record {
	meta, err := v.MetadataMap()
	if err != nil {
		logrus.WithField("version_id", v.ID).WithError(err).Warn("unreadable version metadata, evaluating with empty map")
		meta = map[string]string{}
	}
	return Record{Name: v.Name, Tag: v.Tag, Metadata: meta, CreatedAt: v.CreatedAt}
}

// Matches evaluates the condition against one record. A nil condition matches
// everything. Evaluation is deterministic and side-effect free; a regex that
// fails to compile evaluates to no-match and is logged, never raised.
func Matches(c *Condition, rec Record) bool {
	if c == nil {
		return true
	}
	result := matchNode(c, rec)
	if c.Not {
		return !result
	}
	return result
}

func matchNode(c *Condition, rec Record) bool {
	switch c.Type {
	case TypeComparison:
		if c.Operator == OpOr {
			for i := range c.Conditions {
				if Matches(&c.Conditions[i], rec) {
					return true
				}
			}
			return false
		}
		for i := range c.Conditions {
			if !Matches(&c.Conditions[i], rec) {
				return false
			}
		}
		return true
	case TypeMetadata:
		actual, ok := rec.Metadata[c.Key]
		if !ok {
			// absent key only satisfies negated operators
			return c.Operator == OpNotEquals || c.Operator == OpNotContains
		}
		return matchString(c.Operator, actual, c.Value)
	case TypeName:
		return matchString(c.Operator, rec.Name, c.Value)
	case TypeTag:
		return matchString(c.Operator, rec.Tag, c.Value)
	case TypeKind:
		return rec.Kind == c.Value
	case TypeCreatedAt:
		bound, err := time.Parse(time.RFC3339, c.Value)
		if err != nil {
			logrus.WithError(err).Warn("invalid created-at bound in selector, treating as no match")
			return false
		}
		switch c.Operator {
		case OpBefore:
			return rec.CreatedAt.Before(bound)
		case OpAfter:
			return rec.CreatedAt.After(bound)
		case OpBeforeOrOn:
			return !rec.CreatedAt.After(bound)
		case OpAfterOrOn:
			return !rec.CreatedAt.Before(bound)
		}
		return false
	default:
		logrus.WithField("type", c.Type).Warn("unknown selector condition type, treating as no match")
		return false
	}
}

func matchString(op Operator, actual, expected string) bool {
	switch op {
	case OpEquals:
		return actual == expected
	case OpNotEquals:
		return actual != expected
	case OpContains:
		return strings.Contains(actual, expected)
	case OpNotContains:
		return !strings.Contains(actual, expected)
	case OpStartsWith:
		return strings.HasPrefix(actual, expected)
	case OpEndsWith:
		return strings.HasSuffix(actual, expected)
	case OpRegex:
		re, err := regexp.Compile(expected)
		if err != nil {
			logrus.WithField("pattern", expected).WithError(err).Warn("selector regex failed to compile, treating as no match")
			return false
		}
		return re.MatchString(actual)
	default:
		logrus.WithField("operator", op).Warn("unknown string operator in selector, treating as no match")
		return false
	}
}
