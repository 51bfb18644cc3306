package selector

import (
	"fmt"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"
)

// ColumnMap names the table columns a condition tree is translated against.
// An empty field means the attribute does not exist for that table and any
// condition on it translates to FALSE.
type ColumnMap struct {
	Name      string
	Kind      string
	Tag       string
	Metadata  string
	CreatedAt string
}

// ResourceColumns maps conditions onto the resources table
var ResourceColumns = ColumnMap{Name: "name", Kind: "kind", Metadata: "metadata", CreatedAt: "created_at"}

// DeploymentColumns maps conditions onto the deployments table
var DeploymentColumns = ColumnMap{Name: "name", Metadata: "metadata", CreatedAt: "created_at"}

// EnvironmentColumns maps conditions onto the environments table
var EnvironmentColumns = ColumnMap{Name: "name", Metadata: "metadata", CreatedAt: "created_at"}

// VersionColumns maps conditions onto the deployment_versions table
var VersionColumns = ColumnMap{Name: "name", Tag: "tag", Metadata: "metadata", CreatedAt: "created_at"}

// ToSQL translates a condition tree into a Postgres boolean expression with
// positional placeholders, preserving the in-memory Matches semantics exactly:
// and over no children is TRUE, or over no children is FALSE, absent metadata
// keys only satisfy negated operators, and an uncompilable regex becomes FALSE.
// A nil condition translates to TRUE.
func ToSQL(c *Condition, cols ColumnMap) (string, []interface{}) {
	if c == nil {
		return "TRUE", nil
	}
	expr, args := nodeSQL(c, cols)
	if c.Not {
		return fmt.Sprintf("NOT (%s)", expr), args
	}
	return expr, args
}

func nodeSQL(c *Condition, cols ColumnMap) (string, []interface{}) {
	switch c.Type {
	case TypeComparison:
		if len(c.Conditions) == 0 {
			if c.Operator == OpOr {
				return "FALSE", nil
			}
			return "TRUE", nil
		}
		joiner := " AND "
		if c.Operator == OpOr {
			joiner = " OR "
		}
		var args []interface{}
		expr := ""
		for i := range c.Conditions {
			childExpr, childArgs := ToSQL(&c.Conditions[i], cols)
			if i > 0 {
				expr += joiner
			}
			expr += "(" + childExpr + ")"
			args = append(args, childArgs...)
		}
		return expr, args
	case TypeMetadata:
		if cols.Metadata == "" {
			return "FALSE", nil
		}
		keyed := fmt.Sprintf("%s ->> ?", cols.Metadata)
		expr, valueArgs, ok := stringSQL(c.Operator, keyed, c.Value)
		if !ok {
			return expr, nil
		}
		// placeholder order: key for the presence guard, key again inside the
		// comparison, then the value argument(s)
		args := append([]interface{}{c.Key, c.Key}, valueArgs...)
		switch c.Operator {
		case OpNotEquals, OpNotContains:
			// absent key satisfies negated operators
			return fmt.Sprintf("(%s IS NULL OR %s)", keyed, expr), args
		default:
			return fmt.Sprintf("(%s IS NOT NULL AND %s)", keyed, expr), args
		}
	case TypeName:
		if cols.Name == "" {
			return "FALSE", nil
		}
		expr, args, _ := stringSQL(c.Operator, cols.Name, c.Value)
		return expr, args
	case TypeTag:
		if cols.Tag == "" {
			return "FALSE", nil
		}
		expr, args, _ := stringSQL(c.Operator, cols.Tag, c.Value)
		return expr, args
	case TypeKind:
		if cols.Kind == "" {
			return "FALSE", nil
		}
		return fmt.Sprintf("%s = ?", cols.Kind), []interface{}{c.Value}
	case TypeCreatedAt:
		if cols.CreatedAt == "" {
			return "FALSE", nil
		}
		bound, err := time.Parse(time.RFC3339, c.Value)
		if err != nil {
			logrus.WithError(err).Warn("invalid created-at bound in selector, translating to FALSE")
			return "FALSE", nil
		}
		var op string
		switch c.Operator {
		case OpBefore:
			op = "<"
		case OpAfter:
			op = ">"
		case OpBeforeOrOn:
			op = "<="
		case OpAfterOrOn:
			op = ">="
		default:
			return "FALSE", nil
		}
		return fmt.Sprintf("%s %s ?", cols.CreatedAt, op), []interface{}{bound}
	default:
		logrus.WithField("type", c.Type).Warn("unknown selector condition type, translating to FALSE")
		return "FALSE", nil
	}
}

// stringSQL renders one string comparison. strpos/starts_with are used instead
// of LIKE so user values never need wildcard escaping. The third return is
// false when the whole expression collapsed to a constant.
func stringSQL(op Operator, column, value string) (string, []interface{}, bool) {
	switch op {
	case OpEquals:
		return fmt.Sprintf("%s = ?", column), []interface{}{value}, true
	case OpNotEquals:
		return fmt.Sprintf("%s <> ?", column), []interface{}{value}, true
	case OpContains:
		return fmt.Sprintf("strpos(%s, ?) > 0", column), []interface{}{value}, true
	case OpNotContains:
		return fmt.Sprintf("strpos(%s, ?) = 0", column), []interface{}{value}, true
	case OpStartsWith:
		return fmt.Sprintf("starts_with(%s, ?)", column), []interface{}{value}, true
	case OpEndsWith:
		return fmt.Sprintf("right(%s, length(?)) = ?", column), []interface{}{value, value}, true
	case OpRegex:
		// compile in Go first so an invalid pattern fails closed here instead
		// of erroring the whole query
		if _, err := regexp.Compile(value); err != nil {
			logrus.WithField("pattern", value).WithError(err).Warn("selector regex failed to compile, translating to FALSE")
			return "FALSE", nil, false
		}
		return fmt.Sprintf("%s ~ ?", column), []interface{}{value}, true
	default:
		return "FALSE", nil, false
	}
}
