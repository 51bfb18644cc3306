package selector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToSQLComparison(t *testing.T) {
	t.Run("nil condition is TRUE", func(t *testing.T) {
		expr, args := ToSQL(nil, ResourceColumns)
		assert.Equal(t, "TRUE", expr)
		assert.Empty(t, args)
	})

	t.Run("empty and is TRUE", func(t *testing.T) {
		expr, args := ToSQL(MatchAll(), ResourceColumns)
		assert.Equal(t, "TRUE", expr)
		assert.Empty(t, args)
	})

	t.Run("empty or is FALSE", func(t *testing.T) {
		expr, _ := ToSQL(&Condition{Type: TypeComparison, Operator: OpOr}, ResourceColumns)
		assert.Equal(t, "FALSE", expr)
	})

	t.Run("children join with the node operator", func(t *testing.T) {
		c := &Condition{Type: TypeComparison, Operator: OpOr, Conditions: []Condition{
			{Type: TypeName, Operator: OpEquals, Value: "a"},
			{Type: TypeKind, Value: "vm"},
		}}
		expr, args := ToSQL(c, ResourceColumns)
		assert.Equal(t, "(name = ?) OR (kind = ?)", expr)
		assert.Equal(t, []interface{}{"a", "vm"}, args)
	})

	t.Run("not wraps the expression", func(t *testing.T) {
		c := &Condition{Type: TypeName, Operator: OpEquals, Value: "a", Not: true}
		expr, _ := ToSQL(c, ResourceColumns)
		assert.Equal(t, "NOT (name = ?)", expr)
	})
}

func TestToSQLMetadata(t *testing.T) {
	t.Run("positive operator guards on key presence", func(t *testing.T) {
		c := &Condition{Type: TypeMetadata, Operator: OpEquals, Key: "region", Value: "us-east-1"}
		expr, args := ToSQL(c, ResourceColumns)
		assert.Equal(t, "(metadata ->> ? IS NOT NULL AND metadata ->> ? = ?)", expr)
		assert.Equal(t, []interface{}{"region", "region", "us-east-1"}, args)
	})

	t.Run("negated operator allows absent key", func(t *testing.T) {
		c := &Condition{Type: TypeMetadata, Operator: OpNotEquals, Key: "region", Value: "x"}
		expr, args := ToSQL(c, ResourceColumns)
		assert.Equal(t, "(metadata ->> ? IS NULL OR metadata ->> ? <> ?)", expr)
		assert.Equal(t, []interface{}{"region", "region", "x"}, args)
	})
}

func TestToSQLColumnAbsence(t *testing.T) {
	t.Run("tag condition against a table without tags is FALSE", func(t *testing.T) {
		c := &Condition{Type: TypeTag, Operator: OpEquals, Value: "1.0.0"}
		expr, args := ToSQL(c, DeploymentColumns)
		assert.Equal(t, "FALSE", expr)
		assert.Empty(t, args)
	})

	t.Run("kind condition against environments is FALSE", func(t *testing.T) {
		c := &Condition{Type: TypeKind, Value: "vm"}
		expr, _ := ToSQL(c, EnvironmentColumns)
		assert.Equal(t, "FALSE", expr)
	})

	t.Run("tag condition against versions translates", func(t *testing.T) {
		c := &Condition{Type: TypeTag, Operator: OpStartsWith, Value: "1."}
		expr, args := ToSQL(c, VersionColumns)
		assert.Equal(t, "starts_with(tag, ?)", expr)
		assert.Equal(t, []interface{}{"1."}, args)
	})
}

func TestToSQLStringOperators(t *testing.T) {
	cases := []struct {
		name string
		op   Operator
		expr string
		args []interface{}
	}{
		{"contains", OpContains, "strpos(name, ?) > 0", []interface{}{"x"}},
		{"not-contains", OpNotContains, "strpos(name, ?) = 0", []interface{}{"x"}},
		{"ends-with", OpEndsWith, "right(name, length(?)) = ?", []interface{}{"x", "x"}},
		{"regex", OpRegex, "name ~ ?", []interface{}{"x"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Condition{Type: TypeName, Operator: tc.op, Value: "x"}
			expr, args := ToSQL(c, ResourceColumns)
			assert.Equal(t, tc.expr, expr)
			assert.Equal(t, tc.args, args)
		})
	}

	t.Run("uncompilable regex translates to FALSE", func(t *testing.T) {
		c := &Condition{Type: TypeName, Operator: OpRegex, Value: "("}
		expr, args := ToSQL(c, ResourceColumns)
		assert.Equal(t, "FALSE", expr)
		assert.Empty(t, args)
	})
}

func TestToSQLCreatedAt(t *testing.T) {
	t.Run("bound is passed as a time argument", func(t *testing.T) {
		c := &Condition{Type: TypeCreatedAt, Operator: OpAfterOrOn, Value: "2024-06-01T00:00:00Z"}
		expr, args := ToSQL(c, ResourceColumns)
		assert.Equal(t, "created_at >= ?", expr)
		assert.Equal(t, []interface{}{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}, args)
	})

	t.Run("unparseable bound is FALSE", func(t *testing.T) {
		c := &Condition{Type: TypeCreatedAt, Operator: OpBefore, Value: "junk"}
		expr, _ := ToSQL(c, ResourceColumns)
		assert.Equal(t, "FALSE", expr)
	})
}
