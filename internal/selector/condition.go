package selector

import (
	"encoding/json"
	"fmt"
	"time"
)

// ConditionType discriminates the condition variants
type ConditionType string

const (
	TypeComparison ConditionType = "comparison"
	TypeMetadata   ConditionType = "metadata"
	TypeName       ConditionType = "name"
	TypeTag        ConditionType = "tag"
	TypeKind       ConditionType = "kind"
	TypeCreatedAt  ConditionType = "created-at"
)

// Operator is the comparison operator of a condition node
type Operator string

const (
	// logical operators for comparison nodes
	OpAnd Operator = "and"
	OpOr  Operator = "or"

	// string operators
	OpEquals      Operator = "equals"
	OpNotEquals   Operator = "not-equals"
	OpContains    Operator = "contains"
	OpNotContains Operator = "not-contains"
	OpStartsWith  Operator = "starts-with"
	OpEndsWith    Operator = "ends-with"
	OpRegex       Operator = "regex"

	// date operators
	OpBefore     Operator = "before"
	OpAfter      Operator = "after"
	OpBeforeOrOn Operator = "before-or-on"
	OpAfterOrOn  Operator = "after-or-on"
)

// Condition is a node of the structured boolean selector language. Comparison
// nodes combine children with and/or; leaf nodes test one attribute of the
// candidate record. A comparison with operator "and" and no children matches
// everything, one with "or" and no children matches nothing; that asymmetry is
// how "no selector = applies to all" works and must not be changed.
type Condition struct {
	Type       ConditionType `json:"type"`
	Operator   Operator      `json:"operator,omitempty"`
	Not        bool          `json:"not,omitempty"`
	Key        string        `json:"key,omitempty"`
	Value      string        `json:"value,omitempty"`
	Conditions []Condition   `json:"conditions,omitempty"`
}

// MatchAll is the canonical always-true condition
func MatchAll() *Condition {
	return &Condition{Type: TypeComparison, Operator: OpAnd}
}

// And combines conditions under a single and-rooted comparison node
func And(children ...Condition) *Condition {
	return &Condition{Type: TypeComparison, Operator: OpAnd, Conditions: children}
}

// Parse decodes a jsonb selector column. A nil or empty document parses to a
// nil condition, which matches every record.
func Parse(raw json.RawMessage) (*Condition, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var c Condition
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse selector: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// MustMarshal encodes a condition for storage in a jsonb selector column
func MustMarshal(c *Condition) json.RawMessage {
	if c == nil {
		return nil
	}
	raw, err := json.Marshal(c)
	if err != nil {
		panic(err)
	}
	return raw
}

// Validate checks the shape of the condition tree
func (c *Condition) Validate() error {
	switch c.Type {
	case TypeComparison:
		if c.Operator != OpAnd && c.Operator != OpOr {
			return fmt.Errorf("comparison condition requires operator and/or, got %q", c.Operator)
		}
		for i := range c.Conditions {
			if err := c.Conditions[i].Validate(); err != nil {
				return err
			}
		}
		return nil
	case TypeMetadata:
		if c.Key == "" {
			return fmt.Errorf("metadata condition requires a key")
		}
		return validateStringOperator(c.Operator)
	case TypeName, TypeTag:
		return validateStringOperator(c.Operator)
	case TypeKind:
		if c.Value == "" {
			return fmt.Errorf("kind condition requires a value")
		}
		return nil
	case TypeCreatedAt:
		switch c.Operator {
		case OpBefore, OpAfter, OpBeforeOrOn, OpAfterOrOn:
		default:
			return fmt.Errorf("created-at condition has invalid operator %q", c.Operator)
		}
		if _, err := time.Parse(time.RFC3339, c.Value); err != nil {
			return fmt.Errorf("created-at condition value must be RFC3339: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown condition type %q", c.Type)
	}
}

func validateStringOperator(op Operator) error {
	switch op {
	case OpEquals, OpNotEquals, OpContains, OpNotContains, OpStartsWith, OpEndsWith, OpRegex:
		return nil
	}
	return fmt.Errorf("invalid string operator %q", op)
}
