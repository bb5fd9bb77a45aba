package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pseudomuto/selectql/pkg/record"
)

// AND binds tighter than OR because a Filter is a list of AndGroups: every
// run of AND-joined conditions becomes one group before groups are joined by
// OR. "a AND b OR c" is therefore OR(AND(a, b), c).
type (
	// Filter is the OR level of a WHERE clause.
	Filter struct {
		Group *AndGroup `parser:"@@"`
		Or    *Filter   `parser:"('OR' @@)?"`
	}

	// AndGroup is the AND level of a WHERE clause.
	AndGroup struct {
		Condition *Condition `parser:"@@"`
		And       *AndGroup  `parser:"('AND' @@)?"`
	}

	// Condition compares a field with a literal.
	Condition struct {
		Pos lexer.Position

		Field      string   `parser:"@Ident"`
		Comparator string   `parser:"@Comparator"`
		Literal    *Literal `parser:"@@"`
	}

	// Literal is an integer or a quoted string.
	Literal struct {
		Number *int64  `parser:"@Number"`
		String *string `parser:"| @String"`
	}
)

// Values flattens the filter into comparisons separated by connectors, in
// source order.
func (f *Filter) Values() []record.Condition {
	return flatten(f, func(n *Filter) ([]record.Condition, *Filter) {
		values := n.Group.Values()
		if n.Or != nil {
			values = append(values, record.Connector(record.Or))
		}

		return values, n.Or
	})
}

// Values flattens the group into comparisons separated by AND connectors.
func (g *AndGroup) Values() []record.Condition {
	return flatten(g, func(n *AndGroup) ([]record.Condition, *AndGroup) {
		values := []record.Condition{n.Condition.Value()}
		if n.And != nil {
			values = append(values, record.Connector(record.And))
		}

		return values, n.And
	})
}

// Value returns the comparison record for the condition.
func (c *Condition) Value() record.Condition {
	// The lexer only produces the six known comparators.
	op, _ := record.ParseComparator(c.Comparator)
	return record.Comparison(op, record.Intern(c.Field), c.Literal.Value())
}

// Value converts the literal to a record value.
func (l *Literal) Value() record.Value {
	if l.Number != nil {
		return record.Int(*l.Number)
	}

	return record.Text(*l.String)
}
