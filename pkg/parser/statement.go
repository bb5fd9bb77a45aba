package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pseudomuto/selectql/pkg/record"
	"github.com/pseudomuto/selectql/pkg/utils"
)

type (
	// Statement is the root node of a parsed SELECT statement.
	//
	//	SELECT [DISTINCT | ALL] field, ... [FROM table, ...] [WHERE filter]
	Statement struct {
		Pos lexer.Position

		Select     string     `parser:"'SELECT'"`
		Quantifier *string    `parser:"@('DISTINCT' | 'ALL')?"`
		FieldList  *FieldList `parser:"@@"`
		TableList  *TableList `parser:"('FROM' @@)?"`
		Where      *Filter    `parser:"('WHERE' @@)?"`
	}

	// FieldList is a comma separated, non-empty list of fields.
	FieldList struct {
		Head *Field     `parser:"@@"`
		Tail *FieldList `parser:"(',' @@)?"`
	}

	// Field is either the wildcard or a field name.
	Field struct {
		Pos lexer.Position

		Star *string `parser:"@'*'"`
		Name *string `parser:"| @Ident"`
	}

	// TableList is a comma separated, non-empty list of tables.
	TableList struct {
		Head *Table     `parser:"@@"`
		Tail *TableList `parser:"(',' @@)?"`
	}

	// Table is a table name.
	Table struct {
		Pos lexer.Position

		Name string `parser:"@Ident"`
	}
)

// Operator always returns record.Select; it is the only statement form.
func (s *Statement) Operator() record.Operator {
	return record.Select
}

// SetQuantifier returns the DISTINCT/ALL modifier and whether one was given.
func (s *Statement) SetQuantifier() (record.SetQuantifier, bool) {
	if s.Quantifier == nil {
		return 0, false
	}

	// The grammar only captures DISTINCT or ALL.
	q, err := record.ParseSetQuantifier(*s.Quantifier)
	if err != nil {
		return 0, false
	}

	return q, true
}

// Fields returns the selected fields in source order. It is never empty.
func (s *Statement) Fields() []record.Symbol {
	return s.FieldList.Values()
}

// Tables returns the FROM tables in source order, or an empty slice when the
// statement has no FROM clause.
func (s *Statement) Tables() []record.Symbol {
	return s.TableList.Values()
}

// Conditions returns the flattened WHERE clause, or an empty slice when the
// statement has no WHERE clause.
func (s *Statement) Conditions() []record.Condition {
	return s.Where.Values()
}

// Tree assembles the aggregate record from the other accessors.
func (s *Statement) Tree() record.Tree {
	tree := record.Tree{
		Operator:   s.Operator(),
		Fields:     s.Fields(),
		Tables:     s.Tables(),
		Conditions: s.Conditions(),
	}

	if q, ok := s.SetQuantifier(); ok {
		tree.SetQuantifier = utils.Ptr(q)
	}

	return tree
}

// Values returns the symbols of every field in the list.
func (l *FieldList) Values() []record.Symbol {
	return flatten(l, func(n *FieldList) ([]record.Symbol, *FieldList) {
		return []record.Symbol{n.Head.Value()}, n.Tail
	})
}

// Value returns the symbol for the field.
func (f *Field) Value() record.Symbol {
	if f.Star != nil {
		return record.Wildcard
	}

	return record.Intern(*f.Name)
}

// Values returns the symbols of every table in the list.
func (l *TableList) Values() []record.Symbol {
	return flatten(l, func(n *TableList) ([]record.Symbol, *TableList) {
		return []record.Symbol{n.Head.Value()}, n.Tail
	})
}

// Value returns the symbol for the table.
func (t *Table) Value() record.Symbol {
	return record.Intern(t.Name)
}
