package parser_test

import (
	"fmt"
	"strings"
	"testing"

	. "github.com/pseudomuto/selectql/pkg/parser"
	"github.com/pseudomuto/selectql/pkg/record"
	"pgregory.net/rapid"
)

// generated is a random valid statement along with the records it should
// produce.
type generated struct {
	sql        string
	quantifier *record.SetQuantifier
	fields     []record.Symbol
	tables     []record.Symbol
	conditions []record.Condition
}

var (
	identGen = rapid.StringMatching(`[a-zA-Z_][a-zA-Z0-9_]{0,10}`).Filter(func(s string) bool {
		return !IsKeyword(s)
	})

	comparatorGen = rapid.SampledFrom([]string{"=", ">", "<", ">=", "<=", "<>"})
	connectorGen  = rapid.SampledFrom([]string{"and", "or", "AND", "Or"})
	spaceGen      = rapid.SampledFrom([]string{" ", "  ", "\t", "\n"})
)

func keyword(t *rapid.T, kw string) string {
	if rapid.Bool().Draw(t, "upper") {
		return strings.ToUpper(kw)
	}

	return kw
}

func drawStatement(t *rapid.T) generated {
	var g generated
	sp := spaceGen.Draw(t, "space")

	parts := []string{keyword(t, "select")}
	switch rapid.IntRange(0, 2).Draw(t, "quantifier") {
	case 1:
		parts = append(parts, keyword(t, "distinct"))
		q := record.Distinct
		g.quantifier = &q
	case 2:
		parts = append(parts, keyword(t, "all"))
		q := record.All
		g.quantifier = &q
	}

	fields := make([]string, 0)
	for i, n := 0, rapid.IntRange(1, 6).Draw(t, "fields"); i < n; i++ {
		if rapid.IntRange(0, 4).Draw(t, "wildcard") == 0 {
			fields = append(fields, "*")
			g.fields = append(g.fields, record.Wildcard)
			continue
		}

		name := identGen.Draw(t, "field")
		fields = append(fields, name)
		g.fields = append(g.fields, record.Intern(name))
	}
	parts = append(parts, strings.Join(fields, ","+sp))

	g.tables = []record.Symbol{}
	if rapid.Bool().Draw(t, "from") {
		tables := make([]string, 0)
		for i, n := 0, rapid.IntRange(1, 4).Draw(t, "tables"); i < n; i++ {
			name := identGen.Draw(t, "table")
			tables = append(tables, name)
			g.tables = append(g.tables, record.Intern(name))
		}
		parts = append(parts, keyword(t, "from"), strings.Join(tables, ", "))
	}

	g.conditions = []record.Condition{}
	if rapid.Bool().Draw(t, "where") {
		parts = append(parts, keyword(t, "where"))
		for i, n := 0, rapid.IntRange(1, 8).Draw(t, "conditions"); i < n; i++ {
			if i > 0 {
				conn := connectorGen.Draw(t, "connector")
				op, _ := record.ParseConnector(conn)
				parts = append(parts, conn)
				g.conditions = append(g.conditions, record.Connector(op))
			}

			field := identGen.Draw(t, "condition_field")
			cmp := comparatorGen.Draw(t, "comparator")
			op, _ := record.ParseComparator(cmp)

			var literal string
			var value record.Value
			if rapid.Bool().Draw(t, "numeric") {
				n := rapid.Int64Range(0, 1<<40).Draw(t, "number")
				literal, value = fmt.Sprint(n), record.Int(n)
			} else {
				s := rapid.StringMatching(`[a-zA-Z0-9 ,*=<>]{0,12}`).Draw(t, "text")
				literal, value = "'"+s+"'", record.Text(s)
			}

			parts = append(parts, field+sp+cmp+sp+literal)
			g.conditions = append(g.conditions, record.Comparison(op, record.Intern(field), value))
		}
	}

	g.sql = strings.Join(parts, sp)
	return g
}

func TestStatementProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := drawStatement(t)

		stmt, err := ParseString(g.sql)
		if err != nil {
			t.Fatalf("parse %q: %v", g.sql, err)
		}

		q, ok := stmt.SetQuantifier()
		if ok != (g.quantifier != nil) || (ok && q != *g.quantifier) {
			t.Fatalf("set quantifier: got (%v, %v), want %v", q, ok, g.quantifier)
		}

		expected := record.Tree{
			Operator:      record.Select,
			SetQuantifier: g.quantifier,
			Fields:        g.fields,
			Tables:        g.tables,
			Conditions:    g.conditions,
		}

		// The tree is built from the accessors and matches the source order.
		tree := stmt.Tree()
		if !tree.Equal(&expected) {
			t.Fatalf("tree mismatch for %q:\n got: %+v\nwant: %+v", g.sql, tree, expected)
		}

		// Accessors are idempotent and independent of call order.
		conditions := stmt.Conditions()
		again := stmt.Tree()
		if !again.Equal(&tree) {
			t.Fatalf("second Tree() differs for %q", g.sql)
		}
		if len(conditions) != len(tree.Conditions) {
			t.Fatalf("conditions changed between calls for %q", g.sql)
		}
		if len(stmt.Fields()) == 0 {
			t.Fatalf("empty fields for %q", g.sql)
		}
	})
}

func TestJuxtaposedConditionsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		first := identGen.Draw(t, "first")
		second := identGen.Draw(t, "second")
		sql := fmt.Sprintf("select a from t where %s=1 %s=2", first, second)

		if stmt, err := ParseString(sql); err == nil || stmt != nil {
			t.Fatalf("expected %q to fail", sql)
		}
	})
}
