package parser_test

import (
	"bytes"
	"testing"

	. "github.com/pseudomuto/selectql/pkg/parser"
	"github.com/pseudomuto/selectql/pkg/record"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

// TestTreeGolden parses each statement and compares the JSON encoding of its
// tree against testdata/tree/<name>.json.
func TestTreeGolden(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sql  string
	}{
		{name: "field", sql: "select first_name"},
		{name: "wildcard", sql: "select *"},
		{name: "distinct", sql: "select distinct first_name"},
		{name: "all", sql: "select all first_name"},
		{name: "tables", sql: "select first_name from users, accounts, logins"},
		{name: "where_equals", sql: "select first_name from users where id=3"},
		{name: "and_or", sql: "select first_name from users where age > 25 and first_name='joe' or last_name='bob'"},
		{name: "full", sql: "select distinct *, first_name from users, logins where id >= 10 and id <= 20 or name <> 'root'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stmt, err := ParseString(tt.sql)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, record.EncodeJSON(&buf, stmt.Tree(), 2))
			golden.Assert(t, buf.String(), "tree/"+tt.name+".json")
		})
	}
}
