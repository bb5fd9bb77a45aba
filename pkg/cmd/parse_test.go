package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pseudomuto/selectql/pkg/config"
	"github.com/pseudomuto/selectql/pkg/consts"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

func runParse(t *testing.T, cfg *config.Config, stdin string, args ...string) (string, error) {
	t.Helper()

	command := parseCmd(cfg)

	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
		Reader: strings.NewReader(stdin),
		Writer: &buf,
	}

	err := app.Run(context.Background(), append([]string{"test"}, args...))
	return buf.String(), err
}

func TestParseCommand_JSON(t *testing.T) {
	output, err := runParse(t, config.Default(), "", "select first_name from users where id=3")
	require.NoError(t, err)
	require.JSONEq(t, `{
		"operator": "select",
		"set_quantifier": null,
		"fields": ["first_name"],
		"tables": ["users"],
		"conditions": [{"operator": "=", "field": "id", "value": 3}]
	}`, output)
}

func TestParseCommand_JoinsArguments(t *testing.T) {
	output, err := runParse(t, config.Default(), "", "select", "distinct", "*", "from", "users")
	require.NoError(t, err)

	var tree map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &tree))
	require.Equal(t, "distinct", tree["set_quantifier"])
	require.Equal(t, []any{"*"}, tree["fields"])
}

func TestParseCommand_YAML(t *testing.T) {
	output, err := runParse(t, config.Default(), "", "-o", "yaml", "select a from t where b > 2 and c = 'x'")
	require.NoError(t, err)

	var tree map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(output), &tree))
	require.Equal(t, "select", tree["operator"])
	require.Nil(t, tree["set_quantifier"])
	require.Equal(t, []any{"t"}, tree["tables"])
	require.Len(t, tree["conditions"], 3)
}

func TestParseCommand_ConfiguredOutput(t *testing.T) {
	cfg := config.Default()
	cfg.Output = consts.OutputYAML

	output, err := runParse(t, cfg, "", "select a")
	require.NoError(t, err)
	require.Contains(t, output, "operator: select")
}

func TestParseCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.sql")
	require.NoError(t, os.WriteFile(path, []byte("select a\nfrom t\n"), consts.ModeFile))

	output, err := runParse(t, config.Default(), "", "-f", path)
	require.NoError(t, err)
	require.Contains(t, output, `"tables": [`)
}

func TestParseCommand_Stdin(t *testing.T) {
	output, err := runParse(t, config.Default(), "select a from t", "--file", "-")
	require.NoError(t, err)
	require.Contains(t, output, `"t"`)
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "no statement", args: nil, expected: "a statement argument or --file is required"},
		{name: "statement and file", args: []string{"-f", "x.sql", "select a"}, expected: "cannot be combined with --file"},
		{name: "missing file", args: []string{"-f", "/nonexistent/query.sql"}, expected: "failed to read file"},
		{name: "invalid statement", args: []string{"select a from t where a=1 b=2"}, expected: "failed to parse SQL"},
		{name: "invalid output", args: []string{"-o", "xml", "select a"}, expected: "unsupported output format: xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := runParse(t, config.Default(), "", tt.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.expected)
			require.Empty(t, output)
		})
	}
}
