package cmd

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/selectql/pkg/config"
	"github.com/pseudomuto/selectql/pkg/parser"
	"github.com/urfave/cli/v3"
)

// parseCmd creates a CLI command that parses one statement and prints the
// extracted tree.
//
// The statement is taken from the command arguments (joined with spaces) or,
// with --file, from a file. "--file -" reads standard input.
//
// Examples:
//
//	# Print the tree as JSON
//	selectql parse "select first_name from users where id=3"
//
//	# Print the tree as YAML from a file
//	selectql parse -o yaml -f query.sql
func parseCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse a statement and print its tree",
		ArgsUsage: "[statement]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "read the statement from a file (- for stdin)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output format: json or yaml (defaults to the configured output)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sql, err := readStatement(cmd)
			if err != nil {
				return err
			}

			stmt, err := parser.ParseString(sql)
			if err != nil {
				return err
			}

			output := cmd.String("output")
			if output == "" {
				output = cfg.Output
			}

			return writeTree(cmd.Writer, stmt.Tree(), output, cfg.Format.Indent)
		},
	}
}

func readStatement(cmd *cli.Command) (string, error) {
	path := cmd.String("file")
	if path == "" {
		if cmd.Args().Len() == 0 {
			return "", errors.New("a statement argument or --file is required")
		}

		return strings.Join(cmd.Args().Slice(), " "), nil
	}

	if cmd.Args().Len() > 0 {
		return "", errors.New("a statement argument cannot be combined with --file")
	}

	var (
		content []byte
		err     error
	)

	if path == "-" {
		content, err = io.ReadAll(cmd.Reader)
	} else {
		content, err = os.ReadFile(path)
	}

	if err != nil {
		return "", errors.Wrapf(err, "failed to read file: %s", path)
	}

	return string(content), nil
}
