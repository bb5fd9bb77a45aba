package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/selectql/pkg/config"
	"github.com/pseudomuto/selectql/pkg/consts"
	"github.com/pseudomuto/selectql/pkg/format"
	"github.com/pseudomuto/selectql/pkg/parser"
	"github.com/urfave/cli/v3"
)

// fmtCmd creates a CLI command for rewriting SQL files as canonical SQL.
// Every file holds a single statement.
//
// The command supports two output modes:
//   - Stdout mode (default): Formatted SQL is written to standard output
//   - Write mode (-w flag): Files are modified in-place with formatted content
//
// Directory paths are searched recursively for .sql files. Files with syntax
// errors cause the command to fail; empty files are left untouched.
//
// Examples:
//
//	# Format single file to stdout
//	selectql fmt query.sql
//
//	# Format all SQL files in directory tree in-place
//	selectql fmt -w queries/
func fmtCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			files, err := sqlFiles(cmd.Args().First())
			if err != nil {
				return err
			}

			formatter := cfg.GetFormatter()
			for _, path := range files {
				if err := formatFile(formatter, path, cmd.Bool("write"), cmd.Writer); err != nil {
					return errors.Wrapf(err, "failed to format file: %s", path)
				}
			}

			return nil
		},
	}
}

// formatFile formats a single SQL file and either writes to the writer or back
// to the file.
func formatFile(formatter *format.Formatter, path string, writeBack bool, writer io.Writer) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read file: %s", path)
	}

	if strings.TrimSpace(string(content)) == "" {
		return nil
	}

	stmt, err := parser.ParseString(string(content))
	if err != nil {
		return errors.Wrapf(err, "failed to parse SQL in file: %s", path)
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, stmt); err != nil {
		return errors.Wrapf(err, "failed to format SQL in file: %s", path)
	}

	if writeBack {
		if err := os.WriteFile(path, []byte(buf.String()), consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write formatted content to file: %s", path)
		}

		return nil
	}

	if _, err := fmt.Fprint(writer, buf.String()); err != nil {
		return errors.Wrap(err, "failed to write formatted content to output")
	}

	return nil
}
