package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/selectql/pkg/parser"
	"github.com/urfave/cli/v3"
)

// checkCmd creates a CLI command that validates SQL files without printing
// their trees. Each invalid file is reported as
//
//	path:line:column: message
//
// and the command fails when at least one file is invalid. Empty files are
// skipped, as they are by fmt.
//
// Examples:
//
//	selectql check query.sql
//	selectql check queries/
func checkCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Validate SQL files",
		ArgsUsage: "<path>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			files, err := sqlFiles(cmd.Args().First())
			if err != nil {
				return err
			}

			failed := 0
			for _, path := range files {
				content, err := os.ReadFile(path)
				if err != nil {
					return errors.Wrapf(err, "failed to read file: %s", path)
				}

				if strings.TrimSpace(string(content)) == "" {
					slog.Debug("Skipping empty file", "path", path)
					continue
				}

				slog.Debug("Checking file", "path", path)
				if _, err := parser.ParseString(string(content)); err != nil {
					failed++
					fmt.Fprintln(cmd.Writer, describe(path, err))
				}
			}

			if failed > 0 {
				return errors.Errorf("%d of %d files failed to parse", failed, len(files))
			}

			return nil
		},
	}
}

func describe(path string, err error) string {
	var serr *parser.SyntaxError
	if errors.As(err, &serr) {
		return fmt.Sprintf("%s:%d:%d: %s", path, serr.Pos.Line, serr.Pos.Column, serr.Msg)
	}

	return fmt.Sprintf("%s: %s", path, err)
}
