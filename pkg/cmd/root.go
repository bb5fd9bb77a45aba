package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/selectql/pkg/config"
	"github.com/pseudomuto/selectql/pkg/consts"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Config     *config.Config
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run registers the selectql CLI application to run once the fx application
// starts, and shuts the fx application down with the command's exit code.
//
// Global Flags:
//   - --dir, -d: Project directory (defaults to current directory)
//   - --verbose: Enable debug logging
//
// When --dir points at a directory containing selectql.yaml, that file
// replaces the configuration loaded at startup.
func Run(p Params) {
	app := newApp(p)

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

func newApp(p Params) *cli.Command {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	return &cli.Command{
		Name:  "selectql",
		Usage: "Parse SELECT statements into structured records",
		Description: `selectql parses a small SELECT dialect into a typed record describing
the statement's fields, tables and filter conditions.`,
		Version: p.Version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "the project directory",
				Value:       ".",
				DefaultText: "Current directory",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}

			if err := os.Chdir(cmd.String("dir")); err != nil {
				return ctx, errors.Wrapf(err, "failed to change directory: %s", cmd.String("dir"))
			}

			return ctx, reloadConfig(p.Config)
		},
		Commands: p.Commands,
	}
}

// reloadConfig replaces cfg in place with the project's selectql.yaml, if the
// current directory has one.
func reloadConfig(cfg *config.Config) error {
	_, err := os.Stat(consts.ConfigFile)
	if os.IsNotExist(err) {
		return nil
	}

	if err != nil {
		return err
	}

	loaded, err := config.LoadConfigFile(consts.ConfigFile)
	if err != nil {
		return err
	}

	slog.Debug("Loaded configuration", "path", consts.ConfigFile, "output", loaded.Output)
	*cfg = *loaded
	return nil
}
