package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/selectql/pkg/config"
	"github.com/pseudomuto/selectql/pkg/consts"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// initCmd returns a CLI command that writes a default selectql.yaml to the
// current directory. Running it again leaves an existing file untouched.
//
// Example usage:
//
//	selectql init
//	selectql init --output yaml
func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a default selectql.yaml in the current directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "output",
				Usage: "default output format: json or yaml",
				Value: consts.DefaultOutput,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := os.Stat(consts.ConfigFile); err == nil {
				fmt.Fprintf(cmd.Writer, "%s already exists\n", consts.ConfigFile)
				return nil
			}

			cfg := config.Default()
			cfg.Output = cmd.String("output")
			uppercase := true
			cfg.Format.UppercaseKeywords = &uppercase

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return errors.Wrap(err, "failed to marshal config")
			}

			// Invalid flags never reach disk.
			if _, err := config.LoadConfig(bytes.NewReader(data)); err != nil {
				return err
			}

			if err := os.WriteFile(consts.ConfigFile, data, consts.ModeFile); err != nil {
				return errors.Wrapf(err, "failed to write file: %s", consts.ConfigFile)
			}

			fmt.Fprintf(cmd.Writer, "Wrote %s\n", consts.ConfigFile)
			return nil
		},
	}
}
