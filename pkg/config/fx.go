package config

import (
	"os"

	"github.com/pseudomuto/selectql/pkg/consts"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	func() (*Config, error) {
		if _, err := os.Stat(consts.ConfigFile); os.IsNotExist(err) {
			return Default(), nil
		}

		return LoadConfigFile(consts.ConfigFile)
	},
))
