package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/selectql/pkg/consts"
	"github.com/pseudomuto/selectql/pkg/format"
	"gopkg.in/yaml.v3"
)

type (
	// Format represents the canonical SQL and tree rendering settings.
	Format struct {
		// UppercaseKeywords controls keyword casing in formatted SQL (defaults to true)
		UppercaseKeywords *bool `yaml:"uppercase_keywords,omitempty"`

		// Multiline starts FROM and WHERE clauses on their own lines
		Multiline bool `yaml:"multiline,omitempty"`

		// Indent is the indent width for JSON and YAML tree output
		Indent int `yaml:"indent,omitempty"`
	}

	// Config represents the selectql project configuration.
	Config struct {
		// Output is the default tree output format: json or yaml
		Output string `yaml:"output"`

		// Format contains the rendering settings
		Format Format `yaml:"format"`
	}
)

// Default returns the configuration used when no selectql.yaml exists.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// LoadConfig parses a project configuration from the provided io.Reader.
//
// Missing values are filled from the defaults in pkg/consts and the output
// format is validated.
//
// Example:
//
//	cfg, err := config.LoadConfig(strings.NewReader("output: yaml"))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Output: %s\n", cfg.Output)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	cfg.setDefaults()

	switch cfg.Output {
	case consts.OutputJSON, consts.OutputYAML:
	default:
		return nil, errors.Errorf("unsupported output format: %s", cfg.Output)
	}

	if cfg.Format.Indent < 0 {
		return nil, errors.Errorf("invalid indent: %d", cfg.Format.Indent)
	}

	return &cfg, nil
}

// LoadConfigFile loads a project configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// GetFormatter returns a formatter honoring the format settings. A nil Config
// yields the default formatter.
func (c *Config) GetFormatter() *format.Formatter {
	if c == nil {
		return format.New(format.Defaults)
	}

	opts := format.Defaults
	if c.Format.UppercaseKeywords != nil {
		opts.UppercaseKeywords = *c.Format.UppercaseKeywords
	}
	opts.Multiline = c.Format.Multiline

	return format.New(opts)
}

func (c *Config) setDefaults() {
	if c.Output == "" {
		c.Output = consts.DefaultOutput
	}
	if c.Format.Indent == 0 {
		c.Format.Indent = consts.DefaultIndent
	}
}
