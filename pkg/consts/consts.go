package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the project configuration file looked up in the working directory
	ConfigFile = "selectql.yaml"

	// OutputJSON and OutputYAML are the supported tree output formats
	OutputJSON = "json"
	OutputYAML = "yaml"

	// DefaultOutput is used when no output format is configured
	DefaultOutput = OutputJSON

	// DefaultIndent is the indent width used for JSON and YAML output
	DefaultIndent = 2
)
