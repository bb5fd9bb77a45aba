package record

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EncodeJSON writes tree to w as indented JSON followed by a newline.
// Comparators are written as-is rather than HTML escaped.
func EncodeJSON(w io.Writer, tree Tree, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}

	return errors.Wrap(enc.Encode(tree), "failed to encode tree as JSON")
}

// EncodeYAML writes tree to w as a YAML document.
func EncodeYAML(w io.Writer, tree Tree, indent int) error {
	enc := yaml.NewEncoder(w)
	if indent > 0 {
		enc.SetIndent(indent)
	}

	if err := enc.Encode(tree); err != nil {
		return errors.Wrap(err, "failed to encode tree as YAML")
	}

	return errors.Wrap(enc.Close(), "failed to encode tree as YAML")
}
