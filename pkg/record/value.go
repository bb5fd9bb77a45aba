package record

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

type valueKind uint8

const (
	noValue valueKind = iota
	intValue
	textValue
)

// Value is a literal on the right hand side of a comparison: either an
// integer or a piece of text. The zero Value holds neither.
type Value struct {
	kind valueKind
	i    int64
	s    string
}

// Int returns an integer Value.
func Int(v int64) Value {
	return Value{kind: intValue, i: v}
}

// Text returns a text Value.
func Text(v string) Value {
	return Value{kind: textValue, s: v}
}

func (v Value) IsZero() bool {
	return v.kind == noValue
}

// Int returns the integer held by v and whether v is an integer.
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == intValue
}

// Text returns the text held by v and whether v is text.
func (v Value) Text() (string, bool) {
	return v.s, v.kind == textValue
}

// String returns the SQL literal for v. Text is single quoted verbatim.
func (v Value) String() string {
	switch v.kind {
	case intValue:
		return strconv.FormatInt(v.i, 10)
	case textValue:
		return "'" + v.s + "'"
	default:
		return ""
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case intValue:
		return strconv.AppendInt(nil, v.i, 10), nil
	case textValue:
		// Keep <, > and & readable in text literals.
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v.s); err != nil {
			return nil, errors.Wrap(err, "failed to encode text value")
		}

		return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*v = Text(s)
		return nil
	}

	i, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return errors.Wrap(err, "value must be an integer or a string")
	}

	*v = Int(i)
	return nil
}

func (v Value) MarshalYAML() (any, error) {
	switch v.kind {
	case intValue:
		return v.i, nil
	case textValue:
		return v.s, nil
	default:
		return nil, nil
	}
}
