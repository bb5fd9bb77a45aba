package record

import "unique"

// Wildcard is the symbol for the "*" field.
var Wildcard = Intern("*")

// Symbol is an interned name. Two symbols created from the same text are
// equal under ==, so callers can compare field and table names without
// string comparison. The zero Symbol represents no name at all.
type Symbol struct {
	h unique.Handle[string]
}

// Intern returns the canonical Symbol for name.
func Intern(name string) Symbol {
	return Symbol{h: unique.Make(name)}
}

// Symbols interns each of names in order.
func Symbols(names ...string) []Symbol {
	out := make([]Symbol, 0, len(names))
	for _, name := range names {
		out = append(out, Intern(name))
	}

	return out
}

// IsZero reports whether s is the zero Symbol.
func (s Symbol) IsZero() bool {
	return s == Symbol{}
}

// String returns the name s was interned from.
func (s Symbol) String() string {
	if s.IsZero() {
		return ""
	}

	return s.h.Value()
}

func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Symbol) UnmarshalText(data []byte) error {
	*s = Intern(string(data))
	return nil
}

func (s Symbol) MarshalYAML() (any, error) {
	return s.String(), nil
}
