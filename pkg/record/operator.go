package record

import (
	"strings"

	"github.com/pkg/errors"
)

// Operator is a fixed statement, comparison or connector atom.
type Operator uint8

const (
	// Select is the only statement operator.
	Select Operator = iota + 1
	Equal
	GreaterThan
	LessThan
	GreaterOrEqual
	LessOrEqual
	NotEqual
	// And and Or are the filter connectors.
	And
	Or
)

var operatorNames = map[Operator]string{
	Select:         "select",
	Equal:          "=",
	GreaterThan:    ">",
	LessThan:       "<",
	GreaterOrEqual: ">=",
	LessOrEqual:    "<=",
	NotEqual:       "<>",
	And:            "and",
	Or:             "or",
}

// ParseComparator maps comparator text to its Operator.
func ParseComparator(text string) (Operator, error) {
	switch text {
	case "=":
		return Equal, nil
	case ">":
		return GreaterThan, nil
	case "<":
		return LessThan, nil
	case ">=":
		return GreaterOrEqual, nil
	case "<=":
		return LessOrEqual, nil
	case "<>":
		return NotEqual, nil
	}

	return 0, errors.Errorf("unknown comparator: %q", text)
}

// ParseConnector maps AND/OR (in any case) to its Operator.
func ParseConnector(text string) (Operator, error) {
	switch strings.ToLower(text) {
	case "and":
		return And, nil
	case "or":
		return Or, nil
	}

	return 0, errors.Errorf("unknown connector: %q", text)
}

// IsComparator reports whether op compares a field with a value.
func (op Operator) IsComparator() bool {
	return op >= Equal && op <= NotEqual
}

// IsConnector reports whether op joins two conditions.
func (op Operator) IsConnector() bool {
	return op == And || op == Or
}

func (op Operator) IsZero() bool {
	return op == 0
}

func (op Operator) String() string {
	if name, ok := operatorNames[op]; ok {
		return name
	}

	return "invalid"
}

func (op Operator) MarshalText() ([]byte, error) {
	if _, ok := operatorNames[op]; !ok {
		return nil, errors.Errorf("invalid operator: %d", op)
	}

	return []byte(op.String()), nil
}

func (op *Operator) UnmarshalText(data []byte) error {
	text := string(data)
	for candidate, name := range operatorNames {
		if name == text {
			*op = candidate
			return nil
		}
	}

	return errors.Errorf("unknown operator: %q", text)
}

func (op Operator) MarshalYAML() (any, error) {
	if _, ok := operatorNames[op]; !ok {
		return nil, errors.Errorf("invalid operator: %d", op)
	}

	return op.String(), nil
}

// SetQuantifier is the optional DISTINCT/ALL modifier of a statement.
type SetQuantifier uint8

const (
	Distinct SetQuantifier = iota + 1
	All
)

// ParseSetQuantifier maps DISTINCT/ALL (in any case) to its SetQuantifier.
func ParseSetQuantifier(text string) (SetQuantifier, error) {
	switch strings.ToLower(text) {
	case "distinct":
		return Distinct, nil
	case "all":
		return All, nil
	}

	return 0, errors.Errorf("unknown set quantifier: %q", text)
}

func (q SetQuantifier) String() string {
	switch q {
	case Distinct:
		return "distinct"
	case All:
		return "all"
	default:
		return "invalid"
	}
}

func (q SetQuantifier) MarshalText() ([]byte, error) {
	if q != Distinct && q != All {
		return nil, errors.Errorf("invalid set quantifier: %d", q)
	}

	return []byte(q.String()), nil
}

func (q *SetQuantifier) UnmarshalText(data []byte) error {
	parsed, err := ParseSetQuantifier(string(data))
	if err != nil {
		return err
	}

	*q = parsed
	return nil
}

func (q SetQuantifier) MarshalYAML() (any, error) {
	return q.String(), nil
}
