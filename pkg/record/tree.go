package record

import (
	"github.com/pseudomuto/selectql/pkg/compare"
)

// Tree is the aggregate record of a parsed statement.
type Tree struct {
	Operator      Operator       `json:"operator"       yaml:"operator"`
	SetQuantifier *SetQuantifier `json:"set_quantifier" yaml:"set_quantifier"`
	Fields        []Symbol       `json:"fields"         yaml:"fields"`
	Tables        []Symbol       `json:"tables"         yaml:"tables"`
	Conditions    []Condition    `json:"conditions"     yaml:"conditions"`
}

// Equal compares two trees field by field.
func (t *Tree) Equal(other *Tree) bool {
	if eq, done := compare.NilCheck(t, other); !done {
		return eq
	}

	return t.Operator == other.Operator &&
		compare.Pointers(t.SetQuantifier, other.SetQuantifier) &&
		compare.Slices(t.Fields, other.Fields, symbolsEqual) &&
		compare.Slices(t.Tables, other.Tables, symbolsEqual) &&
		compare.Slices(t.Conditions, other.Conditions, conditionsEqual)
}

func symbolsEqual(a, b Symbol) bool       { return a == b }
func conditionsEqual(a, b Condition) bool { return a == b }
