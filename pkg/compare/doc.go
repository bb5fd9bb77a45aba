// Package compare provides generic helpers for writing Equal methods.
//
// The helpers cover the shapes that appear in selectql records: optional
// pointers and ordered slices.
//
//	func (t *Tree) Equal(other *Tree) bool {
//	    if eq, done := compare.NilCheck(t, other); !done {
//	        return eq
//	    }
//
//	    return compare.Pointers(t.SetQuantifier, other.SetQuantifier) &&
//	        compare.Slices(t.Fields, other.Fields, symbolsEqual)
//	}
package compare
