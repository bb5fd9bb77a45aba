package compare

// NilCheck performs a nil check on two pointers and returns whether they are equal
// and whether more comparison checks are needed.
//
// Returns (equal, needsMoreChecks) where:
//   - equal: true if both are nil, false if only one is nil
//   - needsMoreChecks: true if both pointers are non-nil and further comparison is needed
//
// Example:
//
//	func (t *Tree) Equal(other *Tree) bool {
//	    if eq, needsMoreChecks := compare.NilCheck(t, other); !needsMoreChecks {
//	        return eq
//	    }
//	    // Continue with field comparisons...
//	}
func NilCheck[T any](a, b *T) (equal bool, needsMoreChecks bool) {
	if a == nil && b == nil {
		return true, false
	}
	if a == nil || b == nil {
		return false, false
	}
	return false, true
}

// Pointers compares two pointer values for equality.
// Returns true if both are nil, or both are non-nil with equal values.
//
// Example:
//
//	compare.Pointers(t.SetQuantifier, other.SetQuantifier)
func Pointers[T comparable](a, b *T) bool {
	if (a != nil) != (b != nil) {
		return false
	}
	if a != nil && *a != *b {
		return false
	}
	return true
}

// Slices compares two slices for equality using an equality function for elements.
// Returns true if both slices have the same length and all corresponding elements are equal.
// A nil slice equals an empty one.
//
// Example:
//
//	compare.Slices(t.Fields, other.Fields, func(a, b Symbol) bool { return a == b })
func Slices[T any](a, b []T, equalFunc func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalFunc(a[i], b[i]) {
			return false
		}
	}
	return true
}
