package parser

// flatten walks a head/tail list with a loop rather than recursion. step
// returns what a node contributes and the node that follows it (nil at the
// end). The result is never nil so absent lists encode as empty lists.
func flatten[N any, V any](node *N, step func(*N) ([]V, *N)) []V {
	values := make([]V, 0)
	for node != nil {
		var vs []V
		vs, node = step(node)
		values = append(values, vs...)
	}

	return values
}
