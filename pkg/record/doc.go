// Package record defines the plain values extracted from a parsed SELECT
// statement.
//
// The parser package builds a node graph from the input text; everything a
// caller observes once the graph has been walked lives here:
//
//   - Symbol: an interned name for fields and tables, compared with ==
//   - Operator: the fixed set of statement, comparison and connector atoms
//   - SetQuantifier: DISTINCT or ALL
//   - Value: an integer or text literal
//   - Condition: one entry of the flattened WHERE clause
//   - Tree: the aggregate of all of the above
//
// All types encode to JSON and YAML using their canonical text, so a Tree
// renders as:
//
//	{
//	  "operator": "select",
//	  "set_quantifier": "distinct",
//	  "fields": ["*", "first_name"],
//	  "tables": ["users"],
//	  "conditions": [
//	    {"operator": ">", "field": "age", "value": 25},
//	    {"operator": "and"},
//	    {"operator": "=", "field": "first_name", "value": "joe"}
//	  ]
//	}
package record
