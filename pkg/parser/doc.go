// Package parser provides a participle-based parser for a small SELECT
// dialect.
//
// The accepted grammar is:
//
//	statement   := SELECT set_quantifier? field_list (FROM table_list)? (WHERE filter_expr)?
//	field_list  := field (',' field)*
//	field       := identifier | '*'
//	table_list  := identifier (',' identifier)*
//	filter_expr := and_group (OR and_group)*
//	and_group   := condition (AND condition)*
//	condition   := identifier comparator literal
//	comparator  := '=' | '>' | '<' | '>=' | '<=' | '<>'
//	literal     := integer | 'text'
//
// Keywords are matched in any letter case and are reserved. Identifiers are
// case-sensitive. String literals run to the next single quote and have no
// escape sequences.
//
// Parsing is all or nothing: either the whole input is a statement and a
// *Statement is returned, or an error wrapping a *SyntaxError (with the
// position where matching failed) is returned.
//
// Basic usage:
//
//	stmt, err := parser.ParseString("select distinct * from users where age > 25 and name='joe'")
//	if err != nil {
//		return err
//	}
//
//	stmt.Operator()      // record.Select
//	stmt.SetQuantifier() // record.Distinct, true
//	stmt.Fields()        // [*]
//	stmt.Tables()        // [users]
//	stmt.Conditions()    // [age > 25, and, name = 'joe']
//	stmt.Tree()          // all of the above as one record.Tree
//
// The node graph mirrors the grammar. Lists (fields, tables and both levels
// of the WHERE clause) are head/tail nodes; their Values methods flatten them
// iteratively into plain slices, interleaving AND/OR connector records so the
// conditions always come out in source order, whatever the grouping.
package parser
