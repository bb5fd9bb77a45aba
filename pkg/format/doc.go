// Package format renders parsed SELECT statements as canonical SQL.
//
// Canonical output uses a single space between tokens, ", " between list
// items and spaces around comparators, so statements that differ only in
// layout or keyword case format identically:
//
//	select distinct *,first_name from users where age>25 and name='joe'
//
// becomes
//
//	SELECT DISTINCT *, first_name FROM users WHERE age > 25 AND name = 'joe'
//
// Usage:
//
//	formatter := format.New(format.Defaults)
//
//	var buf bytes.Buffer
//	err := formatter.Format(&buf, statements...)
//
//	// Functional API
//	err = format.Format(&buf, format.Defaults, statements...)
//
// Reparsing formatted output always yields an equal record.Tree.
package format
