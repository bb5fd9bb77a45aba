// Package utils provides small generic helpers shared across selectql.
//
// Ptr is the common way to take the address of a value, for example an
// optional set quantifier on a record.Tree:
//
//	tree.SetQuantifier = utils.Ptr(record.Distinct)
package utils
