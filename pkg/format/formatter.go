package format

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/selectql/pkg/parser"
	"github.com/pseudomuto/selectql/pkg/record"
)

type (
	// FormatterOptions controls formatting behavior.
	FormatterOptions struct {
		// UppercaseKeywords whether to uppercase SQL keywords
		UppercaseKeywords bool
		// Multiline starts the FROM and WHERE clauses on their own lines
		Multiline bool
	}

	// Formatter renders statements with a fixed set of options.
	Formatter struct {
		options FormatterOptions
	}
)

// Defaults are the options used by the CLI when no configuration is present.
var Defaults = FormatterOptions{
	UppercaseKeywords: true,
}

// New creates a new Formatter with the specified options.
func New(options FormatterOptions) *Formatter {
	return &Formatter{options: options}
}

// Format writes each statement on its own line using the given options.
func Format(w io.Writer, opts FormatterOptions, stmts ...*parser.Statement) error {
	return New(opts).Format(w, stmts...)
}

// Format writes each statement to w followed by a newline.
func (f *Formatter) Format(w io.Writer, stmts ...*parser.Statement) error {
	for _, stmt := range stmts {
		if stmt == nil {
			continue
		}

		if _, err := io.WriteString(w, f.Statement(stmt)+"\n"); err != nil {
			return errors.Wrap(err, "failed to write statement")
		}
	}

	return nil
}

// Statement returns the canonical SQL of stmt.
func (f *Formatter) Statement(stmt *parser.Statement) string {
	if stmt == nil {
		return ""
	}

	return f.Tree(stmt.Tree())
}

// Tree returns the canonical SQL for an extracted tree.
func (f *Formatter) Tree(tree record.Tree) string {
	clauses := []string{f.selectClause(tree)}

	if len(tree.Tables) > 0 {
		clauses = append(clauses, f.keyword("FROM")+" "+joinSymbols(tree.Tables))
	}

	if len(tree.Conditions) > 0 {
		clauses = append(clauses, f.keyword("WHERE")+" "+f.conditions(tree.Conditions))
	}

	sep := " "
	if f.options.Multiline {
		sep = "\n"
	}

	return strings.Join(clauses, sep)
}

func (f *Formatter) selectClause(tree record.Tree) string {
	line := f.keyword("SELECT")
	if tree.SetQuantifier != nil {
		line += " " + f.keyword(tree.SetQuantifier.String())
	}

	return line + " " + joinSymbols(tree.Fields)
}

func (f *Formatter) conditions(conditions []record.Condition) string {
	parts := make([]string, 0, len(conditions))
	for _, c := range conditions {
		if c.IsConnector() {
			parts = append(parts, f.keyword(c.Operator.String()))
			continue
		}

		parts = append(parts, c.String())
	}

	return strings.Join(parts, " ")
}

// keyword formats a keyword according to the formatter options
func (f *Formatter) keyword(kw string) string {
	if f.options.UppercaseKeywords {
		return strings.ToUpper(kw)
	}
	return strings.ToLower(kw)
}

func joinSymbols(symbols []record.Symbol) string {
	names := make([]string, 0, len(symbols))
	for _, s := range symbols {
		names = append(names, s.String())
	}

	return strings.Join(names, ", ")
}
