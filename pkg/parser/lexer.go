package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// keywords are reserved in any letter case and can never be identifiers.
var keywords = []string{"select", "distinct", "all", "from", "where", "and", "or"}

// selectLexer tokenizes the SELECT dialect. Rule order matters: keywords win
// over identifiers and the two character comparators win over their one
// character prefixes. A number must end at a word boundary, so 3and is an
// error rather than 3 AND.
var selectLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `(?i:` + strings.Join(keywords, "|") + `)\b`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Number", Pattern: `\d+\b`},
	{Name: "String", Pattern: `'[^']*'`},
	{Name: "Comparator", Pattern: `<>|<=|>=|[=<>]`},
	{Name: "Punct", Pattern: `[,*]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// unquote strips the surrounding quotes of a String token. The content is
// kept verbatim; there are no escape sequences.
func unquote(tok lexer.Token) (lexer.Token, error) {
	tok.Value = tok.Value[1 : len(tok.Value)-1]
	return tok, nil
}

// IsKeyword reports whether word is reserved, ignoring case.
func IsKeyword(word string) bool {
	for _, kw := range keywords {
		if strings.EqualFold(kw, word) {
			return true
		}
	}

	return false
}
