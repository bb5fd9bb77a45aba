package parser

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"
)

// statementParser is built once; participle parsers keep no state between
// calls.
var statementParser = participle.MustBuild[Statement](
	participle.Lexer(selectLexer),
	participle.CaseInsensitive("Keyword"),
	participle.Map(unquote, "String"),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parser parses SELECT statements. The zero value is not usable; call New.
// A Parser may be shared between goroutines.
type Parser struct {
	p *participle.Parser[Statement]
}

// New returns a Parser for the SELECT dialect.
func New() *Parser {
	return &Parser{p: statementParser}
}

// Parse parses text as a single statement. Either the whole input matches and
// the root node is returned, or a nil node and an error wrapping a
// *SyntaxError are returned.
//
// Example usage:
//
//	stmt, err := parser.New().Parse("select first_name from users where id=3")
//	if err != nil {
//		var serr *parser.SyntaxError
//		if errors.As(err, &serr) {
//			log.Fatalf("invalid statement at %d:%d: %s", serr.Pos.Line, serr.Pos.Column, serr.Msg)
//		}
//	}
//
//	fmt.Println(stmt.Fields())     // [first_name]
//	fmt.Println(stmt.Conditions()) // [id = 3]
func (p *Parser) Parse(text string) (*Statement, error) {
	return p.ParseReader(strings.NewReader(text))
}

// ParseReader parses a single statement read from r.
func (p *Parser) ParseReader(r io.Reader) (*Statement, error) {
	stmt, err := p.p.Parse("", r)
	if err != nil {
		return nil, errors.Wrap(newSyntaxError(err), "failed to parse SQL")
	}

	return stmt, nil
}

// Grammar returns the EBNF of the accepted dialect.
func (p *Parser) Grammar() string {
	return p.p.String()
}

// Parse parses a single statement from r using a default Parser.
func Parse(r io.Reader) (*Statement, error) {
	return New().ParseReader(r)
}

// ParseString parses a single statement from sql using a default Parser.
func ParseString(sql string) (*Statement, error) {
	return New().Parse(sql)
}
