package parser

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// SyntaxError is returned when the input is not a valid statement. Pos is the
// furthest position the parser reached before giving up.
type SyntaxError struct {
	Msg string
	Pos lexer.Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// newSyntaxError converts lexer and parser failures into a SyntaxError,
// keeping the position participle reports.
func newSyntaxError(err error) *SyntaxError {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &SyntaxError{Msg: perr.Message(), Pos: perr.Position()}
	}

	return &SyntaxError{Msg: err.Error()}
}
