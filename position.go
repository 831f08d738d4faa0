package csonh

import "fmt"

// Position identifies a single point in a source document, 1-based in
// both fields as required by the diagnostics contract.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// LexerError is returned when the lexer encounters source text it cannot
// tokenize: mixed indentation, unterminated strings, malformed numbers, and
// so on. It always carries the position of the offending code point.
type LexerError struct {
	Pos Position
	Msg string
}

func (e *LexerError) Error() string {
	return fmt.Sprintf("csonh: lexer error at %s: %s", e.Pos, e.Msg)
}

// ParseError is returned when the token stream does not match the CSONH
// grammar: a missing colon, a bareword in value position, trailing content
// after the root value, and so on.
type ParseError struct {
	Pos Position
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("csonh: parse error at %s: %s", e.Pos, e.Msg)
}

func lexErr(pos Position, format string, args ...any) error {
	return &LexerError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func parseErr(pos Position, format string, args ...any) error {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
