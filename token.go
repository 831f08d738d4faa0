package csonh

// TokenKind identifies the grammatical category of a Token.
type TokenKind int8

const (
	tokenIndent TokenKind = iota
	tokenDedent
	tokenNewline
	tokenString
	tokenNumber
	tokenTrue
	tokenFalse
	tokenNull
	tokenIdentifier
	tokenLBrace
	tokenRBrace
	tokenLBracket
	tokenRBracket
	tokenColon
	tokenComma
	tokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case tokenIndent:
		return "INDENT"
	case tokenDedent:
		return "DEDENT"
	case tokenNewline:
		return "NEWLINE"
	case tokenString:
		return "STRING"
	case tokenNumber:
		return "NUMBER"
	case tokenTrue:
		return "TRUE"
	case tokenFalse:
		return "FALSE"
	case tokenNull:
		return "NULL"
	case tokenIdentifier:
		return "IDENTIFIER"
	case tokenLBrace:
		return "LBRACE"
	case tokenRBrace:
		return "RBRACE"
	case tokenLBracket:
		return "LBRACKET"
	case tokenRBracket:
		return "RBRACKET"
	case tokenColon:
		return "COLON"
	case tokenComma:
		return "COMMA"
	case tokenEOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// stringPayload carries a STRING token's value. Ordinary (single- or
// double-quoted, single-line) strings are already escape-decoded by the
// lexer and carry triple == false. Triple-quoted strings defer
// decoding to the parser (see stringproc.go), since only the parser knows
// where the closing delimiter sits relative to the rest of the document;
// they carry the raw interior text and the originating quote character.
type stringPayload struct {
	triple bool
	quote  byte   // originating quote character, only meaningful when triple
	text   string // decoded text (ordinary) or raw interior text (triple)
}

// Token is a single lexical unit with its source position. Payload shape
// depends on Kind: NUMBER carries Num, STRING carries Str, TRUE/FALSE carry
// Bool, IDENTIFIER carries Ident, and structural tokens carry Ch for
// diagnostics. INDENT/DEDENT/NEWLINE/NULL/EOF carry no payload.
type Token struct {
	Kind  TokenKind
	Pos   Position
	Str   stringPayload
	Num   numberPayload
	Bool  bool
	Ident string
	Ch    byte
}

// numberPayload holds a finished numeric value. Int and Float are distinct
// at the value level: IsFloat selects which is meaningful.
type numberPayload struct {
	IsFloat bool
	Int     int64
	Float   float64
}

func (t Token) String() string {
	return t.Kind.String() + "@" + t.Pos.String()
}
