package csonh

// parser consumes the token vector produced by lexer.lex and produces a
// single Value tree, implementing the dual indented/bracketed grammar of
// spec.md §4.2. It has no explicit state machine beyond the call stack: the
// effective states (AT-ROOT, INSIDE-INDENTED-OBJECT, INSIDE-BRACED-OBJECT,
// INSIDE-BRACKETED-ARRAY, EXPECTING-VALUE) are just which function is on
// top.
type parser struct {
	tokens []Token
	pos    int
}

func newParser(tokens []Token) *parser {
	return &parser{tokens: tokens}
}

func (p *parser) current() Token {
	return p.peekAt(0)
}

func (p *parser) peekAt(offset int) Token {
	idx := p.pos + offset
	if idx < 0 {
		idx = 0
	}
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *parser) advance() Token {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return p.current()
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	t := p.current()
	if t.Kind != kind {
		return Token{}, parseErr(t.Pos, "expected %s, got %s", kind, t.Kind)
	}
	p.advance()
	return t, nil
}

func (p *parser) skipNewlines() {
	for p.current().Kind == tokenNewline {
		p.advance()
	}
}

// skipBracketNoise discards NEWLINE, INDENT, and DEDENT tokens that fall
// between brackets. Indentation is not grammatical inside `{...}`/`[...]`
// literals, so these must be silently dropped rather than rejected.
func (p *parser) skipBracketNoise() {
	for {
		switch p.current().Kind {
		case tokenNewline, tokenIndent, tokenDedent:
			p.advance()
		default:
			return
		}
	}
}

// parse is the entry point: root-must-be-object-or-array plus the
// top-level seal.
func (p *parser) parse() (Value, error) {
	p.skipNewlines()

	switch p.current().Kind {
	case tokenEOF:
		return NewObject(), nil
	case tokenLBracket:
		v, err := p.parseBracketedArray()
		if err != nil {
			return nil, err
		}
		return p.sealTop(v)
	case tokenLBrace:
		v, err := p.parseBracketedObject()
		if err != nil {
			return nil, err
		}
		return p.sealTop(v)
	}

	if isKeyStart(p.current().Kind) && p.peekAt(1).Kind == tokenColon {
		obj, err := p.parseIndentedObjectBody(false)
		if err != nil {
			return nil, err
		}
		return p.sealTop(obj)
	}

	return nil, parseErr(p.current().Pos, "root must be object or array")
}

func isKeyStart(kind TokenKind) bool {
	return kind == tokenIdentifier || kind == tokenString
}

// sealTop enforces the top-level seal: after the root value, only
// whitespace, newlines, and comments (already stripped by the lexer) may
// precede EOF.
func (p *parser) sealTop(v Value) (Value, error) {
	p.skipNewlines()
	if p.current().Kind != tokenEOF {
		return nil, parseErr(p.current().Pos, "unexpected content at top level")
	}
	return v, nil
}

// parseIndentedObjectBody parses a sequence of "key: value" entries under
// implicit indentation. When stopAtDedent is true (every call except the
// root body) the loop also stops at a DEDENT, whose matching consumption
// is the caller's responsibility, per spec.md §4.2.
func (p *parser) parseIndentedObjectBody(stopAtDedent bool) (*Object, error) {
	obj := NewObject()
	for {
		kind := p.current().Kind
		if kind == tokenEOF {
			break
		}
		if stopAtDedent && kind == tokenDedent {
			break
		}

		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenColon); err != nil {
			return nil, err
		}
		p.skipNewlines()

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
		p.skipNewlines()
	}
	return obj, nil
}

func (p *parser) parseKey() (string, error) {
	t := p.current()
	switch t.Kind {
	case tokenIdentifier:
		p.advance()
		return t.Ident, nil
	case tokenString:
		p.advance()
		return p.stringValue(t), nil
	default:
		return "", parseErr(t.Pos, "expected key, got %s", t.Kind)
	}
}

// parseValue implements the "value following a colon" routine shared by
// indented bodies, braced objects, and bracketed array items: INDENT opens
// a nested indented body, LBRACE/LBRACKET open bracketed containers, and
// anything else must be a literal.
func (p *parser) parseValue() (Value, error) {
	switch p.current().Kind {
	case tokenIndent:
		p.advance()
		obj, err := p.parseIndentedObjectBody(true)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenDedent); err != nil {
			return nil, err
		}
		return obj, nil
	case tokenLBrace:
		return p.parseBracketedObject()
	case tokenLBracket:
		return p.parseBracketedArray()
	default:
		return p.parseLiteral()
	}
}

func (p *parser) parseLiteral() (Value, error) {
	t := p.current()
	switch t.Kind {
	case tokenString:
		p.advance()
		return p.stringValue(t), nil
	case tokenNumber:
		p.advance()
		if t.Num.IsFloat {
			return t.Num.Float, nil
		}
		return t.Num.Int, nil
	case tokenTrue:
		p.advance()
		return true, nil
	case tokenFalse:
		p.advance()
		return false, nil
	case tokenNull:
		p.advance()
		return nil, nil
	case tokenIdentifier:
		return nil, parseErr(t.Pos, "bareword rejected as value: %q", t.Ident)
	default:
		return nil, parseErr(t.Pos, "expected value, got %s", t.Kind)
	}
}

func (p *parser) stringValue(tok Token) string {
	if tok.Str.triple {
		return decodeTripleQuoted(tok.Str.text)
	}
	return tok.Str.text
}

func (p *parser) parseBracketedObject() (*Object, error) {
	if _, err := p.expect(tokenLBrace); err != nil {
		return nil, err
	}
	p.skipBracketNoise()

	obj := NewObject()
	for p.current().Kind != tokenRBrace {
		if p.current().Kind == tokenEOF {
			return nil, parseErr(p.current().Pos, "unclosed object")
		}

		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenColon); err != nil {
			return nil, err
		}
		p.skipBracketNoise()

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)

		if err := p.consumeEntrySeparator(tokenRBrace); err != nil {
			return nil, err
		}
	}
	p.advance()
	return obj, nil
}

func (p *parser) parseBracketedArray() (Array, error) {
	if _, err := p.expect(tokenLBracket); err != nil {
		return nil, err
	}
	p.skipBracketNoise()

	arr := Array{}
	for p.current().Kind != tokenRBracket {
		if p.current().Kind == tokenEOF {
			return nil, parseErr(p.current().Pos, "unclosed array")
		}

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)

		if err := p.consumeEntrySeparator(tokenRBracket); err != nil {
			return nil, err
		}
	}
	p.advance()
	return arr, nil
}

// consumeEntrySeparator enforces strict separation between bracketed
// entries: exactly one of COMMA or a run of NEWLINEs, or the closing
// token. Trailing commas are allowed because the closing token is always
// an acceptable "separator" too. The separator check must happen before
// any noise-skipping, since skipBracketNoise eats NEWLINE tokens right
// along with the cosmetic INDENT/DEDENT ones — skip first and a
// newline-separated entry looks indistinguishable from no separator at
// all.
func (p *parser) consumeEntrySeparator(closeKind TokenKind) error {
	switch p.current().Kind {
	case tokenComma:
		p.advance()
	case tokenNewline:
		for p.current().Kind == tokenNewline {
			p.advance()
		}
	default:
		if p.current().Kind != closeKind {
			return parseErr(p.current().Pos, "expected comma or newline between entries")
		}
	}
	p.skipBracketNoise()
	return nil
}
