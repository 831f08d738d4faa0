package csonh

import (
	"io"
	"os"
)

// Parse parses a complete CSONH document held in memory and returns its
// value tree: an *Object or Array at the root, or an empty *Object for
// input that is only whitespace and comments (spec.md §4.2, §8).
//
// Parse is a pure function of source up to equality of result or error: it
// performs no I/O, holds no state between calls, and may be called
// concurrently from independent goroutines on independent inputs without
// coordination (spec.md §5).
func Parse(source string) (Value, error) {
	toks, err := newLexer(source).lex()
	if err != nil {
		return nil, err
	}
	return newParser(toks).parse()
}

// ParseReader reads r to completion and parses the result as CSONH. Reading
// itself is plain I/O external to the core (spec.md §1's "out of scope"
// list); Parse remains the pure stage.
func ParseReader(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// ParseFile reads and parses the file at path. Like ParseReader, the file
// read is the only I/O involved; the parse itself remains pure.
func ParseFile(path string) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}
