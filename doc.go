// Package csonh implements CSONH (Concise Structured Object Notation for
// Humanity), a strict, data-only configuration format that combines JSON's
// unambiguous typing with indentation-based readability.
//
// # Parsing pipeline
//
// Parsing runs in two stages over a single UTF-8 source document:
//
//  1. Lexer: converts source text into a token stream, performing
//     indentation bookkeeping (synthetic Indent/Dedent tokens), comment
//     stripping, and number/string recognition.
//
//  2. Parser: recursive-descent over the token stream, mixing an
//     indentation-sensitive grammar for implicit object nesting with a
//     bracket-delimited grammar for `{...}` and `[...]` literals, producing
//     an immutable [Value] tree.
//
// Triple-quoted string literals are decoded in a third, narrower step (see
// [Value] and the unexported dedent logic) once the parser knows where the
// closing delimiter sits, since only the parser has that context.
//
// The package holds no state between calls, and [Parse] performs no I/O: it
// is a pure function of its input up to equality of result or error. Only
// [ParseReader] and [ParseFile] perform I/O, to read their input.
package csonh
