package csonh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pythagorean/csonh/internal/prettyprint"
)

func mustParse(t *testing.T, src string) Value {
	t.Helper()
	v, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v\nsource dump:\n%s", src, err, prettyprint.Sdump(src))
	}
	return v
}

func asObject(t *testing.T, v Value) *Object {
	t.Helper()
	obj, ok := v.(*Object)
	if !ok {
		t.Fatalf("expected *Object, got %T\nvalue dump:\n%s", v, prettyprint.Sdump(v))
	}
	return obj
}

func TestParseBasicObject(t *testing.T) {
	v := mustParse(t, "key: 'value'")
	obj := asObject(t, v)
	got, ok := obj.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", got)
}

func TestParseImplicitNesting(t *testing.T) {
	v := mustParse(t, "server:\n  host: 'localhost'\n  port: 8080\n")
	root := asObject(t, v)
	server, ok := root.Get("server")
	require.True(t, ok)
	nested := asObject(t, server)

	host, _ := nested.Get("host")
	assert.Equal(t, "localhost", host)
	port, _ := nested.Get("port")
	assert.Equal(t, int64(8080), port)
}

func TestParseBracketedArray(t *testing.T) {
	v := mustParse(t, "[1, 2, 3]")
	arr, ok := v.(Array)
	require.True(t, ok)
	assert.Equal(t, Array{int64(1), int64(2), int64(3)}, arr)
}

func TestParseSpaceSeparatedArrayRejected(t *testing.T) {
	_, err := Parse("[1 2]")
	require.Error(t, err)
}

func TestParseSpaceSeparatedObjectRejected(t *testing.T) {
	_, err := Parse("{a:1 b:2}")
	require.Error(t, err)
}

func TestParseNewlineSeparatedArrayAccepted(t *testing.T) {
	v, err := Parse("[1\n2]")
	require.NoError(t, err)
	assert.Equal(t, Array{int64(1), int64(2)}, v)
}

func TestParseKeywordBooleans(t *testing.T) {
	v := mustParse(t, "a: yes\nb: 'NO'\n")
	obj := asObject(t, v)
	a, _ := obj.Get("a")
	assert.Equal(t, true, a)
	b, _ := obj.Get("b")
	assert.Equal(t, "NO", b)
}

func TestParseRejectsCaseVariantKeywordBarewords(t *testing.T) {
	for _, src := range []string{"a: NO", "a: YES", "a: On", "a: OFF"} {
		_, err := Parse(src)
		assert.Error(t, err, "expected %q to be rejected as a bareword", src)
	}
}

func TestParseTripleQuotedDedentRoundTrip(t *testing.T) {
	v := mustParse(t, "msg: '''\n  Line 1\n  Line 2\n  '''\n")
	obj := asObject(t, v)
	msg, _ := obj.Get("msg")
	assert.Equal(t, "Line 1\nLine 2", msg)
}

func TestParseInterpolationRejected(t *testing.T) {
	_, err := Parse(`a: "val #{x}"`)
	require.Error(t, err)
	var lexErr *LexerError
	require.ErrorAs(t, err, &lexErr)
}

func TestParseTrailingJunkRejected(t *testing.T) {
	_, err := Parse("key: 1\ngarbage")
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseArithmeticRejected(t *testing.T) {
	_, err := Parse("a: 1 + 2")
	require.Error(t, err)
}

func TestParseEmptyAndCommentOnlyYieldsEmptyObject(t *testing.T) {
	for _, src := range []string{"", "   \n\n", "# just a comment\n"} {
		v, err := Parse(src)
		require.NoError(t, err)
		obj := asObject(t, v)
		assert.Equal(t, 0, obj.Len())
	}
}

func TestParseIntegerBasesAgree(t *testing.T) {
	for _, src := range []string{"0xFF", "0b11111111", "0o377", "255"} {
		v, err := Parse("n: " + src)
		require.NoError(t, err)
		n, _ := asObject(t, v).Get("n")
		assert.Equal(t, int64(255), n, "source %q", src)
	}
}

func TestParseDuplicateKeyLastWriteWinsFirstSeenOrder(t *testing.T) {
	v := mustParse(t, "{a: 1, b: 2, a: 3}")
	obj := asObject(t, v)
	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	a, _ := obj.Get("a")
	assert.Equal(t, int64(3), a)
}

func TestParseMixedIndentedAndBracketedGrammars(t *testing.T) {
	v := mustParse(t, "list: [{a: 1}, {b: [1, 2, {c: 3}]}]\n")
	root := asObject(t, v)
	list, ok := root.Get("list")
	require.True(t, ok)
	arr, ok := list.(Array)
	require.True(t, ok)
	require.Len(t, arr, 2)

	first := asObject(t, arr[0])
	a, _ := first.Get("a")
	assert.Equal(t, int64(1), a)

	second := asObject(t, arr[1])
	b, ok := second.Get("b")
	require.True(t, ok)
	bArr, ok := b.(Array)
	require.True(t, ok)
	require.Len(t, bArr, 3)
	inner := asObject(t, bArr[2])
	c, _ := inner.Get("c")
	assert.Equal(t, int64(3), c)
}

func TestParseTrailingCommaAllowed(t *testing.T) {
	v, err := Parse("[1, 2, 3,]")
	require.NoError(t, err)
	assert.Equal(t, Array{int64(1), int64(2), int64(3)}, v)
}

func TestParseUnclosedContainersFail(t *testing.T) {
	for _, src := range []string{"[1, 2", "{a: 1"} {
		_, err := Parse(src)
		assert.Error(t, err, "source %q", src)
	}
}

func TestParseRootMustBeObjectOrArray(t *testing.T) {
	_, err := Parse("'just a string'")
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}
