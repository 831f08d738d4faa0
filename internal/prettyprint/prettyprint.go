// Package prettyprint renders a parsed csonh.Value tree for human
// consumption: the `csonh dump` CLI subcommand and t.Fatalf diagnostics in
// the core's tests.
package prettyprint

import "github.com/davecgh/go-spew/spew"

// config mirrors the corpus's habit of a single shared spew.ConfigState
// rather than calling the package-level spew.Dump (which writes straight to
// stdout instead of returning the rendering as a string).
var config = &spew.ConfigState{
	Indent:                  "  ",
	DisableCapacities:       true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

// Sdump returns a multi-line, indented rendering of v.
func Sdump(v any) string {
	return config.Sdump(v)
}
