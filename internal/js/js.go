// Package js is the boundary between the rendering core and script
// execution. It parses the text content of a <script> element far enough
// to catch syntax errors, but never runs it: execution is an external
// collaborator's concern, not this renderer's.
package js

import (
	"github.com/dop251/goja"

	"github.com/hhowe/browsercore/log"
)

// Program is a parsed, never-executed script body.
type Program struct {
	compiled *goja.Program
	source   string
}

// Source returns the original script text handed to Parse.
func (p *Program) Source() string {
	return p.source
}

// Parse compiles src into a goja.Program without ever running it. A
// syntax error is logged and swallowed: the core never fails on account
// of embedded script, per the renderer's best-effort rendering contract.
func Parse(src string) *Program {
	prog, err := goja.Compile("<script>", src, false)
	if err != nil {
		log.Debugf("js: failed to parse script body: %v", err)
		return &Program{source: src}
	}
	return &Program{compiled: prog, source: src}
}
