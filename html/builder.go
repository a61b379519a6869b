package html

import (
	"strings"

	"github.com/hhowe/browsercore/css"
	"github.com/hhowe/browsercore/dom"
	"github.com/hhowe/browsercore/internal/js"
	"github.com/hhowe/browsercore/log"
)

// insertionMode is the DOM builder's position in its tree-construction
// state machine. InTable is carried as a reserved state: the supported
// element set has no table elements, so it is never entered, but it
// stays part of the enumeration for the same reason the tokenizer keeps
// every attribute-parsing state even when a given document never uses
// quoted values.
type insertionMode int

const (
	modeInitial insertionMode = iota
	modeBeforeHtml
	modeBeforeHead
	modeInHead
	modeAfterHead
	modeInBody
	modeText
	modeInTable
	modeAfterBody
	modeAfterAfterBody
)

// Builder consumes the token stream from a Tokenizer and constructs a
// Window/Document tree, maintaining an explicit stack of open elements.
type Builder struct {
	tok    *Tokenizer
	window *dom.Window
	mode   insertionMode
	stack  []*dom.Node

	// originalMode is restored once a raw-text run (style or script)
	// closes; rawKind says which element kind is being accumulated.
	originalMode insertionMode
	rawKind      dom.ElementKind
	rawText      strings.Builder
}

// NewBuilder creates a DOM builder over the given token source.
func NewBuilder(tok *Tokenizer) *Builder {
	return &Builder{tok: tok, mode: modeInitial}
}

// BuildDocument tokenizes and parses html in one call, returning the
// Window that owns the resulting Document.
func BuildDocument(html string) *dom.Window {
	return NewBuilder(NewTokenizer(html)).Build()
}

// Build drives the tokenizer to completion and returns the finished
// Window. Malformed input never panics or hangs: every state has a
// defined fallback, and the tokenizer itself is guaranteed to terminate.
func (b *Builder) Build() *dom.Window {
	b.window = dom.NewWindow()
	b.stack = []*dom.Node{b.window.Document()}

	for {
		tok, ok := b.tok.Next()
		if !ok {
			return b.window
		}
		b.dispatch(tok)
		if tok.Type == EOFToken {
			return b.window
		}
	}
}

func (b *Builder) current() *dom.Node {
	return b.stack[len(b.stack)-1]
}

func (b *Builder) push(n *dom.Node) {
	b.current().AppendChild(n)
	b.stack = append(b.stack, n)
}

// pushElement appends a new element as a child of the current node and,
// unless selfClosing, opens it on the stack.
func (b *Builder) pushElement(kind dom.ElementKind, attrs []Attribute, selfClosing bool) *dom.Node {
	n := dom.NewElement(kind, convertAttributes(attrs))
	b.current().AppendChild(n)
	if !selfClosing {
		b.stack = append(b.stack, n)
	}
	return n
}

func convertAttributes(attrs []Attribute) []dom.Attribute {
	if attrs == nil {
		return nil
	}
	out := make([]dom.Attribute, len(attrs))
	for i, a := range attrs {
		out[i] = dom.Attribute{Name: a.Name, Value: a.Value}
	}
	return out
}

// popTo pops the stack, inclusive, up to and including the nearest open
// element of the given kind. If no such element is open, the stack is
// left untouched: the end tag is ignored.
func (b *Builder) popTo(kind dom.ElementKind) {
	for i := len(b.stack) - 1; i > 0; i-- {
		if k, ok := b.stack[i].ElementKind(); ok && k == kind {
			b.stack = b.stack[:i]
			return
		}
	}
}

// appendText appends c to the current node's last child if it is
// already a text node, otherwise creates a new text sibling.
func (b *Builder) appendText(c rune) {
	cur := b.current()
	if cur.LastChild != nil && cur.LastChild.Type == dom.TextNode {
		cur.LastChild.Text += string(c)
		return
	}
	cur.AppendChild(dom.NewText(string(c)))
}

func (b *Builder) enterRawText(kind dom.ElementKind) {
	b.originalMode = b.mode
	b.rawKind = kind
	b.rawText.Reset()
	b.mode = modeText
}

func (b *Builder) closeRawText() {
	text := b.rawText.String()
	switch b.rawKind {
	case dom.Style:
		sheet := css.ParseStylesheet(text)
		b.window.StyleSheets = append(b.window.StyleSheets, sheet)
	case dom.Script:
		js.Parse(text)
	}
	b.popTo(b.rawKind)
	b.mode = b.originalMode
}

// dispatch routes a token to the handler for the current insertion mode.
func (b *Builder) dispatch(tok Token) {
	switch b.mode {
	case modeInitial, modeBeforeHtml:
		b.inInitial(tok)
	case modeBeforeHead:
		b.inBeforeHead(tok)
	case modeInHead:
		b.inHead(tok)
	case modeAfterHead:
		b.inAfterHead(tok)
	case modeInBody:
		b.inBody(tok)
	case modeText:
		b.inText(tok)
	case modeAfterBody:
		b.inAfterBody(tok)
	case modeInTable, modeAfterAfterBody:
		// InTable is reserved and never entered. AfterAfterBody is
		// entered on </html> after the body closes; every token after
		// that is ignored.
	}
}

func (b *Builder) inInitial(tok Token) {
	switch tok.Type {
	case StartTagToken:
		if tok.Tag == "html" {
			b.pushElement(dom.Html, tok.Attributes, false)
			b.mode = modeBeforeHead
			return
		}
		// No explicit <html>: synthesize it and reprocess the token
		// that triggered this (HTML5 §12.2.6.4.2-style implicit insertion).
		b.pushElement(dom.Html, nil, false)
		b.mode = modeBeforeHead
		b.dispatch(tok)
	case CharToken:
		if isWhitespace(tok.Char) {
			return
		}
		b.pushElement(dom.Html, nil, false)
		b.mode = modeBeforeHead
		b.dispatch(tok)
	case EOFToken:
	default:
	}
}

func (b *Builder) inBeforeHead(tok Token) {
	switch tok.Type {
	case StartTagToken:
		switch tok.Tag {
		case "head":
			b.pushElement(dom.Head, tok.Attributes, false)
			b.mode = modeInHead
		case "html":
			// Already created; ignore duplicate.
		default:
			b.mode = modeAfterHead
			b.dispatch(tok)
		}
	case CharToken:
		if isWhitespace(tok.Char) {
			return
		}
		b.mode = modeAfterHead
		b.dispatch(tok)
	case EOFToken:
	default:
	}
}

func (b *Builder) inHead(tok Token) {
	switch tok.Type {
	case StartTagToken:
		switch tok.Tag {
		case "style":
			b.pushElement(dom.Style, tok.Attributes, false)
			b.enterRawText(dom.Style)
		case "script":
			b.pushElement(dom.Script, tok.Attributes, false)
			b.enterRawText(dom.Script)
		case "head":
			// Already open; ignore.
		default:
			b.popTo(dom.Head)
			b.mode = modeAfterHead
			b.dispatch(tok)
		}
	case EndTagToken:
		if tok.Tag == "head" {
			b.popTo(dom.Head)
			b.mode = modeAfterHead
			return
		}
		b.popTo(dom.Head)
		b.mode = modeAfterHead
		b.dispatch(tok)
	case CharToken:
		if isWhitespace(tok.Char) {
			return
		}
		b.popTo(dom.Head)
		b.mode = modeAfterHead
		b.dispatch(tok)
	case EOFToken:
	default:
	}
}

func (b *Builder) inAfterHead(tok Token) {
	switch tok.Type {
	case StartTagToken:
		if tok.Tag == "body" {
			b.pushElement(dom.Body, tok.Attributes, false)
			b.mode = modeInBody
			return
		}
		b.pushElement(dom.Body, nil, false)
		b.mode = modeInBody
		b.dispatch(tok)
	case CharToken:
		if isWhitespace(tok.Char) {
			return
		}
		b.pushElement(dom.Body, nil, false)
		b.mode = modeInBody
		b.dispatch(tok)
	case EOFToken:
	default:
	}
}

func (b *Builder) inBody(tok Token) {
	switch tok.Type {
	case StartTagToken:
		switch tok.Tag {
		case "style":
			b.pushElement(dom.Style, tok.Attributes, false)
			b.enterRawText(dom.Style)
			return
		case "script":
			b.pushElement(dom.Script, tok.Attributes, false)
			b.enterRawText(dom.Script)
			return
		case "html", "head", "body":
			// Already in the tree; ignore.
			return
		}
		kind, ok := dom.ParseElementKind(tok.Tag)
		if !ok {
			log.Debugf("html: dropping unknown element <%s>, its children attach to %s", tok.Tag, describeCurrent(b.current()))
			return
		}
		b.pushElement(kind, tok.Attributes, tok.SelfClosing)
	case EndTagToken:
		if tok.Tag == "body" {
			b.popTo(dom.Body)
			b.mode = modeAfterBody
			return
		}
		if kind, ok := dom.ParseElementKind(tok.Tag); ok {
			b.popTo(kind)
		}
		// Unknown or unopened end tags are ignored outright.
	case CharToken:
		b.appendText(tok.Char)
	case EOFToken:
	}
}

func (b *Builder) inText(tok Token) {
	switch tok.Type {
	case CharToken:
		b.rawText.WriteRune(tok.Char)
	case EndTagToken:
		if tok.Tag == b.rawKind.String() {
			b.closeRawText()
			return
		}
		// Anything else reaching Text mode is treated as more raw
		// content; the tokenizer's own ScriptData matching is what
		// normally prevents this from happening for <script>.
		b.rawText.WriteString("</")
		b.rawText.WriteString(tok.Tag)
		b.rawText.WriteRune('>')
	case EOFToken:
		// Unterminated style/script: best-effort, drop what we have.
	}
}

func (b *Builder) inAfterBody(tok Token) {
	switch tok.Type {
	case EndTagToken:
		if tok.Tag == "html" {
			b.mode = modeAfterAfterBody
		}
	case CharToken:
		if isWhitespace(tok.Char) {
			return
		}
	case EOFToken:
	}
}

func describeCurrent(n *dom.Node) string {
	if k, ok := n.ElementKind(); ok {
		return k.String()
	}
	return n.Type.String()
}
