// Package html provides HTML tokenization and DOM tree construction for
// the closed subset of elements this renderer supports.
//
// HTML5 §12.2.5 Tokenization: https://html.spec.whatwg.org/multipage/parsing.html#tokenization
package html

import "strings"

// TokenType is the kind of an HTML token.
type TokenType int

const (
	StartTagToken TokenType = iota
	EndTagToken
	CharToken
	EOFToken
)

// Attribute is a single name/value pair on a start tag, in source order.
// Names are folded to lowercase as they are read.
type Attribute struct {
	Name  string
	Value string
}

// Token is one HTML token. Only the fields relevant to Type are
// meaningful: Tag/SelfClosing/Attributes for StartTagToken, Tag for
// EndTagToken, Char for CharToken.
type Token struct {
	Type        TokenType
	Tag         string
	SelfClosing bool
	Attributes  []Attribute
	Char        rune
}

// state is the tokenizer's current position in the subset of the
// WHATWG tokenization state machine this renderer implements.
type state int

const (
	stateData state = iota
	stateTagOpen
	stateEndTagOpen
	stateTagName
	stateBeforeAttributeName
	stateAttributeName
	stateAfterAttributeName
	stateBeforeAttributeValue
	stateAttributeValueDoubleQuoted
	stateAttributeValueSingleQuoted
	stateAttributeValueUnquoted
	stateAfterAttributeValueQuoted
	stateSelfClosingStartTag
	stateScriptData
	stateScriptDataLessThanSign
	stateScriptDataEndTagOpen
	stateScriptDataEndTagName
	stateTemporaryBuffer
)

// Tokenizer produces a lazy, finite, non-restartable sequence of HTML
// tokens from a character sequence.
type Tokenizer struct {
	input     []rune
	pos       int
	state     state
	reconsume bool

	// Accumulators for the tag currently being built.
	building     bool
	buildIsStart bool
	tagName      strings.Builder
	selfClosing  bool
	attrs        []Attribute
	attrName     strings.Builder
	attrValue    strings.Builder
	haveAttr     bool

	// lastStartTag is the name of the most recently emitted start tag;
	// entering ScriptData mode after "<script>" depends on it.
	lastStartTag string

	// scriptEndTagName is lowered as ScriptDataEndTagName accumulates a
	// candidate closing tag name.
	scriptEndTagName strings.Builder

	// pending holds characters that must be replayed as CharTokens once
	// a candidate "</script...>" in ScriptDataEndTagName turns out not
	// to match; drained by stateTemporaryBuffer.
	pending []rune
}

// NewTokenizer creates an HTML tokenizer over the given source text.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: []rune(input), state: stateData}
}

// isEOF reports whether every input character has been consumed.
func (t *Tokenizer) isEOF() bool {
	return t.pos >= len(t.input)
}

func (t *Tokenizer) consumeNextInput() rune {
	c := t.input[t.pos]
	t.pos++
	return c
}

func (t *Tokenizer) reconsumeInput() rune {
	t.reconsume = false
	return t.input[t.pos-1]
}

func (t *Tokenizer) createTag(isStart bool) {
	t.building = true
	t.buildIsStart = isStart
	t.tagName.Reset()
	t.selfClosing = false
	t.attrs = nil
	t.haveAttr = false
}

func (t *Tokenizer) startAttribute() {
	t.finalizeAttribute()
	t.attrName.Reset()
	t.attrValue.Reset()
	t.haveAttr = true
}

// finalizeAttribute appends the in-progress attribute to the tag being
// built, keeping the first value seen for a duplicate name.
func (t *Tokenizer) finalizeAttribute() {
	if !t.haveAttr {
		return
	}
	name := t.attrName.String()
	value := t.attrValue.String()
	t.haveAttr = false
	for _, a := range t.attrs {
		if a.Name == name {
			return
		}
	}
	t.attrs = append(t.attrs, Attribute{Name: name, Value: value})
}

func (t *Tokenizer) emitTag() Token {
	t.finalizeAttribute()
	name := t.tagName.String()
	t.building = false
	if t.buildIsStart {
		t.lastStartTag = name
		return Token{Type: StartTagToken, Tag: name, SelfClosing: t.selfClosing, Attributes: t.attrs}
	}
	return Token{Type: EndTagToken, Tag: name}
}

func isASCIIAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func toLowerRune(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Next returns the next token, or (Token{}, false) once Eof has already
// been produced. The tokenizer emits exactly one Eof token and then stops.
func (t *Tokenizer) Next() (Token, bool) {
	if t.pos > len(t.input) {
		// Eof already produced on a previous call.
		return Token{}, false
	}

	for {
		if t.state == stateTemporaryBuffer {
			if len(t.pending) == 0 {
				t.state = stateScriptData
				continue
			}
			c := t.pending[0]
			t.pending = t.pending[1:]
			return Token{Type: CharToken, Char: c}, true
		}

		if t.pos >= len(t.input) && !t.reconsume {
			// Advance pos one past len so a second call to Next sees
			// the sentinel above and stops.
			t.pos = len(t.input) + 1
			return Token{Type: EOFToken}, true
		}

		var c rune
		if t.reconsume {
			c = t.reconsumeInput()
		} else {
			c = t.consumeNextInput()
		}

		switch t.state {
		case stateData:
			if c == '<' {
				t.state = stateTagOpen
				continue
			}
			return Token{Type: CharToken, Char: c}, true

		case stateTagOpen:
			if c == '/' {
				t.state = stateEndTagOpen
				continue
			}
			if isASCIIAlpha(c) {
				t.reconsume = true
				t.createTag(true)
				t.state = stateTagName
				continue
			}
			// Not a recognized tag open; emit '<' as data and
			// reconsume c in Data.
			t.reconsume = true
			t.state = stateData
			return Token{Type: CharToken, Char: '<'}, true

		case stateEndTagOpen:
			if isASCIIAlpha(c) {
				t.reconsume = true
				t.createTag(false)
				t.state = stateTagName
				continue
			}
			t.state = stateData
			continue

		case stateTagName:
			if isWhitespace(c) {
				t.state = stateBeforeAttributeName
				continue
			}
			if c == '/' {
				t.state = stateSelfClosingStartTag
				continue
			}
			if c == '>' {
				t.state = t.stateAfterTag()
				return t.emitTag(), true
			}
			t.tagName.WriteRune(toLowerRune(c))
			continue

		case stateBeforeAttributeName:
			if isWhitespace(c) {
				continue
			}
			if c == '/' {
				t.state = stateSelfClosingStartTag
				continue
			}
			if c == '>' {
				t.state = t.stateAfterTag()
				return t.emitTag(), true
			}
			t.reconsume = true
			t.startAttribute()
			t.state = stateAttributeName
			continue

		case stateAttributeName:
			if isWhitespace(c) {
				t.state = stateAfterAttributeName
				continue
			}
			if c == '/' {
				t.state = stateSelfClosingStartTag
				continue
			}
			if c == '=' {
				t.state = stateBeforeAttributeValue
				continue
			}
			if c == '>' {
				t.state = t.stateAfterTag()
				return t.emitTag(), true
			}
			t.attrName.WriteRune(toLowerRune(c))
			continue

		case stateAfterAttributeName:
			if isWhitespace(c) {
				continue
			}
			if c == '/' {
				t.state = stateSelfClosingStartTag
				continue
			}
			if c == '=' {
				t.state = stateBeforeAttributeValue
				continue
			}
			if c == '>' {
				t.state = t.stateAfterTag()
				return t.emitTag(), true
			}
			t.reconsume = true
			t.startAttribute()
			t.state = stateAttributeName
			continue

		case stateBeforeAttributeValue:
			if isWhitespace(c) {
				continue
			}
			if c == '"' {
				t.state = stateAttributeValueDoubleQuoted
				continue
			}
			if c == '\'' {
				t.state = stateAttributeValueSingleQuoted
				continue
			}
			t.reconsume = true
			t.state = stateAttributeValueUnquoted
			continue

		case stateAttributeValueDoubleQuoted:
			if c == '"' {
				t.state = stateAfterAttributeValueQuoted
				continue
			}
			t.attrValue.WriteRune(c)
			continue

		case stateAttributeValueSingleQuoted:
			if c == '\'' {
				t.state = stateAfterAttributeValueQuoted
				continue
			}
			t.attrValue.WriteRune(c)
			continue

		case stateAttributeValueUnquoted:
			if isWhitespace(c) {
				t.state = stateBeforeAttributeName
				continue
			}
			if c == '>' {
				t.state = t.stateAfterTag()
				return t.emitTag(), true
			}
			t.attrValue.WriteRune(c)
			continue

		case stateAfterAttributeValueQuoted:
			if isWhitespace(c) {
				t.state = stateBeforeAttributeName
				continue
			}
			if c == '/' {
				t.state = stateSelfClosingStartTag
				continue
			}
			if c == '>' {
				t.state = t.stateAfterTag()
				return t.emitTag(), true
			}
			t.reconsume = true
			t.state = stateBeforeAttributeName
			continue

		case stateSelfClosingStartTag:
			if c == '>' {
				t.selfClosing = true
				t.state = stateData
				return t.emitTag(), true
			}
			t.reconsume = true
			t.state = stateBeforeAttributeName
			continue

		case stateScriptData:
			if c == '<' {
				t.state = stateScriptDataLessThanSign
				continue
			}
			return Token{Type: CharToken, Char: c}, true

		case stateScriptDataLessThanSign:
			if c == '/' {
				t.scriptEndTagName.Reset()
				t.state = stateScriptDataEndTagOpen
				continue
			}
			t.reconsume = true
			t.state = stateScriptData
			return Token{Type: CharToken, Char: '<'}, true

		case stateScriptDataEndTagOpen:
			if isASCIIAlpha(c) {
				t.reconsume = true
				t.state = stateScriptDataEndTagName
				continue
			}
			t.state = stateScriptData
			return Token{Type: CharToken, Char: '<'}, true

		case stateScriptDataEndTagName:
			if isASCIIAlpha(c) {
				t.scriptEndTagName.WriteRune(toLowerRune(c))
				continue
			}
			if c == '>' && strings.EqualFold(t.scriptEndTagName.String(), "script") {
				t.state = stateData
				return Token{Type: EndTagToken, Tag: "script"}, true
			}
			// Not a matching close tag: replay "</" + name + c as
			// literal script character data.
			t.pending = append([]rune{'<', '/'}, []rune(t.scriptEndTagName.String())...)
			t.pending = append(t.pending, c)
			t.state = stateTemporaryBuffer
			continue

		default:
			t.state = stateData
			continue
		}
	}
}

// stateAfterTag decides the state to enter after emitting a tag: a
// non-self-closing "<script>" start tag switches the tokenizer into
// raw ScriptData mode so that '<' inside the script body is not
// mistaken for markup.
func (t *Tokenizer) stateAfterTag() state {
	if t.buildIsStart && !t.selfClosing && t.tagName.String() == "script" {
		return stateScriptData
	}
	return stateData
}
