package css

import "github.com/hhowe/browsercore/log"

// ComponentValue is a single CSS token used as a declaration value. This
// renderer only ever acts on Ident and HashToken values; any other
// token is still stored but silently ignored by the cascade.
type ComponentValue = Token

// SelectorKind discriminates the closed set of selectors this renderer
// can match against an element.
type SelectorKind int

const (
	TypeSelector SelectorKind = iota
	ClassSelector
	IdSelector
	UnknownSelector
)

// Selector is a single, non-compound selector: a bare type name, class
// name, or id name. Combinators, compound selectors and selector lists
// are out of scope.
type Selector struct {
	Kind SelectorKind
	Name string // empty for UnknownSelector
}

// Declaration is a single `property: value;` pair.
type Declaration struct {
	Property string
	Value    ComponentValue
}

// QualifiedRule is a `selector { declarations }` pair, in source order.
type QualifiedRule struct {
	Selector     Selector
	Declarations []Declaration
}

// StyleSheet is an ordered list of qualified rules, in source order.
type StyleSheet struct {
	Rules []QualifiedRule
}

// Parser consumes a Tokenizer's output and yields a StyleSheet.
type Parser struct {
	t    *Tokenizer
	peek *Token
	ok   bool
}

// NewParser creates a CSS parser over raw source text.
func NewParser(input string) *Parser {
	return &Parser{t: NewTokenizer(input)}
}

func (p *Parser) next() (Token, bool) {
	if p.peek != nil {
		tok, ok := *p.peek, p.ok
		p.peek = nil
		return tok, ok
	}
	return p.t.Next()
}

func (p *Parser) peekToken() (Token, bool) {
	if p.peek == nil {
		tok, ok := p.t.Next()
		p.peek = &tok
		p.ok = ok
	}
	return *p.peek, p.ok
}

// ParseStylesheet parses the whole input into a StyleSheet. Parse
// errors never propagate out of this call: malformed rules and
// declarations are skipped.
func (p *Parser) ParseStylesheet() *StyleSheet {
	return &StyleSheet{Rules: p.consumeListOfRules()}
}

// ParseStylesheet is a convenience wrapper around NewParser+ParseStylesheet.
func ParseStylesheet(input string) *StyleSheet {
	return NewParser(input).ParseStylesheet()
}

func (p *Parser) consumeListOfRules() []QualifiedRule {
	var rules []QualifiedRule
	for {
		tok, ok := p.peekToken()
		if !ok {
			return rules
		}
		if tok.Type == AtKeyword {
			// @-rules are consumed (so the tokens don't leak into the
			// next rule) but never kept.
			p.consumeQualifiedRule()
			continue
		}
		rule, ok := p.consumeQualifiedRule()
		if !ok {
			return rules
		}
		rules = append(rules, rule)
	}
}

func (p *Parser) consumeQualifiedRule() (QualifiedRule, bool) {
	var rule QualifiedRule
	for {
		tok, ok := p.peekToken()
		if !ok {
			return QualifiedRule{}, false
		}
		if tok.Type == OpenCurly {
			p.next() // consume '{'
			rule.Declarations = p.consumeListOfDeclarations()
			return rule, true
		}
		rule.Selector = p.consumeSelector()
	}
}

func (p *Parser) consumeSelector() Selector {
	tok, ok := p.next()
	if !ok {
		log.Debugf("css: unexpected end of input while reading a selector")
		return Selector{Kind: UnknownSelector}
	}

	switch tok.Type {
	case HashToken:
		return Selector{Kind: IdSelector, Name: tok.Value}
	case Delim:
		if tok.Value == "." {
			ident, ok := p.next()
			if !ok || ident.Type != Ident {
				log.Debugf("css: malformed class selector")
				return Selector{Kind: UnknownSelector}
			}
			return Selector{Kind: ClassSelector, Name: ident.Value}
		}
		log.Debugf("css: unexpected delimiter %q in selector position", tok.Value)
		return Selector{Kind: UnknownSelector}
	case Ident:
		// a:hover is absorbed as a type selector whose pseudo-class is
		// dropped along with the rest of the selector up to '{'.
		if next, ok := p.peekToken(); ok && next.Type == Colon {
			p.skipUntilOpenCurly()
		}
		return Selector{Kind: TypeSelector, Name: tok.Value}
	case AtKeyword:
		p.skipUntilOpenCurly()
		return Selector{Kind: UnknownSelector}
	default:
		return Selector{Kind: UnknownSelector}
	}
}

func (p *Parser) skipUntilOpenCurly() {
	for {
		tok, ok := p.peekToken()
		if !ok || tok.Type == OpenCurly {
			return
		}
		p.next()
	}
}

func (p *Parser) consumeListOfDeclarations() []Declaration {
	var decls []Declaration
	for {
		tok, ok := p.peekToken()
		if !ok || tok.Type == CloseCurly {
			p.next()
			return decls
		}
		if tok.Type == Semicolon {
			p.next()
			continue
		}
		decl, ok := p.consumeDeclaration()
		if ok {
			decls = append(decls, decl)
		}
		p.skipToDeclarationEnd()
	}
}

func (p *Parser) consumeDeclaration() (Declaration, bool) {
	prop, ok := p.next()
	if !ok || prop.Type != Ident {
		log.Debugf("css: expected a property name, skipping malformed declaration")
		return Declaration{}, false
	}

	// Peek rather than consume: if this is the ';' or '}' that ends a
	// malformed declaration, it must stay for the caller to stop on.
	colon, ok := p.peekToken()
	if !ok || colon.Type != Colon {
		log.Debugf("css: expected ':' after property %q", prop.Value)
		return Declaration{}, false
	}
	p.next()

	value, ok := p.next()
	if !ok {
		log.Debugf("css: expected a value for property %q", prop.Value)
		return Declaration{}, false
	}

	return Declaration{Property: prop.Value, Value: value}, true
}

// skipToDeclarationEnd advances past any stray tokens left over from a
// malformed declaration, stopping just before ';' or '}'.
func (p *Parser) skipToDeclarationEnd() {
	for {
		tok, ok := p.peekToken()
		if !ok || tok.Type == Semicolon || tok.Type == CloseCurly {
			return
		}
		p.next()
	}
}
