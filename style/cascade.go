package style

import (
	"github.com/hhowe/browsercore/css"
	"github.com/hhowe/browsercore/dom"
)

// cascaded holds whatever a cascade run actually set. A nil field means
// no rule touched that property, and Resolve falls back to inheritance
// or a hardcoded default for it.
type cascaded struct {
	backgroundColor *Color
	color           *Color
	display         *Display
}

// Cascade applies every rule in every sheet, in order, whose selector
// matches el, last declaration wins. sheets is expected to carry the
// user-agent stylesheet first and the document's own <style> sheets
// after it, so author rules naturally override the user-agent ones.
func Cascade(el *dom.Element, sheets []*css.StyleSheet) cascaded {
	var c cascaded
	for _, sheet := range sheets {
		if sheet == nil {
			continue
		}
		for _, rule := range sheet.Rules {
			if !selectorMatches(rule.Selector, el) {
				continue
			}
			for _, decl := range rule.Declarations {
				applyDeclaration(&c, decl)
			}
		}
	}
	return c
}

func selectorMatches(sel css.Selector, el *dom.Element) bool {
	switch sel.Kind {
	case css.TypeSelector:
		return el.Kind.String() == sel.Name
	case css.ClassSelector:
		v, ok := el.Attribute("class")
		return ok && v == sel.Name
	case css.IdSelector:
		v, ok := el.Attribute("id")
		return ok && v == sel.Name
	default:
		return false
	}
}

func applyDeclaration(c *cascaded, decl css.Declaration) {
	switch decl.Property {
	case "background-color":
		if col, ok := colorFromValue(decl.Value); ok {
			c.backgroundColor = &col
		}
	case "color":
		if col, ok := colorFromValue(decl.Value); ok {
			c.color = &col
		}
	case "display":
		if d, ok := displayFromValue(decl.Value); ok {
			c.display = &d
		}
	}
}

func colorFromValue(v css.ComponentValue) (Color, bool) {
	switch v.Type {
	case css.Ident, css.HashToken:
		return ParseColor(v.Value)
	default:
		return Color{}, false
	}
}

func displayFromValue(v css.ComponentValue) (Display, bool) {
	if v.Type != css.Ident {
		return 0, false
	}
	switch v.Value {
	case "block":
		return Block, true
	case "inline":
		return Inline, true
	case "none":
		return None, true
	default:
		return 0, false
	}
}

// Resolve produces the final ComputedStyle for an element given what its
// cascade run found and its parent's already-resolved style (nil for the
// root of the layout tree). background-color and display fall back to a
// fixed default when no rule set them; color inherits from the parent
// when unset, matching the narrow inheritance this renderer supports.
func Resolve(c cascaded, parent *ComputedStyle) ComputedStyle {
	var out ComputedStyle

	if c.display != nil {
		out.Display = *c.display
	} else {
		out.Display = Inline
	}

	if c.backgroundColor != nil {
		out.BackgroundColor = *c.backgroundColor
	} else {
		out.BackgroundColor = White
	}

	switch {
	case c.color != nil:
		out.Color = *c.color
	case parent != nil:
		out.Color = parent.Color
	default:
		out.Color = Black
	}

	return out
}

// ResolveFontSize is the element-kind default for font-size, falling
// back to inheriting the parent's resolved size. h1 and h2 are the only
// kinds with their own default; every other kind, including text nodes,
// inherits.
func ResolveFontSize(kind dom.ElementKind, parent *ComputedStyle) FontSize {
	switch kind {
	case dom.H1:
		return XXLarge
	case dom.H2:
		return XLarge
	default:
		if parent != nil {
			return parent.FontSize
		}
		return Medium
	}
}

// ResolveText produces the ComputedStyle for a text node, which is
// always treated as inline and inherits color and font-size from its
// parent layout object.
func ResolveText(parent *ComputedStyle) ComputedStyle {
	out := ComputedStyle{Display: Inline, BackgroundColor: White}
	if parent != nil {
		out.Color = parent.Color
		out.FontSize = parent.FontSize
	}
	return out
}
