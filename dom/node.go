// Package dom provides the Document Object Model tree structure built by
// the HTML tree-construction state machine, and the Window that owns it.
//
// DOM Level 2 Core: https://www.w3.org/TR/DOM-Level-2-Core/
package dom

import (
	"github.com/hhowe/browsercore/css"
)

// NodeType identifies which of the three supported node shapes a Node is.
type NodeType int

const (
	// DocumentNode is the root of every tree; there is exactly one.
	DocumentNode NodeType = iota
	// ElementNode is a supported HTML element (see ElementKind).
	ElementNode
	// TextNode is a run of character data.
	TextNode
)

func (t NodeType) String() string {
	switch t {
	case DocumentNode:
		return "document"
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	default:
		return "unknown"
	}
}

// ElementKind is the closed set of element tag names the DOM builder
// understands. Any other tag name fails to construct an element: the
// tokenizer still produces tokens for it, but the builder drops it.
type ElementKind int

const (
	Html ElementKind = iota
	Head
	Style
	Script
	Body
	P
	H1
	H2
	A
)

// elementNames is the canonical lowercase spelling for each ElementKind,
// and the table ParseElementKind searches.
var elementNames = [...]string{
	Html:   "html",
	Head:   "head",
	Style:  "style",
	Script: "script",
	Body:   "body",
	P:      "p",
	H1:     "h1",
	H2:     "h2",
	A:      "a",
}

// String returns the lowercase tag name for k.
func (k ElementKind) String() string {
	if int(k) < 0 || int(k) >= len(elementNames) {
		return "unknown"
	}
	return elementNames[k]
}

// ParseElementKind maps a lowercase tag name to its ElementKind. ok is
// false for any tag name outside the supported set.
func ParseElementKind(name string) (kind ElementKind, ok bool) {
	for k, n := range elementNames {
		if n == name {
			return ElementKind(k), true
		}
	}
	return 0, false
}

// Attribute is a single name/value pair on an element, in source order.
type Attribute struct {
	Name  string
	Value string
}

// Element is the payload of an ElementNode: its kind and its attributes
// in the order the tokenizer produced them.
type Element struct {
	Kind       ElementKind
	Attributes []Attribute
}

// Attribute returns the value of the named attribute and whether it was
// present. Attribute names are matched case-sensitively; the tokenizer
// already folds names to lowercase.
func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// IsBlockElement reports whether this element kind is block-level by
// this renderer's own classification, independent of any CSS display
// value. This is DOM-level metadata only; the authoritative block/inline
// decision for layout is the cascaded ComputedStyle, not this method.
func (e *Element) IsBlockElement() bool {
	switch e.Kind {
	case Body, H1, H2, P:
		return true
	default:
		return false
	}
}

// Node is a node in the DOM tree.
//
// Forward edges (FirstChild, NextSibling) are the owning structure of
// the tree; Parent, PreviousSibling and LastChild are back-references
// maintained for O(1) traversal in both directions. Because Go is
// garbage collected these are all plain pointers, with no arena or
// reference counting needed, but callers should still treat
// Parent/PreviousSibling/LastChild as non-owning: never walk them to
// decide whether a subtree is reachable, only to navigate a tree you
// already hold via Document.
type Node struct {
	Type    NodeType
	Element *Element // non-nil only when Type == ElementNode
	Text    string   // valid only when Type == TextNode

	window *Window

	Parent          *Node
	FirstChild      *Node
	LastChild       *Node
	PreviousSibling *Node
	NextSibling     *Node
}

// NewDocument creates a new, childless Document node.
func NewDocument() *Node {
	return &Node{Type: DocumentNode}
}

// NewElement creates a new, childless element node of the given kind.
func NewElement(kind ElementKind, attrs []Attribute) *Node {
	return &Node{
		Type:    ElementNode,
		Element: &Element{Kind: kind, Attributes: attrs},
	}
}

// NewText creates a new text node with the given content.
func NewText(text string) *Node {
	return &Node{Type: TextNode, Text: text}
}

// Window returns the Window this node belongs to, or nil if it has not
// been attached to one yet.
func (n *Node) Window() *Window {
	return n.window
}

// ElementKind returns the node's element kind and true if n is an
// element node, otherwise the zero kind and false.
func (n *Node) ElementKind() (ElementKind, bool) {
	if n.Type != ElementNode || n.Element == nil {
		return 0, false
	}
	return n.Element.Kind, true
}

// AppendChild adds child as the last child of n, fixing up every
// back-reference a well-formed tree requires.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	child.window = n.window
	if n.LastChild == nil {
		n.FirstChild = child
		n.LastChild = child
		child.PreviousSibling = nil
		child.NextSibling = nil
		return
	}
	n.LastChild.NextSibling = child
	child.PreviousSibling = n.LastChild
	child.NextSibling = nil
	n.LastChild = child
}

// Window owns a single Document and is the root of the tree that every
// node in the document can find its way back to.
type Window struct {
	document *Node
	// StyleSheets accumulates every stylesheet parsed out of a <style>
	// element encountered while building this document, in document order.
	StyleSheets []*css.StyleSheet
}

// NewWindow creates a Window with a fresh, empty Document as its root.
func NewWindow() *Window {
	w := &Window{}
	doc := NewDocument()
	doc.window = w
	w.document = doc
	return w
}

// Document returns the root Document node owned by this window.
func (w *Window) Document() *Node {
	return w.document
}

// GetElementByKind performs a pre-order search for the first element of
// the given kind, or nil if none exists. Used by the layout builder to
// locate <body>.
func GetElementByKind(root *Node, kind ElementKind) *Node {
	if root == nil {
		return nil
	}
	if k, ok := root.ElementKind(); ok && k == kind {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := GetElementByKind(c, kind); found != nil {
			return found
		}
	}
	return nil
}
