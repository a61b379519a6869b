// Package layout builds a parallel tree of layout objects from the DOM,
// sizes and positions them, and paints them into an ordered display list.
//
// CSS 2.1 §10: box dimensions, §9.4: normal flow.
package layout

import (
	"github.com/hhowe/browsercore/css"
	"github.com/hhowe/browsercore/dom"
	"github.com/hhowe/browsercore/style"
)

// Kind is the closed set of layout object shapes. A DOM node that
// resolves to display:none never gets a layout object at all, so Kind
// has no "none" member.
type Kind int

const (
	Block Kind = iota
	Inline
	Text
)

func (k Kind) String() string {
	switch k {
	case Block:
		return "block"
	case Inline:
		return "inline"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// Point is a top-left position in the content area's coordinate space.
type Point struct {
	X, Y int64
}

// Size is a box's width and height.
type Size struct {
	Width, Height int64
}

// Object is one node of the layout tree. It mirrors the shape of the
// DOM tree it was built from, skipping any node whose resolved style
// is display:none, and carries the box's resolved style, size and
// position once ComputeSize/ComputePosition have run.
type Object struct {
	Kind  Kind
	Node  *dom.Node
	Style style.ComputedStyle

	Point Point
	Size  Size

	Parent      *Object
	FirstChild  *Object
	NextSibling *Object
}

// BuildLayoutTree locates the <body> element under root and builds the
// layout tree rooted at it. It returns nil if the document has no body.
func BuildLayoutTree(root *dom.Node, sheets []*css.StyleSheet) *Object {
	body := dom.GetElementByKind(root, dom.Body)
	if body == nil {
		return nil
	}
	return buildTree(body, nil, sheets)
}

// buildTree builds the layout object for node (and its subtree), or,
// when node resolves to display:none, skips it and builds from its
// next sibling instead — so a display:none node simply vanishes from
// the layout tree rather than leaving a gap.
func buildTree(node *dom.Node, parent *Object, sheets []*css.StyleSheet) *Object {
	if node == nil {
		return nil
	}

	obj := createLayoutObject(node, parent, sheets)
	if obj == nil {
		return buildTree(node.NextSibling, parent, sheets)
	}

	obj.FirstChild = buildTree(node.FirstChild, obj, sheets)
	obj.NextSibling = buildTree(node.NextSibling, parent, sheets)
	return obj
}

// createLayoutObject resolves node's style and, unless it is
// display:none, returns the Object for it. It returns nil for
// display:none so buildTree knows to skip the node.
//
// A Document node reaching here is a caller error: BuildLayoutTree
// always starts from <body>, so this can only happen if something
// walks past the document root into this function directly.
func createLayoutObject(node *dom.Node, parent *Object, sheets []*css.StyleSheet) *Object {
	var parentStyle *style.ComputedStyle
	if parent != nil {
		parentStyle = &parent.Style
	}

	switch node.Type {
	case dom.TextNode:
		return &Object{
			Kind:   Text,
			Node:   node,
			Style:  style.ResolveText(parentStyle),
			Parent: parent,
		}

	case dom.ElementNode:
		cascaded := style.Cascade(node.Element, sheets)
		computed := style.Resolve(cascaded, parentStyle)
		computed.FontSize = style.ResolveFontSize(node.Element.Kind, parentStyle)

		if computed.Display == style.None {
			return nil
		}

		kind := Inline
		if computed.Display == style.Block {
			kind = Block
		}
		return &Object{
			Kind:   kind,
			Node:   node,
			Style:  computed,
			Parent: parent,
		}

	default:
		panic("layout: cannot create a layout object for a " + node.Type.String() + " node")
	}
}
