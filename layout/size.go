package layout

import "github.com/hhowe/browsercore/constants"

// ComputeSize walks the layout tree post-order, assigning every
// object's Size. parentWidth is the width a Block object takes on
// directly (a block is always exactly as wide as its containing
// block); Inline and Text objects derive their own width instead, but
// still pass parentWidth through unchanged to their children so a
// Block nested arbitrarily deep still measures against the nearest
// enclosing block's width.
func ComputeSize(obj *Object, parentWidth int64) {
	if obj == nil {
		return
	}

	childWidth := parentWidth
	if obj.Kind == Block {
		obj.Size.Width = parentWidth
	}

	for c := obj.FirstChild; c != nil; c = c.NextSibling {
		ComputeSize(c, childWidth)
	}

	switch obj.Kind {
	case Block:
		obj.Size.Height = blockHeight(obj)
	case Inline:
		obj.Size.Width, obj.Size.Height = inlineSize(obj)
	case Text:
		obj.Size.Width, obj.Size.Height = textSize(obj)
	}
}

// blockHeight sums each child's height, except that a run of
// consecutive inline children sharing a line only contributes once:
// a child's height is added only when the previous child was a block
// (or this is the first child) or the child itself is a block.
func blockHeight(obj *Object) int64 {
	var height int64
	var prevKind Kind
	havePrev := false

	for c := obj.FirstChild; c != nil; c = c.NextSibling {
		if !havePrev || prevKind == Block || c.Kind == Block {
			height += c.Size.Height
		}
		prevKind = c.Kind
		havePrev = true
	}
	return height
}

func inlineSize(obj *Object) (width, height int64) {
	for c := obj.FirstChild; c != nil; c = c.NextSibling {
		width += c.Size.Width
		height += c.Size.Height
	}
	return width, height
}

// textSize measures a text node against the fixed content-area width:
// if the joined, single-spaced text fits on one line at this style's
// font ratio, its box is exactly that wide and one line tall.
// Otherwise its box is exactly the content-area width, with enough
// lines stacked to hold the wrapped text.
func textSize(obj *Object) (width, height int64) {
	ratio := obj.Style.FontSize.Ratio()
	text := joinWords(obj.Node.Text)
	rawWidth := int64(len([]rune(text))) * constants.CharWidth * ratio
	lineHeight := constants.CharHeightWithPadding * ratio

	if rawWidth <= constants.ContentAreaWidth {
		return rawWidth, lineHeight
	}

	lines := (rawWidth + constants.ContentAreaWidth - 1) / constants.ContentAreaWidth
	return constants.ContentAreaWidth, lineHeight * lines
}
