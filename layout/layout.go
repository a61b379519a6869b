package layout

import (
	"github.com/hhowe/browsercore/constants"
	"github.com/hhowe/browsercore/css"
	"github.com/hhowe/browsercore/dom"
)

// Run builds the layout tree for root's <body>, sizes and positions
// every box, and paints the result into an ordered display list. It
// returns a nil list if the document has no body.
func Run(root *dom.Node, sheets []*css.StyleSheet) []DisplayItem {
	body := BuildLayoutTree(root, sheets)
	if body == nil {
		return nil
	}

	ComputeSize(body, constants.ContentAreaWidth)
	ComputePosition(body, Point{
		X: constants.WindowPadding,
		Y: constants.WindowPadding + constants.ToolbarHeight,
	})
	return Paint(body)
}
