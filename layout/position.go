package layout

// ComputePosition walks the layout tree pre-order, assigning every
// object's Point from its parent's point and, when one exists, its
// previous sibling's kind, point and size:
//
//   - the first child of a parent simply inherits the parent's point;
//   - a block object, or any object whose previous sibling was a
//     block, starts a new line directly below the previous sibling;
//   - two consecutive inline objects share a line, so the second
//     starts immediately to the right of the first.
func ComputePosition(obj *Object, parentPoint Point) {
	computeSiblingChain(obj, parentPoint, Block, Point{}, Size{}, false)
}

func computeSiblingChain(obj *Object, parentPoint Point, prevKind Kind, prevPoint Point, prevSize Size, havePrev bool) {
	if obj == nil {
		return
	}

	switch {
	case !havePrev:
		obj.Point = parentPoint
	case obj.Kind == Block || prevKind == Block:
		obj.Point = Point{X: parentPoint.X, Y: prevPoint.Y + prevSize.Height}
	default:
		obj.Point = Point{X: prevPoint.X + prevSize.Width, Y: prevPoint.Y}
	}

	computeSiblingChain(obj.FirstChild, obj.Point, Block, Point{}, Size{}, false)
	computeSiblingChain(obj.NextSibling, parentPoint, obj.Kind, obj.Point, obj.Size, true)
}
