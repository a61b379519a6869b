package layout

import (
	"strings"

	"github.com/hhowe/browsercore/constants"
	"github.com/hhowe/browsercore/style"
)

// ItemKind is the closed set of display-item shapes a paint can emit.
type ItemKind int

const (
	RectItem ItemKind = iota
	TextItem
)

// DisplayItem is one thing the windowing shell draws: a filled
// rectangle for a block box, or a line of text for a (possibly
// wrapped) text box. Only the fields relevant to Kind are meaningful.
type DisplayItem struct {
	Kind  ItemKind
	Style style.ComputedStyle
	Point Point
	Size  Size   // RectItem only
	Text  string // TextItem only
}

// Paint walks the layout tree pre-order, emitting one DisplayItem per
// block box and one DisplayItem per line of a (possibly wrapped) text
// box. Inline boxes emit nothing of their own; their children are
// still visited.
func Paint(obj *Object) []DisplayItem {
	if obj == nil {
		return nil
	}

	var items []DisplayItem
	switch obj.Kind {
	case Block:
		items = append(items, DisplayItem{
			Kind:  RectItem,
			Style: obj.Style,
			Point: obj.Point,
			Size:  obj.Size,
		})
	case Text:
		items = append(items, paintText(obj)...)
	}

	items = append(items, Paint(obj.FirstChild)...)
	items = append(items, Paint(obj.NextSibling)...)
	return items
}

func paintText(obj *Object) []DisplayItem {
	ratio := obj.Style.FontSize.Ratio()
	text := joinWords(obj.Node.Text)
	lines := wrapText(text, maxLineChars(ratio))

	items := make([]DisplayItem, len(lines))
	for i, line := range lines {
		items[i] = DisplayItem{
			Kind:  TextItem,
			Style: obj.Style,
			Point: Point{
				X: obj.Point.X,
				Y: obj.Point.Y + constants.CharHeightWithPadding*ratio*int64(i),
			},
			Text: line,
		}
	}
	return items
}

// maxLineChars is the number of characters a line of text at the
// given font ratio can hold before it must wrap.
func maxLineChars(ratio int64) int {
	return (constants.WindowWidth + constants.WindowPadding) / int(constants.CharWidth*ratio)
}

// joinWords collapses any run of whitespace in text down to single
// spaces between words, discarding leading and trailing whitespace.
func joinWords(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// wrapText splits text into lines no longer than maxChars, breaking
// at the rightmost space at or before the bound. A word longer than
// maxChars on its own is hard-broken at the bound since there is no
// space to break on.
func wrapText(text string, maxChars int) []string {
	if maxChars <= 0 || len(text) <= maxChars {
		return []string{text}
	}

	var lines []string
	remaining := text
	for len(remaining) > maxChars {
		breakAt := strings.LastIndex(remaining[:maxChars+1], " ")
		if breakAt <= 0 {
			breakAt = maxChars
		}
		lines = append(lines, remaining[:breakAt])
		remaining = strings.TrimPrefix(remaining[breakAt:], " ")
	}
	if remaining != "" {
		lines = append(lines, remaining)
	}
	return lines
}
