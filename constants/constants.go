// Package constants holds the fixed geometry and palette constants the
// windowing shell fixes at compile time. The rendering core treats these
// as given — it never measures a real window, it only lays out against
// them.
package constants

// RGB is a packed 8-bit-per-channel color, used only for the handful of
// constants the windowing shell exposes (e.g. the canvas clear color).
// The renderer-core color palette lives in the style package.
type RGB struct {
	R, G, B uint8
}

const (
	// WindowWidth is the visible width of the browser window, in pixels.
	WindowWidth = 800
	// WindowHeight is the visible height of the browser window, in pixels.
	WindowHeight = 600
	// WindowPadding is the margin reserved on each edge of the window.
	WindowPadding = 5
	// ToolbarHeight is the vertical space reserved above the content area.
	ToolbarHeight = 26

	// ContentAreaWidth is the width available to laid-out content after
	// subtracting the left/right window padding.
	ContentAreaWidth = WindowWidth - WindowPadding*2

	// CharWidth is the fixed monospace glyph width used for all text
	// measurement; glyphs are never measured individually.
	CharWidth = 8
	// CharHeight is the fixed monospace glyph height.
	CharHeight = 16
	// CharHeightWithPadding is the line height used when stacking text,
	// including inter-line padding.
	CharHeightWithPadding = CharHeight + 4

	// WindowInitXPos is the initial X position of the window on screen.
	WindowInitXPos = 30
	// WindowInitYPos is the initial Y position of the window on screen.
	WindowInitYPos = 30
)

// White is the window's default clear color.
var White = RGB{R: 255, G: 255, B: 255}
