// Package render paints a layout display list onto a pixel buffer and
// encodes it as a PNG. It is the windowing shell's canvas: the rendering
// core never touches pixels directly, it only produces the DisplayItem
// list render.Render consumes.
//
// CSS 2.1 §14 Colors and backgrounds: https://www.w3.org/TR/CSS21/colors.html
package render

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/hhowe/browsercore/constants"
	"github.com/hhowe/browsercore/layout"
	"github.com/hhowe/browsercore/style"
)

// Canvas is the rendering surface: a flat pixel buffer the size of the
// browser window.
type Canvas struct {
	Width  int
	Height int
	Pixels []color.RGBA
}

// NewCanvas creates a canvas of the given dimensions, cleared to white.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{Width: width, Height: height, Pixels: make([]color.RGBA, width*height)}
	c.Clear(toRGBA(style.White))
	return c
}

// Clear fills the canvas with bg.
func (c *Canvas) Clear(bg color.RGBA) {
	for i := range c.Pixels {
		c.Pixels[i] = bg
	}
}

// SetPixel sets a single pixel, silently clipping anything out of bounds.
func (c *Canvas) SetPixel(x, y int, col color.RGBA) {
	if x >= 0 && x < c.Width && y >= 0 && y < c.Height {
		c.Pixels[y*c.Width+x] = col
	}
}

// FillRect fills a width x height rectangle with col, clipped to the canvas.
func (c *Canvas) FillRect(x, y, width, height int, col color.RGBA) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			c.SetPixel(x+dx, y+dy, col)
		}
	}
}

// ToImage converts the canvas to an image.Image for encoding.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			img.Set(x, y, c.Pixels[y*c.Width+x])
		}
	}
	return img
}

// SavePNG encodes the canvas as a PNG file at filename.
func (c *Canvas) SavePNG(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := png.Encode(file, c.ToImage()); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Render paints a layout display list onto a window-sized canvas: a
// filled rectangle for every RectItem, glyphs for every TextItem.
func Render(items []layout.DisplayItem) *Canvas {
	canvas := NewCanvas(constants.WindowWidth, constants.WindowHeight)

	for _, item := range items {
		switch item.Kind {
		case layout.RectItem:
			canvas.FillRect(int(item.Point.X), int(item.Point.Y), int(item.Size.Width), int(item.Size.Height), toRGBA(item.Style.BackgroundColor))
		case layout.TextItem:
			drawText(canvas, item.Text, int(item.Point.X), int(item.Point.Y), toRGBA(item.Style.Color), item.Style.FontSize.Ratio())
		}
	}

	return canvas
}

func toRGBA(c style.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
