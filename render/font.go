package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// glyphFace is the single fixed-metric font every piece of text is
// drawn with; font-family/weight/style are outside this renderer's
// data model, only the font-size ratio (1x/2x/3x) varies a glyph's
// drawn size.
var glyphFace = basicfont.Face7x13

// drawText draws text at (x, y), top-left, in col, scaled by ratio.
func drawText(c *Canvas, text string, x, y int, col color.RGBA, ratio int64) {
	if text == "" {
		return
	}

	baseWidth := len(text) * glyphFace.Advance
	baseHeight := glyphFace.Height

	base := image.NewRGBA(image.Rect(0, 0, baseWidth, baseHeight))
	drawer := &font.Drawer{
		Dst:  base,
		Src:  image.NewUniform(col),
		Face: glyphFace,
		Dot:  fixed.Point26_6{X: 0, Y: fixed.I(glyphFace.Ascent)},
	}
	drawer.DrawString(text)

	glyphs := base
	width, height := baseWidth, baseHeight
	if ratio > 1 {
		width, height = baseWidth*int(ratio), baseHeight*int(ratio)
		glyphs = scaleNearest(base, width, height)
	}

	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			_, _, _, a := glyphs.At(dx, dy).RGBA()
			if a == 0 {
				continue
			}
			c.SetPixel(x+dx, y+dy, col)
		}
	}
}

// scaleNearest scales src to newWidth x newHeight by nearest-neighbor
// sampling. Used only to grow glyphs for the larger heading font
// sizes; this renderer never shrinks a glyph below its native size.
func scaleNearest(src *image.RGBA, newWidth, newHeight int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	bounds := src.Bounds()
	srcWidth, srcHeight := bounds.Dx(), bounds.Dy()

	for dy := 0; dy < newHeight; dy++ {
		for dx := 0; dx < newWidth; dx++ {
			srcX := bounds.Min.X + dx*srcWidth/newWidth
			srcY := bounds.Min.Y + dy*srcHeight/newHeight
			dst.Set(dx, dy, src.At(srcX, srcY))
		}
	}
	return dst
}
