package ui

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FontAtlas rasterises printable ASCII from basicfont.Face7x13 into a
// FontCols x FontRows grid of FontCellW x FontCellH cells. Glyph coverage
// is in the alpha channel.
func FontAtlas() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: basicfont.Face7x13,
	}
	for ch := rune(FontFirst); ch < FontFirst+FontCols*FontRows; ch++ {
		col, row, ok := GlyphCell(ch)
		if !ok {
			continue
		}
		d.Dot = fixed.P(col*FontCellW, row*FontCellH+FontAscent)
		d.DrawString(string(ch))
	}
	return img
}

// GlyphCell returns the atlas cell of ch.
func GlyphCell(ch rune) (col, row int, ok bool) {
	if ch < 32 || ch > 126 {
		return 0, 0, false
	}
	i := int(ch) - FontFirst
	return i % FontCols, i / FontCols, true
}

// TextWidth returns the width in pixels of the longest line of text at scale.
func TextWidth(text string, scale float32) int {
	lineLen := 0
	maxLineLen := 0
	for _, ch := range text {
		if ch == '\n' {
			maxLineLen = max(maxLineLen, lineLen)
			lineLen = 0
			continue
		}
		lineLen++
	}
	maxLineLen = max(maxLineLen, lineLen)
	return int(float32(maxLineLen*FontCellW) * scale)
}

// FitColumns is how many glyphs fit in width pixels at scale.
func FitColumns(width, scale float32) int {
	cw := float32(FontCellW) * scale
	if cw <= 0 {
		return 0
	}
	return max(0, int(width/cw))
}
