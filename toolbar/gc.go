package toolbar

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// GC is the drawing surface the toolbar renders through. Implementations keep
// a small amount of state (foreground/background color, clip, font), in the
// style of an immediate-mode graphics context.
type GC interface {
	SetForeground(c color.Color)
	SetBackground(c color.Color)

	// A nil path removes the clip.
	SetClipping(p *RoundRect)

	// Two-stop gradient from the foreground to the background color. Top to
	// bottom if vertical, left to right otherwise.
	FillGradientRectangle(x, y, w, h int, vertical bool)

	// 1px outline with rounded corners; the outline spans w+1 by h+1 pixels
	// (callers pass w-1/h-1 to outline a w by h area).
	DrawRoundRectangle(x, y, w, h, arcW, arcH int)

	DrawLine(x1, y1, x2, y2 int)
	DrawImage(img image.Image, x, y int)

	SetFont(face font.Face)

	// Draws s at (x,y) top-left in the foreground color. Mnemonic markers are
	// processed (see ParseMnemonic). If not transparent, the string extent is
	// filled with the background color first.
	DrawText(s string, x, y int, transparent bool)

	// Extent of s under the current font, mnemonic markers excluded.
	StringExtent(s string) image.Point
}
