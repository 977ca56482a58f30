// Package imagegc is a pure-Go toolbar.GC backend that rasterizes onto any
// draw.Image. It backs the tests and offscreen rendering (e.g. PNG dumps);
// the GPU path is driver/ebitengc.
package imagegc

import (
	"image"
	"image/color"
	"image/draw"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/uilab/roundbar/toolbar"
	"github.com/uilab/roundbar/util/fontutil"
	"github.com/uilab/roundbar/util/imageutil"
	"github.com/uilab/roundbar/util/mathutil"
)

type GC struct {
	img  draw.Image
	fg   color.Color
	bg   color.Color
	clip *toolbar.RoundRect
	face font.Face
}

var _ toolbar.GC = (*GC)(nil)

func New(img draw.Image) *GC {
	return &GC{
		img:  img,
		fg:   toolbar.Black,
		bg:   toolbar.White,
		face: fontutil.DefaultFontFace().Face,
	}
}

func (gc *GC) Image() draw.Image {
	return gc.img
}

//----------

func (gc *GC) SetForeground(c color.Color) { gc.fg = c }
func (gc *GC) SetBackground(c color.Color) { gc.bg = c }
func (gc *GC) SetFont(face font.Face)      { gc.face = face }

func (gc *GC) SetClipping(p *toolbar.RoundRect) { gc.clip = p }

//----------

func (gc *GC) set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(gc.img.Bounds())) {
		return
	}
	if gc.clip != nil && !gc.clip.Contains(x, y) {
		return
	}
	gc.img.Set(x, y, c)
}

// Alpha mask of the current clip over r, or nil when unclipped.
func (gc *GC) clipMask(r image.Rectangle) (image.Image, image.Point) {
	if gc.clip == nil {
		return nil, image.Point{}
	}
	mask := image.NewAlpha(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if gc.clip.Contains(x, y) {
				mask.SetAlpha(x, y, color.Alpha{A: 255})
			}
		}
	}
	return mask, r.Min
}

//----------

func (gc *GC) FillGradientRectangle(x, y, w, h int, vertical bool) {
	if w <= 0 || h <= 0 {
		return
	}
	c1 := imageutil.RgbaColor(gc.fg)
	c2 := imageutil.RgbaColor(gc.bg)
	r := image.Rect(x, y, x+w, y+h)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		rowc := color.RGBA{}
		if vertical {
			rowc = imageutil.LerpRgba(c1, c2, gradientT(py-r.Min.Y, h))
		}
		for px := r.Min.X; px < r.Max.X; px++ {
			c := rowc
			if !vertical {
				c = imageutil.LerpRgba(c1, c2, gradientT(px-r.Min.X, w))
			}
			gc.set(px, py, c)
		}
	}
}

// Position of step i in [0,1] over n steps, first step 0, last step 1.
func gradientT(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return mathutil.LimitFloat64(float64(i)/float64(n-1), 0, 1)
}

//----------

// Outline ring: pixels inside the rounded rect but not inside the same shape
// inset by one.
func (gc *GC) DrawRoundRectangle(x, y, w, h, arcW, arcH int) {
	if w < 0 || h < 0 {
		return
	}
	outer := toolbar.RoundRectAll(image.Rect(x, y, x+w+1, y+h+1), arcW, arcH)
	inner := outer.Inset(1)
	for py := outer.Rect.Min.Y; py < outer.Rect.Max.Y; py++ {
		for px := outer.Rect.Min.X; px < outer.Rect.Max.X; px++ {
			if outer.Contains(px, py) && !inner.Contains(px, py) {
				gc.set(px, py, gc.fg)
			}
		}
	}
}

func (gc *GC) DrawLine(x1, y1, x2, y2 int) {
	// bresenham
	dx := absInt(x2 - x1)
	dy := -absInt(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	x, y := x1, y1
	for {
		gc.set(x, y, gc.fg)
		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

//----------

func (gc *GC) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	mask, mp := gc.clipMask(r)
	imageutil.DrawMask(gc.img, r, img, b.Min, mask, mp, draw.Over)
}

//----------

func (gc *GC) DrawText(s string, x, y int, transparent bool) {
	clean, mnIdx := toolbar.ParseMnemonic(s)
	if clean == "" {
		return
	}
	ext := fontutil.StringExtent(gc.face, clean)
	if !transparent {
		imageutil.FillRectangle(gc.img, image.Rect(x, y, x+ext.X, y+ext.Y), gc.bg)
	}

	d := font.Drawer{
		Dst:  gc.img,
		Src:  image.NewUniform(gc.fg),
		Face: gc.face,
		Dot: fixed.Point26_6{
			X: fixed.I(x),
			Y: fixed.I(y) + fontutil.BaselineY(gc.face),
		},
	}
	d.DrawString(clean)

	if mnIdx >= 0 {
		gc.underline(clean, mnIdx, x, y)
	}
}

func (gc *GC) underline(clean string, mnIdx, x, y int) {
	pre := font.MeasureString(gc.face, clean[:mnIdx])
	_, rlen := utf8.DecodeRuneInString(clean[mnIdx:])
	full := font.MeasureString(gc.face, clean[:mnIdx+rlen])
	uy := y + fontutil.BaselineY(gc.face).Ceil() + 1
	for px := x + pre.Ceil(); px < x+full.Ceil(); px++ {
		gc.set(px, uy, gc.fg)
	}
}

func (gc *GC) StringExtent(s string) image.Point {
	return fontutil.StringExtent(gc.face, toolbar.MnemonicStrip(s))
}
