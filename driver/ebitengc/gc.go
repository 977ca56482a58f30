// Package ebitengc is a toolbar.GC backend over an *ebiten.Image, for
// toolbars embedded in an Ebitengine render loop.
package ebitengc

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/uilab/roundbar/toolbar"
	"github.com/uilab/roundbar/util/fontutil"
	"github.com/uilab/roundbar/util/imageutil"
	"github.com/uilab/roundbar/util/mathutil"
)

// 1x1 white source pixel for solid/gradient triangles, guarded against
// texture-atlas bleeding by the surrounding border.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

type GC struct {
	dst  *ebiten.Image
	fg   color.Color
	bg   color.Color
	clip *toolbar.RoundRect

	face     font.Face
	textFace text.Face

	// converted non-ebiten images, keyed by identity
	imgCache map[image.Image]*ebiten.Image
}

var _ toolbar.GC = (*GC)(nil)

func New(dst *ebiten.Image) *GC {
	gc := &GC{
		dst:      dst,
		fg:       toolbar.Black,
		bg:       toolbar.White,
		imgCache: map[image.Image]*ebiten.Image{},
	}
	gc.SetFont(fontutil.DefaultFontFace().Face)
	return gc
}

// The destination is swapped every frame (ebiten hands a fresh screen image
// to Draw), the rest of the state survives.
func (gc *GC) SetDst(dst *ebiten.Image) {
	gc.dst = dst
}

//----------

func (gc *GC) SetForeground(c color.Color) { gc.fg = c }
func (gc *GC) SetBackground(c color.Color) { gc.bg = c }

func (gc *GC) SetClipping(p *toolbar.RoundRect) { gc.clip = p }

func (gc *GC) SetFont(face font.Face) {
	gc.face = face
	gc.textFace = text.NewGoXFace(face)
}

//----------

// Fills the clip shape restricted to the gradient rectangle with a fan of
// triangles whose vertex colors interpolate the two stops. Without a clip the
// shape is the rectangle itself.
func (gc *GC) FillGradientRectangle(x, y, w, h int, vertical bool) {
	if w <= 0 || h <= 0 {
		return
	}
	shape := gc.clip
	if shape == nil {
		shape = &toolbar.RoundRect{Rect: image.Rect(x, y, x+w, y+h)}
	}

	pts := outlinePoints(shape)
	// restrict the convex outline to the gradient rect
	for i := range pts {
		pts[i].x = clampF(pts[i].x, float32(x), float32(x+w))
		pts[i].y = clampF(pts[i].y, float32(y), float32(y+h))
	}

	c1 := imageutil.RgbaColor(gc.fg)
	c2 := imageutil.RgbaColor(gc.bg)
	colorAt := func(p vec2) color.RGBA {
		t := 0.0
		if vertical {
			t = float64(p.y-float32(y)) / float64(h)
		} else {
			t = float64(p.x-float32(x)) / float64(w)
		}
		return imageutil.LerpRgba(c1, c2, mathutil.LimitFloat64(t, 0, 1))
	}

	// fan from the centroid; the shape is convex
	ctr := vec2{}
	for _, p := range pts {
		ctr.x += p.x
		ctr.y += p.y
	}
	ctr.x /= float32(len(pts))
	ctr.y /= float32(len(pts))

	vs := make([]ebiten.Vertex, 0, len(pts)+1)
	vs = append(vs, vertex(ctr, colorAt(ctr)))
	for _, p := range pts {
		vs = append(vs, vertex(p, colorAt(p)))
	}
	is := make([]uint16, 0, len(pts)*3)
	for i := 1; i <= len(pts); i++ {
		j := i%len(pts) + 1
		is = append(is, 0, uint16(i), uint16(j))
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	gc.dst.DrawTriangles(vs, is, whiteSubImage, op)
}

func vertex(p vec2, c color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: p.x, DstY: p.y,
		SrcX: 1.5, SrcY: 1.5,
		ColorR: float32(c.R) / 255,
		ColorG: float32(c.G) / 255,
		ColorB: float32(c.B) / 255,
		ColorA: float32(c.A) / 255,
	}
}

//----------

func (gc *GC) DrawRoundRectangle(x, y, w, h, arcW, arcH int) {
	if w < 0 || h < 0 {
		return
	}
	rr := toolbar.RoundRectAll(image.Rect(x, y, x+w+1, y+h+1), arcW, arcH)
	pts := outlinePoints(rr)
	for i := range pts {
		p1 := pts[i]
		p2 := pts[(i+1)%len(pts)]
		if gc.clip != nil && !gc.clipHasSegment(p1, p2) {
			continue
		}
		vector.StrokeLine(gc.dst, p1.x, p1.y, p2.x, p2.y, 1, gc.fg, true)
	}
}

func (gc *GC) clipHasSegment(p1, p2 vec2) bool {
	mx := int((p1.x + p2.x) / 2)
	my := int((p1.y + p2.y) / 2)
	return gc.clip.Contains(mx, my)
}

func (gc *GC) DrawLine(x1, y1, x2, y2 int) {
	vector.StrokeLine(gc.dst,
		float32(x1), float32(y1), float32(x2), float32(y2), 1, gc.fg, true)
}

//----------

func (gc *GC) DrawImage(img image.Image, x, y int) {
	eimg, ok := img.(*ebiten.Image)
	if !ok {
		eimg, ok = gc.imgCache[img]
		if !ok {
			eimg = ebiten.NewImageFromImage(img)
			gc.imgCache[img] = eimg
		}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	gc.dst.DrawImage(eimg, op)
}

//----------

func (gc *GC) DrawText(s string, x, y int, transparent bool) {
	clean, mnIdx := toolbar.ParseMnemonic(s)
	if clean == "" {
		return
	}
	ext := fontutil.StringExtent(gc.face, clean)
	if !transparent {
		vector.DrawFilledRect(gc.dst,
			float32(x), float32(y), float32(ext.X), float32(ext.Y), gc.bg, false)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(gc.fg)
	text.Draw(gc.dst, clean, gc.textFace, op)

	if mnIdx >= 0 {
		pre := font.MeasureString(gc.face, clean[:mnIdx]).Ceil()
		full := font.MeasureString(gc.face, nextRuneEnd(clean, mnIdx)).Ceil()
		uy := float32(y+fontutil.BaselineY(gc.face).Ceil()) + 1.5
		vector.StrokeLine(gc.dst,
			float32(x+pre), uy, float32(x+full), uy, 1, gc.fg, false)
	}
}

func nextRuneEnd(s string, i int) string {
	for j := i + 1; j <= len(s); j++ {
		if j == len(s) || isRuneStart(s[j]) {
			return s[:j]
		}
	}
	return s
}

func isRuneStart(b byte) bool {
	return b&0xc0 != 0x80
}

func (gc *GC) StringExtent(s string) image.Point {
	return fontutil.StringExtent(gc.face, toolbar.MnemonicStrip(s))
}

//----------

type vec2 struct{ x, y float32 }

func clampF(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Clockwise outline of a rounded rectangle, arcs sampled fine enough for
// per-vertex gradient interpolation and 1px strokes.
func outlinePoints(rr *toolbar.RoundRect) []vec2 {
	minX := float32(rr.Rect.Min.X)
	minY := float32(rr.Rect.Min.Y)
	maxX := float32(rr.Rect.Max.X)
	maxY := float32(rr.Rect.Max.Y)
	rx := float32(rr.Arc.X)
	ry := float32(rr.Arc.Y)

	pts := []vec2{}
	arc := func(cx, cy float32, deg0, deg1 float64) {
		steps := mathutil.Biggest(int(rx), 4)
		for i := 0; i <= steps; i++ {
			a := (deg0 + (deg1-deg0)*float64(i)/float64(steps)) * math.Pi / 180
			pts = append(pts, vec2{
				x: cx + rx*float32(math.Cos(a)),
				y: cy + ry*float32(math.Sin(a)),
			})
		}
	}

	// y grows downward: 180° is left, 270° top, 0° right, 90° bottom
	if rr.Rounded[toolbar.CornerTopLeft] && rx > 0 && ry > 0 {
		arc(minX+rx, minY+ry, 180, 270)
	} else {
		pts = append(pts, vec2{x: minX, y: minY})
	}
	if rr.Rounded[toolbar.CornerTopRight] && rx > 0 && ry > 0 {
		arc(maxX-rx, minY+ry, 270, 360)
	} else {
		pts = append(pts, vec2{x: maxX, y: minY})
	}
	if rr.Rounded[toolbar.CornerBottomRight] && rx > 0 && ry > 0 {
		arc(maxX-rx, maxY-ry, 0, 90)
	} else {
		pts = append(pts, vec2{x: maxX, y: maxY})
	}
	if rr.Rounded[toolbar.CornerBottomLeft] && rx > 0 && ry > 0 {
		arc(minX+rx, maxY-ry, 90, 180)
	} else {
		pts = append(pts, vec2{x: minX, y: maxY})
	}
	return pts
}
