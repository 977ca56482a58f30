package toolbar

import (
	"image"

	"github.com/uilab/roundbar/util/mathutil"
)

// RoundRect corner indices.
const (
	CornerTopLeft = iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
)

// A rectangle with per-corner rounding, used as a clip path. Arc is the
// corner ellipse radius per axis.
type RoundRect struct {
	Rect    image.Rectangle
	Arc     image.Point
	Rounded [4]bool
}

// All four corners rounded.
func RoundRectAll(r image.Rectangle, arcW, arcH int) *RoundRect {
	return &RoundRect{
		Rect:    r,
		Arc:     image.Point{X: arcW, Y: arcH},
		Rounded: [4]bool{true, true, true, true},
	}
}

// Left corners rounded, right edge straight, so adjoining segments tile
// seamlessly.
func RoundRectStraightRight(r image.Rectangle, arcW, arcH int) *RoundRect {
	rr := &RoundRect{Rect: r, Arc: image.Point{X: arcW, Y: arcH}}
	rr.Rounded[CornerTopLeft] = true
	rr.Rounded[CornerBottomLeft] = true
	return rr
}

//----------

// Pixel membership, evaluated at the pixel center.
func (rr *RoundRect) Contains(x, y int) bool {
	if !(image.Point{X: x, Y: y}.In(rr.Rect)) {
		return false
	}
	rx, ry := float64(rr.Arc.X), float64(rr.Arc.Y)
	if rx <= 0 || ry <= 0 {
		return true
	}

	px, py := float64(x)+0.5, float64(y)+0.5
	minX, minY := float64(rr.Rect.Min.X), float64(rr.Rect.Min.Y)
	maxX, maxY := float64(rr.Rect.Max.X), float64(rr.Rect.Max.Y)

	inEllipse := func(cx, cy float64) bool {
		dx, dy := (px-cx)/rx, (py-cy)/ry
		return dx*dx+dy*dy <= 1
	}

	switch {
	case rr.Rounded[CornerTopLeft] && px < minX+rx && py < minY+ry:
		return inEllipse(minX+rx, minY+ry)
	case rr.Rounded[CornerTopRight] && px > maxX-rx && py < minY+ry:
		return inEllipse(maxX-rx, minY+ry)
	case rr.Rounded[CornerBottomRight] && px > maxX-rx && py > maxY-ry:
		return inEllipse(maxX-rx, maxY-ry)
	case rr.Rounded[CornerBottomLeft] && px < minX+rx && py > maxY-ry:
		return inEllipse(minX+rx, maxY-ry)
	}
	return true
}

// The same shape shrunk by n pixels on every side (arcs included). Useful to
// derive outline rings.
func (rr *RoundRect) Inset(n int) *RoundRect {
	u := *rr
	u.Rect = rr.Rect.Inset(n)
	u.Arc = image.Point{
		X: mathutil.Biggest(rr.Arc.X-n, 0),
		Y: mathutil.Biggest(rr.Arc.Y-n, 0),
	}
	return &u
}
