package fontutil

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Pixel footprint of a single-line string: advance width and the face's
// ascent+descent height.
func StringExtent(face font.Face, s string) image.Point {
	w := font.MeasureString(face, s).Ceil()
	m := face.Metrics()
	h := (m.Ascent + m.Descent).Ceil()
	return image.Point{X: w, Y: h}
}

// Baseline offset from the top of the StringExtent box.
func BaselineY(face font.Face) fixed.Int26_6 {
	return face.Metrics().Ascent
}

//----------

func Rect266MinFloorMaxCeil(r fixed.Rectangle26_6) image.Rectangle {
	min := image.Point{X: r.Min.X.Floor(), Y: r.Min.Y.Floor()}
	max := image.Point{X: r.Max.X.Ceil(), Y: r.Max.Y.Ceil()}
	return image.Rectangle{Min: min, Max: max}
}

func Float64ToFixed266(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
func Fixed266ToFloat64(v fixed.Int26_6) float64 {
	return float64(v) / float64(64)
}
