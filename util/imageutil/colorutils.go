package imageutil

import (
	"fmt"
	"image/color"
	"strings"
)

func RgbaColor(c color.Color) color.RGBA {
	if u, ok := c.(color.RGBA); ok {
		return u
	}
	return convertToRgbaColor(c)
}
func convertToRgbaColor(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{
		uint8(r >> 8),
		uint8(g >> 8),
		uint8(b >> 8),
		uint8(a >> 8),
	}
}

//----------

func RgbaFromInt(u int) color.RGBA {
	v := u & 0xffffff
	r := uint8((v << 0) >> 16)
	g := uint8((v << 8) >> 16)
	b := uint8((v << 16) >> 16)
	return color.RGBA{r, g, b, 255}
}

// Accepts "#rrggbb" or "rrggbb".
func RgbaFromString(s string) (color.RGBA, error) {
	s2 := strings.TrimPrefix(s, "#")
	if len(s2) != 6 {
		return color.RGBA{}, fmt.Errorf("bad hex color: %q", s)
	}
	u := 0
	for _, r := range s2 {
		v := 0
		switch {
		case r >= '0' && r <= '9':
			v = int(r - '0')
		case r >= 'a' && r <= 'f':
			v = int(r-'a') + 10
		case r >= 'A' && r <= 'F':
			v = int(r-'A') + 10
		default:
			return color.RGBA{}, fmt.Errorf("bad hex color: %q", s)
		}
		u = u<<4 | v
	}
	return RgbaFromInt(u), nil
}

func SprintRgb(c color.Color) string {
	rgba := RgbaColor(c)
	return fmt.Sprintf("%x %x %x", rgba.R, rgba.G, rgba.B)
}

//----------

// Turn color lighter by v percent (0.0, 1.0).
func Tint(c color.Color, v float64) color.Color {
	c2 := RgbaColor(c)
	return tint(c2, v)
}

func tint(c color.RGBA, v float64) color.Color {
	if v < 0 || v > 1 {
		panic("!")
	}
	c.R += uint8(v * float64(255-c.R))
	c.G += uint8(v * float64(255-c.G))
	c.B += uint8(v * float64(255-c.B))
	return c
}

// Turn color darker by v percent (0.0, 1.0).
func Shade(c color.Color, v float64) color.Color {
	c2 := RgbaColor(c)
	return shade(c2, v)
}

func shade(c color.RGBA, v float64) color.Color {
	if v < 0 || v > 1 {
		panic("!")
	}
	v = 1.0 - v
	c.R = uint8(v * float64(c.R))
	c.G = uint8(v * float64(c.G))
	c.B = uint8(v * float64(c.B))
	return c
}

func TintOrShade(c color.Color, v float64) color.Color {
	c2 := RgbaColor(c)
	if isLighter(c2) {
		return shade(c2, v)
	}
	return tint(c2, v)
}

func IsLighter(c color.Color) bool {
	return isLighter(RgbaColor(c))
}

func isLighter(c color.RGBA) bool {
	u := int(c.R) + int(c.G) + int(c.B)
	return u > 256*3/2
}

//----------

// Linear interpolation between two colors, t in [0.0, 1.0].
func LerpRgba(c1, c2 color.RGBA, t float64) color.RGBA {
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + t*(float64(b)-float64(a)) + 0.5)
	}
	return color.RGBA{
		lerp(c1.R, c2.R),
		lerp(c1.G, c2.G),
		lerp(c1.B, c2.B),
		lerp(c1.A, c2.A),
	}
}
