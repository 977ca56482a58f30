// Rounded segmented toolbar: an ordered row of custom-drawn buttons sharing a
// corner radius, font and theme. Drawing goes through the GC surface
// abstraction; see the imagegc and ebitengc backends.
//
// The toolbar is single-goroutine: all mutation, drawing and hit-testing must
// happen on the goroutine that created it (the UI loop). Access from any other
// goroutine panics with ErrThreadAccess instead of corrupting state.
package toolbar

import (
	"image"
	"image/color"

	"golang.org/x/image/font"

	"github.com/uilab/roundbar/util/fontutil"
	"github.com/uilab/roundbar/util/mathutil"
)

type RoundedToolbar struct {
	items        []*ToolItem
	theme        Theme
	cornerRadius int
	face         font.Face

	// set at the start of each draw pass; items consult it for the
	// full-width rounding of the last segment
	size image.Point

	gid      uint64
	disposed bool
}

func NewRoundedToolbar() *RoundedToolbar {
	tb := &RoundedToolbar{
		theme:        DefaultTheme(),
		cornerRadius: DefaultCornerRadius,
		face:         fontutil.DefaultFontFace().Face,
		gid:          goroutineID(),
	}
	return tb
}

// Disposes the toolbar and all its items.
func (tb *RoundedToolbar) Dispose() {
	if tb.disposed {
		return
	}
	tb.checkAccess()
	for _, it := range tb.items {
		it.disposed = true
	}
	tb.items = nil
	tb.disposed = true
}

func (tb *RoundedToolbar) checkAccess() {
	if tb.disposed {
		errPanic(ErrDisposed)
	}
	if goroutineID() != tb.gid {
		errPanic(ErrThreadAccess)
	}
}

//----------

func (tb *RoundedToolbar) addItem(it *ToolItem) {
	tb.items = append(tb.items, it)
}

func (tb *RoundedToolbar) removeItem(it *ToolItem) {
	for i, it2 := range tb.items {
		if it2 == it {
			tb.items = append(tb.items[:i], tb.items[i+1:]...)
			break
		}
	}
}

func (tb *RoundedToolbar) Items() []*ToolItem {
	tb.checkAccess()
	u := make([]*ToolItem, len(tb.items))
	copy(u, tb.items)
	return u
}

func (tb *RoundedToolbar) ItemCount() int {
	tb.checkAccess()
	return len(tb.items)
}

//----------

func (tb *RoundedToolbar) CornerRadius() int {
	tb.checkAccess()
	return tb.cornerRadius
}

// Takes effect on the next draw pass for every item; the radius is read live
// while drawing, never cached.
func (tb *RoundedToolbar) SetCornerRadius(radius int) {
	tb.checkAccess()
	tb.cornerRadius = mathutil.Biggest(radius, 0)
}

func (tb *RoundedToolbar) Theme() Theme {
	tb.checkAccess()
	return tb.theme
}

func (tb *RoundedToolbar) SetTheme(th Theme) {
	tb.checkAccess()
	tb.theme = th
}

func (tb *RoundedToolbar) BorderColor() color.Color {
	tb.checkAccess()
	return tb.theme.Border
}

func (tb *RoundedToolbar) FontFace() font.Face {
	tb.checkAccess()
	return tb.face
}

func (tb *RoundedToolbar) SetFontFace(face font.Face) {
	tb.checkAccess()
	if face == nil {
		errPanic(ErrNilArgument)
	}
	tb.face = face
}

//----------

// Sum of the item widths by the tallest item.
func (tb *RoundedToolbar) DefaultSize() image.Point {
	tb.checkAccess()
	w, h := 0, 0
	for _, it := range tb.items {
		w += it.Width()
		h = mathutil.Biggest(h, it.Height())
	}
	return image.Point{X: w, Y: h}
}

// Draws every item left to right, accumulating x offsets, then the toolbar's
// own rounded outline. Each item records its bounds as a side effect, which
// is what ItemAt reads afterwards.
func (tb *RoundedToolbar) Draw(gc GC, width, height int) {
	tb.checkAccess()
	if gc == nil {
		errPanic(ErrNilArgument)
	}
	tb.size = image.Point{X: width, Y: height}

	x := 0
	for i, it := range tb.items {
		isLast := i == len(tb.items)-1
		it.DrawButton(gc, x, height, isLast)
		x += it.Width()
	}

	gc.SetForeground(tb.theme.Border)
	gc.DrawRoundRectangle(0, 0, width-1, height-1, tb.cornerRadius, tb.cornerRadius)
}

//----------

// Item whose recorded bounds contain p. Only meaningful after a draw pass:
// bounds are stale or zero before the first Draw.
func (tb *RoundedToolbar) ItemAt(p image.Point) *ToolItem {
	tb.checkAccess()
	for _, it := range tb.items {
		if p.In(it.bounds) {
			return it
		}
	}
	return nil
}

// Toggles the selection of the enabled item under p and fires its selection
// event. Returns the item, or nil if p hits nothing actionable.
func (tb *RoundedToolbar) Click(p image.Point) *ToolItem {
	tb.checkAccess()
	it := tb.ItemAt(p)
	if it == nil || !it.enabled {
		return nil
	}
	it.SetSelection(!it.selection)
	it.FireSelection()
	return it
}

func (tb *RoundedToolbar) TooltipAt(p image.Point) (string, bool) {
	tb.checkAccess()
	it := tb.ItemAt(p)
	if it == nil || it.tooltipText == "" {
		return "", false
	}
	return it.tooltipText, true
}

//----------

func (tb *RoundedToolbar) stringExtent(s string) image.Point {
	return fontutil.StringExtent(tb.face, MnemonicStrip(s))
}
