package toolbar

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"

	"github.com/uilab/roundbar/util/fontutil"
)

// GC that records the primitive call sequence instead of drawing.
type gcOp struct {
	Name string
	Args []interface{}
}

type recordGC struct {
	face font.Face
	ops  []gcOp
}

var _ GC = (*recordGC)(nil)

func newRecordGC() *recordGC {
	return &recordGC{face: newFixedFace(10, 12)}
}

func (gc *recordGC) rec(name string, args ...interface{}) {
	gc.ops = append(gc.ops, gcOp{Name: name, Args: args})
}

func (gc *recordGC) SetForeground(c color.Color) { gc.rec("SetForeground", c) }
func (gc *recordGC) SetBackground(c color.Color) { gc.rec("SetBackground", c) }
func (gc *recordGC) SetClipping(p *RoundRect) {
	if p == nil {
		gc.rec("SetClipping", nil)
		return
	}
	gc.rec("SetClipping", *p)
}
func (gc *recordGC) FillGradientRectangle(x, y, w, h int, vertical bool) {
	gc.rec("FillGradientRectangle", x, y, w, h, vertical)
}
func (gc *recordGC) DrawRoundRectangle(x, y, w, h, arcW, arcH int) {
	gc.rec("DrawRoundRectangle", x, y, w, h, arcW, arcH)
}
func (gc *recordGC) DrawLine(x1, y1, x2, y2 int) {
	gc.rec("DrawLine", x1, y1, x2, y2)
}
func (gc *recordGC) DrawImage(img image.Image, x, y int) {
	gc.rec("DrawImage", img, x, y)
}
func (gc *recordGC) SetFont(face font.Face) {
	gc.face = face
	gc.rec("SetFont")
}
func (gc *recordGC) DrawText(s string, x, y int, transparent bool) {
	gc.rec("DrawText", s, x, y, transparent)
}
func (gc *recordGC) StringExtent(s string) image.Point {
	return fontutil.StringExtent(gc.face, MnemonicStrip(s))
}

func (gc *recordGC) find(name string) (gcOp, bool) {
	for _, op := range gc.ops {
		if op.Name == name {
			return op, true
		}
	}
	return gcOp{}, false
}

func (gc *recordGC) indexOf(name string) int {
	for i, op := range gc.ops {
		if op.Name == name {
			return i
		}
	}
	return -1
}

//----------

func TestDrawRecordsBounds(t *testing.T) {
	tb := newTestToolbar(t)
	it := NewToolItem(tb)
	it.SetText("OK")
	it.SetWidth(40)

	it.DrawButton(newRecordGC(), 25, 30, false)
	require.Equal(t, image.Rect(25, 0, 65, 30), it.Bounds())
}

func TestDrawBoundsUseEffectiveWidth(t *testing.T) {
	tb := newTestToolbar(t)
	it := NewToolItem(tb)
	it.SetText("OK") // auto width 28

	it.DrawButton(newRecordGC(), 0, 30, true)
	require.Equal(t, image.Rect(0, 0, 28, 30), it.Bounds())
}

func TestDrawIdempotent(t *testing.T) {
	tb := newTestToolbar(t)
	it := NewToolItem(tb)
	it.SetText("&Run")
	it.SetImage(solidImage(8, 8))
	it.SetSelection(true)
	tb.size = image.Point{X: 100, Y: 30}

	gc1 := newRecordGC()
	it.DrawButton(gc1, 10, 30, false)
	b1 := it.Bounds()

	gc2 := newRecordGC()
	it.DrawButton(gc2, 10, 30, false)

	require.Equal(t, b1, it.Bounds())
	if d := cmp.Diff(gc1.ops, gc2.ops); d != "" {
		t.Fatalf("op sequence differs (-first +second):\n%s", d)
	}
}

//----------

func TestBackgroundOnlyWhenSelected(t *testing.T) {
	tb := newTestToolbar(t)
	it := NewToolItem(tb)
	it.SetText("OK")

	gc := newRecordGC()
	it.DrawButton(gc, 0, 30, false)
	_, ok := gc.find("FillGradientRectangle")
	require.False(t, ok)

	it.SetSelection(true)
	gc = newRecordGC()
	it.DrawButton(gc, 0, 30, false)
	_, ok = gc.find("FillGradientRectangle")
	require.True(t, ok)
}

func TestSeparatorOnlyWhenNotLast(t *testing.T) {
	tb := newTestToolbar(t)
	it := NewToolItem(tb)
	it.SetWidth(40)

	gc := newRecordGC()
	it.DrawButton(gc, 10, 30, false)
	op, ok := gc.find("DrawLine")
	require.True(t, ok)
	// at the right edge, spanning the full toolbar height
	require.Equal(t, []interface{}{50, 0, 50, 30}, op.Args)

	gc = newRecordGC()
	it.DrawButton(gc, 10, 30, true)
	_, ok = gc.find("DrawLine")
	require.False(t, ok)
}

func TestBackgroundBeforeContent(t *testing.T) {
	tb := newTestToolbar(t)
	it := NewToolItem(tb)
	it.SetText("OK")
	it.SetImage(solidImage(8, 8))
	it.SetSelection(true)
	tb.size = image.Point{X: 60, Y: 30}

	gc := newRecordGC()
	it.DrawButton(gc, 0, 30, false)

	require.Less(t, gc.indexOf("FillGradientRectangle"), gc.indexOf("DrawImage"))
	require.Less(t, gc.indexOf("FillGradientRectangle"), gc.indexOf("DrawText"))
	require.Less(t, gc.indexOf("DrawLine"), gc.indexOf("DrawImage"))
}

//----------

func clipOf(t *testing.T, gc *recordGC) RoundRect {
	t.Helper()
	op, ok := gc.find("SetClipping")
	require.True(t, ok)
	rr, ok := op.Args[0].(RoundRect)
	require.True(t, ok, "clip was removed, not set")
	return rr
}

func TestClipAllCornersWhenLast(t *testing.T) {
	tb := newTestToolbar(t)
	it := NewToolItem(tb)
	it.SetWidth(40)
	it.SetSelection(true)
	tb.SetCornerRadius(6)
	tb.size = image.Point{X: 100, Y: 30}

	gc := newRecordGC()
	it.DrawButton(gc, 60, 30, true)

	rr := clipOf(t, gc)
	require.Equal(t, [4]bool{true, true, true, true}, rr.Rounded)
	require.Equal(t, image.Point{X: 6, Y: 6}, rr.Arc)
	// the last segment closes the full toolbar shape
	require.Equal(t, image.Rect(0, 0, 100, 30), rr.Rect)
}

func TestClipLeadingEdgeOnlyWhenNotLast(t *testing.T) {
	tb := newTestToolbar(t)
	it := NewToolItem(tb)
	it.SetWidth(40)
	it.SetSelection(true)
	tb.SetCornerRadius(6)

	gc := newRecordGC()
	it.DrawButton(gc, 20, 30, false)

	rr := clipOf(t, gc)
	require.True(t, rr.Rounded[CornerTopLeft])
	require.True(t, rr.Rounded[CornerBottomLeft])
	require.False(t, rr.Rounded[CornerTopRight])
	require.False(t, rr.Rounded[CornerBottomRight])
	require.Equal(t, image.Rect(20, 0, 60, 30), rr.Rect)

	// gradient bleeds one corner radius past the width; the clip cuts it
	op, ok := gc.find("FillGradientRectangle")
	require.True(t, ok)
	require.Equal(t, []interface{}{20, 0, 40 + 6, 30, true}, op.Args)

	// clip removed after the background
	ops := []gcOp{}
	for _, op := range gc.ops {
		if op.Name == "SetClipping" {
			ops = append(ops, op)
		}
	}
	require.Len(t, ops, 2)
	require.Equal(t, []interface{}{nil}, ops[1].Args)
}

//----------

func TestImageVariantPrecedence(t *testing.T) {
	normal := solidImage(8, 8)
	sel := solidImage(9, 9)
	dis := solidImage(10, 10)

	cases := []struct {
		name     string
		enabled  bool
		selected bool
		want     image.Image
	}{
		{"disabled wins", false, true, dis},
		{"selection wins when enabled", true, true, sel},
		{"normal otherwise", true, false, normal},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tb := newTestToolbar(t)
			it := NewToolItem(tb)
			it.SetImage(normal)
			it.SetSelectionImage(sel)
			it.SetDisabledImage(dis)
			it.SetEnabled(c.enabled)
			it.SetSelection(c.selected)
			tb.size = image.Point{X: 100, Y: 30}

			gc := newRecordGC()
			it.DrawButton(gc, 0, 30, true)

			op, ok := gc.find("DrawImage")
			require.True(t, ok)
			require.Same(t, c.want, op.Args[0])
		})
	}
}

func TestDisabledWithoutDisabledImageDrawsNoImage(t *testing.T) {
	tb := newTestToolbar(t)
	it := NewToolItem(tb)
	it.SetImage(solidImage(8, 8))
	it.SetEnabled(false)

	gc := newRecordGC()
	it.DrawButton(gc, 0, 30, true)
	_, ok := gc.find("DrawImage")
	require.False(t, ok)
}

func TestImageVerticallyCentered(t *testing.T) {
	tb := newTestToolbar(t)
	it := NewToolItem(tb)
	it.SetImage(solidImage(8, 8))
	it.SetAlignment(AlignLeft)

	gc := newRecordGC()
	it.DrawButton(gc, 0, 30, true)

	op, ok := gc.find("DrawImage")
	require.True(t, ok)
	require.Equal(t, Margin, op.Args[1]) // left aligned start
	require.Equal(t, (30-8)/2, op.Args[2])
}

func TestTextColorFollowsSelection(t *testing.T) {
	tb := newTestToolbar(t)
	it := NewToolItem(tb)
	it.SetText("OK")

	gc := newRecordGC()
	it.DrawButton(gc, 0, 30, true)
	// last SetForeground before DrawText is the text color
	require.Equal(t, tb.theme.Text, lastForegroundBefore(t, gc, "DrawText"))

	it.SetSelection(true)
	tb.size = image.Point{X: 50, Y: 30}
	gc = newRecordGC()
	it.DrawButton(gc, 0, 30, true)
	require.Equal(t, tb.theme.TextSelected, lastForegroundBefore(t, gc, "DrawText"))
}

func lastForegroundBefore(t *testing.T, gc *recordGC, name string) color.Color {
	t.Helper()
	end := gc.indexOf(name)
	require.GreaterOrEqual(t, end, 0)
	var c color.Color
	for _, op := range gc.ops[:end] {
		if op.Name == "SetForeground" {
			c = op.Args[0].(color.Color)
		}
	}
	require.NotNil(t, c)
	return c
}
