package toolbar

import (
	"image"
	"image/color"

	"github.com/uilab/roundbar/util/evreg"
	"github.com/uilab/roundbar/util/mathutil"
)

// Space around the content, and between the image and the text, in device
// units.
const Margin = 4

// Auto width/height sentinel.
const Auto = -1

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

//----------

// One segment of a RoundedToolbar. Created through NewToolItem, which appends
// it to the end of the owning toolbar's item list; Dispose removes it again,
// synchronously. An item belongs to exactly one toolbar for its lifetime.
type ToolItem struct {
	tb *RoundedToolbar

	text         string
	img          image.Image
	selectionImg image.Image
	disabledImg  image.Image

	alignment         Alignment
	textColor         color.Color
	textColorSelected color.Color

	width, height int // Auto = derive from content

	enabled     bool
	selection   bool
	tooltipText string

	// written only by a draw pass; zero until the first one
	bounds image.Rectangle

	selEvReg evreg.Register
	disposed bool
}

func NewToolItem(tb *RoundedToolbar) *ToolItem {
	if tb == nil {
		errPanic(ErrNilArgument)
	}
	tb.checkAccess()
	it := &ToolItem{
		tb:                tb,
		alignment:         AlignCenter,
		textColor:         tb.theme.Text,
		textColorSelected: tb.theme.TextSelected,
		width:             Auto,
		height:            Auto,
		enabled:           true,
	}
	tb.addItem(it)
	return it
}

// Deregisters from the owning toolbar. Idempotent; any other operation on a
// disposed item panics with ErrDisposed.
func (it *ToolItem) Dispose() {
	if it.disposed {
		return
	}
	it.tb.checkAccess()
	it.disposed = true
	it.tb.removeItem(it)
}

func (it *ToolItem) Disposed() bool {
	return it.disposed
}

func (it *ToolItem) checkWidget() {
	if it.disposed {
		errPanic(ErrDisposed)
	}
	it.tb.checkAccess()
}

func (it *ToolItem) Toolbar() *RoundedToolbar {
	it.checkWidget()
	return it.tb
}

//----------

// Content footprint plus a margin on every side.
func (it *ToolItem) DefaultSize() image.Point {
	it.checkWidget()
	s := it.contentSize()
	return image.Point{X: 2*Margin + s.X, Y: 2*Margin + s.Y}
}

// Text extent plus the widest/tallest of the three image variants, with a
// margin between text and image when both are present. Height is the max of
// the two, not the sum. Recomputed on every call so it always reflects the
// current text/image/font state.
func (it *ToolItem) contentSize() image.Point {
	w, h := 0, 0
	hasText := it.text != ""
	if hasText {
		ext := it.tb.stringExtent(it.text)
		w += ext.X
		h = ext.Y
	}

	imgSize := image.Point{X: -1, Y: -1}
	accumImageSize(it.img, &imgSize)
	accumImageSize(it.selectionImg, &imgSize)
	accumImageSize(it.disabledImg, &imgSize)

	if imgSize.X != -1 {
		w += imgSize.X
		h = mathutil.Biggest(imgSize.Y, h)
		if hasText {
			w += Margin
		}
	}
	return image.Point{X: w, Y: h}
}

func accumImageSize(img image.Image, size *image.Point) {
	if img == nil {
		return
	}
	b := img.Bounds()
	size.X = mathutil.Biggest(b.Dx(), size.X)
	size.Y = mathutil.Biggest(b.Dy(), size.Y)
}

// Explicit width if set, else the default width.
func (it *ToolItem) Width() int {
	it.checkWidget()
	if it.width == Auto {
		return it.DefaultSize().X
	}
	return it.width
}

// Explicit height if set, else the default height.
func (it *ToolItem) Height() int {
	it.checkWidget()
	if it.height == Auto {
		return it.DefaultSize().Y
	}
	return it.height
}

// Negative values clamp to zero; use SetAutoSize to return to content-derived
// sizing.
func (it *ToolItem) SetWidth(w int) {
	it.checkWidget()
	it.width = mathutil.Biggest(w, 0)
}

func (it *ToolItem) SetHeight(h int) {
	it.checkWidget()
	it.height = mathutil.Biggest(h, 0)
}

func (it *ToolItem) SetAutoSize() {
	it.checkWidget()
	it.width = Auto
	it.height = Auto
}

// Content x offset inside a segment of the given width.
func (it *ToolItem) startOffset(width int) int {
	cw := it.contentSize().X
	switch it.alignment {
	case AlignCenter:
		return (width - cw) / 2
	case AlignRight:
		return width - cw - Margin
	default:
		return Margin
	}
}

//----------

func (it *ToolItem) Text() string {
	it.checkWidget()
	return it.text
}
func (it *ToolItem) SetText(s string) {
	it.checkWidget()
	it.text = s
}

func (it *ToolItem) Image() image.Image {
	it.checkWidget()
	return it.img
}
func (it *ToolItem) SetImage(img image.Image) {
	it.checkWidget()
	it.img = img
}

func (it *ToolItem) SelectionImage() image.Image {
	it.checkWidget()
	return it.selectionImg
}
func (it *ToolItem) SetSelectionImage(img image.Image) {
	it.checkWidget()
	it.selectionImg = img
}

func (it *ToolItem) DisabledImage() image.Image {
	it.checkWidget()
	return it.disabledImg
}
func (it *ToolItem) SetDisabledImage(img image.Image) {
	it.checkWidget()
	it.disabledImg = img
}

func (it *ToolItem) Alignment() Alignment {
	it.checkWidget()
	return it.alignment
}
func (it *ToolItem) SetAlignment(a Alignment) {
	it.checkWidget()
	it.alignment = a
}

func (it *ToolItem) TextColor() color.Color {
	it.checkWidget()
	return it.textColor
}
func (it *ToolItem) SetTextColor(c color.Color) {
	it.checkWidget()
	it.textColor = c
}

func (it *ToolItem) TextColorSelected() color.Color {
	it.checkWidget()
	return it.textColorSelected
}
func (it *ToolItem) SetTextColorSelected(c color.Color) {
	it.checkWidget()
	it.textColorSelected = c
}

func (it *ToolItem) Enabled() bool {
	it.checkWidget()
	return it.enabled
}
func (it *ToolItem) SetEnabled(v bool) {
	it.checkWidget()
	it.enabled = v
}

func (it *ToolItem) Selection() bool {
	it.checkWidget()
	return it.selection
}
func (it *ToolItem) SetSelection(v bool) {
	it.checkWidget()
	it.selection = v
}

func (it *ToolItem) TooltipText() string {
	it.checkWidget()
	return it.tooltipText
}

// An empty tooltip means none; no nil sentinel exists, so there is nothing to
// normalize beyond that.
func (it *ToolItem) SetTooltipText(s string) {
	it.checkWidget()
	it.tooltipText = s
}

// Rectangle recorded by the last draw pass: the full segment at full toolbar
// height, y always 0. Zero before the first draw. Draw-then-read is the only
// supported access pattern.
func (it *ToolItem) Bounds() image.Rectangle {
	it.checkWidget()
	return it.bounds
}
