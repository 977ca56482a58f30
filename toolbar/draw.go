package toolbar

import "image"

// DrawButton renders the item at the given x offset. Background (selected
// only) and the separator line (non-last only) go first, so image and text
// always end on top. The scratch state of a pass (gc, toolbar height, isLast)
// is threaded through as parameters; nothing is stashed on the item, so a
// pass is re-entrancy safe by construction. As a side effect the item records
// its bounds for later hit-testing.
func (it *ToolItem) DrawButton(gc GC, x, toolbarHeight int, isLast bool) {
	it.checkWidget()
	if gc == nil {
		errPanic(ErrNilArgument)
	}

	if it.selection {
		it.drawBackground(gc, x, toolbarHeight, isLast)
	}
	if !isLast {
		it.drawRightLine(gc, x, toolbarHeight)
	}

	pos := it.startOffset(it.Width())
	pos += it.drawImage(gc, x+pos, toolbarHeight)
	it.drawText(gc, x+pos, toolbarHeight)

	it.bounds = image.Rect(x, 0, x+it.Width(), toolbarHeight)
}

//----------

func (it *ToolItem) drawBackground(gc GC, x, toolbarHeight int, isLast bool) {
	// read live from the toolbar: a radius change affects all items on the
	// next repaint
	radius := it.tb.cornerRadius
	w := it.Width()

	var clip *RoundRect
	if isLast {
		// the last segment closes the toolbar's rounded right end
		clip = RoundRectAll(image.Rect(0, 0, it.tb.size.X, toolbarHeight), radius, radius)
	} else {
		clip = RoundRectStraightRight(image.Rect(x, 0, x+w, toolbarHeight), radius, radius)
	}
	gc.SetClipping(clip)

	gc.SetForeground(it.tb.theme.GradientTop)
	gc.SetBackground(it.tb.theme.GradientBottom)
	// one corner-radius of horizontal bleed; the clip cuts the excess
	gc.FillGradientRectangle(x, 0, w+radius, toolbarHeight, true)

	gc.SetForeground(it.tb.theme.Border)
	if isLast {
		gc.DrawRoundRectangle(clip.Rect.Min.X, 0, clip.Rect.Dx()-1, toolbarHeight-1, radius, radius)
	} else {
		// widened by the radius so the rounded right corners fall outside the
		// straight-right clip
		gc.DrawRoundRectangle(x, 0, w-1+radius, toolbarHeight-1, radius, radius)
	}

	gc.SetClipping(nil)
}

func (it *ToolItem) drawRightLine(gc GC, x, toolbarHeight int) {
	gc.SetForeground(it.tb.theme.Border)
	gc.DrawLine(x+it.Width(), 0, x+it.Width(), toolbarHeight)
}

// Draws the image variant for the current state, vertically centered. Returns
// the x advance (image width plus a margin), 0 when nothing was drawn. A
// disabled item with no disabled image draws no image at all.
func (it *ToolItem) drawImage(gc GC, x, toolbarHeight int) int {
	var img image.Image
	switch {
	case !it.enabled:
		img = it.disabledImg
	case it.selection:
		img = it.selectionImg
	default:
		img = it.img
	}
	if img == nil {
		return 0
	}

	b := img.Bounds()
	y := (toolbarHeight - b.Dy()) / 2
	gc.DrawImage(img, x, y)
	return b.Dx() + Margin
}

func (it *ToolItem) drawText(gc GC, x, toolbarHeight int) {
	if it.text == "" {
		return
	}
	gc.SetFont(it.tb.face)
	if it.selection {
		gc.SetForeground(it.textColorSelected)
	} else {
		gc.SetForeground(it.textColor)
	}

	ext := gc.StringExtent(it.text)
	y := (toolbarHeight - ext.Y) / 2
	gc.DrawText(it.text, x, y, true)
}
