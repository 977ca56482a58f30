package toolbar

import "github.com/uilab/roundbar/util/evreg"

// Carried to every selection listener; identifies the originating item and
// its owning toolbar.
type SelectionEvent struct {
	Toolbar *RoundedToolbar
	Item    *ToolItem
}

//----------

// Registers fn to run on every selection of this item. Listeners run
// synchronously, in registration order; duplicates are allowed. Unregister
// through the returned regist.
func (it *ToolItem) OnSelection(fn func(*SelectionEvent)) *evreg.Regist {
	it.checkWidget()
	if fn == nil {
		errPanic(ErrNilArgument)
	}
	return it.selEvReg.Add(func(ev interface{}) {
		fn(ev.(*SelectionEvent))
	})
}

func (it *ToolItem) AddSelectionCallback(cb *evreg.Callback) {
	it.checkWidget()
	if cb == nil {
		errPanic(ErrNilArgument)
	}
	it.selEvReg.AddCallback(cb)
}

// Removing a callback that is not registered is a no-op.
func (it *ToolItem) RemoveSelectionCallback(cb *evreg.Callback) {
	it.checkWidget()
	if cb == nil {
		errPanic(ErrNilArgument)
	}
	it.selEvReg.RemoveCallback(cb)
}

// Synchronously runs every registered listener with a selection event.
func (it *ToolItem) FireSelection() {
	it.checkWidget()
	ev := &SelectionEvent{Toolbar: it.tb, Item: it}
	it.selEvReg.RunCallbacks(ev)
}
