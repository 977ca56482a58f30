package evreg

import "container/list"

// Ordered callback register. Callbacks run in registration order, the same
// callback can be registered more than once, and removal is by identity. The
// zero register is empty and ready for use.
type Register struct {
	l list.List
}

//----------

// Remove is done via *Regist.Unregister().
func (reg *Register) Add(fn func(interface{})) *Regist {
	cb := &Callback{fn}
	reg.AddCallback(cb)
	return &Regist{reg, cb}
}

//----------

func (reg *Register) AddCallback(cb *Callback) {
	reg.l.PushBack(cb)
}

// Removing a callback that was never added is a no-op.
func (reg *Register) RemoveCallback(cb *Callback) {
	for e := reg.l.Front(); e != nil; e = e.Next() {
		if e.Value.(*Callback) == cb {
			reg.l.Remove(e)
			// keep possible duplicates registered
			break
		}
	}
}

//----------

// Returns number of callbacks done.
func (reg *Register) RunCallbacks(ev interface{}) int {
	c := 0
	for e := reg.l.Front(); e != nil; e = e.Next() {
		cb := e.Value.(*Callback)
		cb.F(ev)
		c++
	}
	return c
}

func (reg *Register) NCallbacks() int {
	return reg.l.Len()
}

//----------

type Callback struct {
	F func(ev interface{})
}

//----------

type Regist struct {
	evReg *Register
	cb    *Callback
}

func (reg *Regist) Unregister() {
	reg.evReg.RemoveCallback(reg.cb)
}
