package toolbar

import "fmt"

type ErrorCode int

const (
	// Operation on a disposed toolbar or item.
	ErrDisposed ErrorCode = iota + 1
	// Nil required argument.
	ErrNilArgument
	// Operation off the goroutine that owns the toolbar.
	ErrThreadAccess
)

func (c ErrorCode) String() string {
	switch c {
	case ErrDisposed:
		return "widget is disposed"
	case ErrNilArgument:
		return "argument cannot be nil"
	case ErrThreadAccess:
		return "invalid thread access"
	}
	return fmt.Sprintf("error code %d", int(c))
}

//----------

// API misuse fault. Raised via panic at the API boundary: these are
// programming errors, deterministic and non-recoverable by the toolbar.
type Error struct {
	Code ErrorCode
}

func (e *Error) Error() string {
	return "toolbar: " + e.Code.String()
}

func errPanic(code ErrorCode) {
	panic(&Error{Code: code})
}
