package toolbar

import (
	"bytes"
	"runtime"
	"strconv"
)

// Id of the calling goroutine, parsed from the runtime.Stack header
// ("goroutine N [running]: ..."). Only used to enforce the single-goroutine
// access model; never used for synchronization.
func goroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	i := bytes.IndexByte(b, ' ')
	if i < 0 {
		return 0
	}
	n, err := strconv.ParseUint(string(b[:i]), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
