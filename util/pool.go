package util

import (
	"sync"

	"hellotcp/internal/wire"
)

// BufPool provides reusable wire.BufSize buffers for the single read
// each side performs, so handlers do not allocate their own.
var BufPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, wire.BufSize)
		return &buf
	},
}

// GetBuf retrieves a buffer from the pool.  Callers must return it
// with [PutBuf] when finished.
func GetBuf() *[]byte {
	return BufPool.Get().(*[]byte)
}

// PutBuf returns a buffer to the pool for reuse.
func PutBuf(buf *[]byte) {
	if buf == nil {
		return
	}
	BufPool.Put(buf)
}
