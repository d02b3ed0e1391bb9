// Package utils provides utility functions shared by the region packages.
package utils

import "sync"

// scratchCap is the capacity of freshly pooled scratch buffers.
const scratchCap = 4096

var bufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 0, scratchCap)
		return &buf
	},
}

// GetBuffer returns a scratch byte slice of the given length from the pool.
// The contents are unspecified; callers overwrite them.
func GetBuffer(size int) []byte {
	bp := bufferPool.Get().(*[]byte)
	if cap(*bp) < size {
		bufferPool.Put(bp)
		return make([]byte, size, size*2) // Increase capacity.
	}
	return (*bp)[:size]
}

// ReleaseBuffer returns a buffer obtained from GetBuffer to the pool.
// Oversized buffers are dropped so that one large transfer does not pin memory.
func ReleaseBuffer(buf []byte) {
	if cap(buf) > 16*scratchCap {
		return
	}
	buf = buf[:0]
	bufferPool.Put(&buf)
}
