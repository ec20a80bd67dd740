// Package pool provides reusable byte buffers for decompression scratch
// space. Every zlib-compressed value-change sub-region and gzip-compressed
// hierarchy section is inflated into one of these buffers and copied out
// before the buffer returns to its pool, so those inflates allocate only
// the copies they hand to the caller. The LZ4 and FastLZ decompressors
// allocate their own output buffers and do not use these pools.
package pool

import "sync"

const (
	// RegionBufferDefaultSize fits a typical value-change sub-region
	// (frame, waveform, or time table) without growing.
	RegionBufferDefaultSize  = 64 * 1024
	RegionBufferMaxThreshold = 1024 * 1024

	// HierarchyBufferDefaultSize fits most decompressed hierarchy
	// sections; large designs grow past it and are discarded on Put
	// rather than pinned in the pool.
	HierarchyBufferDefaultSize  = 1024 * 1024
	HierarchyBufferMaxThreshold = 16 * 1024 * 1024
)

// ByteBuffer is a growable byte slice that satisfies io.Writer, so a
// decompressor can io.Copy straight into it.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer while retaining its allocation for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating. Callers that know a region's declared uncompressed length
// pass it here up front so io.Copy never has to grow mid-inflate.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := RegionBufferDefaultSize
	if cap(bb.B) > 4*RegionBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends data to the buffer, growing it as needed. It never fails;
// the error return exists to satisfy io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// ByteBufferPool recycles ByteBuffers through a sync.Pool, discarding any
// buffer that grew past maxThreshold so one oversized section doesn't pin
// its memory for the life of the process.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose fresh buffers start at
// defaultSize and whose returned buffers are discarded above maxThreshold.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	regionPool    = NewByteBufferPool(RegionBufferDefaultSize, RegionBufferMaxThreshold)
	hierarchyPool = NewByteBufferPool(HierarchyBufferDefaultSize, HierarchyBufferMaxThreshold)
)

// GetRegionBuffer retrieves a scratch buffer sized for a value-change
// sub-region inflate.
func GetRegionBuffer() *ByteBuffer {
	return regionPool.Get()
}

// PutRegionBuffer returns a region scratch buffer to its pool.
func PutRegionBuffer(bb *ByteBuffer) {
	regionPool.Put(bb)
}

// GetHierarchyBuffer retrieves a scratch buffer sized for a hierarchy
// section inflate.
func GetHierarchyBuffer() *ByteBuffer {
	return hierarchyPool.Get()
}

// PutHierarchyBuffer returns a hierarchy scratch buffer to its pool.
func PutHierarchyBuffer(bb *ByteBuffer) {
	hierarchyPool.Put(bb)
}
