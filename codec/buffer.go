package codec

import (
	"fmt"
	"sync"

	"github.com/endogeny/png-framing/frame"
)

// bufPool recycles decoded pixel memory between decodes. Decoding a stream
// of frames of the same size reuses one allocation instead of growing the
// heap once per frame.
var bufPool = sync.Pool{
	New: func() any { return []frame.Pixel(nil) },
}

// PixelBuffer is pixel memory owned by the codec. Decode hands one out; the
// caller must hand it back through Release exactly once when done. Until
// then the buffer is exclusively the caller's — the codec keeps no alias.
//
// The type models a foreign allocation: user code never constructs the
// backing array itself and never outlives its release.
type PixelBuffer struct {
	// Width is the image width in pixels reported by the codec.
	Width int
	// Height is the image height in pixels reported by the codec.
	Height int

	pixels   []frame.Pixel
	released bool
}

// NewPixelBuffer acquires a width*height pixel buffer from the codec's
// internal pool. Alternative Codec implementations use this to produce
// decode results with the same ownership semantics as the default codec.
func NewPixelBuffer(width, height int) *PixelBuffer {
	n := width * height
	pixels := bufPool.Get().([]frame.Pixel)
	if cap(pixels) < n {
		pixels = make([]frame.Pixel, n)
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		pixels: pixels[:n],
	}
}

// Len returns the element count of the buffer.
func (b *PixelBuffer) Len() int { return len(b.pixels) }

// Pixels returns the typed pixel array. The slice aliases codec-owned
// memory and must not be used after Release.
func (b *PixelBuffer) Pixels() []frame.Pixel {
	if b.released {
		panic("codec: pixel buffer used after release")
	}
	return b.pixels
}

// Release returns the memory to the codec. It must be called exactly once;
// a second call indicates two parties thought they owned the buffer, which
// is a contract violation and panics.
func (b *PixelBuffer) Release() {
	if b.released {
		panic(fmt.Sprintf("codec: double release of %dx%d pixel buffer", b.Width, b.Height))
	}
	b.released = true
	bufPool.Put(b.pixels[:0])
	b.pixels = nil
}
