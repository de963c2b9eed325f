package png

import (
	"unsafe"

	"github.com/endogeny/png-framing/codec"
	"github.com/endogeny/png-framing/frame"
)

// Native exposes codec-allocated pixel memory as a flat byte slice. It is
// the exclusive owner of that memory: Close hands it back to the codec, and
// nothing may touch the byte view afterwards. Pass a *Native around, never
// a copy of it — ownership travels with the pointer.
//
// You normally won't construct one yourself; Decode and Load return it
// alongside the image built over it.
type Native struct {
	buf    *codec.PixelBuffer
	closed bool
}

// Bytes reinterprets the codec's typed pixel array as a byte slice of
// length Len*4, without copying. Valid because a frame.Pixel occupies
// exactly frame.PixelSize bytes (asserted at compile time in the frame
// package). The slice must not outlive the adapter; calling Bytes after
// Close panics.
func (n *Native) Bytes() []byte {
	px := n.buf.Pixels()
	if len(px) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&px[0])), len(px)*frame.PixelSize)
}

// Close releases the underlying codec allocation. Safe to call more than
// once; only the first call releases.
func (n *Native) Close() {
	if n.closed {
		return
	}
	n.closed = true
	n.buf.Release()
}
