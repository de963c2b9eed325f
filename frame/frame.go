// Package frame - Minimal RGBA image representation layer.
//
// An image is anything that can report its dimensions and produce the pixel
// at an in-bounds coordinate. The package ships two storage strategies behind
// that one contract: Function computes pixels on demand from a pure mapping,
// Chunky stores them in a flat row-major byte buffer. The two are
// interchangeable wherever an Image is required.
package frame

import "unsafe"

// Pixel is a 4-byte RGBA color value with 8 bits per channel, stored and
// transmitted in (R, G, B, A) order with no padding and no premultiplication.
// Pixels are plain values; they are copied, never referenced.
type Pixel struct {
	R, G, B, A uint8
}

// PixelSize is the in-memory and on-the-wire size of one Pixel in bytes.
const PixelSize = 4

// The byte view of codec-owned pixel memory reinterprets []Pixel as []byte,
// which is only valid while a Pixel occupies exactly PixelSize bytes.
var _ [PixelSize]byte = [unsafe.Sizeof(Pixel{})]byte{}

// Image is the capability any image representation must satisfy: report
// width and height, and produce the pixel at a given coordinate.
//
// Pixel is the hot path and takes in-bounds coordinates only; callers that
// cannot prove bounds must go through At instead. Implementations never
// return garbage for an out-of-bounds coordinate: the buffer-backed
// implementation fails fast on the slice bounds check.
type Image interface {
	// Width returns the number of columns.
	Width() int
	// Height returns the number of rows.
	Height() int
	// Pixel returns the pixel at (x, y). Coordinates must satisfy
	// 0 <= x < Width() and 0 <= y < Height().
	Pixel(x, y int) Pixel
}

// At is the bounds-checked accessor for any Image. It returns the pixel at
// (x, y) and true, or the zero Pixel and false when the coordinate is out of
// bounds.
//
// Arguments:
//   - img: The image to sample.
//   - x, y: The coordinate to sample.
//
// Returns:
//   - Pixel: The sampled pixel, zero when out of bounds.
//   - bool: Whether the coordinate was in bounds.
func At(img Image, x, y int) (Pixel, bool) {
	if x < 0 || x >= img.Width() || y < 0 || y >= img.Height() {
		return Pixel{}, false
	}
	return img.Pixel(x, y), true
}
