package frame

import "fmt"

// ByteSource is anything that exposes a row-major RGBA byte buffer. A plain
// local allocation and codec-owned foreign memory both satisfy it, so the
// eager image never has to care which one it was built from.
type ByteSource interface {
	Bytes() []byte
}

// Chunky is an eager image: width, height, and a contiguous byte buffer of
// exactly Width*Height*PixelSize bytes. Layout is row-major — row 0 first,
// each row left to right, PixelSize bytes per pixel, no row padding — so the
// byte at offset 0 is the red channel of pixel (0, 0). That layout holds for
// the lifetime of the value; the codec boundary depends on it.
type Chunky struct {
	width  int
	height int
	buf    []byte
}

// NewChunky materializes any image into an eager buffer, sampling src
// exactly once per coordinate. Rows are computed by parallel workers; the
// write targets are disjoint and src.Pixel must be side-effect free, so the
// traversal needs no locking.
//
// Arguments:
//   - src: The image to materialize. Its Pixel method must be safe for
//     concurrent callers.
//
// Returns:
//   - *Chunky: The materialized image.
func NewChunky(src Image) *Chunky {
	w, h := src.Width(), src.Height()
	buf := make([]byte, w*h*PixelSize)

	parallelRows(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				p := src.Pixel(x, y)
				i := PixelSize * (y*w + x)
				buf[i+0] = p.R
				buf[i+1] = p.G
				buf[i+2] = p.B
				buf[i+3] = p.A
			}
		}
	})

	return &Chunky{width: w, height: h, buf: buf}
}

// ChunkyFromBytes wraps an existing row-major RGBA buffer as an eager image.
// The buffer is adopted, not copied.
//
// A buffer whose length differs from width*height*PixelSize is a contract
// violation, not a runtime condition: ChunkyFromBytes panics rather than
// truncating or padding.
func ChunkyFromBytes(width, height int, buf []byte) *Chunky {
	if want := width * height * PixelSize; len(buf) != want {
		panic(fmt.Sprintf(
			"frame: buffer length %d does not match %dx%d image (want %d)",
			len(buf), width, height, want,
		))
	}
	return &Chunky{width: width, height: height, buf: buf}
}

// ChunkyFromBuffer wraps any ByteSource as an eager image, with the same
// length validation as ChunkyFromBytes. This is how decoded, codec-owned
// pixel memory enters the image layer without a copy.
func ChunkyFromBuffer(width, height int, src ByteSource) *Chunky {
	return ChunkyFromBytes(width, height, src.Bytes())
}

// Width returns the number of columns.
func (c *Chunky) Width() int { return c.width }

// Height returns the number of rows.
func (c *Chunky) Height() int { return c.height }

// Pixel reads the 4 bytes at offset PixelSize*(y*width+x) back out as a
// Pixel — the exact inverse of the materializer's write.
func (c *Chunky) Pixel(x, y int) Pixel {
	i := PixelSize * (y*c.width + x)
	return Pixel{
		R: c.buf[i+0],
		G: c.buf[i+1],
		B: c.buf[i+2],
		A: c.buf[i+3],
	}
}

// Bytes returns the underlying row-major buffer. The slice aliases the
// image's storage; it must not be mutated while an encode is in flight.
func (c *Chunky) Bytes() []byte { return c.buf }
