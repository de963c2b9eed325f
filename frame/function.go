package frame

// Function is a lazy image backed by a pure coordinate mapping. It stores no
// pixels: every Pixel call invokes the mapping directly, so repeated access
// recomputes. This lets huge procedurally generated images (a 7680x4320
// fractal, say) exist without allocating a full pixel buffer until
// materialization is actually requested.
//
// The mapping must be pure and safe to call from multiple goroutines at
// once; parallel materialization depends on both.
type Function struct {
	width  int
	height int
	fn     func(x, y int) Pixel
}

// NewFunction wraps a coordinate mapping as a lazy image.
//
// Arguments:
//   - width: The number of columns.
//   - height: The number of rows.
//   - fn: The pure coordinate-to-pixel mapping.
//
// Returns:
//   - *Function: The lazy image.
func NewFunction(width, height int, fn func(x, y int) Pixel) *Function {
	return &Function{width: width, height: height, fn: fn}
}

// Width returns the number of columns.
func (f *Function) Width() int { return f.width }

// Height returns the number of rows.
func (f *Function) Height() int { return f.height }

// Pixel invokes the mapping at (x, y). O(1), no caching.
func (f *Function) Pixel(x, y int) Pixel { return f.fn(x, y) }

// Map derives a lazy image that applies a pure pixel transform to every
// pixel of src. No eager allocation happens; the transform runs on each
// access, composed with whatever src does to produce its own pixels.
func Map(src Image, fn func(Pixel) Pixel) Image {
	return NewFunction(src.Width(), src.Height(), func(x, y int) Pixel {
		return fn(src.Pixel(x, y))
	})
}
