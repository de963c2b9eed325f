// Package codec - The PNG compression boundary.
//
// The image layer treats PNG compression as an opaque service: raw RGBA
// bytes plus explicit dimensions in, compressed PNG bytes out, and the
// inverse. Any implementation of Codec satisfies the boundary; the default
// one writes PNG chunks directly with a klauspost/compress zlib stream on
// the way out and leans on the standard library's decoder, which accepts
// every PNG flavor, on the way in.
package codec

// Codec compresses and decompresses RGBA-8888 pixel data as PNG bytes.
type Codec interface {
	// Encode compresses a row-major RGBA buffer of exactly width*height*4
	// bytes into a PNG byte stream.
	Encode(pix []byte, width, height int) ([]byte, error)
	// Decode decompresses a PNG byte stream into codec-owned pixel memory.
	// The caller must release the returned buffer exactly once.
	Decode(data []byte) (*PixelBuffer, error)
}

// defaultCodec is the built-in implementation. Stateless; the zero value is
// ready to use.
type defaultCodec struct{}

var std Codec = defaultCodec{}

// Default returns the built-in PNG codec.
func Default() Codec { return std }
