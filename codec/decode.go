package codec

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/pkg/errors"

	"github.com/endogeny/png-framing/frame"
)

// Decode decompresses a PNG stream of any color type or bit depth into
// RGBA-8888 pixels in a codec-owned PixelBuffer. The caller must release
// the buffer exactly once.
//
// Arguments:
//   - data: The PNG byte stream.
//
// Returns:
//   - *PixelBuffer: Codec-owned pixel memory, width*height elements.
//   - error: Error if the stream is not a valid PNG.
func (defaultCodec) Decode(data []byte) (*PixelBuffer, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "codec: decode png")
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	buf := NewPixelBuffer(w, h)
	pixels := buf.Pixels()

	// 8-bit truecolor-with-alpha streams decode straight to NRGBA, whose
	// layout is already non-premultiplied (R, G, B, A). Copy rows directly.
	if nr, ok := img.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			row := nr.Pix[y*nr.Stride:]
			for x := 0; x < w; x++ {
				i := x * frame.PixelSize
				pixels[y*w+x] = frame.Pixel{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]}
			}
		}
		return buf, nil
	}

	// Everything else (grayscale, paletted, 16-bit) goes through the color
	// model conversion.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			pixels[y*w+x] = frame.Pixel{R: c.R, G: c.G, B: c.B, A: c.A}
		}
	}
	return buf, nil
}
