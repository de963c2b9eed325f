package codec

import (
	"bytes"
	"image"
	"image/color"
	stdpng "image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endogeny/png-framing/frame"
)

// gradientBytes builds a row-major RGBA buffer with distinct per-channel
// values.
func gradientBytes(w, h int) []byte {
	buf := make([]byte, w*h*frame.PixelSize)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := frame.PixelSize * (y*w + x)
			buf[i+0] = uint8(x % 256)
			buf[i+1] = uint8(y % 256)
			buf[i+2] = uint8((x + y) % 256)
			buf[i+3] = 255
		}
	}
	return buf
}

func TestEncodeValidatesInput(t *testing.T) {
	c := Default()

	_, err := c.Encode(nil, 0, 8)
	assert.Error(t, err, "zero width should be rejected")

	_, err = c.Encode(nil, 8, -1)
	assert.Error(t, err, "negative height should be rejected")

	_, err = c.Encode(make([]byte, 8*8*frame.PixelSize-1), 8, 8)
	assert.Error(t, err, "short buffer should be rejected")

	_, err = c.Encode(make([]byte, 8*8*frame.PixelSize+4), 8, 8)
	assert.Error(t, err, "long buffer should be rejected")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	const w, h = 64, 48
	pix := gradientBytes(w, h)

	data, err := Default().Encode(pix, w, h)
	require.NoError(t, err, "encode should succeed for valid input")
	require.NotEmpty(t, data, "encode should produce output")

	buf, err := Default().Decode(data)
	require.NoError(t, err, "decode should accept our own output")
	defer buf.Release()

	assert.Equal(t, w, buf.Width, "decoded width")
	assert.Equal(t, h, buf.Height, "decoded height")
	require.Equal(t, w*h, buf.Len(), "decoded element count")

	pixels := buf.Pixels()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := frame.PixelSize * (y*w + x)
			want := frame.Pixel{R: pix[i], G: pix[i+1], B: pix[i+2], A: pix[i+3]}
			require.Equal(t, want, pixels[y*w+x], "pixel (%d,%d)", x, y)
		}
	}
}

// TestEncodeInteroperates verifies the chunk-level encoder against an
// independent decoder.
func TestEncodeInteroperates(t *testing.T) {
	const w, h = 31, 17
	pix := gradientBytes(w, h)

	data, err := Default().Encode(pix, w, h)
	require.NoError(t, err)

	img, err := stdpng.Decode(bytes.NewReader(data))
	require.NoError(t, err, "standard library should accept the stream")

	nr, ok := img.(*image.NRGBA)
	require.True(t, ok, "8-bit RGBA stream should decode to NRGBA, got %T", img)
	require.Equal(t, w, nr.Bounds().Dx())
	require.Equal(t, h, nr.Bounds().Dy())

	for y := 0; y < h; y++ {
		require.Equal(t,
			pix[y*w*frame.PixelSize:(y+1)*w*frame.PixelSize],
			nr.Pix[y*nr.Stride:y*nr.Stride+w*frame.PixelSize],
			"row %d", y)
	}
}

// TestDecodeConvertsToRGBA feeds the decoder a grayscale PNG and expects
// RGBA-8888 out.
func TestDecodeConvertsToRGBA(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			gray.SetGray(x, y, color.Gray{Y: uint8(16*y + x)})
		}
	}
	var enc bytes.Buffer
	require.NoError(t, stdpng.Encode(&enc, gray))

	buf, err := Default().Decode(enc.Bytes())
	require.NoError(t, err, "grayscale PNG should decode")
	defer buf.Release()

	pixels := buf.Pixels()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			v := uint8(16*y + x)
			assert.Equal(t, frame.Pixel{R: v, G: v, B: v, A: 255}, pixels[y*4+x],
				"pixel (%d,%d)", x, y)
		}
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Default().Decode(nil)
	assert.Error(t, err, "empty input should fail")

	_, err = Default().Decode([]byte("definitely not a png"))
	assert.Error(t, err, "corrupt input should fail")
}

func TestPixelBufferDoubleReleasePanics(t *testing.T) {
	buf := NewPixelBuffer(2, 2)
	buf.Release()
	assert.Panics(t, func() { buf.Release() }, "second release must be detected")
}

func TestPixelBufferUseAfterReleasePanics(t *testing.T) {
	buf := NewPixelBuffer(2, 2)
	buf.Release()
	assert.Panics(t, func() { buf.Pixels() }, "access after release must be detected")
}

func BenchmarkEncode(b *testing.B) {
	const w, h = 1280, 720
	pix := gradientBytes(w, h)

	b.SetBytes(int64(len(pix)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Default().Encode(pix, w, h); err != nil {
			b.Fatalf("encode: %v", err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	const w, h = 1280, 720
	data, err := Default().Encode(gradientBytes(w, h), w, h)
	if err != nil {
		b.Fatalf("encode: %v", err)
	}

	b.SetBytes(int64(w * h * frame.PixelSize))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf, err := Default().Decode(data)
		if err != nil {
			b.Fatalf("decode: %v", err)
		}
		buf.Release()
	}
}
