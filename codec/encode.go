package codec

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"

	"github.com/klauspost/compress/zlib"
	"github.com/pkg/errors"

	"github.com/endogeny/png-framing/frame"
)

// pngSignature is the 8-byte magic every PNG stream starts with.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Encode writes the pixel data as a minimal valid PNG: signature, IHDR,
// one IDAT carrying all scanlines, IEND. The input layout is fixed by the
// caller (8-bit RGBA, row stride width*4, no padding), which maps exactly
// onto PNG color type 6 with the per-scanline None filter, so no pixel
// transformation happens here — only framing and compression.
//
// Arguments:
//   - pix: Row-major RGBA bytes, exactly width*height*4 of them.
//   - width: Image width in pixels.
//   - height: Image height in pixels.
//
// Returns:
//   - []byte: The compressed PNG stream.
//   - error: Error if the dimensions or buffer length are invalid, or if
//     compression fails.
func (defaultCodec) Encode(pix []byte, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("codec: invalid dimensions %dx%d", width, height)
	}
	if want := width * height * frame.PixelSize; len(pix) != want {
		return nil, errors.Errorf(
			"codec: pixel buffer length %d does not match %dx%d (want %d)",
			len(pix), width, height, want,
		)
	}

	var out bytes.Buffer
	out.Grow(len(pix)/2 + 64)
	out.Write(pngSignature)

	// IHDR: dimensions, bit depth 8, color type 6 (truecolor with alpha),
	// deflate compression, adaptive filtering, no interlace.
	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = 8
	ihdr[9] = 6
	writeChunk(&out, "IHDR", ihdr[:])

	var idat bytes.Buffer
	zw, err := zlib.NewWriterLevel(&idat, zlib.DefaultCompression)
	if err != nil {
		return nil, errors.Wrap(err, "codec: zlib writer")
	}

	stride := width * frame.PixelSize
	filterNone := []byte{0}
	for y := 0; y < height; y++ {
		// Filter byte 0 (None) before every scanline.
		if _, err := zw.Write(filterNone); err != nil {
			return nil, errors.Wrap(err, "codec: compress scanline")
		}
		if _, err := zw.Write(pix[y*stride : (y+1)*stride]); err != nil {
			return nil, errors.Wrap(err, "codec: compress scanline")
		}
	}
	if err := zw.Close(); err != nil {
		return nil, errors.Wrap(err, "codec: flush compressed stream")
	}

	writeChunk(&out, "IDAT", idat.Bytes())
	writeChunk(&out, "IEND", nil)

	return out.Bytes(), nil
}

// writeChunk frames one PNG chunk: big-endian data length, 4-byte type,
// data, then a CRC-32 over type and data.
func writeChunk(out *bytes.Buffer, typ string, data []byte) {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(data)))
	out.Write(length[:])
	out.WriteString(typ)
	out.Write(data)

	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	out.Write(sum[:])
}
