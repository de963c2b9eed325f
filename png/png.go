// Package png - PNG serialization for eager frames.
//
// The package is a thin adapter between the image layer and the compression
// codec: an eager frame's bytes go in one side, PNG bytes come out the
// other, plus Save/Load conveniences against file paths. All codec failures
// collapse into the single opaque ErrCodec; no further classification is
// attempted, because "decode failed" and "disk write failed" are handled
// identically by every caller this layer has.
package png

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/endogeny/png-framing/codec"
	"github.com/endogeny/png-framing/frame"
)

// ErrCodec is the one error kind this package returns. Usually the cause is
// obvious from context — an invalid PNG when decoding, an unwritable path
// when saving — and the wrapped message says which operation failed.
var ErrCodec = errors.New("codec failure")

// fail collapses a codec or I/O failure into ErrCodec, keeping the
// operation and cause in the message only.
func fail(op string, cause error) error {
	return errors.Wrapf(ErrCodec, "%s: %v", op, cause)
}

// Encode compresses an eager frame into PNG bytes, suitable for sending
// over a network, saving as a file, or writing to /dev/null.
func Encode(img *frame.Chunky) ([]byte, error) {
	data, err := codec.Default().Encode(img.Bytes(), img.Width(), img.Height())
	if err != nil {
		return nil, fail("encode", err)
	}
	return data, nil
}

// Decode decompresses PNG bytes into an eager frame backed by codec-owned
// memory, with no copy in between.
//
// Arguments:
//   - data: The PNG byte stream.
//
// Returns:
//   - *frame.Chunky: The decoded frame, viewing the adapter's memory.
//   - *Native: The owning adapter; Close it when the frame is no longer
//     needed.
//   - error: ErrCodec if the stream is not a valid PNG.
func Decode(data []byte) (*frame.Chunky, *Native, error) {
	buf, err := codec.Default().Decode(data)
	if err != nil {
		return nil, nil, fail("decode", err)
	}

	// The codec reports dimensions and element count independently; a
	// mismatch means it broke its own contract, which is not a recoverable
	// condition.
	if buf.Len() != buf.Width*buf.Height {
		panic(fmt.Sprintf(
			"png: codec returned %d pixels for a %dx%d image",
			buf.Len(), buf.Width, buf.Height,
		))
	}

	native := &Native{buf: buf}
	return frame.ChunkyFromBuffer(buf.Width, buf.Height, native), native, nil
}

// Save encodes the frame and writes it to the given path as a PNG.
//
// Any existing file at the path is overwritten. This is the same as
// encoding the image and writing it yourself, but a lot more convenient.
func Save(img *frame.Chunky, path string) error {
	data, err := Encode(img)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fail("save", err)
	}
	return nil
}

// Load reads and decodes the PNG at the given path. The second return is
// the owning adapter, as with Decode.
func Load(path string) (*frame.Chunky, *Native, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fail("load", err)
	}
	return Decode(data)
}
