package codec

import (
	"io"

	"github.com/pierrec/lz4"
)

// LZ4Codec reads and writes lz4 frames. The frame format carries no index of
// its block boundaries, so it is not split-aware.
type LZ4Codec struct{}

// Name returns the short name of this Codec
func (c *LZ4Codec) Name() string {
	return "lz4"
}

// Extension returns the filename extension associated with this Codec
func (c *LZ4Codec) Extension() string {
	return ".lz4"
}

// NewReader returns a stream of decompressed data read from r
func (c *LZ4Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

// NewWriter returns a stream which compresses data written to it onto w
func (c *LZ4Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}
