package codec

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCodec reads and writes gzip streams. The gzip format carries no block
// index, so it is not split-aware.
type GzipCodec struct{}

// Name returns the short name of this Codec
func (c *GzipCodec) Name() string {
	return "gzip"
}

// Extension returns the filename extension associated with this Codec
func (c *GzipCodec) Extension() string {
	return ".gz"
}

// NewReader returns a stream of decompressed data read from r
func (c *GzipCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

// NewWriter returns a stream which compresses data written to it onto w
func (c *GzipCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}
