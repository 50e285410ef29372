package codec

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// ZstdCodec reads and writes zstandard streams. Standard zstd streams carry no
// seek table, so this Codec is not split-aware.
type ZstdCodec struct{}

// Name returns the short name of this Codec
func (c *ZstdCodec) Name() string {
	return "zstd"
}

// Extension returns the filename extension associated with this Codec
func (c *ZstdCodec) Extension() string {
	return ".zst"
}

// NewReader returns a stream of decompressed data read from r
func (c *ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return dec.IOReadCloser(), nil
}

// NewWriter returns a stream which compresses data written to it onto w
func (c *ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w)
}
