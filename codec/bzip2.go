package codec

import (
	"compress/bzip2"
	"fmt"
	"io"
)

// Bzip2Codec reads bzip2 streams. Although the bzip2 format is block
// structured, the decoder used here can only enter a stream at its head, so
// this Codec does not implement SplittableCodec.
// TODO implement SplittableCodec for bzip2 once a block-scanning decoder is available
type Bzip2Codec struct{}

// Name returns the short name of this Codec
func (c *Bzip2Codec) Name() string {
	return "bzip2"
}

// Extension returns the filename extension associated with this Codec
func (c *Bzip2Codec) Extension() string {
	return ".bz2"
}

// NewReader returns a stream of decompressed data read from r
func (c *Bzip2Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(bzip2.NewReader(r)), nil
}

// NewWriter returns an error, as bzip2 compression is not supported
func (c *Bzip2Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return nil, fmt.Errorf("codec %s does not support compression", c.Name())
}
