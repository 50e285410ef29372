package codec

import (
	"io"
	"path/filepath"
	"strings"
)

// Codec is a compression scheme for input files, identified by file extension
type Codec interface {
	Name() string      // short name of this compression scheme, e.g. "gzip"
	Extension() string // filename extension associated with this Codec, including the leading dot
	// NewReader returns a stream of decompressed data read from r
	NewReader(r io.Reader) (io.ReadCloser, error)
	// NewWriter returns a stream which compresses data written to it onto w
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

// SplittableCodec is implemented by Codecs whose format exposes internal block
// boundaries, allowing decompression to begin mid-file. Files compressed with
// a SplittableCodec may be divided into independently readable byte ranges.
type SplittableCodec interface {
	Codec
	// NewRangeReader returns a stream of decompressed data beginning at the
	// first block boundary at or after start, positioned as though start bytes
	// had already been consumed. end bounds the range a caller will read.
	NewRangeReader(r io.ReadSeeker, start int64, end int64) (io.ReadCloser, error)
}

// Registry maps filename extensions to Codecs. A nil Codec result means a file
// is plain text.
type Registry struct {
	codecs map[string]Codec
}

// CreateRegistry returns a Registry containing the given Codecs
func CreateRegistry(codecs ...Codec) *Registry {
	reg := &Registry{codecs: make(map[string]Codec)}
	for _, c := range codecs {
		reg.Register(c)
	}
	return reg
}

// DefaultRegistry returns a Registry containing all built-in Codecs
func DefaultRegistry() *Registry {
	return CreateRegistry(
		&GzipCodec{},
		&Bzip2Codec{},
		&LZ4Codec{},
		&ZstdCodec{},
	)
}

// Register adds a Codec to this Registry, replacing any Codec previously
// registered for the same extension
func (reg *Registry) Register(c Codec) {
	reg.codecs[strings.ToLower(c.Extension())] = c
}

// ForPath returns the Codec associated with a file's extension, or nil if the
// file is not classified as compressed
func (reg *Registry) ForPath(path string) Codec {
	return reg.codecs[strings.ToLower(filepath.Ext(path))]
}

// IsSplittable reports whether a file may be divided into independently
// readable byte ranges. Plain files are always splittable; compressed files
// are splittable only if their Codec supports split-aware decompression.
func (reg *Registry) IsSplittable(path string) bool {
	c := reg.ForPath(path)
	if c == nil {
		return true
	}
	_, splittable := c.(SplittableCodec)
	return splittable
}
