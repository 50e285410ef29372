package datasource

import (
	"fmt"

	"github.com/go-corpus/corpus/codec"
)

// Split identifies a contiguous byte range of one input file, along with the
// file's detected compression Codec (nil for plain text). Splits are created
// by a DataSource and are read-only to readers.
type Split struct {
	Path   string
	Start  int64
	Length int64
	Codec  codec.Codec
}

// End returns the first byte position past this Split
func (s *Split) End() int64 {
	return s.Start + s.Length
}

// ToString returns a string representation of this Split
func (s *Split) ToString() string {
	return fmt.Sprintf("Split %s [%d:%d]", s.Path, s.Start, s.End())
}
