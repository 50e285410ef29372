// Package datasource locates input files and divides them into Splits for
// parallel reading. Files whose codec does not support split-aware
// decompression are never divided; they produce exactly one whole-file Split.
package datasource

import (
	"os"
	"path/filepath"

	"github.com/go-corpus/corpus/codec"
	"github.com/go-corpus/corpus/errors"
	"github.com/hashicorp/go-multierror"
)

// DefaultSplitSize is the target Split length, in bytes, for splittable files
const DefaultSplitSize = 32 * 1024 * 1024

// DataSource is a set of key/value line files matched by a glob, which will be
// divided into Splits for parallel reading
type DataSource struct {
	glob      string
	codecs    *codec.Registry
	splitSize int64
}

// CreateDataSource returns a DataSource for the files matched by glob. A nil
// codec Registry selects the default built-in codecs; a non-positive splitSize
// selects DefaultSplitSize.
func CreateDataSource(glob string, codecs *codec.Registry, splitSize int64) *DataSource {
	if codecs == nil {
		codecs = codec.DefaultRegistry()
	}
	if splitSize <= 0 {
		splitSize = DefaultSplitSize
	}
	return &DataSource{glob: glob, codecs: codecs, splitSize: splitSize}
}

// IsSplittable reports whether a file may be divided into independently
// readable byte ranges, given its detected codec
func (ds *DataSource) IsSplittable(path string) bool {
	return ds.codecs.IsSplittable(path)
}

// Analyze matches the glob and plans how each file will be divided into
// Splits. Splittable files are divided into ranges of roughly the target
// split size; every other file produces one whole-file Split. Stat failures
// are aggregated per file rather than aborting the analysis at the first one.
func (ds *DataSource) Analyze() ([]*Split, error) {
	matches, err := filepath.Glob(ds.glob)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, errors.EmptyGlobError{Glob: ds.glob}
	}
	var multierr *multierror.Error
	var splits []*Split
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			multierr = multierror.Append(multierr, err)
			continue
		}
		if info.IsDir() {
			continue
		}
		splits = append(splits, ds.plan(path, info.Size())...)
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return splits, nil
}

func (ds *DataSource) plan(path string, size int64) []*Split {
	c := ds.codecs.ForPath(path)
	if !ds.IsSplittable(path) || size <= ds.splitSize {
		return []*Split{{Path: path, Start: 0, Length: size, Codec: c}}
	}
	var splits []*Split
	for start := int64(0); start < size; start += ds.splitSize {
		length := ds.splitSize
		if start+length > size {
			length = size - start
		}
		splits = append(splits, &Split{Path: path, Start: start, Length: length, Codec: c})
	}
	return splits
}
