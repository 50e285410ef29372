package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-corpus/corpus/codec"
	"github.com/go-corpus/corpus/datasource"
	"github.com/go-corpus/corpus/errors"
	"github.com/hashicorp/go-multierror"
)

// LineReader reads whole lines from the byte range described by a Split.
//
// A line is read by the split containing its first byte: the reader consumes
// the line which straddles the end of its range, and a reader whose range
// starts mid-file discards everything up to the first line boundary. Together
// these guarantee every line of a file is read by exactly one of its splits.
type LineReader struct {
	file   *os.File
	stream io.Closer // decompression stream, if the split's file is compressed
	br     *bufio.Reader
	pos    int64 // position of the next unread line
	end    int64 // first position past the split, or -1 to read until EOF
	eof    bool
	done   bool
}

// OpenLineReader positions a LineReader at the first line boundary within a
// Split. The caller must Close the reader to release the underlying file.
func OpenLineReader(split *datasource.Split) (*LineReader, error) {
	f, err := os.Open(split.Path)
	if err != nil {
		return nil, err
	}
	r := &LineReader{file: f}
	switch c := split.Codec.(type) {
	case nil:
		if split.Start > 0 {
			if _, err := f.Seek(split.Start, io.SeekStart); err != nil {
				f.Close()
				return nil, err
			}
		}
		r.br = bufio.NewReader(f)
		r.pos = split.Start
		r.end = split.End()
	case codec.SplittableCodec:
		stream, err := c.NewRangeReader(f, split.Start, split.End())
		if err != nil {
			f.Close()
			return nil, err
		}
		r.stream = stream
		r.br = bufio.NewReader(stream)
		r.pos = split.Start
		r.end = split.End()
	default:
		// a stream codec can only be entered at the head of the file
		if split.Start != 0 {
			f.Close()
			return nil, fmt.Errorf("codec %s does not support mid-file entry; %s must cover the whole file", c.Name(), split.ToString())
		}
		stream, err := c.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		r.stream = stream
		r.br = bufio.NewReader(stream)
		r.end = -1
	}
	// the partial first line belongs to the preceding split, which reads one
	// line past its own range
	if split.Start > 0 {
		if _, err := r.NextLine(); err != nil {
			if _, exhausted := err.(errors.NoMoreRecordsError); !exhausted {
				r.Close()
				return nil, err
			}
		}
	}
	return r, nil
}

// HasNextLine returns true iff this LineReader may produce another line. It is
// optimistic: exhaustion is only detected once NextLine reports it.
func (r *LineReader) HasNextLine() bool {
	return !r.done
}

// NextLine returns the next line within the split, without its line ending.
// A NoMoreRecordsError reports that the range is exhausted; any other error is
// an underlying read failure, propagated unmodified.
func (r *LineReader) NextLine() (string, error) {
	if r.done || r.eof || (r.end >= 0 && r.pos > r.end) {
		r.done = true
		return "", errors.NoMoreRecordsError{}
	}
	line, err := r.br.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF {
		r.eof = true
	}
	if len(line) == 0 {
		r.done = true
		return "", errors.NoMoreRecordsError{}
	}
	r.pos += int64(len(line))
	return trimLineEnding(line), nil
}

// Close releases the decompression stream (if any) and the underlying file
func (r *LineReader) Close() error {
	var multierr *multierror.Error
	if r.stream != nil {
		if err := r.stream.Close(); err != nil {
			multierr = multierror.Append(multierr, err)
		}
	}
	if err := r.file.Close(); err != nil {
		multierr = multierror.Append(multierr, err)
	}
	return multierr.ErrorOrNil()
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
