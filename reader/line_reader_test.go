package reader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-corpus/corpus/codec"
	"github.com/go-corpus/corpus/datasource"
	"github.com/go-corpus/corpus/errors"
	"github.com/stretchr/testify/require"
)

// identityCodec is a split-aware test codec whose "compressed" form is the
// plain data.
type identityCodec struct{}

func (c *identityCodec) Name() string {
	return "identity"
}

func (c *identityCodec) Extension() string {
	return ".ident"
}

func (c *identityCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

func (c *identityCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return nil, fmt.Errorf("not implemented")
}

func (c *identityCodec) NewRangeReader(r io.ReadSeeker, start int64, end int64) (io.ReadCloser, error) {
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return nil, err
	}
	return io.NopCloser(r), nil
}

func writeInput(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.Nil(t, os.WriteFile(path, content, 0644))
	return path
}

func readAllLines(t *testing.T, split *datasource.Split) []string {
	t.Helper()
	r, err := OpenLineReader(split)
	require.Nil(t, err)
	defer func() { require.Nil(t, r.Close()) }()
	var lines []string
	for {
		line, err := r.NextLine()
		if err != nil {
			_, exhausted := err.(errors.NoMoreRecordsError)
			require.True(t, exhausted, "unexpected read error: %v", err)
			require.False(t, r.HasNextLine())
			return lines
		}
		lines = append(lines, line)
	}
}

func TestLineReaderWholeFile(t *testing.T) {
	content := []byte("a\tA\nb\tB\nc\tC\n")
	path := writeInput(t, "corpus.txt", content)
	split := &datasource.Split{Path: path, Start: 0, Length: int64(len(content))}
	require.Equal(t, []string{"a\tA", "b\tB", "c\tC"}, readAllLines(t, split))
}

func TestLineReaderCRLFAndMissingFinalNewline(t *testing.T) {
	content := []byte("a\tA\r\nb\tB\r\nc\tC")
	path := writeInput(t, "corpus.txt", content)
	split := &datasource.Split{Path: path, Start: 0, Length: int64(len(content))}
	require.Equal(t, []string{"a\tA", "b\tB", "c\tC"}, readAllLines(t, split))
}

func TestLineReaderEmptyFile(t *testing.T) {
	path := writeInput(t, "corpus.txt", nil)
	split := &datasource.Split{Path: path, Start: 0, Length: 0}
	require.Empty(t, readAllLines(t, split))
}

// Every line must be read by exactly one split, no matter where the byte
// boundary between two splits lands.
func TestLineReaderEveryBoundaryReadsEachLineOnce(t *testing.T) {
	content := []byte("one\tfirst line\ntwo\tsecond\nthree\t3\nfour\tthe last line\n")
	expected := []string{"one\tfirst line", "two\tsecond", "three\t3", "four\tthe last line"}
	path := writeInput(t, "corpus.txt", content)

	for boundary := int64(1); boundary < int64(len(content)); boundary++ {
		first := &datasource.Split{Path: path, Start: 0, Length: boundary}
		second := &datasource.Split{Path: path, Start: boundary, Length: int64(len(content)) - boundary}
		combined := append(readAllLines(t, first), readAllLines(t, second)...)
		require.Equal(t, expected, combined, "boundary at byte %d", boundary)
	}
}

func TestLineReaderGzipWholeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.txt.gz")
	f, err := os.Create(path)
	require.Nil(t, err)
	gz := &codec.GzipCodec{}
	w, err := gz.NewWriter(f)
	require.Nil(t, err)
	_, err = w.Write([]byte("a\tA\nb\tB\n"))
	require.Nil(t, err)
	require.Nil(t, w.Close())
	require.Nil(t, f.Close())

	info, err := os.Stat(path)
	require.Nil(t, err)
	split := &datasource.Split{Path: path, Start: 0, Length: info.Size(), Codec: gz}
	require.Equal(t, []string{"a\tA", "b\tB"}, readAllLines(t, split))
}

func TestLineReaderStreamCodecRejectsMidFileEntry(t *testing.T) {
	path := writeInput(t, "corpus.txt.gz", []byte("irrelevant"))
	split := &datasource.Split{Path: path, Start: 5, Length: 5, Codec: &codec.GzipCodec{}}
	_, err := OpenLineReader(split)
	require.NotNil(t, err)
}

func TestLineReaderSplittableCodecRanges(t *testing.T) {
	content := []byte("a\tA\nb\tB\nc\tC\nd\tD\n")
	path := writeInput(t, "corpus.ident", content)
	ident := &identityCodec{}

	boundary := int64(5) // mid-line within "b\tB\n"
	first := &datasource.Split{Path: path, Start: 0, Length: boundary, Codec: ident}
	second := &datasource.Split{Path: path, Start: boundary, Length: int64(len(content)) - boundary, Codec: ident}
	combined := append(readAllLines(t, first), readAllLines(t, second)...)
	require.Equal(t, []string{"a\tA", "b\tB", "c\tC", "d\tD"}, combined)
}

func TestLineReaderMissingFile(t *testing.T) {
	split := &datasource.Split{Path: filepath.Join(t.TempDir(), "absent.txt"), Start: 0, Length: 10}
	_, err := OpenLineReader(split)
	require.NotNil(t, err)
}

func TestSplitKeyValue(t *testing.T) {
	rec := SplitKeyValue("cat\ta small feline", "\t")
	require.Equal(t, "cat", rec.Key)
	require.Equal(t, "a small feline", rec.Value)

	rec = SplitKeyValue("no separator here", "\t")
	require.Equal(t, "no separator here", rec.Key)
	require.Equal(t, "", rec.Value)

	rec = SplitKeyValue("a,b,c", ",")
	require.Equal(t, "a", rec.Key)
	require.Equal(t, "b,c", rec.Value, "only the first separator divides key from value")

	rec = SplitKeyValue("trailing\t", "\t")
	require.Equal(t, "trailing", rec.Key)
	require.Equal(t, "", rec.Value)
}
