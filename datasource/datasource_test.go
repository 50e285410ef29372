package datasource

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-corpus/corpus/codec"
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

func writeFile(t *testing.T, dir string, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	data := make([]byte, size)
	for i := range data {
		data[i] = 'a'
	}
	require.Nil(t, os.WriteFile(path, data, 0644))
	return path
}

func TestAnalyzeEmptyGlob(t *testing.T) {
	ds := CreateDataSource(filepath.Join(t.TempDir(), "*.txt"), nil, 0)
	_, err := ds.Analyze()
	require.NotNil(t, err)
	_, isEmpty := err.(errors.EmptyGlobError)
	require.True(t, isEmpty)
}

func TestAnalyzeDividesPlainFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "corpus.txt", 2500)

	ds := CreateDataSource(filepath.Join(dir, "*.txt"), nil, 1000)
	splits, err := ds.Analyze()
	require.Nil(t, err)
	require.Len(t, splits, 3)

	// splits must cover the file exactly, in order, without overlap
	var pos int64
	for _, s := range splits {
		require.Equal(t, path, s.Path)
		require.Nil(t, s.Codec)
		require.Equal(t, pos, s.Start)
		pos = s.End()
	}
	require.Equal(t, int64(2500), pos)
}

func TestAnalyzeSmallFileSingleSplit(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "corpus.txt", 10)

	ds := CreateDataSource(filepath.Join(dir, "*.txt"), nil, 1000)
	splits, err := ds.Analyze()
	require.Nil(t, err)
	require.Len(t, splits, 1)
	require.Equal(t, int64(10), splits[0].Length)
}

func TestAnalyzeNeverDividesStreamCodecs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "corpus.txt.gz", 5000)

	ds := CreateDataSource(filepath.Join(dir, "*.gz"), nil, 1000)
	require.False(t, ds.IsSplittable(filepath.Join(dir, "corpus.txt.gz")))

	splits, err := ds.Analyze()
	require.Nil(t, err)
	require.Len(t, splits, 1, "a non-splittable file must be processed by a single reader")
	require.Equal(t, int64(0), splits[0].Start)
	require.Equal(t, int64(5000), splits[0].Length)
	require.NotNil(t, splits[0].Codec)
	require.Equal(t, "gzip", splits[0].Codec.Name())
}

func TestAnalyzeDividesSplittableCodecs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "corpus.ident", 2000)

	reg := codec.DefaultRegistry()
	reg.Register(&identityCodec{})
	ds := CreateDataSource(filepath.Join(dir, "*.ident"), reg, 1000)
	require.True(t, ds.IsSplittable(filepath.Join(dir, "corpus.ident")))

	splits, err := ds.Analyze()
	require.Nil(t, err)
	require.Len(t, splits, 2)
	for _, s := range splits {
		require.NotNil(t, s.Codec)
	}
}

func TestAnalyzeMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "part-00000.txt", 300)
	writeFile(t, dir, "part-00001.txt", 300)

	ds := CreateDataSource(filepath.Join(dir, "part-*.txt"), nil, 1000)
	splits, err := ds.Analyze()
	require.Nil(t, err)
	require.Len(t, splits, 2)
	require.NotEqual(t, splits[0].Path, splits[1].Path)
}
