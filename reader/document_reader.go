package reader

import (
	"fmt"

	xxhash "github.com/cespare/xxhash/v2"
	corpus "github.com/go-corpus/corpus"
	"github.com/go-corpus/corpus/conf"
	"github.com/go-corpus/corpus/datasource"
	"github.com/go-corpus/corpus/extractor"
)

// Default metadata derives a document title from the record key, abbreviated
// to at most maxTitleWidth characters including the truncation marker.
const (
	maxTitleWidth    = 50
	truncationMarker = "..."
)

// DocumentReader converts the key/value lines of one Split into Documents.
// Extractors are resolved from configuration once, at construction, and
// reused across every record in the split.
type DocumentReader struct {
	lines             *LineReader
	separator         string
	textExtractor     corpus.TextExtractor
	metadataExtractor corpus.MetadataExtractor
	newDocument       func() *corpus.Document
}

// CreateDocumentReader constructs a DocumentReader for one Split. An
// unresolvable extractor name in configuration is a configuration error which
// aborts construction before any record is processed.
func CreateDocumentReader(split *datasource.Split, c *conf.Conf) (*DocumentReader, error) {
	textExtractor, err := extractor.ResolveText(c)
	if err != nil {
		return nil, err
	}
	metadataExtractor, err := extractor.ResolveMetadata(c)
	if err != nil {
		return nil, err
	}
	lines, err := OpenLineReader(split)
	if err != nil {
		return nil, err
	}
	return &DocumentReader{
		lines:             lines,
		separator:         c.GetDefault(SeparatorKey, DefaultSeparator),
		textExtractor:     textExtractor,
		metadataExtractor: metadataExtractor,
		newDocument:       corpus.NewDocument,
	}, nil
}

// UseDocumentFactory overrides how this reader obtains document containers,
// for callers which pool or pre-populate them
func (r *DocumentReader) UseDocumentFactory(f func() *corpus.Document) {
	r.newDocument = f
}

// HasNextDocument returns true iff this DocumentReader may produce another
// Document
func (r *DocumentReader) HasNextDocument() bool {
	return r.lines.HasNextLine()
}

// NextDocument converts the next record in the split into a Document.
//
// The returned Anomaly, when non-nil, reports a recoverable per-record
// condition: the document already carried a metadata block, so default
// metadata creation was skipped for it. Anomalies never abort the split.
// A NoMoreRecordsError reports exhaustion of the split; any other error is an
// underlying read failure, propagated unmodified.
func (r *DocumentReader) NextDocument() (*corpus.Document, *corpus.Anomaly, error) {
	line, err := r.lines.NextLine()
	if err != nil {
		return nil, nil, err
	}
	record := SplitKeyValue(line, r.separator)

	text := record.Value
	if r.textExtractor != nil {
		text = r.textExtractor.ExtractText(record.Key, record.Value)
	}
	doc := r.newDocument()
	doc.Reset()
	doc.SetText(text)

	var anomaly *corpus.Anomaly
	meta, err := doc.CreateMetadata()
	if err != nil {
		anomaly = &corpus.Anomaly{Key: record.Key, Reason: err.Error()}
	} else {
		title := abbreviate(record.Key, maxTitleWidth)
		meta.Title = title
		meta.ID = fmt.Sprintf("<%d>%s", xxhash.Sum64String(record.Key), title)
		if r.metadataExtractor != nil {
			r.metadataExtractor.ExtractMetadata(record.Key, record.Value, meta)
		}
	}
	return doc, anomaly, nil
}

// Close releases the underlying line reader
func (r *DocumentReader) Close() error {
	return r.lines.Close()
}

// abbreviate shortens s to at most maxWidth characters, replacing the excess
// with a truncation marker
func abbreviate(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}
	return string(runes[:maxWidth-len(truncationMarker)]) + truncationMarker
}
