package corpus

import "github.com/go-corpus/corpus/errors"

// Metadata is the identifying metadata block of a Document. Beyond the
// well-known Title and ID, extractors may attach arbitrary named fields.
type Metadata struct {
	Title  string
	ID     string
	fields map[string]string
}

// SetField attaches a named metadata field, overwriting any previous value
func (m *Metadata) SetField(name string, value string) {
	if m.fields == nil {
		m.fields = make(map[string]string)
	}
	m.fields[name] = value
}

// Field returns the value of a named metadata field, or "" if it was never set
func (m *Metadata) Field(name string) string {
	return m.fields[name]
}

// Document is a mutable container for one record's body text and metadata.
// A DocumentReader produces one Document per key/value line, after which
// ownership passes to the caller for further pipeline stages.
type Document struct {
	text string
	meta *Metadata
}

// NewDocument returns an empty Document with no metadata block
func NewDocument() *Document {
	return &Document{}
}

// Reset clears the document's body text. An existing metadata block is left
// in place; see CreateMetadata.
func (d *Document) Reset() {
	d.text = ""
}

// SetText sets the document's body text
func (d *Document) SetText(text string) {
	d.text = text
}

// Text returns the document's body text
func (d *Document) Text() string {
	return d.text
}

// Meta returns the document's metadata block, or nil if none has been created
func (d *Document) Meta() *Metadata {
	return d.meta
}

// CreateMetadata creates an empty metadata block for this document, returning
// a MetadataExistsError if the document already carries one
func (d *Document) CreateMetadata() (*Metadata, error) {
	if d.meta != nil {
		return nil, errors.MetadataExistsError{}
	}
	d.meta = &Metadata{}
	return d.meta, nil
}
