package corpus

// TextExtractor derives a document's body text from a raw key/value record.
// Provide a custom implementation if documents should contain text different
// from the value of the key/value lines in the input files - for example to
// remove HTML markup, or to extract text from the key rather than the value.
// When no TextExtractor is configured, the line's value is used verbatim as
// the document body.
//
// Implementations must be stateless: one TextExtractor is resolved per split
// and reused across all records in that split.
type TextExtractor interface {
	ExtractText(key string, value string) string
}

// MetadataExtractor derives custom identifying metadata from a raw key/value
// record - for example the language or the URI of the document. It runs after
// default metadata has been derived, so it may override or augment the default
// title and id. When no MetadataExtractor is configured, documents carry only
// the default title and hash-based id.
//
// Implementations must be stateless aside from the side effect on the passed
// metadata block.
type MetadataExtractor interface {
	ExtractMetadata(key string, value string, meta *Metadata)
}
