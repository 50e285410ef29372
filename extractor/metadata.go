package extractor

import (
	corpus "github.com/go-corpus/corpus"
)

// URIMetadataExtractor records the key as the document's uri field, for inputs
// keyed by source location
type URIMetadataExtractor struct{}

// ExtractMetadata sets the uri metadata field from the record key
func (e *URIMetadataExtractor) ExtractMetadata(key string, value string, meta *corpus.Metadata) {
	meta.SetField("uri", key)
}

// LanguageKey configures the language a LanguageMetadataExtractor tags
// documents with
const LanguageKey = "corpus.reader.metadata.extractor.language.value"

// LanguageMetadataExtractor tags every document with a fixed language field
type LanguageMetadataExtractor struct {
	Language string
}

// ExtractMetadata sets the language metadata field
func (e *LanguageMetadataExtractor) ExtractMetadata(key string, value string, meta *corpus.Metadata) {
	meta.SetField("language", e.Language)
}
