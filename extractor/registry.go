package extractor

import (
	"fmt"

	corpus "github.com/go-corpus/corpus"
	"github.com/go-corpus/corpus/conf"
	"github.com/go-corpus/corpus/errors"
)

// Configuration keys naming the extractor implementations a reader should use.
// Absence of a key means "no extractor": the record value becomes the document
// body verbatim, and documents carry only default metadata.
const (
	TextExtractorKey     = "corpus.reader.text.extractor"
	MetadataExtractorKey = "corpus.reader.metadata.extractor"
)

// NewTextExtractor is the factory signature for named TextExtractors
type NewTextExtractor func(c *conf.Conf) (corpus.TextExtractor, error)

// NewMetadataExtractor is the factory signature for named MetadataExtractors
type NewMetadataExtractor func(c *conf.Conf) (corpus.MetadataExtractor, error)

// Text is the factory registry for named TextExtractors (explicit, zero
// reflection)
var Text = map[string]NewTextExtractor{
	// key: use the record key as the document body
	"key": func(c *conf.Conf) (corpus.TextExtractor, error) {
		return &KeyTextExtractor{}, nil
	},
	// html: strip HTML markup from the record value
	"html": func(c *conf.Conf) (corpus.TextExtractor, error) {
		return &HTMLTextExtractor{}, nil
	},
	// json: select a path within a JSON record value
	"json": func(c *conf.Conf) (corpus.TextExtractor, error) {
		return &JSONTextExtractor{Path: c.GetDefault(JSONPathKey, "text")}, nil
	},
}

// Metadata is the factory registry for named MetadataExtractors
var Metadata = map[string]NewMetadataExtractor{
	// uri: record the key as the document uri
	"uri": func(c *conf.Conf) (corpus.MetadataExtractor, error) {
		return &URIMetadataExtractor{}, nil
	},
	// language: tag every document with a fixed language
	"language": func(c *conf.Conf) (corpus.MetadataExtractor, error) {
		lang, ok := c.Get(LanguageKey)
		if !ok {
			return nil, fmt.Errorf("metadata extractor %q requires %s to be set", "language", LanguageKey)
		}
		return &LanguageMetadataExtractor{Language: lang}, nil
	},
}

// ResolveText resolves the TextExtractor named in configuration, instantiating
// it exactly once. It returns nil when no extractor is configured, and an
// UnknownExtractorError when the configured name is not registered.
func ResolveText(c *conf.Conf) (corpus.TextExtractor, error) {
	name, ok := c.Get(TextExtractorKey)
	if !ok {
		return nil, nil
	}
	factory, ok := Text[name]
	if !ok {
		return nil, errors.UnknownExtractorError{Kind: "text", Name: name}
	}
	return factory(c)
}

// ResolveMetadata resolves the MetadataExtractor named in configuration,
// instantiating it exactly once. It returns nil when no extractor is
// configured, and an UnknownExtractorError when the configured name is not
// registered.
func ResolveMetadata(c *conf.Conf) (corpus.MetadataExtractor, error) {
	name, ok := c.Get(MetadataExtractorKey)
	if !ok {
		return nil, nil
	}
	factory, ok := Metadata[name]
	if !ok {
		return nil, errors.UnknownExtractorError{Kind: "metadata", Name: name}
	}
	return factory(c)
}
