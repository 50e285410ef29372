package extractor

import (
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/net/html"
)

// KeyTextExtractor uses the record key as the document body, for inputs where
// the text of interest is on the key side of the line
type KeyTextExtractor struct{}

// ExtractText returns the record key
func (e *KeyTextExtractor) ExtractText(key string, value string) string {
	return key
}

// HTMLTextExtractor strips HTML markup from the record value, keeping only
// its text content. Script and style bodies are discarded.
type HTMLTextExtractor struct{}

// ExtractText returns the text content of the record value with markup removed
func (e *HTMLTextExtractor) ExtractText(key string, value string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(value))
	var text strings.Builder
	skipDepth := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// the tokenizer reports EOF as an error token
			return text.String()
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if rawTextTag(string(name)) {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if rawTextTag(string(name)) && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				text.Write(tokenizer.Text())
			}
		}
	}
}

func rawTextTag(name string) bool {
	return name == "script" || name == "style"
}

// JSONPathKey configures the path a JSONTextExtractor selects within each
// record value
const JSONPathKey = "corpus.reader.text.extractor.json.path"

// JSONTextExtractor selects the text at a path within a JSON record value.
// A value without the path yields an empty body.
type JSONTextExtractor struct {
	Path string
}

// ExtractText returns the text at the configured path within the record value
func (e *JSONTextExtractor) ExtractText(key string, value string) string {
	return gjson.Get(value, e.Path).String()
}
