package reader

import (
	"strings"

	corpus "github.com/go-corpus/corpus"
)

// SeparatorKey configures the string separating key from value within each
// input line. Defaults to a single tab.
const SeparatorKey = "corpus.reader.keyvalue.separator"

// DefaultSeparator is the key/value separator used when none is configured
const DefaultSeparator = "\t"

// SplitKeyValue divides a line into its key and value at the first occurrence
// of sep. A line without the separator is all key, with an empty value.
func SplitKeyValue(line string, sep string) corpus.Record {
	if i := strings.Index(line, sep); i >= 0 {
		return corpus.Record{Key: line[:i], Value: line[i+len(sep):]}
	}
	return corpus.Record{Key: line}
}
