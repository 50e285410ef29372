// Package corpus contains the core components of Corpus, a library for ingesting
// line-oriented key/value text files as streams of structured document records.
// This root package defines the types which are employed during the regular use
// of the library, as well as in its extension, and is an excellent overview of
// Corpus' key concepts.
package corpus
