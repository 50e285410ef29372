// Package reader turns the byte range described by a Split into a stream of
// key/value line records, and converts each record into a populated Document.
// One DocumentReader is constructed per Split and driven sequentially;
// readers share no state, so Splits may be consumed concurrently.
package reader
