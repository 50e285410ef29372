// Package codec defines compression codecs for input files, along with a
// Registry which classifies files by extension and answers whether a file may
// be divided into independently readable byte ranges.
package codec
