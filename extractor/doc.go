// Package extractor resolves pluggable text and metadata extraction strategies
// by name from configuration, via explicit factory registries. Resolution
// happens once per split, at reader construction; unknown names are surfaced
// as configuration errors rather than silently defaulted.
package extractor
