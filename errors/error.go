package errors

import (
	"fmt"
)

// NoMoreRecordsError occurs when a reader's assigned byte range is exhausted
type NoMoreRecordsError struct{}

// Error returns a textual representation of this NoMoreRecordsError
func (e NoMoreRecordsError) Error() string {
	return "No more records in split"
}

// UnknownExtractorError occurs when configuration names an extractor which is
// not present in the factory registry
type UnknownExtractorError struct {
	Kind string // "text" or "metadata"
	Name string
}

// Error returns a textual representation of this UnknownExtractorError
func (e UnknownExtractorError) Error() string {
	return fmt.Sprintf("Unknown %s extractor %q", e.Kind, e.Name)
}

// MetadataExistsError occurs when metadata creation is attempted on a document
// which already carries a metadata block
type MetadataExistsError struct{}

// Error returns a textual representation of this MetadataExistsError
func (e MetadataExistsError) Error() string {
	return "Document metadata already present"
}

// EmptyGlobError occurs when a datasource glob matches no files
type EmptyGlobError struct{ Glob string }

// Error returns a textual representation of this EmptyGlobError
func (e EmptyGlobError) Error() string {
	return fmt.Sprintf("glob %s produced 0 files", e.Glob)
}
