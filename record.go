package corpus

// Record is one raw key/value pair read from a single line of an input file.
// Records are immutable once read, and owned transiently by a DocumentReader
// during one conversion step.
type Record struct {
	Key   string
	Value string
}
