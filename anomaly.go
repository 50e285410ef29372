package corpus

import "fmt"

// Anomaly describes a recoverable per-record condition encountered while
// converting a record to a Document. Anomalies are reported alongside the
// produced Document rather than as errors, so callers can choose to log,
// count, or ignore them; they never abort a split.
type Anomaly struct {
	Key    string // the record key the anomaly occurred on
	Reason string
}

// ToString returns a string representation of this Anomaly
func (a *Anomaly) ToString() string {
	return fmt.Sprintf("Anomaly on record %q: %s", a.Key, a.Reason)
}
