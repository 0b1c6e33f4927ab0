package decorated

import (
	"fmt"
	"log"
)

// Anomaly is a kind of malformed markup found while parsing.
// Parsing never fails; anomalies are repaired and reported.
type Anomaly int

const (
	// AnomalyUnterminatedTag is a tag start without a matching tag end.
	AnomalyUnterminatedTag Anomaly = iota
	// AnomalyEmptyTag is a tag without a type or body; it is dropped.
	AnomalyEmptyTag
	// AnomalyUnmatchedClose is a closer with nothing open to close.
	AnomalyUnmatchedClose
	// AnomalyForcedStandalone is an open tag that was closed implicitly.
	AnomalyForcedStandalone
	// AnomalyOverflow is content beyond the maximum length; it is dropped.
	AnomalyOverflow
)

func (a Anomaly) String() string {
	switch a {
	case AnomalyUnterminatedTag:
		return "unterminated tag"
	case AnomalyEmptyTag:
		return "empty tag"
	case AnomalyUnmatchedClose:
		return "unmatched close"
	case AnomalyForcedStandalone:
		return "forced standalone"
	case AnomalyOverflow:
		return "overflow"
	}
	return fmt.Sprintf("anomaly(%d)", int(a))
}

// AnomalyProvider is notified of malformed markup while parsing.
type AnomalyProvider interface {
	// Report is called with the anomaly kind, the content offset it occurred
	// at, and the code involved (may be empty).
	Report(kind Anomaly, offset int, code string)
}

// NoopAnomaly ignores all anomalies.
type NoopAnomaly struct{}

func (NoopAnomaly) Report(kind Anomaly, offset int, code string) {}

// LogAnomalies returns a provider that prints anomalies to l.
func LogAnomalies(l *log.Logger) AnomalyProvider {
	return logAnomalies{l}
}

type logAnomalies struct {
	l *log.Logger
}

func (p logAnomalies) Report(kind Anomaly, offset int, code string) {
	p.l.Printf("decorated: %s at %d: %q", kind, offset, code)
}

// AnomalyFunc adapts a function to AnomalyProvider.
type AnomalyFunc func(kind Anomaly, offset int, code string)

func (f AnomalyFunc) Report(kind Anomaly, offset int, code string) {
	f(kind, offset, code)
}
