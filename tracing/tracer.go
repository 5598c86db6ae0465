// Package tracing records what a co-simulation driver does over time. A
// step tracer receives one record per attempted step and writes it to a
// backend such as a SQLite database.
package tracing

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Step outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeDropped = "dropped"
	OutcomeFaulted = "faulted"
)

// A StepRecord describes one attempted co-simulation step.
type StepRecord struct {
	ID     string
	Driver string

	// From and To are the simulation times the step advanced between. A
	// dropped step keeps From == To.
	From float64
	To   float64

	WallTime time.Duration
	Outcome  string
}

// A Tracer receives step records. Tracers must be safe for use from the
// driver's callback goroutines.
type Tracer interface {
	TraceStep(rec StepRecord)
}

// A LogTracer writes step records to the log at debug level.
type LogTracer struct{}

// TraceStep logs one step record.
func (LogTracer) TraceStep(rec StepRecord) {
	logrus.WithFields(logrus.Fields{
		"driver":  rec.Driver,
		"from":    rec.From,
		"to":      rec.To,
		"wall":    rec.WallTime,
		"outcome": rec.Outcome,
	}).Debug("step")
}
