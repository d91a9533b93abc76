package diagnostics

import "fmt"

// Severity constants for entry classification.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Entry is a single diagnostic event recorded while walking a byte stream
// through the decoder: a failed decode, a truncated tail, a LOCK rejection
// worth surfacing to a human. Core fields are immutable once created; the
// optional hint can be attached by chaining.
type Entry struct {
	severity string
	stage    string
	message  string
	location Location
	hint     string
}

func (e *Entry) Severity() string   { return e.severity }
func (e *Entry) Stage() string      { return e.stage }
func (e *Entry) Message() string    { return e.message }
func (e *Entry) Location() Location { return e.location }
func (e *Entry) Hint() string       { return e.hint }

// WithHint attaches a remediation suggestion and returns the same *Entry
// for chaining.
func (e *Entry) WithHint(text string) *Entry {
	e.hint = text
	return e
}

// String renders "severity [stage] location: message".
func (e *Entry) String() string {
	return fmt.Sprintf("%s [%s] %s: %s", e.severity, e.stage, e.location.String(), e.message)
}
