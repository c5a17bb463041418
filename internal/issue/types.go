package issue

import (
	"fmt"

	"soapui2postman/internal/common"
)

// Severity represents the severity level of a conversion issue.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return common.UnknownStr
	}
}

// Issue represents a single conversion issue.
type Issue struct {
	// Severity of the issue.
	Severity Severity
	// Component is the engine component that recorded the issue.
	Component string
	// Message is the human-readable description.
	Message string
	// Subject identifies the step, assertion, or transfer this relates to (if any).
	Subject string
}

// String returns a formatted issue string.
func (i Issue) String() string {
	msg := i.Message
	if i.Subject != "" {
		msg = fmt.Sprintf("%q: %s", i.Subject, msg)
	}

	return fmt.Sprintf("%s [%s] %s", i.Severity, i.Component, msg)
}

// Log accumulates conversion issues for one whole-project run.
// It is append-only: entries are never removed or mutated.
type Log struct {
	entries []Issue
}

// Add appends a fully specified issue.
func (l *Log) Add(severity Severity, component, subject, format string, args ...any) {
	l.entries = append(l.entries, Issue{
		Severity:  severity,
		Component: component,
		Subject:   subject,
		Message:   fmt.Sprintf(format, args...),
	})
}

// Info appends an info issue.
func (l *Log) Info(component, subject, format string, args ...any) {
	l.Add(SeverityInfo, component, subject, format, args...)
}

// Warn appends a warning issue.
func (l *Log) Warn(component, subject, format string, args ...any) {
	l.Add(SeverityWarning, component, subject, format, args...)
}

// Error appends an error issue.
func (l *Log) Error(component, subject, format string, args ...any) {
	l.Add(SeverityError, component, subject, format, args...)
}

// Entries returns all recorded issues in append order.
func (l *Log) Entries() []Issue {
	return l.entries
}

// BySeverity returns all recorded issues of the given severity, in append order.
func (l *Log) BySeverity(s Severity) []Issue {
	return common.Filter(l.entries, func(i Issue) bool { return i.Severity == s })
}

// HasErrors returns true if there are any error-severity issues.
func (l *Log) HasErrors() bool {
	return len(l.BySeverity(SeverityError)) > 0
}

// Len returns the number of recorded issues.
func (l *Log) Len() int {
	return len(l.entries)
}

// Merge appends every entry of other into this log.
func (l *Log) Merge(other *Log) {
	if other == nil {
		return
	}

	l.entries = append(l.entries, other.entries...)
}
