// Package status implements the Result/Status plumbing shared by every
// codec in this module. Codecs never panic or return a bare error for
// recoverable conditions; instead they append Events to a Status and, where
// a value was still produced, wrap it in a Result.
package status

import "strings"

// Kind orders the severity of an Event. Error outranks Warning, which
// outranks Success.
type Kind uint8

const (
	// Success marks an event that carries no problem, only information.
	Success Kind = iota
	// Warning marks a recoverable problem; a value is still available.
	Warning
	// Error marks an unrecoverable problem for the operation that raised it.
	Error
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Event is a single success, warning, or error raised by an operation.
// Source names the component that raised it (e.g. "text.add", "tag.parse"),
// and Err carries the human-readable message — and, for warnings and
// errors, usually one of the typed values in package errs.
type Event struct {
	Kind   Kind
	Source string
	Err    error
}

// Message returns the event's human-readable message.
func (e Event) Message() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// NewSuccess builds a Success event.
func NewSuccess(source, message string) Event {
	return Event{Kind: Success, Source: source, Err: simpleError(message)}
}

// NewWarning builds a Warning event from an error value (typically one of
// the errs package's warning types).
func NewWarning(source string, err error) Event {
	return Event{Kind: Warning, Source: source, Err: err}
}

// NewError builds an Error event from an error value.
func NewError(source string, err error) Event {
	return Event{Kind: Error, Source: source, Err: err}
}

type simpleError string

func (s simpleError) Error() string { return string(s) }

// Status is an append-only, ordered list of Events produced by one
// operation (or the concatenation of several). Its overall Kind is the
// maximum-precedence Kind among its Events; an empty Status is a Success.
type Status struct {
	events []Event
}

// New builds an empty, successful Status.
func New() *Status {
	return &Status{}
}

// AddEvent appends e to the status and returns the status, so calls can be
// chained: status.New().AddEvent(a).AddEvent(b).
func (s *Status) AddEvent(e Event) *Status {
	s.events = append(s.events, e)
	return s
}

// AddSuccess is a convenience wrapper around AddEvent(NewSuccess(...)).
func (s *Status) AddSuccess(source, message string) *Status {
	return s.AddEvent(NewSuccess(source, message))
}

// AddWarning is a convenience wrapper around AddEvent(NewWarning(...)).
func (s *Status) AddWarning(source string, err error) *Status {
	return s.AddEvent(NewWarning(source, err))
}

// AddError is a convenience wrapper around AddEvent(NewError(...)).
func (s *Status) AddError(source string, err error) *Status {
	return s.AddEvent(NewError(source, err))
}

// Append concatenates other's events onto s and returns s.
func (s *Status) Append(other *Status) *Status {
	if other == nil {
		return s
	}
	s.events = append(s.events, other.events...)
	return s
}

// Events returns the ordered list of events. The returned slice must not be
// modified by the caller.
func (s *Status) Events() []Event {
	return s.events
}

// Kind returns the overall, max-precedence kind of the status.
func (s *Status) Kind() Kind {
	k := Success
	for _, e := range s.events {
		if e.Kind > k {
			k = e.Kind
		}
	}
	return k
}

// IsSuccess reports whether the status has no warning or error events.
func (s *Status) IsSuccess() bool { return s.Kind() == Success }

// IsWarning reports whether the status's highest-severity event is a warning.
func (s *Status) IsWarning() bool { return s.Kind() == Warning }

// IsError reports whether the status contains at least one error event.
func (s *Status) IsError() bool { return s.Kind() == Error }

// FirstError returns the first Error-kind event's underlying error, or nil
// if the status has none. The CLI front-end collaborator uses this to
// decide its process exit code (spec §7).
func (s *Status) FirstError() error {
	for _, e := range s.events {
		if e.Kind == Error {
			return e.Err
		}
	}
	return nil
}

// String renders the status as a newline-separated list of
// "kind[source]: message" lines, mainly useful for tests and debugging.
func (s *Status) String() string {
	var b strings.Builder
	for i, e := range s.events {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Kind.String())
		if e.Source != "" {
			b.WriteByte('[')
			b.WriteString(e.Source)
			b.WriteByte(']')
		}
		b.WriteString(": ")
		b.WriteString(e.Message())
	}
	return b.String()
}

// Result pairs a Status with an optional value of type T. HasValue
// distinguishes "operation failed before producing anything" from "the
// zero value is the real value".
type Result[T any] struct {
	status   *Status
	value    T
	hasValue bool
}

// Into builds a Result carrying status and value, with HasValue true.
func Into[T any](status *Status, value T) Result[T] {
	return Result[T]{status: status, value: value, hasValue: true}
}

// WithoutValue builds a Result carrying only status, with HasValue false.
func WithoutValue[T any](status *Status) Result[T] {
	return Result[T]{status: status}
}

// Status returns the result's status.
func (r Result[T]) Status() *Status { return r.status }

// HasValue reports whether the result carries a value.
func (r Result[T]) HasValue() bool { return r.hasValue }

// Value returns the carried value and whether one was present.
func (r Result[T]) Value() (T, bool) { return r.value, r.hasValue }

// IsSuccess, IsWarning, and IsError delegate to the underlying status.
func (r Result[T]) IsSuccess() bool { return r.status.IsSuccess() }
func (r Result[T]) IsWarning() bool { return r.status.IsWarning() }
func (r Result[T]) IsError() bool   { return r.status.IsError() }
