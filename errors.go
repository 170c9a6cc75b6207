package lambdapi

import (
	"fmt"
	"net/http"
	"time"
)

// HTTPError is a failure returned to the caller as a response with an
// explicit HTTP status code.
type HTTPError struct {
	// StatusCode is the HTTP status code of the resulting response.
	StatusCode int
	// Detail is the public detail rendered in the response body. When
	// empty, the reason phrase of the status code is used instead.
	Detail string
	// ErrDetail is diagnostic detail recorded in logs and never returned
	// to the caller.
	ErrDetail string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s", e.StatusCode, e.PublicDetail())
}

// PublicDetail returns the detail shown to the caller, falling back to the
// reason phrase of the status code.
func (e *HTTPError) PublicDetail() string {
	if e.Detail != "" {
		return e.Detail
	}
	return reasonPhrase(e.StatusCode)
}

// DiagnosticDetail returns the detail recorded in logs. An explicitly
// supplied public detail doubles as the diagnostic detail when no separate
// one was set. Empty when neither was supplied.
func (e *HTTPError) DiagnosticDetail() string {
	if e.ErrDetail != "" {
		return e.ErrDetail
	}
	return e.Detail
}

// FieldError describes a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationError carries the structured field failures produced by
// argument validation. It is recovered into a 422 response.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// RegistrationError reports a duplicate (path, method) registration. This
// is a configuration-time fault and is expected to abort startup.
type RegistrationError struct {
	Path   string
	Method string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("route already registered: %s %q", e.Method, e.Path)
}

// NotFoundError represents a failed lookup for a path.
type NotFoundError struct {
	// Path is the key used when looking for the route.
	Path string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("route (%s) not found", e.Path)
}

// MethodNotAllowedError represents a lookup for a known path with a method
// that has no registered handler.
type MethodNotAllowedError struct {
	Path   string
	Method string
}

func (e MethodNotAllowedError) Error() string {
	return fmt.Sprintf("method %s not allowed for route (%s)", e.Method, e.Path)
}

// TimeoutError reports that the execution bridge gave up waiting for a
// task. The dispatcher treats it like any other unexpected fault.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("task did not complete within %s", e.Timeout)
}

// reasonPhrase returns the human readable reason phrase for a status code.
func reasonPhrase(code int) string {
	if text := http.StatusText(code); text != "" {
		return text
	}
	return fmt.Sprintf("Status %d", code)
}
