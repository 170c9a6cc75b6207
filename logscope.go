package lambdapi

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Recognized scope fields.
const (
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldErrorDetail = "error_detail"
	FieldRequestID   = "request_id"
	FieldUserAgent   = "user_agent"
)

// Scope is the per-invocation logging scope. Fields recorded during the
// invocation are buffered and flushed as a single structured record when
// the scope closes, regardless of how the invocation exits.
type Scope struct {
	logger zerolog.Logger
	level  zerolog.Level
	fields map[string]interface{}
	closed bool
}

// OpenScope opens a logging scope keyed by the invocation's request
// identifier.
func OpenScope(logger zerolog.Logger, requestID string) *Scope {
	s := &Scope{
		logger: logger,
		level:  zerolog.InfoLevel,
		fields: map[string]interface{}{},
	}
	if requestID != "" {
		s.fields[FieldRequestID] = requestID
	}
	return s
}

// Set records a field on the scope, replacing any previous value.
func (s *Scope) Set(name string, value interface{}) {
	s.fields[name] = value
}

// Get returns a previously recorded field.
func (s *Scope) Get(name string) (interface{}, bool) {
	v, ok := s.fields[name]
	return v, ok
}

// SetLevel changes the severity the record flushes at. The default is
// info.
func (s *Scope) SetLevel(level zerolog.Level) {
	s.level = level
}

// Level returns the severity the record will flush at.
func (s *Scope) Level() zerolog.Level {
	return s.level
}

// Close flushes the scope as one structured record. Only the first call
// emits; later calls are no-ops.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	ev := s.logger.WithLevel(s.level)
	for name, value := range s.fields {
		ev.Interface(name, value)
	}
	ev.Send()
}

type scopeContextKey struct{}

// NewScopeContext returns a context carrying the scope so handler code can
// record fields on the invocation's log record.
func NewScopeContext(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeContextKey{}, s)
}

// ScopeFromContext extracts the invocation scope from the context.
func ScopeFromContext(ctx context.Context) (*Scope, bool) {
	s, ok := ctx.Value(scopeContextKey{}).(*Scope)
	return s, ok
}

// NewLogger builds the zerolog logger used for invocation records. A nil
// output defaults to stdout, where the platform collects process logs.
func NewLogger(output io.Writer, level string, service string) zerolog.Logger {
	if output == nil {
		output = os.Stdout
	}
	logCtx := zerolog.New(output).With().Timestamp()
	if service != "" {
		logCtx = logCtx.Str("service", service)
	}
	return logCtx.Logger().Level(parseLevel(level))
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
