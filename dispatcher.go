package lambdapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/rs/xstats"
	"github.com/rs/zerolog"
)

// Dispatcher adapts serverless invocation events into an HTTP
// request/response cycle. It owns the route table, translates each inbound
// event into a matched route plus a prepared request/response pair,
// executes the handler through the execution bridge, and converts every
// outcome into a platform envelope. It implements lambda.Handler.
//
// HTTP failures and validation failures are recovered into structured
// error responses. Anything else, including execution timeouts, is logged
// with full diagnostics and then allowed to propagate to the invocation
// host so platform-level retry and alerting apply.
type Dispatcher struct {
	routes    *Routes
	bridge    *Bridge
	logger    zerolog.Logger
	stat      Stat
	validator Validator
	timeout   time.Duration
}

// Option customizes a Dispatcher.
type Option func(*Dispatcher)

// WithLogger replaces the logger that invocation scopes flush to.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

// WithStat installs a metrics client. Without one no metrics are emitted.
func WithStat(stat Stat) Option {
	return func(d *Dispatcher) { d.stat = stat }
}

// WithValidator installs the argument validation capability. Without one,
// typed route arguments are decoded but not validated.
func WithValidator(v Validator) Option {
	return func(d *Dispatcher) { d.validator = v }
}

// WithTimeout overrides the per-invocation handler timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) { d.timeout = timeout }
}

// New builds a Dispatcher from environment settings and the given options.
func New(opts ...Option) *Dispatcher {
	cfg := LoadConfig()
	d := &Dispatcher{
		routes:  NewRoutes(),
		logger:  NewLogger(os.Stdout, cfg.LogLevel, cfg.ServiceName),
		timeout: cfg.FunctionTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.bridge = NewBridge(d.logger)
	return d
}

// Routes exposes the route table, mainly for lookup in tests and tooling.
func (d *Dispatcher) Routes() *Routes {
	return d.routes
}

// EnterResource runs an async setup block once and keeps the resulting
// object alive for the process lifetime. For use during setup only.
func (d *Dispatcher) EnterResource(ctx context.Context, setup ResourceFunc) (interface{}, error) {
	return d.bridge.EnterResource(ctx, setup)
}

// RunAsync drives a one-off asynchronous task to completion synchronously.
// For use during setup only.
func (d *Dispatcher) RunAsync(ctx context.Context, task Task) (interface{}, error) {
	return d.bridge.Run(ctx, task)
}

// Shutdown releases process-lifetime resources. Safe to call more than
// once; only the first call releases.
func (d *Dispatcher) Shutdown(ctx context.Context) {
	d.bridge.Shutdown(ctx)
}

// Get registers a GET route and returns the handler unchanged so the same
// function can be registered on several routes or called directly. A
// duplicate (path, method) pair panics: registration happens once at
// startup and a conflict is a configuration fault.
func (d *Dispatcher) Get(path string, handler HandlerFunc, opts ...RouteOption) HandlerFunc {
	return d.mustRegister(path, http.MethodGet, handler, opts...)
}

// Post registers a POST route. See Get for conflict semantics.
func (d *Dispatcher) Post(path string, handler HandlerFunc, opts ...RouteOption) HandlerFunc {
	return d.mustRegister(path, http.MethodPost, handler, opts...)
}

// Put registers a PUT route. See Get for conflict semantics.
func (d *Dispatcher) Put(path string, handler HandlerFunc, opts ...RouteOption) HandlerFunc {
	return d.mustRegister(path, http.MethodPut, handler, opts...)
}

// Patch registers a PATCH route. See Get for conflict semantics.
func (d *Dispatcher) Patch(path string, handler HandlerFunc, opts ...RouteOption) HandlerFunc {
	return d.mustRegister(path, http.MethodPatch, handler, opts...)
}

// Delete registers a DELETE route. See Get for conflict semantics.
func (d *Dispatcher) Delete(path string, handler HandlerFunc, opts ...RouteOption) HandlerFunc {
	return d.mustRegister(path, http.MethodDelete, handler, opts...)
}

// Head registers a HEAD route. See Get for conflict semantics.
func (d *Dispatcher) Head(path string, handler HandlerFunc, opts ...RouteOption) HandlerFunc {
	return d.mustRegister(path, http.MethodHead, handler, opts...)
}

// Options registers an OPTIONS route. See Get for conflict semantics.
func (d *Dispatcher) Options(path string, handler HandlerFunc, opts ...RouteOption) HandlerFunc {
	return d.mustRegister(path, http.MethodOptions, handler, opts...)
}

func (d *Dispatcher) mustRegister(path, method string, handler HandlerFunc, opts ...RouteOption) HandlerFunc {
	if _, err := d.routes.Register(path, method, handler, opts...); err != nil {
		panic(err)
	}
	return handler
}

// Invoke is the lambda.Handler entry point: one invocation event in, one
// platform envelope out.
func (d *Dispatcher) Invoke(ctx context.Context, payload []byte) ([]byte, error) {
	event, err := ParseEvent(payload)
	if err != nil {
		return nil, err
	}
	method, path, err := event.RouteTarget()
	if err != nil {
		return nil, err
	}

	scope := OpenScope(d.logger, d.requestID(ctx, event))
	defer scope.Close()
	scope.Set(FieldMethod, method)
	scope.Set(FieldPath, path)

	start := time.Now()
	env, err := d.dispatch(ctx, scope, event, method, path)
	if err != nil {
		// Unexpected fault: record full diagnostics on the scope, then
		// let the fault propagate to the invocation host.
		scope.Set(FieldStatusCode, http.StatusInternalServerError)
		scope.SetLevel(zerolog.FatalLevel)
		scope.Set(FieldErrorDetail, fmt.Sprintf("%v\n%s", err, debug.Stack()))
		d.observe(method, http.StatusInternalServerError, start)
		return nil, err
	}
	d.observe(method, scopeStatus(scope), start)
	return json.Marshal(env)
}

// requestID returns the platform invocation id, falling back to the
// event's own request context and finally a generated id.
func (d *Dispatcher) requestID(ctx context.Context, event *Event) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	if id := event.RequestContext.RequestID; id != "" {
		return id
	}
	return uuid.NewString()
}

// dispatch runs the routed invocation and maps recoverable failures to
// their response shapes. Unexpected faults are returned as-is.
func (d *Dispatcher) dispatch(ctx context.Context, scope *Scope, event *Event, method, path string) (*Envelope, error) {
	response, err := d.execute(ctx, scope, event, method, path)
	if err == nil {
		return response.Finalize(scope)
	}

	var httpErr *HTTPError
	var validationErr *ValidationError
	switch {
	case errors.As(err, &httpErr):
		if detail := httpErr.DiagnosticDetail(); detail != "" {
			scope.Set(FieldErrorDetail, detail)
		}
		switch {
		case httpErr.StatusCode >= 500:
			scope.SetLevel(zerolog.ErrorLevel)
		case httpErr.StatusCode >= 400:
			scope.SetLevel(zerolog.WarnLevel)
		}
		response = NewResponse()
		response.SetStatus(httpErr.StatusCode)
		response.SetContent(map[string]interface{}{"detail": httpErr.PublicDetail()})
		return response.Finalize(scope)
	case errors.As(err, &validationErr):
		if detail, merr := json.Marshal(validationErr.Fields); merr == nil {
			scope.Set(FieldErrorDetail, string(detail))
		}
		scope.SetLevel(zerolog.WarnLevel)
		response = NewResponse()
		response.SetStatus(http.StatusUnprocessableEntity)
		response.SetContent(map[string]interface{}{"detail": validationErr.Fields})
		return response.Finalize(scope)
	default:
		return nil, err
	}
}

// execute resolves the route, prepares the request/response pair and runs
// the handler through the execution bridge.
func (d *Dispatcher) execute(ctx context.Context, scope *Scope, event *Event, method, path string) (*Response, error) {
	route, err := d.routes.Lookup(path, method)
	switch err.(type) {
	case nil:
	case NotFoundError:
		return nil, &HTTPError{StatusCode: http.StatusNotFound}
	case MethodNotAllowedError:
		return nil, &HTTPError{StatusCode: http.StatusMethodNotAllowed}
	default:
		return nil, err
	}

	request := NewRequest(event)
	response := seedResponse(route.StatusCode, route.statusSet)

	if id := request.Headers().Get("X-Request-Id"); id != "" {
		scope.Set(FieldRequestID, id)
	} else if id := event.RequestContext.RequestID; id != "" {
		scope.Set(FieldRequestID, id)
	}
	if ua := request.Headers().Get("User-Agent"); ua != "" {
		scope.Set(FieldUserAgent, ua)
	}

	args, err := d.buildArgs(ctx, route, request, response)
	if err != nil {
		return nil, err
	}

	ctx = NewScopeContext(ctx, scope)
	if d.stat != nil {
		ctx = xstats.NewContext(ctx, d.stat)
	}
	result, err := d.bridge.RunWithTimeout(ctx, d.timeout, func(ctx context.Context) (interface{}, error) {
		return route.Handler(ctx, args)
	})
	if err != nil {
		return nil, err
	}
	if full, ok := result.(*Response); ok && full != nil {
		return full, nil
	}
	response.SetContent(result)
	return response, nil
}

// buildArgs merges the decoded body fields with the injected parameters.
// Injected parameters always win over body fields of the same name.
func (d *Dispatcher) buildArgs(ctx context.Context, route *Route, request *Request, response *Response) (Args, error) {
	body, err := request.JSONBody()
	if err != nil {
		return nil, err
	}
	args := make(Args, len(body)+len(route.params)+1)
	for name, value := range body {
		args[name] = value
	}
	if route.paramsBuild != nil {
		params, err := d.bindParams(ctx, route, request)
		if err != nil {
			return nil, err
		}
		args[route.paramsName] = params
	}
	for _, param := range route.params {
		switch param.kind {
		case paramRequest:
			args[param.name] = request
		case paramResponse:
			args[param.name] = response
		}
	}
	return args, nil
}

// bindParams decodes the body into the route's declared argument struct
// and runs it through the validation capability when one is configured.
func (d *Dispatcher) bindParams(ctx context.Context, route *Route, request *Request) (interface{}, error) {
	params := route.paramsBuild()
	body, err := request.Body()
	if err != nil {
		return nil, err
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, params); err != nil {
			return nil, &ValidationError{Fields: []FieldError{{
				Field:   unmarshalField(err),
				Tag:     "json",
				Message: err.Error(),
			}}}
		}
	}
	if d.validator == nil {
		// No validation capability configured: arguments pass through
		// uncoerced beyond JSON decoding.
		return params, nil
	}
	if err := d.validator.Validate(ctx, params); err != nil {
		return nil, err
	}
	return params, nil
}

func unmarshalField(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Field
	}
	return ""
}

func scopeStatus(scope *Scope) int {
	if v, ok := scope.Get(FieldStatusCode); ok {
		if statusCode, ok := v.(int); ok {
			return statusCode
		}
	}
	return 0
}
