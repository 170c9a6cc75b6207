package lambdapi

import (
	"net/http"
	"strings"
)

// paramKind is the injection kind of a declared handler parameter.
type paramKind int

const (
	paramRequest paramKind = iota
	paramResponse
)

type paramDecl struct {
	name string
	kind paramKind
}

// Route is a registered (path, method) pair bound to a handler. Routes are
// created once during registration and immutable afterwards.
type Route struct {
	Path       string
	Method     string
	Handler    HandlerFunc
	StatusCode int

	statusSet   bool
	params      []paramDecl
	paramsName  string
	paramsBuild func() interface{}
}

// RouteOption customizes a route at registration time.
type RouteOption func(*Route)

// WithStatus sets the route's default success status code. A 200 set this
// way counts as explicit and is exempt from the no-content 204 rewrite.
func WithStatus(code int) RouteOption {
	return func(r *Route) {
		r.StatusCode = code
		r.statusSet = true
	}
}

// InjectRequest declares that the named handler argument receives the live
// Request. Injected arguments always win over body fields with the same
// name.
func InjectRequest(name string) RouteOption {
	return func(r *Route) {
		r.params = append(r.params, paramDecl{name: name, kind: paramRequest})
	}
}

// InjectResponse declares that the named handler argument receives the
// mutable Response under construction.
func InjectResponse(name string) RouteOption {
	return func(r *Route) {
		r.params = append(r.params, paramDecl{name: name, kind: paramResponse})
	}
}

// WithParams declares a typed argument struct for the route. The request
// body is decoded into a fresh instance from build, passed through the
// configured validation capability, and injected under the given name.
func WithParams(name string, build func() interface{}) RouteOption {
	return func(r *Route) {
		r.paramsName = name
		r.paramsBuild = build
	}
}

// Args is the keyword-style argument mapping passed to handlers: the
// decoded body fields plus the values injected for declared parameters.
type Args map[string]interface{}

// Request returns the Request injected under the given name, if any.
func (a Args) Request(name string) *Request {
	r, _ := a[name].(*Request)
	return r
}

// Response returns the Response injected under the given name, if any.
func (a Args) Response(name string) *Response {
	r, _ := a[name].(*Response)
	return r
}

// Routes is the route table. It is mutated only during the registration
// phase and read-only once invocations begin, so lookups take no locks.
type Routes struct {
	table map[string]map[string]*Route
}

// NewRoutes returns an empty route table.
func NewRoutes() *Routes {
	return &Routes{table: map[string]map[string]*Route{}}
}

// Register binds a handler to a (path, method) pair. Registering the same
// pair twice returns a *RegistrationError and leaves the first handler in
// place.
func (t *Routes) Register(path, method string, handler HandlerFunc, opts ...RouteOption) (*Route, error) {
	method = strings.ToUpper(method)
	route := &Route{
		Path:       path,
		Method:     method,
		Handler:    handler,
		StatusCode: http.StatusOK,
	}
	for _, opt := range opts {
		opt(route)
	}
	methods, ok := t.table[path]
	if !ok {
		methods = map[string]*Route{}
		t.table[path] = methods
	}
	if _, ok := methods[method]; ok {
		return nil, &RegistrationError{Path: path, Method: method}
	}
	methods[method] = route
	return route, nil
}

// Lookup resolves a (path, method) pair. An unknown path yields a
// NotFoundError and a known path without the method a
// MethodNotAllowedError, so callers can map them to 404 and 405.
func (t *Routes) Lookup(path, method string) (*Route, error) {
	methods, ok := t.table[path]
	if !ok {
		return nil, NotFoundError{Path: path}
	}
	route, ok := methods[strings.ToUpper(method)]
	if !ok {
		return nil, MethodNotAllowedError{Path: path, Method: method}
	}
	return route, nil
}
