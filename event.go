package lambdapi

import (
	"encoding/json"
	"fmt"
)

// httpDescription is the requestContext.http object carried by HTTP API
// (payload v2) events.
type httpDescription struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// eventRequestContext covers the two supported event variants: HTTP API
// events carry a nested "http" object while legacy REST API events carry
// httpMethod and path directly.
//
// https://docs.aws.amazon.com/lambda/latest/dg/services-apigateway.html
type eventRequestContext struct {
	RequestID  string           `json:"requestId"`
	HTTP       *httpDescription `json:"http"`
	HTTPMethod string           `json:"httpMethod"`
	Path       string           `json:"path"`
}

// Event is the decoded invocation payload.
type Event struct {
	RequestContext  eventRequestContext `json:"requestContext"`
	Headers         map[string]string   `json:"headers"`
	Body            *string             `json:"body"`
	IsBase64Encoded bool                `json:"isBase64Encoded"`

	raw map[string]interface{}
}

// ParseEvent decodes an invocation payload. The raw mapping is retained so
// handlers can reach event fields this engine does not model.
func ParseEvent(payload []byte) (*Event, error) {
	var e Event
	if err := json.Unmarshal(payload, &e); err != nil {
		return nil, fmt.Errorf("malformed invocation event: %w", err)
	}
	if err := json.Unmarshal(payload, &e.raw); err != nil {
		return nil, fmt.Errorf("malformed invocation event: %w", err)
	}
	return &e, nil
}

// Raw returns the full decoded event mapping.
func (e *Event) Raw() map[string]interface{} {
	return e.raw
}

// RouteTarget extracts the HTTP method and path from the event. An event
// matching neither supported shape is a hard fault that propagates to the
// invocation host.
func (e *Event) RouteTarget() (method string, path string, err error) {
	rc := e.RequestContext
	if rc.HTTP != nil {
		return rc.HTTP.Method, rc.HTTP.Path, nil
	}
	if rc.HTTPMethod != "" {
		return rc.HTTPMethod, rc.Path, nil
	}
	return "", "", fmt.Errorf("unsupported event shape: no route information in requestContext")
}
