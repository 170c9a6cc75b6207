package lambdapi

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

const (
	headerContentType   = "content-type"
	headerContentLength = "content-length"
	headerRequestID     = "x-request-id"

	// MediaTypeJSON is the media type of rendered JSON responses.
	MediaTypeJSON = "application/json"
)

// Response is the mutable envelope under construction. Handlers that
// declare a response injection receive it and may change the status code,
// headers and content before the dispatcher finalizes it.
type Response struct {
	statusCode int
	statusSet  bool
	headers    map[string]string
	content    interface{}
	hasContent bool
	mediaType  string
}

// NewResponse returns an empty JSON response with the default 200 status.
func NewResponse() *Response {
	return &Response{
		statusCode: http.StatusOK,
		headers:    map[string]string{},
		mediaType:  MediaTypeJSON,
	}
}

// NewBinaryResponse returns a response carrying an opaque byte payload.
// Byte payloads are base64 encoded into the outgoing envelope. An empty
// media type leaves the content-type header unset.
func NewBinaryResponse(content []byte, mediaType string) *Response {
	r := NewResponse()
	r.mediaType = mediaType
	r.SetContent(content)
	return r
}

// seedResponse builds the response seeded from a matched route. The
// explicit flag records whether the status was set explicitly at
// registration, which exempts a 200 from the no-content 204 rewrite.
func seedResponse(statusCode int, explicit bool) *Response {
	r := NewResponse()
	r.statusCode = statusCode
	r.statusSet = explicit
	return r
}

// StatusCode returns the current status code.
func (r *Response) StatusCode() int {
	return r.statusCode
}

// SetStatus sets the status code. A 200 set this way counts as explicit
// and is not rewritten to 204 by the no-content convention.
func (r *Response) SetStatus(code int) {
	r.statusCode = code
	r.statusSet = true
}

// Headers returns the mutable response header mapping. Header names are
// kept exactly as produced.
func (r *Response) Headers() map[string]string {
	return r.headers
}

// SetHeader sets a response header.
func (r *Response) SetHeader(name, value string) {
	r.headers[name] = value
}

// SetContent sets the response content. A nil value clears it.
func (r *Response) SetContent(v interface{}) {
	r.content = v
	r.hasContent = v != nil
}

// SetMediaType overrides the media type reported for the rendered payload.
func (r *Response) SetMediaType(mediaType string) {
	r.mediaType = mediaType
}

// Envelope is the wire-level response object returned to the invoking
// platform.
type Envelope struct {
	Body            *string           `json:"body"`
	StatusCode      string            `json:"statusCode"`
	Headers         map[string]string `json:"headers"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}

// renderContent serializes content to its wire form. Byte payloads pass
// through untouched and are flagged binary; any other content renders as
// compact JSON. Rendering is the single place a domain value becomes wire
// bytes.
func renderContent(content interface{}) (body []byte, binary bool, err error) {
	if b, ok := content.([]byte); ok {
		return b, true, nil
	}
	body, err = json.Marshal(content)
	return body, false, err
}

// Finalize converts the response into the platform envelope. The
// no-content 204 rewrite applies only to the untouched default 200; empty
// error responses get a synthesized reason-phrase body. The scope, when
// present, records the final status code and supplies the request id
// response header best-effort.
func (r *Response) Finalize(scope *Scope) (*Envelope, error) {
	statusCode := r.statusCode
	content := r.content
	hasContent := r.hasContent

	if !hasContent {
		if statusCode == http.StatusOK && !r.statusSet {
			statusCode = http.StatusNoContent
		} else if statusCode >= 400 {
			content = map[string]string{"details": reasonPhrase(statusCode)}
			hasContent = true
		}
	}

	env := &Envelope{
		StatusCode: strconv.Itoa(statusCode),
		Headers:    r.headers,
	}
	if hasContent {
		body, binary, err := renderContent(content)
		if err != nil {
			return nil, fmt.Errorf("render response content: %w", err)
		}
		r.headers[headerContentLength] = strconv.Itoa(len(body))
		if r.mediaType != "" {
			r.headers[headerContentType] = r.mediaType
		}
		rendered := string(body)
		if binary {
			rendered = base64.StdEncoding.EncodeToString(body)
			env.IsBase64Encoded = true
		}
		env.Body = &rendered
	}

	if scope != nil {
		scope.Set(FieldStatusCode, statusCode)
		if id, ok := scope.Get(FieldRequestID); ok {
			if s, ok := id.(string); ok && s != "" {
				r.headers[headerRequestID] = s
			}
		}
	}
	return env, nil
}
