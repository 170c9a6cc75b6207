package lambdapi

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

// Request is a read-only view over the decoded invocation event. It is
// constructed fresh per invocation and discarded once the envelope is
// produced.
type Request struct {
	event   *Event
	headers http.Header

	bodyRead bool
	body     []byte
	bodyErr  error
}

// NewRequest builds a Request from a decoded event.
func NewRequest(event *Event) *Request {
	headers := make(http.Header, len(event.Headers))
	for name, value := range event.Headers {
		headers.Set(name, value)
	}
	return &Request{event: event, headers: headers}
}

// Event returns the raw event mapping.
func (r *Request) Event() map[string]interface{} {
	return r.event.Raw()
}

// Headers returns the request headers with case-insensitive lookup.
func (r *Request) Headers() http.Header {
	return r.headers
}

// Body returns the decoded request body, honoring the event's base64 flag.
// Decoding happens once; subsequent calls return the cached result. A nil
// slice and no error are returned when the event has no body.
func (r *Request) Body() ([]byte, error) {
	if r.bodyRead {
		return r.body, r.bodyErr
	}
	r.bodyRead = true
	if r.event.Body == nil {
		return nil, nil
	}
	if r.event.IsBase64Encoded {
		r.body, r.bodyErr = base64.StdEncoding.DecodeString(*r.event.Body)
		return r.body, r.bodyErr
	}
	r.body = []byte(*r.event.Body)
	return r.body, nil
}

// JSONBody decodes the body as a JSON object. Bodies that are empty, not
// JSON, or JSON of another kind contribute no handler arguments and yield
// a nil mapping without error.
func (r *Request) JSONBody() (map[string]interface{}, error) {
	body, err := r.Body()
	if err != nil || len(body) == 0 {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, nil
	}
	return m, nil
}
