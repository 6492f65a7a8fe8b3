package http

import (
	"fmt"
	"strconv"
)

// Response is an HTTP response under construction by a handler.
//
// The Content-Length header always equals the byte length of the body;
// SetBody keeps it in sync. Handlers may overwrite any header directly,
// including Content-Length, and the encoder writes headers as given.
type Response struct {
	Status  StatusCode
	Headers Headers
	body    string
	hasBody bool
}

// NewResponse returns a 200 response with the default headers
// Content-Type: text/plain and Content-Length: 0.
func NewResponse() *Response {
	return &Response{
		Status: StatusOK,
		Headers: Headers{
			"Content-Type":   "text/plain",
			"Content-Length": "0",
		},
	}
}

// NewStatusResponse returns a response with the default headers and the given status.
func NewStatusResponse(status StatusCode) *Response {
	res := NewResponse()
	res.Status = status
	return res
}

// SetBody renders v as text and stores it as the body, replacing
// Content-Length with the text's byte length. Strings and byte slices are
// used as-is; any other value is formatted like fmt.Sprint.
func (r *Response) SetBody(v any) {
	var body string
	switch b := v.(type) {
	case string:
		body = b
	case []byte:
		body = string(b)
	default:
		body = fmt.Sprint(v)
	}

	r.body = body
	r.hasBody = true
	if r.Headers == nil {
		r.Headers = make(Headers)
	}
	r.Headers.Set("Content-Length", strconv.Itoa(len(body)))
}

// Body returns the body text and whether one was set.
func (r *Response) Body() (string, bool) {
	return r.body, r.hasBody
}

// StringifyHeaders renders every header as "Key: Value\r\n".
// Keys are emitted in sorted order.
func (r *Response) StringifyHeaders() string {
	return string(appendHeaders(nil, r.Headers))
}

// MarshalHTTP renders the response in wire format:
// status line, headers, blank line, body.
func (r *Response) MarshalHTTP() ([]byte, error) {
	return appendResponse(nil, r), nil
}

// String returns the wire-format text of the response.
func (r *Response) String() string {
	return string(appendResponse(nil, r))
}
