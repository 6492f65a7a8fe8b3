// Package http provides a minimal HTTP/1.1 message layer: decoding raw request
// text into a Request, encoding a Response into wire bytes, and serving
// exact-path handlers over a blocking listener.
//
// # Wire format
//
// Requests are read as one block of text:
//
//	<METHOD> <PATH> HTTP/<MAJOR>.<MINOR>\r\n
//	<Key>: <Value>\r\n
//	\r\n
//	<body>
//
// There is no Content-Length or chunked framing on the request side; whatever
// follows the blank line is the body. Responses always start with
// "HTTP/1.1 <code> <reason>" and carry a Content-Length matching the body.
//
// # Thread Safety
//
// Parsing and encoding functions are safe for concurrent use. A Response is
// not; build and serialize it on one goroutine.
package http

import (
	"sort"
	"strconv"
)

// ProtocolVersion is the version written on every status line.
const ProtocolVersion = "HTTP/1.1"

// SupportedVersion is the one version the server declares support for.
var SupportedVersion = Version{Major: 1, Minor: 1}

// Version is an HTTP protocol version.
type Version struct {
	Major uint
	Minor uint
}

// String renders the version as it appears on the request line, e.g. "HTTP/1.1".
func (v Version) String() string {
	return "HTTP/" + strconv.FormatUint(uint64(v.Major), 10) + "." + strconv.FormatUint(uint64(v.Minor), 10)
}

// Headers maps header names to values.
// Unlike net/http, keys are case-sensitive and each key holds one value;
// setting a key again replaces the previous value.
type Headers map[string]string

// Get returns the value for key, or "" if absent.
func (h Headers) Get(key string) string {
	return h[key]
}

// Set stores value under key, replacing any previous value.
func (h Headers) Set(key, value string) {
	h[key] = value
}

// Del removes key.
func (h Headers) Del(key string) {
	delete(h, key)
}

// Clone returns a copy of the headers.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	clone := make(Headers, len(h))
	for k, v := range h {
		clone[k] = v
	}
	return clone
}

// Keys returns the header names in sorted order.
func (h Headers) Keys() []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ContentLength returns the Content-Length header value, or -1 if absent or invalid.
func (h Headers) ContentLength() int64 {
	v, ok := h["Content-Length"]
	if !ok {
		return -1
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return -1
	}
	return n
}

// Marshaler is the interface implemented by types that can marshal themselves
// into valid HTTP wire format.
type Marshaler interface {
	MarshalHTTP() ([]byte, error)
}
