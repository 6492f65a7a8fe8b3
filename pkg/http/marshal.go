package http

import (
	"fmt"
	"sync"
)

// bufPool holds scratch buffers for Marshal and Encoder.
var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 2048)
		return &b
	},
}

func getBuf() *[]byte { return bufPool.Get().(*[]byte) }

func putBuf(bp *[]byte, buf []byte) {
	*bp = buf[:0]
	bufPool.Put(bp)
}

// Marshal returns the HTTP/1.1 wire-format encoding of v.
//
// v must be a *Request, a *Response, or implement Marshaler. Responses are
// written with the headers they carry; SetBody is what keeps Content-Length
// in step with the body.
func Marshal(v any) ([]byte, error) {
	if m, ok := v.(Marshaler); ok && !isMessage(v) {
		return m.MarshalHTTP()
	}

	bp := getBuf()
	buf, err := appendMessage((*bp)[:0], v)
	if err != nil {
		putBuf(bp, *bp)
		return nil, err
	}

	out := make([]byte, len(buf))
	copy(out, buf)
	putBuf(bp, buf)
	return out, nil
}

// appendMessage appends the wire form of a *Request or *Response to buf.
func appendMessage(buf []byte, v any) ([]byte, error) {
	switch msg := v.(type) {
	case *Request:
		if msg == nil {
			return buf, fmt.Errorf("http: Marshal(nil *Request)")
		}
		return appendRequest(buf, msg)
	case *Response:
		if msg == nil {
			return buf, fmt.Errorf("http: Marshal(nil *Response)")
		}
		return appendResponse(buf, msg), nil
	case nil:
		return buf, fmt.Errorf("http: Marshal(nil)")
	default:
		return buf, fmt.Errorf("http: Marshal unsupported type %T (expected *Request or *Response)", v)
	}
}

func isMessage(v any) bool {
	switch v.(type) {
	case *Request, *Response:
		return true
	}
	return false
}
